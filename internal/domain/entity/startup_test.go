package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/startnet-api/internal/domain/entity"
)

func TestStartup_IsOwnedBy(t *testing.T) {
	s := &entity.Startup{UserID: "u1"}
	assert.True(t, s.IsOwnedBy("u1"))
	assert.False(t, s.IsOwnedBy("u2"))
	assert.False(t, s.IsOwnedBy(""))

	var nilStartup *entity.Startup
	assert.False(t, nilStartup.IsOwnedBy("u1"))
}

func TestIsValidAccountType(t *testing.T) {
	assert.True(t, entity.IsValidAccountType("entrepreneur"))
	assert.True(t, entity.IsValidAccountType("investor"))
	assert.False(t, entity.IsValidAccountType("admin"))
	assert.False(t, entity.IsValidAccountType(""))
}
