package pdf

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/startnet-api/internal/domain/entity"
)

func TestGenerate_DevuelvePDF(t *testing.T) {
	s := &entity.Startup{
		StartupName: "Acme",
		Industry:    "Tech",
		Website:     "https://acme.test",
		Founded:     2021,
		Description: "Plataforma de pagos",
		Problem:     "Cobros lentos",
		FundingGoal: decimal.NewFromInt(500000),
		RaisedSoFar: decimal.RequireFromString("1250.5"),
		Team:        []entity.TeamMember{{Name: "Ana", Role: "CEO", Email: "ana@acme.test"}},
	}
	out, err := NewStartupSheetGenerator().Generate(s)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerate_SinCamposOpcionales(t *testing.T) {
	out, err := NewStartupSheetGenerator().Generate(&entity.Startup{StartupName: "Mínima"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0", formatUSD(decimal.Zero))
	assert.Equal(t, "$999", formatUSD(decimal.NewFromInt(999)))
	assert.Equal(t, "$1,000,000", formatUSD(decimal.NewFromInt(1000000)))
	assert.Equal(t, "$25,000.50", formatUSD(decimal.RequireFromString("25000.5")))
	assert.Equal(t, "-$1,500", formatUSD(decimal.NewFromInt(-1500)))
}
