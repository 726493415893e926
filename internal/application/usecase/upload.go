package usecase

import (
	"fmt"
	"path"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/domain"
)

// DefaultMaxUploadBytes tamaño máximo de imagen cuando no se configura otro.
const DefaultMaxUploadBytes = 5 << 20

// UploadConfig límites de subida compartidos por perfiles y startups.
type UploadConfig struct {
	MaxBytes int
}

func (c UploadConfig) maxBytes() int {
	if c.MaxBytes <= 0 {
		return DefaultMaxUploadBytes
	}
	return c.MaxBytes
}

// checkUpload exige archivo no vacío, tipo image/* y tamaño dentro del límite.
func checkUpload(f dto.FileUpload, cfg UploadConfig) error {
	if len(f.Data) == 0 {
		return domain.NewMissingFields("file")
	}
	ct := strings.ToLower(strings.TrimSpace(f.ContentType))
	if !strings.HasPrefix(ct, "image/") {
		return domain.ErrUnsupportedMedia
	}
	if len(f.Data) > cfg.maxBytes() {
		return domain.NewInvalid(fmt.Sprintf("file exceeds the maximum size of %d bytes", cfg.maxBytes()), "file")
	}
	return nil
}

// profilePictureBlobName profile-picture-<userId>-<ulid>.
func profilePictureBlobName(userID string) string {
	return fmt.Sprintf("profile-picture-%s-%s", userID, ulid.Make())
}

// startupLogoBlobName startup-logo-<ulid>-<nombre original saneado>.
func startupLogoBlobName(original string) string {
	name := sanitizeFileName(original)
	if name == "" {
		return fmt.Sprintf("startup-logo-%s", ulid.Make())
	}
	return fmt.Sprintf("startup-logo-%s-%s", ulid.Make(), name)
}

// sanitizeFileName deja solo [A-Za-z0-9._-] del nombre base, recortado a 100 caracteres.
func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), "-.")
	if len(out) > 100 {
		out = out[len(out)-100:]
	}
	return out
}
