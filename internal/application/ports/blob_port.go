package ports

import "context"

// Contenedores lógicos por categoría de imagen.
const (
	ContainerEntrepreneurPictures = "entrepreneur-profile-pictures"
	ContainerInvestorPictures     = "investor-profile-pictures"
	ContainerStartupLogos         = "startup-logos"
)

// CacheControlPublic cabecera aplicada a todos los blobs subidos.
const CacheControlPublic = "public, max-age=31536000"

// BlobStorage puerto de salida hacia el almacenamiento de objetos.
// Upload escribe data en container/blobName y devuelve una URL pública estable.
// No hay borrado: una imagen reemplazada queda huérfana.
type BlobStorage interface {
	Upload(ctx context.Context, container, blobName string, data []byte, contentType string) (string, error)
}
