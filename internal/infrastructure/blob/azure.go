package blob

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	azureblob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"

	"github.com/jhoicas/startnet-api/internal/application/ports"
)

var _ ports.BlobStorage = (*AzureStorage)(nil)

// AzureStorage adaptador de BlobStorage sobre Azure Blob Storage (block blobs, tier Hot).
type AzureStorage struct {
	client *azblob.Client
}

// NewAzureStorage crea el cliente desde AZURE_STORAGE_CONNECTION_STRING.
func NewAzureStorage(connectionString string) (*AzureStorage, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("azure blob: cliente: %w", err)
	}
	return &AzureStorage{client: client}, nil
}

// EnsureContainers crea los contenedores con acceso público de lectura si no existen.
func (s *AzureStorage) EnsureContainers(ctx context.Context, names ...string) error {
	access := container.PublicAccessTypeBlob
	for _, name := range names {
		_, err := s.client.ServiceClient().NewContainerClient(name).Create(ctx, &container.CreateOptions{Access: &access})
		if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			return fmt.Errorf("azure blob: crear contenedor %s: %w", name, err)
		}
	}
	return nil
}

// Upload sube data como block blob con Content-Type, Cache-Control público y tier Hot. Un solo intento.
func (s *AzureStorage) Upload(ctx context.Context, containerName, blobName string, data []byte, contentType string) (string, error) {
	bb := s.client.ServiceClient().NewContainerClient(containerName).NewBlockBlobClient(blobName)
	cacheControl := ports.CacheControlPublic
	tier := azureblob.AccessTierHot
	_, err := bb.UploadBuffer(ctx, data, &blockblob.UploadBufferOptions{
		HTTPHeaders: &azureblob.HTTPHeaders{
			BlobContentType:  &contentType,
			BlobCacheControl: &cacheControl,
		},
		AccessTier: &tier,
	})
	if err != nil {
		return "", fmt.Errorf("azure blob: upload %s/%s: %w", containerName, blobName, err)
	}
	return bb.URL(), nil
}
