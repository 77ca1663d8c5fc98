package service

import (
	"context"
	"fmt"
	"geometriks_backend/internal/config"
	"geometriks_backend/internal/util"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider resolves stored object keys (module and chapter images
// referenced by authored content) to URLs a browser can fetch. Uploads happen
// through an external pipeline; this service only serves what admins
// reference.
type StorageProvider interface {
	GetURL(ctx context.Context, key string) (string, error)
}

type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) GetURL(_ context.Context, key string) (string, error) {
	base := strings.TrimSuffix(p.Config.BaseURL, "/")
	return fmt.Sprintf("%s/uploads/%s", base, key), nil
}

type MinioStorageProvider struct {
	Client *minio.Client
	Bucket string
}

func (p *MinioStorageProvider) GetURL(ctx context.Context, key string) (string, error) {
	u, err := p.Client.PresignedGetObject(ctx, p.Bucket, key, 24*time.Hour, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

type StorageService struct {
	provider StorageProvider
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	switch cfg.Storage.Type {
	case util.StorageMinio:
		client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
			Secure: cfg.Storage.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}
		return &StorageService{provider: &MinioStorageProvider{
			Client: client,
			Bucket: cfg.Storage.MinioBucket,
		}}, nil
	default:
		return &StorageService{provider: &LocalStorageProvider{Config: &cfg.Storage}}, nil
	}
}

// ResolveURL maps an object key to a URL. Empty keys and values that are
// already absolute URLs pass through unchanged.
func (s *StorageService) ResolveURL(ctx context.Context, key string) string {
	if key == "" || strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}
	u, err := s.provider.GetURL(ctx, key)
	if err != nil {
		return key
	}
	return u
}
