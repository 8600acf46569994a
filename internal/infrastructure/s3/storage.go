package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/amartindev/TenjoConecta/internal/application/storage"
	"github.com/amartindev/TenjoConecta/pkg/config"
)

var _ storage.ObjectStorage = (*Storage)(nil)

// Storage implementación del puerto ObjectStorage sobre S3, con un bucket
// para imágenes y otro para PDFs, ambos de lectura pública.
type Storage struct {
	client        *awss3.Client
	imageBucket   string
	pdfBucket     string
	publicBaseURL string
	region        string
}

// NewStorage crea el cliente S3 con credenciales estáticas de la configuración.
func NewStorage(ctx context.Context, cfg config.StorageConfig) (*Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración AWS: %w", err)
	}
	return &Storage{
		client:        awss3.NewFromConfig(awsCfg),
		imageBucket:   cfg.ImageBucket,
		pdfBucket:     cfg.PDFBucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		region:        cfg.Region,
	}, nil
}

// Upload sube un objeto al bucket correspondiente.
func (s *Storage) Upload(ctx context.Context, bucket storage.Bucket, path, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucketName(bucket)),
		Key:         aws.String(path),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("subir objeto %s: %w", path, err)
	}
	return nil
}

// Remove elimina objetos del bucket. Eliminar un path inexistente no es error en S3.
func (s *Storage) Remove(ctx context.Context, bucket storage.Bucket, paths []string) error {
	name := s.bucketName(bucket)
	for _, path := range paths {
		_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
			Bucket: aws.String(name),
			Key:    aws.String(path),
		})
		if err != nil {
			return fmt.Errorf("eliminar objeto %s: %w", path, err)
		}
	}
	return nil
}

// PublicURL construye la URL pública de un objeto. Con PublicBaseURL definido
// (CDN o dominio propio) se usa como prefijo; si no, la URL estándar de S3.
func (s *Storage) PublicURL(bucket storage.Bucket, path string) string {
	name := s.bucketName(bucket)
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, name, path)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", name, s.region, path)
}

func (s *Storage) bucketName(bucket storage.Bucket) string {
	if bucket == storage.BucketPDFs {
		return s.pdfBucket
	}
	return s.imageBucket
}
