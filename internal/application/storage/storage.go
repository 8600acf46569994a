package storage

import "context"

// Buckets lógicos del directorio: uno para imágenes y otro para PDFs.
// Cada objeto vive bajo un path con prefijo del negocio dueño:
// <businessID>/<timestamp>_<n>.<ext>.
type Bucket string

const (
	BucketImages Bucket = "images"
	BucketPDFs   Bucket = "pdfs"
)

// ObjectStorage es el puerto hacia el almacenamiento de objetos.
// La implementación real es S3; los tests usan un fake en memoria.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket Bucket, path, contentType string, data []byte) error
	// Remove elimina varios objetos; los paths inexistentes no son error.
	Remove(ctx context.Context, bucket Bucket, paths []string) error
	// PublicURL devuelve la URL pública de un objeto (no hace I/O).
	PublicURL(bucket Bucket, path string) string
}
