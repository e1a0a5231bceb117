package ocr

import (
	"context"

	"github.com/google/uuid"
)

// ObjectStore is the durable intermediate store used to stage batch inputs
// and collect batch output shards. Implementations classify failures with the
// internal/common sentinels so callers can map them onto the error taxonomy.
type ObjectStore interface {
	// Put writes data under a bucket-relative key and returns the object URI.
	Put(ctx context.Context, key string, data []byte) (string, error)
	// GetText reads an object addressed by URI as a string.
	GetText(ctx context.Context, uri string) (string, error)
	// List returns the URIs of all objects under a URI prefix.
	List(ctx context.Context, prefix string) ([]string, error)
	// Delete removes a single object.
	Delete(ctx context.Context, uri string) error
	// URI returns the object URI a key would resolve to, without any I/O.
	URI(key string) string
}

// Annotation is the synchronous recognition result for a single image.
type Annotation struct {
	Text            string
	BlockConfidence []float32
}

// Recognizer is the text-recognition backend.
type Recognizer interface {
	// DetectText runs synchronous full-document text detection on an image.
	DetectText(ctx context.Context, image []byte) (Annotation, error)
	// SubmitBatch starts an asynchronous recognition job over a staged
	// document, writing result shards under outputPrefix.
	SubmitBatch(ctx context.Context, inputURI, outputPrefix string, batchSize int32) (BatchJob, error)
}

// BatchJob is a handle on a running asynchronous recognition job.
type BatchJob interface {
	// Wait blocks until the job finishes or ctx expires.
	Wait(ctx context.Context) error
}

// IDSource produces the unique key segments for staged objects. Injected so
// tests can pin object names.
type IDSource func() string

// DefaultIDSource generates random UUID key segments.
func DefaultIDSource() string {
	return uuid.NewString()
}
