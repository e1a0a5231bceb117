package ocr

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/byb-ai/progress-verifier/internal/common"
)

// GCSStore implements ObjectStore on a Google Cloud Storage bucket, using the
// gs://bucket/key URI scheme.
type GCSStore struct {
	client *storage.Client
	bucket string
}

func NewGCSStore(ctx context.Context, bucket, credentialsFile string) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("%w: storage bucket not configured", common.ErrConfiguration)
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: create storage client: %v", common.ErrProviderUnavailable, err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) URI(key string) string {
	return "gs://" + s.bucket + "/" + key
}

func (s *GCSStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("%w: write %s: %v", common.ErrProviderUnavailable, s.URI(key), err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: finalize %s: %v", common.ErrProviderUnavailable, s.URI(key), err)
	}
	return s.URI(key), nil
}

func (s *GCSStore) GetText(ctx context.Context, uri string) (string, error) {
	bucket, name, err := splitURI(uri)
	if err != nil {
		return "", err
	}
	r, err := s.client.Bucket(bucket).Object(name).NewReader(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", common.ErrProviderUnavailable, uri, err)
	}
	defer func() {
		_ = r.Close()
	}()
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", common.ErrProviderUnavailable, uri, err)
	}
	return string(b), nil
}

func (s *GCSStore) List(ctx context.Context, prefix string) ([]string, error) {
	bucket, name, err := splitURI(prefix)
	if err != nil {
		return nil, err
	}
	var uris []string
	it := s.client.Bucket(bucket).Objects(ctx, &storage.Query{Prefix: name})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: list %s: %v", common.ErrProviderUnavailable, prefix, err)
		}
		uris = append(uris, "gs://"+bucket+"/"+attrs.Name)
	}
	return uris, nil
}

func (s *GCSStore) Delete(ctx context.Context, uri string) error {
	bucket, name, err := splitURI(uri)
	if err != nil {
		return err
	}
	if err := s.client.Bucket(bucket).Object(name).Delete(ctx); err != nil {
		return fmt.Errorf("%w: delete %s: %v", common.ErrProviderUnavailable, uri, err)
	}
	return nil
}

func splitURI(uri string) (bucket, name string, err error) {
	trimmed, ok := strings.CutPrefix(uri, "gs://")
	if !ok {
		return "", "", fmt.Errorf("not a gs:// uri: %q", uri)
	}
	bucket, name, ok = strings.Cut(trimmed, "/")
	if !ok || bucket == "" {
		return "", "", fmt.Errorf("malformed object uri: %q", uri)
	}
	return bucket, name, nil
}
