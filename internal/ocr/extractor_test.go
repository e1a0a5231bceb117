package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/byb-ai/progress-verifier/internal/common"
	"github.com/byb-ai/progress-verifier/internal/extract"
)

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (s *fakeStore) URI(key string) string { return "store://test/" + key }

func (s *fakeStore) Put(_ context.Context, key string, data []byte) (string, error) {
	if s.putErr != nil {
		return "", s.putErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	uri := s.URI(key)
	s.objects[uri] = data
	return uri, nil
}

func (s *fakeStore) GetText(_ context.Context, uri string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.objects[uri]
	if !ok {
		return "", fmt.Errorf("%w: no object %s", common.ErrProviderUnavailable, uri)
	}
	return string(b), nil
}

func (s *fakeStore) List(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var uris []string
	// Map iteration order is random, which doubles as a shard arrival-order
	// shuffle for the assembly tests.
	for uri := range s.objects {
		if strings.HasPrefix(uri, prefix) {
			uris = append(uris, uri)
		}
	}
	return uris, nil
}

func (s *fakeStore) Delete(_ context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, uri)
	return nil
}

func (s *fakeStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

type fakeRecognizer struct {
	ann       Annotation
	detectErr error
	onSubmit  func(store *fakeStore, outputPrefix string)
	store     *fakeStore
	waitDelay time.Duration
	waitErr   error
}

func (r *fakeRecognizer) DetectText(context.Context, []byte) (Annotation, error) {
	if r.detectErr != nil {
		return Annotation{}, r.detectErr
	}
	return r.ann, nil
}

func (r *fakeRecognizer) SubmitBatch(_ context.Context, _, outputPrefix string, _ int32) (BatchJob, error) {
	if r.onSubmit != nil {
		r.onSubmit(r.store, outputPrefix)
	}
	return fakeJob{delay: r.waitDelay, err: r.waitErr}, nil
}

type fakeJob struct {
	delay time.Duration
	err   error
}

func (j fakeJob) Wait(ctx context.Context) error {
	if j.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(j.delay):
		}
	}
	return j.err
}

func shardJSON(texts []string, confidences []float32) []byte {
	var pages []string
	for _, t := range texts {
		pages = append(pages, fmt.Sprintf(`{"fullTextAnnotation":{"text":%q,"pages":[]}}`, t))
	}
	var blocks []string
	for _, c := range confidences {
		blocks = append(blocks, fmt.Sprintf(`{"confidence":%g}`, c))
	}
	if len(blocks) > 0 {
		pages = append(pages, fmt.Sprintf(`{"fullTextAnnotation":{"text":"","pages":[{"blocks":[%s]}]}}`, strings.Join(blocks, ",")))
	}
	return []byte(fmt.Sprintf(`{"responses":[%s]}`, strings.Join(pages, ",")))
}

func sequentialIDs() IDSource {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestExtractImage(t *testing.T) {
	store := newFakeStore()
	rec := &fakeRecognizer{ann: Annotation{
		Text:            "Engineer: João Silva",
		BlockConfidence: []float32{0.8, 1.0},
	}}
	e := NewExtractor(store, rec, Config{}, nil).WithIDSource(sequentialIDs())

	res, err := e.Extract(context.Background(), extract.Document{
		Content:  []byte{0xFF, 0xD8, 0xFF, 0xE0},
		Filename: "photo.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "Engineer: João Silva" {
		t.Errorf("unexpected text: %q", res.Text)
	}
	if res.Method != MethodImage {
		t.Errorf("expected method %q, got %q", MethodImage, res.Method)
	}
	if res.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %g", res.Confidence)
	}
	if store.size() != 0 {
		t.Errorf("image path must not stage objects, found %d", store.size())
	}
}

func TestExtractImageIndependentOfExtension(t *testing.T) {
	content := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x10, 0x20}
	rec := &fakeRecognizer{ann: Annotation{Text: "same text"}}

	var texts []string
	for _, filename := range []string{"scan.jpg", ""} {
		e := NewExtractor(newFakeStore(), rec, Config{}, nil)
		res, err := e.Extract(context.Background(), extract.Document{Content: content, Filename: filename})
		if err != nil {
			t.Fatalf("filename %q: unexpected error: %v", filename, err)
		}
		if res.SourceType != "IMAGE" {
			t.Fatalf("filename %q: classified as %s", filename, res.SourceType)
		}
		texts = append(texts, res.Text)
	}
	if texts[0] != texts[1] {
		t.Errorf("extension must not affect output: %q vs %q", texts[0], texts[1])
	}
}

func TestExtractImageNoConfidences(t *testing.T) {
	rec := &fakeRecognizer{ann: Annotation{Text: "text"}}
	e := NewExtractor(newFakeStore(), rec, Config{}, nil)

	res, err := e.Extract(context.Background(), extract.Document{Content: []byte{0x01}, Filename: "a.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Confidence != 0.0 {
		t.Errorf("expected 0.0 confidence without blocks, got %g", res.Confidence)
	}
}

func TestExtractPDFAssemblesShardsInNameOrder(t *testing.T) {
	store := newFakeStore()
	rec := &fakeRecognizer{store: store}
	rec.onSubmit = func(s *fakeStore, prefix string) {
		key := strings.TrimPrefix(prefix, s.URI(""))
		s.objects[s.URI(key+"output-00003.json")] = shardJSON([]string{"page five"}, nil)
		s.objects[s.URI(key+"output-00001.json")] = shardJSON([]string{"page one", "page two"}, []float32{0.6})
		s.objects[s.URI(key+"output-00002.json")] = shardJSON([]string{"page three", "", "page four"}, []float32{1.0})
		s.objects[s.URI(key+"manifest.txt")] = []byte("not a shard")
	}
	e := NewExtractor(store, rec, Config{}, nil).WithIDSource(sequentialIDs())

	res, err := e.Extract(context.Background(), extract.Document{
		Content:  []byte("%PDF-1.7 fake"),
		Filename: "report.pdf",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "page one\n\npage two\n\npage three\n\npage four\n\npage five"
	if res.Text != want {
		t.Errorf("wrong assembly order:\n got %q\nwant %q", res.Text, want)
	}
	if res.Confidence != 0.8 {
		t.Errorf("expected confidence 0.8, got %g", res.Confidence)
	}
	if store.size() != 0 {
		t.Errorf("expected cleanup to remove all staged objects, %d remain", store.size())
	}
}

func TestExtractPDFClassifiedBySignature(t *testing.T) {
	store := newFakeStore()
	rec := &fakeRecognizer{store: store}
	rec.onSubmit = func(s *fakeStore, prefix string) {
		key := strings.TrimPrefix(prefix, s.URI(""))
		s.objects[s.URI(key+"output-00001.json")] = shardJSON([]string{"page"}, nil)
	}
	e := NewExtractor(store, rec, Config{}, nil).WithIDSource(sequentialIDs())

	// No extension: the %PDF signature must route to the batch path.
	res, err := e.Extract(context.Background(), extract.Document{Content: []byte("%PDF-1.4")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Method != MethodPDFBatch {
		t.Errorf("expected %q, got %q", MethodPDFBatch, res.Method)
	}
}

func TestExtractPDFNoShards(t *testing.T) {
	store := newFakeStore()
	rec := &fakeRecognizer{store: store}
	e := NewExtractor(store, rec, Config{}, nil).WithIDSource(sequentialIDs())

	_, err := e.Extract(context.Background(), extract.Document{Content: []byte("%PDF-1.4"), Filename: "empty.pdf"})
	if !errors.Is(err, common.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
	if store.size() != 0 {
		t.Errorf("expected cleanup after failure, %d objects remain", store.size())
	}
}

func TestExtractPDFTimeout(t *testing.T) {
	store := newFakeStore()
	rec := &fakeRecognizer{store: store, waitDelay: time.Minute}
	rec.onSubmit = func(s *fakeStore, prefix string) {
		key := strings.TrimPrefix(prefix, s.URI(""))
		s.objects[s.URI(key+"output-00001.json")] = shardJSON([]string{"late"}, nil)
	}
	e := NewExtractor(store, rec, Config{BatchTimeout: 20 * time.Millisecond}, nil).WithIDSource(sequentialIDs())

	_, err := e.Extract(context.Background(), extract.Document{Content: []byte("%PDF-1.4"), Filename: "slow.pdf"})
	if !errors.Is(err, common.ErrExtractionTimeout) {
		t.Fatalf("expected ErrExtractionTimeout, got %v", err)
	}
	if store.size() != 0 {
		t.Errorf("expected cleanup after timeout, %d objects remain", store.size())
	}
}

func TestExtractPDFStagingFailure(t *testing.T) {
	store := newFakeStore()
	store.putErr = fmt.Errorf("%w: bucket gone", common.ErrProviderUnavailable)
	e := NewExtractor(store, &fakeRecognizer{store: store}, Config{}, nil)

	_, err := e.Extract(context.Background(), extract.Document{Content: []byte("%PDF-1.4"), Filename: "r.pdf"})
	if !errors.Is(err, common.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestAverageConfidence(t *testing.T) {
	if got := averageConfidence(nil); got != 0.0 {
		t.Errorf("empty slice: got %g", got)
	}
	if got := averageConfidence([]float32{0.5, 1.0, 0.75}); got != 0.75 {
		t.Errorf("got %g, want 0.75", got)
	}
}
