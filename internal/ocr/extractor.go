package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/byb-ai/progress-verifier/constants"
	"github.com/byb-ai/progress-verifier/internal/common"
	"github.com/byb-ai/progress-verifier/internal/extract"
)

const (
	// MethodImage marks text produced by the synchronous single-image path.
	MethodImage = "image-ocr"
	// MethodPDFBatch marks text produced by the asynchronous batch path.
	MethodPDFBatch = "pdf-batch-ocr"

	shardSuffix    = ".json"
	pageSeparator  = "\n\n"
	shardFetchers  = 8
	cleanupTimeout = 30 * time.Second
)

type Config struct {
	InputPrefix  string        // staged input keys, default "ocr_input"
	OutputPrefix string        // batch output keys, default "ocr_output"
	BatchTimeout time.Duration // async job bound, default 420s
	BatchSize    int32         // logical pages per output shard, default 100
}

// Extractor converts raw document bytes into plain text. It implements
// extract.TextExtractor over a pluggable object store and recognizer.
type Extractor struct {
	store  ObjectStore
	rec    Recognizer
	newID  IDSource
	cfg    Config
	logger *slog.Logger
}

func NewExtractor(store ObjectStore, rec Recognizer, cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.InputPrefix == "" {
		cfg.InputPrefix = "ocr_input"
	}
	if cfg.OutputPrefix == "" {
		cfg.OutputPrefix = "ocr_output"
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = 420 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Extractor{store: store, rec: rec, newID: DefaultIDSource, cfg: cfg, logger: logger}
}

// WithIDSource replaces the staged-key generator. Used by tests.
func (e *Extractor) WithIDSource(ids IDSource) *Extractor {
	e.newID = ids
	return e
}

// Extract picks a strategy based on the filename extension, falling back to
// magic-byte sniffing when the name carries no usable extension.
func (e *Extractor) Extract(ctx context.Context, doc extract.Document) (extract.TextExtractionResult, error) {
	start := time.Now()
	format := constants.MapExtToFormat(filepath.Ext(doc.Filename))
	if format == "" {
		format = constants.SniffFormat(doc.Content)
	}
	e.logger.Debug("ocr.extract.start", "filename", doc.Filename, "format", format, "bytes", len(doc.Content))

	var res extract.TextExtractionResult
	var err error
	switch format {
	case constants.PDF:
		res, err = e.extractPDF(ctx, doc)
	default:
		res, err = e.extractImage(ctx, doc)
	}
	res.Duration = time.Since(start)
	return res, err
}

func (e *Extractor) extractImage(ctx context.Context, doc extract.Document) (extract.TextExtractionResult, error) {
	res := extract.TextExtractionResult{SourceType: constants.IMAGE, Method: MethodImage}

	ann, err := e.rec.DetectText(ctx, doc.Content)
	if err != nil {
		return res, fmt.Errorf("detect text: %w", err)
	}

	res.Text = ann.Text
	res.Pages = 1
	res.Confidence = averageConfidence(ann.BlockConfidence)
	e.logger.Info("ocr.extract.image_ok", "bytes", len(res.Text), "confidence", res.Confidence)
	return res, nil
}

func (e *Extractor) extractPDF(ctx context.Context, doc extract.Document) (extract.TextExtractionResult, error) {
	res := extract.TextExtractionResult{SourceType: constants.PDF, Method: MethodPDFBatch}

	name := path.Base(doc.Filename)
	if name == "" || name == "." || name == "/" {
		name = "document.pdf"
	}
	inputKey := path.Join(e.cfg.InputPrefix, e.newID(), name)
	outputPrefix := e.store.URI(e.cfg.OutputPrefix+"/"+e.newID()) + "/"

	inputURI, err := e.store.Put(ctx, inputKey, doc.Content)
	if err != nil {
		return res, fmt.Errorf("stage input: %w", err)
	}
	// Staged objects outlive several suspension points; release them on every
	// exit path, success or not, without masking the primary result.
	defer e.cleanup(inputURI, outputPrefix)

	e.logger.Info("ocr.extract.batch_start", "input", inputURI, "output", outputPrefix)
	job, err := e.rec.SubmitBatch(ctx, inputURI, outputPrefix, e.cfg.BatchSize)
	if err != nil {
		return res, fmt.Errorf("submit batch: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, e.cfg.BatchTimeout)
	defer cancel()
	if err := job.Wait(waitCtx); err != nil {
		if waitCtx.Err() != nil && ctx.Err() == nil {
			return res, fmt.Errorf("batch annotation did not finish within %s: %w", e.cfg.BatchTimeout, common.ErrExtractionTimeout)
		}
		return res, fmt.Errorf("await batch: %w", err)
	}

	uris, err := e.store.List(ctx, outputPrefix)
	if err != nil {
		return res, fmt.Errorf("list output shards: %w", err)
	}
	shards := make([]string, 0, len(uris))
	for _, u := range uris {
		if strings.HasSuffix(u, shardSuffix) {
			shards = append(shards, u)
		}
	}
	// Name order is page order; shard arrival order must not matter.
	sort.Strings(shards)
	if len(shards) == 0 {
		return res, fmt.Errorf("no output shards under %s: %w", outputPrefix, common.ErrExtractionFailed)
	}
	e.logger.Info("ocr.extract.batch_done", "shards", len(shards))

	contents := make([]string, len(shards))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(shardFetchers)
	for i, uri := range shards {
		eg.Go(func() error {
			s, err := e.store.GetText(gctx, uri)
			if err != nil {
				return fmt.Errorf("fetch shard %s: %w", uri, err)
			}
			contents[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return res, err
	}

	var texts []string
	var confidences []float32
	for i, c := range contents {
		shard, err := parseShard([]byte(c))
		if err != nil {
			return res, fmt.Errorf("parse shard %s: %w", shards[i], err)
		}
		res.Pages += len(shard.Responses)
		for _, page := range shard.pageTexts() {
			texts = append(texts, page)
		}
		confidences = append(confidences, shard.blockConfidences()...)
	}

	res.Text = strings.Join(texts, pageSeparator)
	res.Confidence = averageConfidence(confidences)
	e.logger.Info("ocr.extract.pdf_ok", "pages", res.Pages, "bytes", len(res.Text), "confidence", res.Confidence)
	return res, nil
}

// cleanup releases the staged input and every output shard. Best effort: it
// runs on its own context so it still executes after a timeout, and failures
// are logged, never propagated.
func (e *Extractor) cleanup(inputURI, outputPrefix string) {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	if err := e.store.Delete(ctx, inputURI); err != nil {
		e.logger.Warn("ocr.cleanup.input_failed", "uri", inputURI, "error", err)
	}
	uris, err := e.store.List(ctx, outputPrefix)
	if err != nil {
		e.logger.Warn("ocr.cleanup.list_failed", "prefix", outputPrefix, "error", err)
		return
	}
	for _, uri := range uris {
		if err := e.store.Delete(ctx, uri); err != nil {
			e.logger.Warn("ocr.cleanup.shard_failed", "uri", uri, "error", err)
		}
	}
}

func averageConfidence(confidences []float32) float32 {
	if len(confidences) == 0 {
		return 0.0
	}
	var total float32
	for _, c := range confidences {
		total += c
	}
	return total / float32(len(confidences))
}
