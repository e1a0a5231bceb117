package ocr

import (
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/byb-ai/progress-verifier/internal/common"
)

const pdfMimeType = "application/pdf"

// VisionRecognizer implements Recognizer on the Cloud Vision API: synchronous
// document text detection for images and asynchronous batch annotation for
// staged PDFs.
type VisionRecognizer struct {
	client *vision.ImageAnnotatorClient
}

func NewVisionRecognizer(ctx context.Context, credentialsFile string) (*VisionRecognizer, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: create vision client: %v", common.ErrProviderUnavailable, err)
	}
	return &VisionRecognizer{client: client}, nil
}

func (r *VisionRecognizer) Close() error {
	return r.client.Close()
}

func (r *VisionRecognizer) DetectText(ctx context.Context, image []byte) (Annotation, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image:    &visionpb.Image{Content: image},
			Features: []*visionpb.Feature{{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION}},
		}},
	}
	resp, err := r.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return Annotation{}, classify("document text detection", err)
	}
	return annotationFromResponse(resp)
}

// annotationFromResponse unpacks the single-image batch response. A per-image
// failure arrives inside an otherwise successful response, carried as an rpc
// status proto, so it runs through the same classification as a transport
// error.
func annotationFromResponse(resp *visionpb.BatchAnnotateImagesResponse) (Annotation, error) {
	responses := resp.GetResponses()
	if len(responses) == 0 {
		return Annotation{}, fmt.Errorf("%w: document text detection: empty response", common.ErrExtractionFailed)
	}
	res := responses[0]
	if res.GetError() != nil {
		return Annotation{}, classify("document text detection", status.ErrorProto(res.GetError()))
	}
	ann := res.GetFullTextAnnotation()
	if ann == nil {
		return Annotation{}, nil
	}
	out := Annotation{Text: ann.GetText()}
	for _, page := range ann.GetPages() {
		for _, block := range page.GetBlocks() {
			out.BlockConfidence = append(out.BlockConfidence, block.GetConfidence())
		}
	}
	return out, nil
}

func (r *VisionRecognizer) SubmitBatch(ctx context.Context, inputURI, outputPrefix string, batchSize int32) (BatchJob, error) {
	req := &visionpb.AsyncBatchAnnotateFilesRequest{
		Requests: []*visionpb.AsyncAnnotateFileRequest{{
			Features: []*visionpb.Feature{{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION}},
			InputConfig: &visionpb.InputConfig{
				GcsSource: &visionpb.GcsSource{Uri: inputURI},
				MimeType:  pdfMimeType,
			},
			OutputConfig: &visionpb.OutputConfig{
				GcsDestination: &visionpb.GcsDestination{Uri: outputPrefix},
				BatchSize:      batchSize,
			},
		}},
	}
	op, err := r.client.AsyncBatchAnnotateFiles(ctx, req)
	if err != nil {
		return nil, classify("submit batch annotation", err)
	}
	return visionJob{op: op}, nil
}

type visionJob struct {
	op *vision.AsyncBatchAnnotateFilesOperation
}

func (j visionJob) Wait(ctx context.Context) error {
	if _, err := j.op.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return classify("batch annotation", err)
	}
	return nil
}

// classify maps a backend error onto the pipeline taxonomy: transport-level
// unavailability stays distinct from a reported processing error.
func classify(op string, err error) error {
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Unavailable, codes.DeadlineExceeded, codes.Unauthenticated:
			return fmt.Errorf("%w: %s: %v", common.ErrProviderUnavailable, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", common.ErrExtractionFailed, op, err)
}
