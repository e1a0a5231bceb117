package ocr

import (
	"errors"
	"testing"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"

	"github.com/byb-ai/progress-verifier/internal/common"
)

func TestAnnotationFromResponse(t *testing.T) {
	resp := &visionpb.BatchAnnotateImagesResponse{
		Responses: []*visionpb.AnnotateImageResponse{{
			FullTextAnnotation: &visionpb.TextAnnotation{
				Text: "Progresso: 75%",
				Pages: []*visionpb.Page{{
					Blocks: []*visionpb.Block{{Confidence: 0.8}, {Confidence: 1.0}},
				}},
			},
		}},
	}
	ann, err := annotationFromResponse(resp)
	if err != nil {
		t.Fatalf("annotationFromResponse: %v", err)
	}
	if ann.Text != "Progresso: 75%" {
		t.Errorf("text = %q", ann.Text)
	}
	if len(ann.BlockConfidence) != 2 || ann.BlockConfidence[0] != 0.8 || ann.BlockConfidence[1] != 1.0 {
		t.Errorf("block confidences = %v", ann.BlockConfidence)
	}
}

func TestAnnotationFromResponsePerImageError(t *testing.T) {
	build := func(code codes.Code) *visionpb.BatchAnnotateImagesResponse {
		return &visionpb.BatchAnnotateImagesResponse{
			Responses: []*visionpb.AnnotateImageResponse{{
				Error: &spb.Status{Code: int32(code), Message: "annotation failed"},
			}},
		}
	}

	if _, err := annotationFromResponse(build(codes.Unavailable)); !errors.Is(err, common.ErrProviderUnavailable) {
		t.Errorf("unavailable image error: got %v, want ErrProviderUnavailable", err)
	}
	if _, err := annotationFromResponse(build(codes.InvalidArgument)); !errors.Is(err, common.ErrExtractionFailed) {
		t.Errorf("invalid-argument image error: got %v, want ErrExtractionFailed", err)
	}
}

func TestAnnotationFromResponseEmpty(t *testing.T) {
	if _, err := annotationFromResponse(&visionpb.BatchAnnotateImagesResponse{}); !errors.Is(err, common.ErrExtractionFailed) {
		t.Errorf("no responses: got %v, want ErrExtractionFailed", err)
	}

	blank := &visionpb.BatchAnnotateImagesResponse{
		Responses: []*visionpb.AnnotateImageResponse{{}},
	}
	ann, err := annotationFromResponse(blank)
	if err != nil {
		t.Fatalf("blank response: %v", err)
	}
	if ann.Text != "" || len(ann.BlockConfidence) != 0 {
		t.Errorf("blank response produced %+v", ann)
	}
}
