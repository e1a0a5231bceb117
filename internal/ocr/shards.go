package ocr

import "encoding/json"

// annotateFileShard mirrors the JSON the recognition backend writes for one
// output shard: a list of per-page responses, each carrying the page text and
// block-level confidences.
type annotateFileShard struct {
	Responses []shardResponse `json:"responses"`
}

type shardResponse struct {
	FullTextAnnotation struct {
		Text  string `json:"text"`
		Pages []struct {
			Blocks []struct {
				Confidence float32 `json:"confidence"`
			} `json:"blocks"`
		} `json:"pages"`
	} `json:"fullTextAnnotation"`
}

func parseShard(data []byte) (*annotateFileShard, error) {
	var shard annotateFileShard
	if err := json.Unmarshal(data, &shard); err != nil {
		return nil, err
	}
	return &shard, nil
}

// pageTexts returns the non-empty page texts in shard order.
func (s *annotateFileShard) pageTexts() []string {
	var texts []string
	for _, r := range s.Responses {
		if t := r.FullTextAnnotation.Text; t != "" {
			texts = append(texts, t)
		}
	}
	return texts
}

// blockConfidences collects every block confidence in the shard.
func (s *annotateFileShard) blockConfidences() []float32 {
	var confidences []float32
	for _, r := range s.Responses {
		for _, p := range r.FullTextAnnotation.Pages {
			for _, b := range p.Blocks {
				confidences = append(confidences, b.Confidence)
			}
		}
	}
	return confidences
}
