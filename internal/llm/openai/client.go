package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/byb-ai/progress-verifier/internal/common"
	"github.com/byb-ai/progress-verifier/internal/llm"
)

// Extract implements llm.FieldExtractor using text-only chat/completions with
// a JSON response format, a worked example, and local schema validation.
func (c *Client) Extract(ctx context.Context, req llm.ExtractRequest) ([]llm.FieldSpan, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	fields := req.Fields
	if len(fields) == 0 {
		fields = llm.ReportFieldSpecs()
	}

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.Text),
		"fields", len(fields),
	)

	schema := llm.BuildExtractionJSONSchema(fields)
	exampleUser, exampleAssistant := llm.WorkedExample()

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildInstruction(fields)},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
			{"role": "user", "content": exampleUser},
			{"role": "assistant", "content": exampleAssistant},
			{"role": "user", "content": llm.BuildUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, code, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.log)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, fmt.Errorf("%w: openai request: %v", common.ErrProviderUnavailable, err)
	}
	if code < 200 || code >= 300 {
		c.log.Error("llm.extract.http_status",
			"req_id", rid, "status", code,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("%w: openai status %d: %s", common.ErrProviderUnavailable, code, truncate(string(raw), 512))
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("%w: decode openai response: %v", common.ErrExtractionFailed, err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("%w: no choices in openai response", common.ErrExtractionFailed)
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", truncate(string(content), 512),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, content, fmt.Errorf("%w: %v", common.ErrExtractionFailed, err)
	}

	var out struct {
		Extractions []llm.FieldSpan `json:"extractions"`
	}
	if err := json.Unmarshal(content, &out); err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, content, fmt.Errorf("%w: unmarshal extractions: %v", common.ErrExtractionFailed, err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"spans", len(out.Extractions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out.Extractions, content, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
