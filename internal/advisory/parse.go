package advisory

import (
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"

	"github.com/faloii/resumerecommend/internal/types"
)

//go:embed schema.json
var resultSchema string

// parseResult turns a raw model response into a validated advisory result.
// The response may be wrapped in markdown fences or surrounded by prose;
// only the outermost JSON object is considered.
func parseResult(raw string) (*types.AdvisoryResult, error) {
	payload := extractJSON(cleanJSONBlock(raw))
	if payload == "" {
		return nil, fmt.Errorf("no JSON object in advisory response")
	}

	if err := validateSchema(payload); err != nil {
		return nil, err
	}

	var result types.AdvisoryResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to decode advisory response: %w", err)
	}
	if len(result.Matches) == 0 {
		return nil, fmt.Errorf("advisory response contains no matches")
	}
	return &result, nil
}

func validateSchema(payload string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resultSchema),
		gojsonschema.NewStringLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to validate advisory response: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
		}
		return fmt.Errorf("advisory response failed schema validation: %s", strings.Join(details, "; "))
	}
	return nil
}

// cleanJSONBlock removes markdown code fences around a JSON payload.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// extractJSON returns the outermost {...} span of the text, or empty when
// no object is present.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return ""
	}
	return text[start : end+1]
}
