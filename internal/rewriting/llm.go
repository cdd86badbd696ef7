package rewriting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/llm"
	"github.com/jonathan/ats-optimizer/internal/prompts"
	"github.com/jonathan/ats-optimizer/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

const promptFile = "rewriting.json"

// bulletBatchSchema constrains the model's bullet-rewrite response.
const bulletBatchSchema = `{
  "type": "object",
  "required": ["bullets"],
  "additionalProperties": false,
  "properties": {
    "bullets": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

type bulletBatch struct {
	Bullets []string `json:"bullets"`
}

func (r *Rewriter) llmRewriteSummary(ctx context.Context, summary string, jd types.JDIntelligence, keywords []string) (string, error) {
	template, err := prompts.Get(promptFile, "rewrite_summary")
	if err != nil {
		return "", err
	}

	prompt := prompts.Format(template, map[string]string{
		"Summary":    summary,
		"Role":       jd.Role,
		"Seniority":  string(jd.Seniority),
		"Keywords":   strings.Join(keywords, ", "),
		"HardSkills": strings.Join(head(jd.HardSkills, maxPromptSkills), ", "),
	})

	result, err := r.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", err
	}

	result = strings.Trim(strings.TrimSpace(result), "\"'")
	if result == "" {
		return "", fmt.Errorf("empty summary from model")
	}
	return result, nil
}

// llmRewriteBullets rewrites all bullets in one model call. The response
// must validate against bulletBatchSchema and contain exactly one bullet
// per input.
func (r *Rewriter) llmRewriteBullets(ctx context.Context, bullets []string, keywords []string) ([]string, error) {
	template, err := prompts.Get(promptFile, "rewrite_bullets")
	if err != nil {
		return nil, err
	}

	bulletJSON, err := json.Marshal(bullets)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bullets: %w", err)
	}

	prompt := prompts.Format(template, map[string]string{
		"Keywords": strings.Join(keywords, ", "),
		"Bullets":  string(bulletJSON),
	})

	raw, err := r.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(bulletBatchSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate bullet response: %w", err)
	}
	if !result.Valid() {
		var issues []string
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, fmt.Errorf("bullet response failed schema validation: %s", strings.Join(issues, "; "))
	}

	var batch bulletBatch
	if err := json.Unmarshal([]byte(raw), &batch); err != nil {
		return nil, fmt.Errorf("failed to parse bullet response: %w", err)
	}
	if len(batch.Bullets) != len(bullets) {
		return nil, fmt.Errorf("bullet count mismatch: sent %d, got %d", len(bullets), len(batch.Bullets))
	}

	return batch.Bullets, nil
}
