package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/resufit/resufit/internal/utils"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Recognizer asks Gemini to pick the candidate's name out of a resume
// header. It implements ai.PersonRecognizer.
type Recognizer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

func NewRecognizer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Recognizer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Recognizer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// FirstPerson returns the first person name found in the text, or an
// empty string when the model reports none.
func (r *Recognizer) FirstPerson(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("header text is required")
	}

	prompt := buildPrompt(text)

	r.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, r.maxLogLen)),
	)

	raw, err := r.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	r.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, r.maxLogLen)),
	)

	return parseResponse(raw)
}

func buildPrompt(headerText string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Resume header:\n{{HEADER_TEXT}}\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, "{{HEADER_TEXT}}", headerText)
}

func parseResponse(raw string) (string, error) {
	cleaned := extractJSON(strings.TrimSpace(raw))

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return "", fmt.Errorf("parse gemini response: %w", err)
	}

	name, _ := data["name"].(string)
	return strings.TrimSpace(name), nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
