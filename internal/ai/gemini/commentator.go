package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/land-advisor/internal/ai"
	"github.com/spigell/land-advisor/internal/land"
	"github.com/spigell/land-advisor/internal/logger"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	defaultMaxRetries   = 2
	retryBackoff        = 2 * time.Second
)

var sleep = time.Sleep

// Commentator turns an assembled analysis report into an advisory narrative
// via Gemini. Transient generation failures are retried with a fixed backoff.
type Commentator struct {
	generator  contentGenerator
	logger     *zap.Logger
	maxRetries int
	maxLogLen  int
}

func NewCommentator(generator contentGenerator, log *zap.Logger, maxRetries, maxLogLength int) *Commentator {
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Commentator{
		generator:  generator,
		logger:     logger.WithFields(log, logger.CommonFields("gemini", "")...),
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
	}
}

func (c *Commentator) Comment(ctx context.Context, report *land.AnalysisResult) (*ai.Commentary, error) {
	if report == nil {
		return nil, fmt.Errorf("analysis report is required")
	}

	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report payload: %w", err)
	}

	prompt := buildPrompt(string(reportJSON))

	c.logger.Debug("gemini generate content request",
		zap.String("report_id", report.ID),
		zap.String("address", report.Parcel.Address),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, c.maxLogLen)),
	)

	raw, err := c.generateWithRetry(ctx, prompt, report.ID)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("gemini generate content response",
		zap.String("report_id", report.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, c.maxLogLen)),
	)

	commentary, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	commentary.Raw = raw
	return commentary, nil
}

func (c *Commentator) generateWithRetry(ctx context.Context, prompt, reportID string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying gemini request",
				zap.String("report_id", reportID),
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := waitFor(ctx, retryBackoff); err != nil {
				return "", err
			}
		}

		raw, err := c.generator.GenerateContent(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("gemini request failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// waitFor sleeps for d but aborts early when the context is canceled.
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sleep(d)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

func buildPrompt(reportJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Analysis report:\n{{REPORT_JSON}}\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, "{{REPORT_JSON}}", reportJSON)
}

func parseResponse(raw string) (*ai.Commentary, error) {
	cleaned := extractJSON(strings.TrimSpace(raw))

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	return &ai.Commentary{
		Summary:  coerceString(data["summary"]),
		Opinion:  coerceString(data["opinion"]),
		Cautions: coerceStrings(data["cautions"]),
	}, nil
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

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

func coerceStrings(v any) []string {
	switch val := v.(type) {
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			if s := coerceString(item); s != "" {
				result = append(result, s)
			}
		}
		return result
	case string:
		if s := strings.TrimSpace(val); s != "" {
			return []string{s}
		}
		return nil
	default:
		return nil
	}
}
