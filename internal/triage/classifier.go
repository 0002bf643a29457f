package triage

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/reina-tokumaru/clinic-reservation-system/internal/clinic"
	"github.com/reina-tokumaru/clinic-reservation-system/internal/llm"
	"github.com/reina-tokumaru/clinic-reservation-system/pkg/logging"
)

// Result is the structured triage outcome. Department should be a
// member of the department list but membership is not enforced; an
// out-of-list value is returned as-is and logged.
type Result struct {
	Department string `json:"department"`
	Reason     string `json:"reason"`
	Note       string `json:"note"`
}

// Low fixed temperature for reproducible department picks.
const triageTemperature = 0.3

const systemPromptTemplate = "あなたは医療トリアージAIです。" +
	"以下の診療科リストの中から、最も適切な診療科を必ず1つだけ選んでください。" +
	"【診療科リスト】%s。" +
	"出力は必ず JSON のみ。形式は {\"department\":\"string\",\"reason\":\"string\",\"note\":\"string\"}。" +
	"department には診療科リストの中の名称のみを入れること。" +
	"前置き・説明・余計な文章は禁止。"

// Classifier maps a free-text symptom description to one department via
// a single constrained-output model call.
type Classifier struct {
	client       llm.Client
	model        string
	systemPrompt string
	maxTokens    int32
	timeout      time.Duration
	logger       *logging.Logger
}

// Option customizes a Classifier.
type Option func(*Classifier)

// WithTimeout bounds each model call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Classifier) { c.timeout = d }
}

// WithMaxTokens caps the model reply length.
func WithMaxTokens(n int32) Option {
	return func(c *Classifier) { c.maxTokens = n }
}

// NewClassifier creates a triage classifier for the given model.
func NewClassifier(client llm.Client, model string, logger *logging.Logger, opts ...Option) *Classifier {
	if client == nil {
		panic("triage: llm client cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	c := &Classifier{
		client:       client,
		model:        model,
		systemPrompt: buildSystemPrompt(clinic.Departments),
		maxTokens:    512,
		timeout:      30 * time.Second,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func buildSystemPrompt(departments []string) string {
	return strings.Replace(systemPromptTemplate, "%s", strings.Join(departments, "、"), 1)
}

// Classify issues exactly one model call for the message and parses the
// reply into a Result. No retries are attempted.
func (c *Classifier) Classify(ctx context.Context, message string) (Result, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Result{}, ErrEmptyMessage
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reply, err := c.client.Complete(ctx, llm.Request{
		Model:       c.model,
		System:      []string{c.systemPrompt},
		Messages:    []llm.ChatMessage{{Role: llm.ChatRoleUser, Content: message}},
		MaxTokens:   c.maxTokens,
		Temperature: triageTemperature,
	})
	if err != nil {
		return Result{}, &UnavailableError{Err: err}
	}

	raw := reply.Flatten()
	span, ok := extractObject(raw)
	if !ok {
		return Result{}, &FormatError{Kind: FormatNoSpan, Raw: raw}
	}

	var result Result
	if err := json.Unmarshal([]byte(span), &result); err != nil {
		return Result{}, &FormatError{Kind: FormatUnparsable, Raw: raw}
	}

	if !clinic.IsDepartment(result.Department) {
		// Returned as-is; whether to reject or clamp is still open.
		c.logger.Warn("triage: department outside known list",
			"department", result.Department,
		)
	}
	return result, nil
}
