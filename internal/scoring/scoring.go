// Package scoring produces feng shui verdicts for phone numbers. Analyze always
// returns a usable result: a missing key or a failing backend degrade to canned
// values instead of errors.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/logger"
)

// FieldType is the JSON type of one requested output field.
type FieldType string

const (
	FieldNumber FieldType = "number"
	FieldString FieldType = "string"
)

type Field struct {
	Name string
	Type FieldType
}

// Schema describes the JSON object the backend must answer with.
type Schema struct {
	Fields []Field
}

// Completer sends one prompt to a text model and returns its raw text answer.
type Completer interface {
	Complete(ctx context.Context, prompt string, schema Schema) (string, error)
}

// ResultSchema is the output shape requested for every analysis.
var ResultSchema = Schema{Fields: []Field{
	{Name: "score", Type: FieldNumber},
	{Name: "element", Type: FieldString},
	{Name: "interpretation", Type: FieldString},
	{Name: "compatibility", Type: FieldString},
}}

// DemoResult is returned when no backend is configured.
var DemoResult = model.ScoringResult{
	Score:          8.5,
	Element:        model.ElementKim,
	Interpretation: "Sim này mang lại sự cân bằng, tài lộc ổn định. (Chế độ Demo - Hãy nhập API Key để có kết quả thực)",
	Compatibility:  "Hợp với người mệnh Thủy và Thổ.",
}

// DegradedResult is returned when the backend fails or answers garbage.
var DegradedResult = model.ScoringResult{
	Score:          5,
	Element:        "Không xác định",
	Interpretation: "Hiện tại hệ thống đang bận, vui lòng thử lại sau.",
	Compatibility:  "N/A",
}

const promptTemplate = `
Đóng vai một chuyên gia phong thủy kinh dịch Việt Nam. Hãy phân tích số điện thoại %s cho chủ nhân sinh năm %s, giới tính %s.
Hãy đưa ra kết quả dưới dạng JSON với cấu trúc sau:
{
  "score": (số điểm thang 10),
  "element": (ngũ hành của số sim),
  "interpretation": (lời bình ngắn gọn dưới 50 từ về ý nghĩa hung cát),
  "compatibility": (lời khuyên hợp khắc)
}
`

// BuildPrompt fills the fixed analysis prompt.
func BuildPrompt(phoneNumber, birthYear, gender string) string {
	return fmt.Sprintf(promptTemplate, phoneNumber, birthYear, gender)
}

type Options struct {
	// Timeout bounds one backend call. Zero leaves it to the transport.
	Timeout time.Duration
	// DemoDelay is waited before answering in demo mode.
	DemoDelay time.Duration
}

// Service is the scoring facade.
type Service struct {
	completer Completer
	opts      Options
	sleep     func(ctx context.Context, d time.Duration)
}

// NewService builds the facade. A nil completer puts it in demo mode.
func NewService(completer Completer, opts Options) *Service {
	return &Service{completer: completer, opts: opts, sleep: sleepCtx}
}

// Demo reports whether the service answers with the canned demo result.
func (s *Service) Demo() bool { return s.completer == nil }

// Analyze never fails. Backend errors are logged and mapped to DegradedResult.
func (s *Service) Analyze(ctx context.Context, phoneNumber, birthYear, gender string) model.ScoringOutcome {
	if s.completer == nil {
		s.sleep(ctx, s.opts.DemoDelay)
		return model.ScoringOutcome{Result: DemoResult, Source: model.ScoringSourceDemo}
	}

	ctx, span := otel.Tracer("scoring").Start(ctx, "scoring.Analyze")
	defer span.End()
	span.SetAttributes(attribute.String("sim.phone_number", phoneNumber))

	result, err := s.analyze(ctx, phoneNumber, birthYear, gender)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "degraded")
		logger.Warn("feng shui analysis degraded", zap.String("phone_number", phoneNumber), zap.Error(err))
		return model.ScoringOutcome{Result: DegradedResult, Source: model.ScoringSourceDegraded}
	}
	return model.ScoringOutcome{Result: result, Source: model.ScoringSourceLive}
}

func (s *Service) analyze(ctx context.Context, phoneNumber, birthYear, gender string) (result model.ScoringResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("completer panic: %v", r)
		}
	}()

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	text, err := s.completer.Complete(ctx, BuildPrompt(phoneNumber, birthYear, gender), ResultSchema)
	if err != nil {
		return model.ScoringResult{}, fmt.Errorf("complete: %w", err)
	}
	return ParseResult(text)
}

var ErrEmptyResponse = errors.New("empty response from model")

type rawResult struct {
	Score          *float64 `json:"score"`
	Element        *string  `json:"element"`
	Interpretation *string  `json:"interpretation"`
	Compatibility  *string  `json:"compatibility"`
}

// ParseResult decodes a model answer. Markdown code fences around the JSON are
// tolerated; missing fields or a score outside [0, 10] are errors.
func ParseResult(text string) (model.ScoringResult, error) {
	text = stripFence(strings.TrimSpace(text))
	if text == "" {
		return model.ScoringResult{}, ErrEmptyResponse
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return model.ScoringResult{}, fmt.Errorf("decode model output: %w", err)
	}
	if raw.Score == nil || raw.Element == nil || raw.Interpretation == nil {
		return model.ScoringResult{}, errors.New("model output is missing score, element or interpretation")
	}
	if *raw.Score < model.MinScore || *raw.Score > model.MaxScore {
		return model.ScoringResult{}, fmt.Errorf("score %v outside [0, 10]", *raw.Score)
	}
	if strings.TrimSpace(*raw.Element) == "" {
		return model.ScoringResult{}, errors.New("empty element")
	}

	out := model.ScoringResult{
		Score:          *raw.Score,
		Element:        strings.TrimSpace(*raw.Element),
		Interpretation: strings.TrimSpace(*raw.Interpretation),
	}
	if raw.Compatibility != nil {
		out.Compatibility = strings.TrimSpace(*raw.Compatibility)
	}
	return out, nil
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
