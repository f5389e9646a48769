// Package pipeline composes the extraction stages into the single public
// entry point: light normalization, format classification, format-specific
// normalization, language detection, extractor dispatch, extraction, and
// validation. One invocation is a pure function over its input; there is no
// shared mutable state, so invocations are safe to run concurrently.
package pipeline

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/invoice-pipeline/internal/common"
	"github.com/joseph-ayodele/invoice-pipeline/internal/entity"
	"github.com/joseph-ayodele/invoice-pipeline/internal/extract"
	"github.com/joseph-ayodele/invoice-pipeline/internal/format"
	"github.com/joseph-ayodele/invoice-pipeline/internal/language"
	"github.com/joseph-ayodele/invoice-pipeline/internal/normalize"
	"github.com/joseph-ayodele/invoice-pipeline/internal/validate"
)

// Options controls per-invocation behavior. Debug attaches ordered stage
// diagnostics to the returned record instead of relying on any global
// logging side channel.
type Options struct {
	Debug bool
}

// Pipeline runs the staged extraction sequence. Construct once, share
// freely.
type Pipeline struct {
	logger    *slog.Logger
	cfg       *common.Config
	validator *validate.Validator
}

func New(logger *slog.Logger, cfg *common.Config) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = common.LoadConfig()
	}
	v := validate.New(validate.Config{
		Tolerance:       decimal.NewFromFloat(cfg.Scoring.Tolerance),
		MinorFloor:      decimal.NewFromFloat(cfg.Scoring.MinorFloor),
		CriticalPenalty: cfg.Scoring.CriticalPenalty,
		HighPenalty:     cfg.Scoring.HighPenalty,
		WarningPenalty:  cfg.Scoring.WarningPenalty,
	})
	return &Pipeline{logger: logger, cfg: cfg, validator: v}
}

// Parse runs the full pipeline over raw invoice text. It returns nil only
// for empty input; every other input yields a best-effort record, possibly
// with many nil fields and a low validation score. It never panics.
func (p *Pipeline) Parse(raw string, opts Options) *entity.InvoiceRecord {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	// PIPELINE_DEBUG forces diagnostics on for every invocation
	opts.Debug = opts.Debug || p.cfg.Debug
	id := uuid.New()
	var diag []string
	note := func(f string, args ...any) {
		if opts.Debug {
			diag = append(diag, fmt.Sprintf(f, args...))
		}
	}

	light := normalize.Light(raw)
	p.logger.Debug("pipeline.normalize.light", "invocation_id", id, "in_bytes", len(raw), "out_bytes", len(light))

	tag := format.Classify(light)
	note("format=%s", tag)
	p.logger.Debug("pipeline.format.classify", "invocation_id", id, "format", string(tag))

	normalized := normalize.ForFormat(light, tag)
	p.logger.Debug("pipeline.normalize.format", "invocation_id", id, "out_bytes", len(normalized))

	det := language.Detect(normalized)
	note("language=%s confidence=%.2f evidence=%s", det.Language, det.Confidence, det.Evidence)
	p.logger.Debug("pipeline.language.detect", "invocation_id", id,
		"language", det.Language, "confidence", det.Confidence, "evidence", det.Evidence)

	code := det.Language
	if det.Confidence < p.cfg.Language.MinConfidence {
		code = entity.LanguageUnknown
	}
	ex := extract.ForLanguage(code)
	note("extractor=%s", ex.Language())

	rec := ex.Extract(normalized)
	rec.LanguageDetection = det
	rec.Validation = p.validator.Validate(rec)
	note("score=%d valid=%t errors=%d warnings=%d",
		rec.Validation.Score, rec.Validation.IsValid, len(rec.Validation.Errors), len(rec.Validation.Warnings))
	if opts.Debug {
		rec.Diagnostics = diag
	}

	p.logger.Info("pipeline.parse.done", "invocation_id", id,
		"extractor", ex.Language(),
		"items", len(rec.Items),
		"score", rec.Validation.Score,
		"valid", rec.Validation.IsValid,
	)
	return rec
}

// ParseRawText runs Parse over an upstream text-extraction result, logging
// the source metadata that the bare text cannot carry. A zero ByteLen is
// filled in from the text itself.
func (p *Pipeline) ParseRawText(rt entity.RawText, opts Options) *entity.InvoiceRecord {
	if rt.ByteLen == 0 {
		rt.ByteLen = len(rt.Text)
	}
	p.logger.Debug("pipeline.input", "byte_len", rt.ByteLen, "pages", rt.Pages)
	return p.Parse(rt.Text, opts)
}

// ParserResult pairs one extractor's output with any panic recovered while
// running it. Used only by diagnostic tooling.
type ParserResult struct {
	Record *entity.InvoiceRecord
	Err    error
}

// TestAllParsers runs every registered extractor over the same normalized
// text, regardless of detected language. Diagnostic use only.
func (p *Pipeline) TestAllParsers(raw string) map[string]ParserResult {
	out := make(map[string]ParserResult, len(extract.Available()))
	light := normalize.Light(raw)
	normalized := normalize.ForFormat(light, format.Classify(light))
	for code, factory := range extract.Available() {
		out[code] = p.runOne(factory, normalized)
	}
	return out
}

func (p *Pipeline) runOne(factory extract.Factory, text string) (res ParserResult) {
	defer func() {
		if r := recover(); r != nil {
			res = ParserResult{Err: common.WrapError(common.ErrInternal,
				fmt.Sprintf("extractor panicked: %v", r))}
		}
	}()
	rec := factory().Extract(text)
	rec.Validation = p.validator.Validate(rec)
	return ParserResult{Record: rec}
}

// AvailableParsers exposes the extractor registry for diagnostic tooling.
func AvailableParsers() map[string]extract.Factory {
	return extract.Available()
}

var defaultPipeline = sync.OnceValue(func() *Pipeline {
	return New(nil, nil)
})

// ParseInvoice is the package-level entry point over a lazily built default
// pipeline. opts may be nil.
func ParseInvoice(raw string, opts *Options) *entity.InvoiceRecord {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	return defaultPipeline().Parse(raw, o)
}
