package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/maruel/showcase/internal/catalog"
	"github.com/maruel/showcase/internal/models"
	"github.com/maruel/showcase/internal/prompt"
)

// Model selectors accepted by Analyze.
const (
	SelectorOpenAI = "openai"
	SelectorAzure  = "azure"
)

// User-visible answers returned instead of errors.
const (
	MsgNoMatch       = "No case studies match your selection. Please adjust your filters."
	MsgNoOpenAIKey   = "Server configuration error: No OpenAI API key configured."
	MsgPromptTooBig  = "The selected case studies are too large to analyze. Please narrow your filters."
	msgEmptyResponse = "Received an empty response from %s."
	msgStatusError   = "%s API Error (%d): %s"
	msgConnError     = "API Connection Error: Could not connect to the AI service. Error: %v"
	msgUnexpected    = "An unexpected server error occurred during AI analysis: %v"
)

// Analyst answers questions about the case studies matching a filter.
type Analyst struct {
	// OpenAI is used by default. Nil when not configured.
	OpenAI Completer
	// Azure is used when selected and configured. Nil when not configured.
	Azure Completer
	// Engine filters the case studies.
	Engine *catalog.Engine
	// Assembler builds the prompt.
	Assembler *prompt.Assembler
	// Timeout bounds a single upstream call. 0 means no limit.
	Timeout time.Duration
}

// NewAnalyst wires an Analyst from cfg.
func NewAnalyst(cfg *Config, maxPromptBytes int) *Analyst {
	return &Analyst{
		OpenAI:    NewOpenAI(cfg, nil),
		Azure:     NewAzure(cfg, nil),
		Engine:    &catalog.Engine{Match: catalog.SubstringMatch},
		Assembler: &prompt.Assembler{MaxBytes: maxPromptBytes},
		Timeout:   cfg.Timeout,
	}
}

// Analyze filters db with spec, asks the selected provider the question and
// returns its answer verbatim.
//
// Analyze never fails: missing data, missing credentials and upstream errors
// are all reported as explanatory text.
func (a *Analyst) Analyze(ctx context.Context, db *models.Database, question, selector string, spec models.FilterSpec) string {
	studies := a.engine().Apply(db.CaseStudies, spec)
	if len(studies) == 0 {
		return MsgNoMatch
	}
	assembler := a.Assembler
	if assembler == nil {
		assembler = &prompt.Assembler{}
	}
	p, err := assembler.Build(studies, db.Glossary, db.Products, question)
	if err != nil {
		if errors.Is(err, prompt.ErrTooLarge) {
			slog.WarnContext(ctx, "Prompt too large", "err", err, "case_studies", len(studies))
			return MsgPromptTooBig
		}
		slog.ErrorContext(ctx, "Failed to build prompt", "err", err)
		return fmt.Sprintf(msgUnexpected, err)
	}
	if p.CaseStudies < len(studies) {
		slog.WarnContext(ctx, "Prompt truncated", "kept", p.CaseStudies, "matched", len(studies))
	}

	c := a.pick(selector)
	if c == nil {
		return MsgNoOpenAIKey
	}
	slog.DebugContext(ctx, "Calling AI provider", "provider", c.Name(), "bytes", len(p.User))
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}
	answer, err := c.Complete(ctx, p.System, p.User)
	if err != nil {
		slog.ErrorContext(ctx, "AI provider call failed", "provider", c.Name(), "err", err)
		return describeError(c.Name(), err)
	}
	if answer == "" {
		return fmt.Sprintf(msgEmptyResponse, c.Name())
	}
	return answer
}

// pick returns Azure when selected and configured, OpenAI otherwise.
func (a *Analyst) pick(selector string) Completer {
	if selector == SelectorAzure && a.Azure != nil {
		return a.Azure
	}
	return a.OpenAI
}

func (a *Analyst) engine() *catalog.Engine {
	if a.Engine == nil {
		return &catalog.Engine{}
	}
	return a.Engine
}

// AzureConfigured reports whether the Azure provider is available.
func (a *Analyst) AzureConfigured() bool {
	return a.Azure != nil
}

func describeError(provider string, err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		msg := se.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return fmt.Sprintf(msgStatusError, provider, se.StatusCode, msg)
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return fmt.Sprintf(msgConnError, err)
	}
	return fmt.Sprintf(msgUnexpected, err)
}
