// Handles AI analysis of filtered case studies.

package handlers

import (
	"context"
	"log/slog"

	"github.com/maruel/showcase/internal/ai"
	"github.com/maruel/showcase/internal/server/dto"
	"github.com/maruel/showcase/internal/server/reqctx"
)

// AnalyzeHandler answers questions about case studies.
type AnalyzeHandler struct {
	svc *Services
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(svc *Services) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

// Analyze asks the selected AI provider the question over the case studies
// matching the filters. Provider failures are reported in the response text,
// never as an error.
func (h *AnalyzeHandler) Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	selector := req.SelectedModelType
	if selector == "" {
		selector = ai.SelectorOpenAI
	}
	slog.InfoContext(ctx, "Analyze", "req", reqctx.RequestID(ctx), "selector", selector, "filters", !req.Filters.IsZero())
	db := h.svc.Store.Load(ctx)
	answer := h.svc.Analyst.Analyze(ctx, db, req.UserPrompt, selector, req.Filters)
	return &dto.AnalyzeResponse{
		Success:  true,
		Response: answer,
		UsingAI:  true,
	}, nil
}
