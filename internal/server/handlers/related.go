// Handles resolution of products and stack entries for case studies.

package handlers

import (
	"context"

	"github.com/maruel/showcase/internal/catalog"
	"github.com/maruel/showcase/internal/server/dto"
)

// RelatedHandler expands case studies into their products and stack.
type RelatedHandler struct {
	svc *Services
}

// NewRelatedHandler creates a new related entities handler.
func NewRelatedHandler(svc *Services) *RelatedHandler {
	return &RelatedHandler{svc: svc}
}

// RelatedEntities returns the distinct products and stack entries referenced
// by the requested case studies, in first-encounter order.
func (h *RelatedHandler) RelatedEntities(ctx context.Context, req *dto.RelatedEntitiesRequest) (*dto.RelatedEntitiesResponse, error) {
	db := h.svc.Store.Load(ctx)
	rel := catalog.ResolveRelated(ctx, db, req.CaseStudyIDs)
	ids := req.CaseStudyIDs
	if ids == nil {
		ids = []string{}
	}
	return &dto.RelatedEntitiesResponse{
		Success:      true,
		Products:     rel.Products,
		Stack:        rel.Stack,
		CaseStudyIDs: ids,
	}, nil
}
