// Handles listing and filtering case studies.

package handlers

import (
	"context"

	"github.com/maruel/showcase/internal/server/dto"
)

// CaseStudyHandler serves the case study catalog.
type CaseStudyHandler struct {
	svc *Services
}

// NewCaseStudyHandler creates a new case study handler.
func NewCaseStudyHandler(svc *Services) *CaseStudyHandler {
	return &CaseStudyHandler{svc: svc}
}

// ListAll returns every case study in dataset order. Query parameters, when
// present, narrow the list like Filter does.
func (h *CaseStudyHandler) ListAll(ctx context.Context, req *dto.ListCaseStudiesRequest) (*dto.CaseStudiesResponse, error) {
	db := h.svc.Store.Load(ctx)
	spec := req.FilterSpec()
	if spec.IsZero() {
		return &dto.CaseStudiesResponse{
			Success:     true,
			CaseStudies: db.CaseStudies,
			Total:       len(db.CaseStudies),
		}, nil
	}
	studies := engineOf(h.svc).Apply(db.CaseStudies, spec)
	return &dto.CaseStudiesResponse{
		Success:        true,
		CaseStudies:    studies,
		Total:          len(studies),
		FiltersApplied: &spec,
	}, nil
}

// Filter returns the case studies satisfying every constraint of the
// request.
func (h *CaseStudyHandler) Filter(ctx context.Context, req *dto.FilterCaseStudiesRequest) (*dto.CaseStudiesResponse, error) {
	db := h.svc.Store.Load(ctx)
	studies := engineOf(h.svc).Apply(db.CaseStudies, req.Filters)
	return &dto.CaseStudiesResponse{
		Success:        true,
		CaseStudies:    studies,
		Total:          len(studies),
		FiltersApplied: &req.Filters,
	}, nil
}
