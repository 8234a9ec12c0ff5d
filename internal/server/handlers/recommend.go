// Handles relevance ranking of case studies.

package handlers

import (
	"context"

	"github.com/maruel/showcase/internal/catalog"
	"github.com/maruel/showcase/internal/server/dto"
)

const recommendInfoMessage = "Use POST to get recommendations"

// RecommendHandler ranks case studies against visitor criteria.
type RecommendHandler struct {
	svc *Services
	cfg *Config
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(svc *Services, cfg *Config) *RecommendHandler {
	return &RecommendHandler{svc: svc, cfg: cfg}
}

// Recommend scores every case study locally; no AI call is made.
func (h *RecommendHandler) Recommend(ctx context.Context, req *dto.RecommendRequest) (*dto.RecommendResponse, error) {
	db := h.svc.Store.Load(ctx)
	res := engineOf(h.svc).Recommend(db.CaseStudies, catalog.Criteria{
		BusinessModel: req.BusinessModel,
		Persona:       req.Persona,
		Outcomes:      req.Outcomes,
	}, h.cfg.Server.HighRelevanceScore)
	return &dto.RecommendResponse{
		Success: true,
		Data:    recommendationsToDTO(&res),
		UsingAI: false,
	}, nil
}

// Info describes the recommendation endpoint.
func (h *RecommendHandler) Info(ctx context.Context, req *dto.RecommendInfoRequest) (*dto.RecommendInfoResponse, error) {
	db := h.svc.Store.Load(ctx)
	return &dto.RecommendInfoResponse{
		Message:               recommendInfoMessage,
		AvailableCaseStudies:  len(db.CaseStudies),
		// Reports whether Analyze can reach Azure, which needs the deployment
		// name in addition to the key and endpoint.
		AzureOpenAIConfigured: h.svc.Analyst != nil && h.svc.Analyst.AzureConfigured(),
	}, nil
}
