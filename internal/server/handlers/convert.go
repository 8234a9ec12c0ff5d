package handlers

import (
	"github.com/maruel/showcase/internal/catalog"
	"github.com/maruel/showcase/internal/server/dto"
)

func engineOf(svc *Services) *catalog.Engine {
	if svc.Engine == nil {
		return &catalog.Engine{Match: catalog.SubstringMatch}
	}
	return svc.Engine
}

func recommendationsToDTO(r *catalog.Recommendations) dto.RecommendationsData {
	recs := make([]dto.Recommendation, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		recs[i] = dto.Recommendation{
			ID:             rec.ID,
			RelevanceScore: rec.RelevanceScore,
			Reasoning:      rec.Reasoning,
		}
	}
	return dto.RecommendationsData{
		Recommendations: recs,
		Summary:         r.Summary,
	}
}
