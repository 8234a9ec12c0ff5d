package catalog

import (
	"testing"

	"github.com/maruel/showcase/internal/models"
)

func study(id, bm, persona string, impacts ...string) models.CaseStudy {
	return models.CaseStudy{
		ID:            id,
		BusinessModel: bm,
		Persona:       persona,
		GlossaryKeys:  models.GlossaryKeys{Impacts: impacts},
	}
}

func studyIDs(t *testing.T, studies []models.CaseStudy) []string {
	t.Helper()
	out := make([]string, 0, len(studies))
	for _, s := range studies {
		out = append(out, s.ID)
	}
	return out
}

// sampleStudies is the two-study dataset used across scenarios.
func sampleStudies() []models.CaseStudy {
	return []models.CaseStudy{
		study("cs1", "B2B", "IT", "Cost Reduction"),
		study("cs2", "B2C", "Marketing", "Revenue Growth"),
	}
}
