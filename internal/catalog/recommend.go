package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/maruel/showcase/internal/models"
)

// Scoring weights for Recommend.
const (
	baseScore          = 50
	businessModelBonus = 30
	bothModelBonus     = 20
	personaBonus       = 25
	outcomesBonus      = 25
)

// Criteria describes what a visitor is looking for.
type Criteria struct {
	BusinessModel string
	Persona       string
	Outcomes      []string
}

// Recommendation scores one case study against Criteria.
type Recommendation struct {
	ID             string  `json:"id"`
	RelevanceScore float64 `json:"relevanceScore"`
	Reasoning      string  `json:"reasoning"`
}

// Recommendations is the ranked result of Recommend.
type Recommendations struct {
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary"`
}

// Recommend ranks every study by relevance to c, highest first. Studies
// scoring strictly above highScore are counted in the summary.
func (e *Engine) Recommend(studies []models.CaseStudy, c Criteria, highScore float64) Recommendations {
	f := newFolder()
	folded := Criteria{
		BusinessModel: f.fold(c.BusinessModel),
		Persona:       f.fold(c.Persona),
		Outcomes:      f.foldAll(c.Outcomes),
	}
	recs := make([]Recommendation, 0, len(studies))
	for i := range studies {
		recs = append(recs, Recommendation{
			ID:             studies[i].ID,
			RelevanceScore: e.score(f, &studies[i], &folded),
			Reasoning:      reasoning(&c),
		})
	}
	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		return cmp.Compare(b.RelevanceScore, a.RelevanceScore)
	})
	high := 0
	for _, r := range recs {
		if r.RelevanceScore > highScore {
			high++
		}
	}
	return Recommendations{
		Recommendations: recs,
		Summary: fmt.Sprintf("Based on your requirements (%s business model, %s persona, focusing on %s), we've identified %d highly relevant case studies that demonstrate similar success patterns.",
			orDefault(c.BusinessModel, "any"), orDefault(c.Persona, "any"), orDefault(strings.Join(c.Outcomes, ", "), "general outcomes"), high),
	}
}

// score rates s against c, whose fields are already folded.
func (e *Engine) score(f *folder, s *models.CaseStudy, c *Criteria) float64 {
	score := float64(baseScore)
	if c.BusinessModel != "" {
		if f.fold(s.BusinessModel) == c.BusinessModel {
			score += businessModelBonus
		} else if s.BusinessModel == models.BusinessModelBoth {
			score += bothModelBonus
		}
	}
	if c.Persona != "" && f.fold(s.Persona) == c.Persona {
		score += personaBonus
	}
	if len(c.Outcomes) != 0 {
		own := f.foldAll(s.GlossaryKeys.Impacts)
		matched := 0
		for _, o := range c.Outcomes {
			if e.matchesImpact(own, o) {
				matched++
			}
		}
		score += float64(matched) / float64(len(c.Outcomes)) * outcomesBonus
	}
	return min(max(score, 0), 100)
}

func reasoning(c *Criteria) string {
	parts := []string{"Matches"}
	if c.BusinessModel != "" {
		parts = append(parts, "business model")
	}
	if c.Persona != "" {
		parts = append(parts, "persona")
	}
	if len(c.Outcomes) != 0 {
		parts = append(parts, "and desired outcomes")
	}
	return strings.Join(parts, " ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
