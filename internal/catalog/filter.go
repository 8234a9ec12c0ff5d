package catalog

import (
	"slices"

	"github.com/maruel/showcase/internal/models"
)

// Engine applies filter specifications to case study collections.
type Engine struct {
	// Match compares impact tags. SubstringMatch is used when nil.
	Match TagMatcher
}

var defaultEngine = &Engine{Match: SubstringMatch}

// ApplyFilters filters studies with the default engine.
func ApplyFilters(studies []models.CaseStudy, spec models.FilterSpec) []models.CaseStudy {
	return defaultEngine.Apply(studies, spec)
}

// Apply returns the studies satisfying every constraint of spec, in input
// order. The input slice is never modified; the result is always a new slice.
func (e *Engine) Apply(studies []models.CaseStudy, spec models.FilterSpec) []models.CaseStudy {
	out := slices.Clone(studies)
	if out == nil {
		out = []models.CaseStudy{}
	}
	f := newFolder()
	if spec.BusinessModel != "" {
		want := f.fold(spec.BusinessModel)
		out = slices.DeleteFunc(out, func(s models.CaseStudy) bool {
			return f.fold(s.BusinessModel) != want
		})
	}
	if spec.Persona != "" {
		want := f.fold(spec.Persona)
		out = slices.DeleteFunc(out, func(s models.CaseStudy) bool {
			return f.fold(s.Persona) != want
		})
	}
	if len(spec.Impacts) != 0 {
		requested := f.foldAll(spec.Impacts)
		out = slices.DeleteFunc(out, func(s models.CaseStudy) bool {
			return !e.matchesAnyImpact(f.foldAll(s.GlossaryKeys.Impacts), requested)
		})
	}
	return out
}

// matchesAnyImpact reports whether at least one requested tag matches at
// least one of own. All tags are folded.
func (e *Engine) matchesAnyImpact(own, requested []string) bool {
	for _, r := range requested {
		if e.matchesImpact(own, r) {
			return true
		}
	}
	return false
}

func (e *Engine) matchesImpact(own []string, requested string) bool {
	match := e.Match
	if match == nil {
		match = SubstringMatch
	}
	for _, o := range own {
		if match(requested, o) {
			return true
		}
	}
	return false
}
