package catalog

import (
	"context"
	"log/slog"

	"github.com/maruel/showcase/internal/models"
)

// Related holds the products and stack entries referenced by a set of case
// studies.
type Related struct {
	Products []models.Product
	Stack    []models.StackEntry

	// MissingProducts and MissingStack list referenced identifiers that did
	// not resolve. They are diagnostics only.
	MissingProducts []string
	MissingStack    []string
}

// ResolveRelated expands case study identifiers into the products and stack
// entries they reference.
//
// Unknown case study identifiers are skipped. Each referenced identifier is
// resolved once, in order of first encounter; identifiers that do not resolve
// are recorded in the Missing lists and otherwise ignored.
func ResolveRelated(ctx context.Context, db *models.Database, caseStudyIDs []string) Related {
	r := Related{
		Products: []models.Product{},
		Stack:    []models.StackEntry{},
	}
	if len(caseStudyIDs) == 0 {
		return r
	}

	var productIDs, stackIDs []string
	seenProducts := map[string]bool{}
	seenStack := map[string]bool{}
	for _, id := range caseStudyIDs {
		cs, ok := db.CaseStudy(id)
		if !ok {
			slog.DebugContext(ctx, "Unknown case study", "id", id)
			continue
		}
		for _, p := range cs.ProductIDs {
			if !seenProducts[p] {
				seenProducts[p] = true
				productIDs = append(productIDs, p)
			}
		}
		for _, s := range cs.StackIDs {
			if !seenStack[s] {
				seenStack[s] = true
				stackIDs = append(stackIDs, s)
			}
		}
	}

	for _, id := range productIDs {
		if p, ok := db.Product(id); ok {
			r.Products = append(r.Products, p)
		} else {
			r.MissingProducts = append(r.MissingProducts, id)
		}
	}
	for _, id := range stackIDs {
		if s, ok := db.StackEntry(id); ok {
			r.Stack = append(r.Stack, s)
		} else {
			r.MissingStack = append(r.MissingStack, id)
		}
	}
	if len(r.MissingProducts) != 0 || len(r.MissingStack) != 0 {
		slog.InfoContext(ctx, "Unresolved related identifiers", "products", r.MissingProducts, "stack", r.MissingStack)
	}
	return r
}
