// Package models defines the core data structures used throughout the application.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// BusinessModelBoth marks a case study relevant to both B2B and B2C.
const BusinessModelBoth = "Both"

var errCaseStudyNotObject = errors.New("case study must be a JSON object")

// GlossaryKeys holds the free-text tags attached to a case study.
type GlossaryKeys struct {
	Impacts []string `json:"impacts"`
	Terms   []string `json:"terms"`
}

// CaseStudy describes a customer's use of the product suite.
//
// Only the fields needed for filtering and relation resolution are decoded.
// The original JSON object is retained so that descriptive fields (title,
// overview, stats, testimonial, ...) are re-serialized untouched.
type CaseStudy struct {
	ID            string
	BusinessModel string
	Persona       string
	GlossaryKeys  GlossaryKeys
	ProductIDs    []string
	StackIDs      []string

	raw json.RawMessage
}

// caseStudyFields is the decoded subset of a case study document.
type caseStudyFields struct {
	ID            string        `json:"id"`
	BusinessModel string        `json:"business_model"`
	Persona       string        `json:"persona"`
	GlossaryKeys  *GlossaryKeys `json:"glossary_keys"`
	ProductIDs    []string      `json:"product_ids,omitempty"`
	StackIDs      []string      `json:"stack_ids,omitempty"`
}

// UnmarshalJSON decodes the known fields and keeps the source document.
func (c *CaseStudy) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errCaseStudyNotObject
	}
	var f caseStudyFields
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return err
	}
	*c = CaseStudy{
		ID:            f.ID,
		BusinessModel: f.BusinessModel,
		Persona:       f.Persona,
		ProductIDs:    f.ProductIDs,
		StackIDs:      f.StackIDs,
		raw:           append(json.RawMessage(nil), trimmed...),
	}
	if f.GlossaryKeys != nil {
		c.GlossaryKeys = *f.GlossaryKeys
	}
	return nil
}

// MarshalJSON returns the source document when the case study was decoded
// from JSON, or the known fields otherwise.
func (c CaseStudy) MarshalJSON() ([]byte, error) {
	if len(c.raw) != 0 {
		return c.raw, nil
	}
	gk := c.GlossaryKeys
	if gk.Impacts == nil {
		gk.Impacts = []string{}
	}
	if gk.Terms == nil {
		gk.Terms = []string{}
	}
	return json.Marshal(caseStudyFields{
		ID:            c.ID,
		BusinessModel: c.BusinessModel,
		Persona:       c.Persona,
		GlossaryKeys:  &gk,
		ProductIDs:    c.ProductIDs,
		StackIDs:      c.StackIDs,
	})
}

// Product is a product of the suite referenced by case studies.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	Video       string `json:"video,omitempty"`
}

// StackEntry is a technology used alongside the products.
type StackEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Vendor      string `json:"vendor"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Description string `json:"description"`
	PrimaryUse  string `json:"primary_use"`
}

// GlossaryEntry is an opaque glossary document, forwarded as-is to the AI
// collaborator.
type GlossaryEntry = json.RawMessage

// FilterSpec narrows a case study collection. Empty fields are no-ops.
type FilterSpec struct {
	BusinessModel string   `json:"businessModel,omitempty" jsonschema:"description=Business model to match case-insensitively: B2B or B2C or Both"`
	Persona       string   `json:"persona,omitempty" jsonschema:"description=Persona to match case-insensitively such as Marketing or IT"`
	Impacts       []string `json:"impacts,omitempty" jsonschema:"description=Impact tags; a study matches when any requested tag overlaps one of its own"`
}

// IsZero reports whether the spec carries no constraint.
func (f *FilterSpec) IsZero() bool {
	return f.BusinessModel == "" && f.Persona == "" && len(f.Impacts) == 0
}
