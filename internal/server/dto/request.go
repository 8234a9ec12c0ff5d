package dto

import (
	"github.com/maruel/showcase/internal/models"
)

// --- Case studies ---

// ListCaseStudiesRequest is a request to list the case studies, optionally
// narrowed by query parameters.
type ListCaseStudiesRequest struct {
	BusinessModel string   `json:"-" query:"businessModel"`
	Persona       string   `json:"-" query:"persona"`
	Impacts       []string `json:"-" query:"impacts"`
}

// Validate is a no-op: every query parameter is optional.
func (r *ListCaseStudiesRequest) Validate() error {
	return nil
}

// FilterSpec returns the constraints carried by the query parameters.
func (r *ListCaseStudiesRequest) FilterSpec() models.FilterSpec {
	return models.FilterSpec{BusinessModel: r.BusinessModel, Persona: r.Persona, Impacts: r.Impacts}
}

// FilterCaseStudiesRequest is a request to filter case studies.
type FilterCaseStudiesRequest struct {
	Filters models.FilterSpec `json:"filters" jsonschema:"description=Constraints to apply; every field is optional"`
}

// Validate is a no-op: every filter field is optional.
func (r *FilterCaseStudiesRequest) Validate() error {
	return nil
}

// AnalyzeRequest asks the AI a question about the filtered case studies.
type AnalyzeRequest struct {
	UserPrompt        string            `json:"userPrompt" jsonschema:"required,description=Question to answer from the case study data"`
	SelectedModelType string            `json:"selectedModelType,omitempty" jsonschema:"enum=openai,enum=azure,default=openai,description=AI provider to use"`
	Filters           models.FilterSpec `json:"filters" jsonschema:"description=Constraints selecting the case studies sent to the AI"`
}

// Validate validates the analyze request fields.
func (r *AnalyzeRequest) Validate() error {
	if r.UserPrompt == "" {
		return MissingField("userPrompt")
	}
	return nil
}

// --- Related entities ---

// RelatedEntitiesRequest is a request to resolve the products and stack
// entries referenced by case studies.
type RelatedEntitiesRequest struct {
	CaseStudyIDs []string `json:"caseStudyIds" jsonschema:"description=Case study identifiers to expand"`
}

// Validate is a no-op: unknown identifiers are skipped when resolving.
func (r *RelatedEntitiesRequest) Validate() error {
	return nil
}

// --- Recommendations ---

// RecommendRequest is a request to rank case studies by relevance.
type RecommendRequest struct {
	BusinessModel string   `json:"businessModel,omitempty" jsonschema:"description=Preferred business model"`
	Persona       string   `json:"persona,omitempty" jsonschema:"description=Preferred persona"`
	Outcomes      []string `json:"outcomes,omitempty" jsonschema:"description=Desired outcomes matched against impact tags"`
}

// Validate is a no-op: every field is optional.
func (r *RecommendRequest) Validate() error {
	return nil
}

// RecommendInfoRequest is a request for the recommendation endpoint status.
type RecommendInfoRequest struct{}

// Validate is a no-op for RecommendInfoRequest.
func (r *RecommendInfoRequest) Validate() error {
	return nil
}

// --- Misc ---

// HealthRequest is a request to check the server health.
type HealthRequest struct{}

// Validate is a no-op for HealthRequest.
func (r *HealthRequest) Validate() error {
	return nil
}

// SchemaRequest is a request for the JSON Schema of a request type.
type SchemaRequest struct {
	Name string `path:"name"`
}

// Validate validates the schema request fields.
func (r *SchemaRequest) Validate() error {
	if r.Name == "" {
		return MissingField("name")
	}
	return nil
}
