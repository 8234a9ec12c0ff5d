package dto

import (
	"github.com/maruel/showcase/internal/models"
)

// CaseStudiesResponse lists case studies.
type CaseStudiesResponse struct {
	Success        bool               `json:"success"`
	CaseStudies    []models.CaseStudy `json:"case_studies"`
	Total          int                `json:"total"`
	FiltersApplied *models.FilterSpec `json:"filters_applied,omitempty"`
}

// AnalyzeResponse carries the AI answer, or an explanation of why there is
// none.
type AnalyzeResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	UsingAI  bool   `json:"usingAI"`
}

// RelatedEntitiesResponse lists the products and stack entries referenced by
// the requested case studies.
type RelatedEntitiesResponse struct {
	Success      bool                `json:"success"`
	Products     []models.Product    `json:"products"`
	Stack        []models.StackEntry `json:"stack"`
	CaseStudyIDs []string            `json:"case_study_ids"`
}

// Recommendation is one ranked case study.
type Recommendation struct {
	ID             string  `json:"id"`
	RelevanceScore float64 `json:"relevanceScore"`
	Reasoning      string  `json:"reasoning"`
}

// RecommendationsData is the payload of RecommendResponse.
type RecommendationsData struct {
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary"`
}

// RecommendResponse ranks case studies by relevance.
type RecommendResponse struct {
	Success bool                `json:"success"`
	Data    RecommendationsData `json:"data"`
	UsingAI bool                `json:"usingAI"`
}

// RecommendInfoResponse describes the recommendation endpoint.
type RecommendInfoResponse struct {
	Message               string `json:"message"`
	AvailableCaseStudies  int    `json:"availableCaseStudies"`
	AzureOpenAIConfigured bool   `json:"azureOpenAIConfigured"`
}

// HealthResponse is the response to a health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
