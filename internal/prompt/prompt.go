// Package prompt assembles the text sent to the AI collaborator.
package prompt

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/maruel/showcase/internal/models"
)

//go:embed system.tmpl
var systemMessage string

//go:embed user.tmpl
var userTemplateSrc string

var userTemplate = template.Must(template.New("user").Parse(userTemplateSrc))

// ErrTooLarge is returned when not even a single case study fits within the
// configured size limit.
var ErrTooLarge = errors.New("prompt exceeds size limit")

// Prompt is an assembled request for the AI collaborator.
type Prompt struct {
	// System constrains the model to answer only from the supplied data.
	System string
	// User carries the serialized data and the question.
	User string
	// CaseStudies is the number of case studies included in User.
	CaseStudies int
}

// String returns the prompt as a single block, system instruction first.
func (p Prompt) String() string {
	return p.System + "\n\n" + p.User
}

// Assembler builds prompts.
type Assembler struct {
	// MaxBytes caps the size of the user message. 0 means unbounded.
	MaxBytes int
}

// Build serializes the case studies, glossary and products with the question.
//
// When MaxBytes is set and the payload is too large, trailing case studies
// are dropped until it fits. ErrTooLarge is returned if none fit.
func (a *Assembler) Build(caseStudies []models.CaseStudy, glossary []models.GlossaryEntry, products []models.Product, question string) (Prompt, error) {
	n := len(caseStudies)
	for {
		user, err := render(caseStudies[:n], glossary, products, question)
		if err != nil {
			return Prompt{}, err
		}
		if a.MaxBytes <= 0 || len(user) <= a.MaxBytes {
			return Prompt{System: strings.TrimSpace(systemMessage), User: user, CaseStudies: n}, nil
		}
		if n <= 1 {
			return Prompt{}, fmt.Errorf("%w: %d bytes > %d", ErrTooLarge, len(user), a.MaxBytes)
		}
		n--
	}
}

// Build assembles a prompt without a size limit.
func Build(caseStudies []models.CaseStudy, glossary []models.GlossaryEntry, products []models.Product, question string) (Prompt, error) {
	return (&Assembler{}).Build(caseStudies, glossary, products, question)
}

// payload is the data block embedded in the user message.
type payload struct {
	RelevantCaseStudies []models.CaseStudy     `json:"relevant_case_studies"`
	FullGlossary        []models.GlossaryEntry `json:"full_glossary"`
	FullProductsList    []models.Product       `json:"full_products_list"`
}

func render(caseStudies []models.CaseStudy, glossary []models.GlossaryEntry, products []models.Product, question string) (string, error) {
	p := payload{
		RelevantCaseStudies: caseStudies,
		FullGlossary:        glossary,
		FullProductsList:    products,
	}
	if p.RelevantCaseStudies == nil {
		p.RelevantCaseStudies = []models.CaseStudy{}
	}
	if p.FullGlossary == nil {
		p.FullGlossary = []models.GlossaryEntry{}
	}
	if p.FullProductsList == nil {
		p.FullProductsList = []models.Product{}
	}
	var data bytes.Buffer
	enc := json.NewEncoder(&data)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", fmt.Errorf("failed to encode prompt data: %w", err)
	}
	var out bytes.Buffer
	err := userTemplate.Execute(&out, struct {
		Data     string
		Question string
	}{
		Data:     strings.TrimSuffix(data.String(), "\n"),
		Question: question,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return strings.TrimSuffix(out.String(), "\n"), nil
}
