// Decodes the static JSON dataset documents.

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/maruel/showcase/internal/models"
	"github.com/tidwall/gjson"
)

// Document file names inside the dataset directory.
const (
	databaseFile    = "database.json"
	caseStudiesFile = "case_studies.json"
	productsFile    = "products.json"
	stackFile       = "stack.json"
	glossaryFile    = "glossary.json"
)

var errNoArray = errors.New("document holds no array")

// extractArray returns the raw JSON array held by a document.
//
// A document is either the array itself or an object wrapping it, in which
// case the member named key is preferred, then the first array-valued member.
func extractArray(data []byte, key string) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if root.IsArray() {
		return root.Raw, nil
	}
	if !root.IsObject() {
		return "", errNoArray
	}
	if v := root.Get(gjson.Escape(key)); v.IsArray() {
		return v.Raw, nil
	}
	raw := ""
	root.ForEach(func(_, value gjson.Result) bool {
		if value.IsArray() {
			raw = value.Raw
			return false
		}
		return true
	})
	if raw == "" {
		return "", errNoArray
	}
	return raw, nil
}

// readDocument reads path and decodes its array into a slice of T.
func readDocument[T any](path, key string) ([]T, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is built from the data directory flag
	if err != nil {
		return nil, err
	}
	return decodeDocument[T](data, key)
}

func decodeDocument[T any](data []byte, key string) ([]T, error) {
	raw, err := extractArray(data, key)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// databaseDocument is the single-file layout holding every dataset.
type databaseDocument struct {
	CaseStudies []models.CaseStudy     `json:"case_studies"`
	Products    []models.Product       `json:"products"`
	Stack       []models.StackEntry    `json:"stack"`
	Glossary    []models.GlossaryEntry `json:"glossary"`
}

// readDatabaseDocument reads the single-file layout.
func readDatabaseDocument(path string) (*models.Database, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is built from the data directory flag
	if err != nil {
		return nil, err
	}
	var doc databaseDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return models.NewDatabase(doc.CaseStudies, doc.Products, doc.Stack, doc.Glossary), nil
}
