package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

const (
	testCaseStudies = `[
  {"id":"cs1","title":"One","business_model":"B2B","persona":"Marketing","glossary_keys":{"impacts":["Revenue Growth"],"terms":[]},"product_ids":["p1","p2"],"stack_ids":["s1"]},
  {"id":"cs2","title":"Two","business_model":"B2C","persona":"IT","glossary_keys":{"impacts":["Cost Reduction"],"terms":[]},"product_ids":["p1"],"stack_ids":[]}
]`
	testProducts = `[{"id":"p1","name":"Product One","logo":"p1.svg","description":"first"},{"id":"p2","name":"Product Two","logo":"p2.svg","description":"second"}]`
	testStack    = `[{"id":"s1","name":"Stack One","logo":"s1.svg","vendor":"V","category":"C","type":"T","description":"d","primary_use":"u"}]`
	testGlossary = `[{"term":"CDP","definition":"Customer data platform"}]`
)

func ids(t *testing.T, s *Store) []string {
	t.Helper()
	db := s.Load(context.Background())
	var out []string
	for _, cs := range db.CaseStudies {
		out = append(out, cs.ID)
	}
	return out
}

func TestStore_Load(t *testing.T) {
	t.Run("split documents", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, caseStudiesFile, testCaseStudies)
		writeFile(t, dir, productsFile, testProducts)
		writeFile(t, dir, stackFile, testStack)
		writeFile(t, dir, glossaryFile, testGlossary)
		s := NewStore(dir)
		db := s.Load(context.Background())
		if diff := cmp.Diff([]string{"cs1", "cs2"}, ids(t, s)); diff != "" {
			t.Errorf("case studies mismatch (-want +got):\n%s", diff)
		}
		if len(db.Products) != 2 || len(db.Stack) != 1 || len(db.Glossary) != 1 {
			t.Errorf("got %d products, %d stack, %d glossary; want 2, 1, 1", len(db.Products), len(db.Stack), len(db.Glossary))
		}
		if p, ok := db.Product("p2"); !ok || p.Name != "Product Two" {
			t.Errorf("Product(p2) = %+v, %v", p, ok)
		}
	})

	t.Run("wrapped documents", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, caseStudiesFile, `{"version":1,"case_studies":`+testCaseStudies+`}`)
		writeFile(t, dir, productsFile, `{"items":`+testProducts+`}`)
		writeFile(t, dir, stackFile, `{"stack":`+testStack+`}`)
		db := NewStore(dir).Load(context.Background())
		if len(db.CaseStudies) != 2 || len(db.Products) != 2 || len(db.Stack) != 1 {
			t.Errorf("got %d case studies, %d products, %d stack; want 2, 2, 1", len(db.CaseStudies), len(db.Products), len(db.Stack))
		}
		if len(db.Glossary) != 0 || db.Glossary == nil {
			t.Errorf("Glossary = %v, want empty", db.Glossary)
		}
	})

	t.Run("single document", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, databaseFile, `{"case_studies":`+testCaseStudies+`,"products":`+testProducts+`,"stack":`+testStack+`,"glossary":`+testGlossary+`}`)
		// Ignored when database.json exists.
		writeFile(t, dir, caseStudiesFile, `not json`)
		db := NewStore(dir).Load(context.Background())
		if len(db.CaseStudies) != 2 || len(db.Glossary) != 1 {
			t.Errorf("got %d case studies, %d glossary; want 2, 1", len(db.CaseStudies), len(db.Glossary))
		}
	})

	t.Run("case study raw preserved", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, databaseFile, `{"case_studies":[{"id":"cs1", "title":"Kept"}]}`)
		db := NewStore(dir).Load(context.Background())
		out, err := json.Marshal(db.CaseStudies[0])
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if got := string(out); got != `{"id":"cs1","title":"Kept"}` {
			t.Errorf("Marshal() = %s, want %s", got, `{"id":"cs1","title":"Kept"}`)
		}
	})

	errTests := []struct {
		name  string
		files map[string]string
	}{
		{"missing directory content", nil},
		{"corrupt case studies", map[string]string{caseStudiesFile: `[{"id":`, productsFile: testProducts, stackFile: testStack}},
		{"missing products", map[string]string{caseStudiesFile: testCaseStudies, stackFile: testStack}},
		{"object without array", map[string]string{caseStudiesFile: testCaseStudies, productsFile: `{"a":1}`, stackFile: testStack}},
		{"scalar document", map[string]string{caseStudiesFile: testCaseStudies, productsFile: testProducts, stackFile: `42`}},
		{"corrupt single document", map[string]string{databaseFile: `{"case_studies":[`}},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}
			db := NewStore(dir).Load(context.Background())
			if db == nil {
				t.Fatal("Load() returned nil")
			}
			if !db.IsEmpty() {
				t.Errorf("Load() = %d case studies, want empty database", len(db.CaseStudies))
			}
			if db.CaseStudies == nil || db.Products == nil || db.Stack == nil || db.Glossary == nil {
				t.Error("Load() returned nil collections")
			}
		})
	}
}

func TestStore_Load_idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, databaseFile, `{"case_studies":`+testCaseStudies+`}`)
	s := NewStore(dir)
	first := s.Load(context.Background())
	// Later changes on disk are not observed.
	writeFile(t, dir, databaseFile, `{"case_studies":[]}`)
	second := s.Load(context.Background())
	if first != second {
		t.Error("Load() returned a different Database on second call")
	}
	if len(second.CaseStudies) != 2 {
		t.Errorf("len(CaseStudies) = %d, want 2", len(second.CaseStudies))
	}
}

func TestStore_Load_concurrent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, databaseFile, `{"case_studies":`+testCaseStudies+`}`)
	s := NewStore(dir)
	const n = 8
	results := make(chan any, n)
	for range n {
		go func() { results <- s.Load(context.Background()) }()
	}
	first := <-results
	for range n - 1 {
		if got := <-results; got != first {
			t.Fatal("concurrent Load() calls returned different databases")
		}
	}
}

func TestExtractArray(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		key     string
		want    string
		wantErr bool
	}{
		{"root array", `[1,2]`, "x", `[1,2]`, false},
		{"named member", `{"a":[1],"x":[2]}`, "x", `[2]`, false},
		{"first array member", `{"n":1,"a":[3],"b":[4]}`, "x", `[3]`, false},
		{"key with dot", `{"a.b":[5]}`, "a.b", `[5]`, false},
		{"no array", `{"n":1}`, "x", "", true},
		{"scalar", `"s"`, "x", "", true},
		{"invalid", `{`, "x", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractArray([]byte(tt.data), tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("extractArray() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("extractArray() = %q, want %q", got, tt.want)
			}
		})
	}
}
