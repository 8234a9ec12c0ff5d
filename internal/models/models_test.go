package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCaseStudy_UnmarshalJSON(t *testing.T) {
	t.Run("keeps descriptive fields", func(t *testing.T) {
		src := `{"id":"cs1","title":"Acme","business_model":"B2B","persona":"Marketing",` +
			`"glossary_keys":{"impacts":["Revenue Growth"],"terms":["CDP"]},` +
			`"product_ids":["p1"],"stack_ids":["s1"],"stats":[{"value":"30%"}]}`
		var cs CaseStudy
		if err := json.Unmarshal([]byte(src), &cs); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if cs.ID != "cs1" {
			t.Errorf("ID = %q, want %q", cs.ID, "cs1")
		}
		want := GlossaryKeys{Impacts: []string{"Revenue Growth"}, Terms: []string{"CDP"}}
		if diff := cmp.Diff(want, cs.GlossaryKeys); diff != "" {
			t.Errorf("GlossaryKeys mismatch (-want +got):\n%s", diff)
		}
		out, err := json.Marshal(cs)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(out) != src {
			t.Errorf("Marshal() = %s, want %s", out, src)
		}
	})

	t.Run("null glossary keys", func(t *testing.T) {
		var cs CaseStudy
		if err := json.Unmarshal([]byte(`{"id":"cs2","glossary_keys":null}`), &cs); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if cs.GlossaryKeys.Impacts != nil {
			t.Errorf("Impacts = %v, want nil", cs.GlossaryKeys.Impacts)
		}
	})

	t.Run("not an object", func(t *testing.T) {
		for _, src := range []string{`[]`, `"cs"`, `42`} {
			var cs CaseStudy
			if err := json.Unmarshal([]byte(src), &cs); err == nil {
				t.Errorf("Unmarshal(%s) succeeded, want error", src)
			}
		}
	})
}

func TestCaseStudy_MarshalJSON_constructed(t *testing.T) {
	cs := CaseStudy{ID: "cs1", BusinessModel: "B2C"}
	out, err := json.Marshal(cs)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"id":"cs1","business_model":"B2C","persona":"","glossary_keys":{"impacts":[],"terms":[]}}`
	if string(out) != want {
		t.Errorf("Marshal() = %s, want %s", out, want)
	}
}

func TestFilterSpec_IsZero(t *testing.T) {
	tests := []struct {
		name string
		spec FilterSpec
		want bool
	}{
		{"empty", FilterSpec{}, true},
		{"empty impacts", FilterSpec{Impacts: []string{}}, true},
		{"business model", FilterSpec{BusinessModel: "B2B"}, false},
		{"persona", FilterSpec{Persona: "IT"}, false},
		{"impacts", FilterSpec{Impacts: []string{"Revenue"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewDatabase(t *testing.T) {
	t.Run("nil collections", func(t *testing.T) {
		db := EmptyDatabase()
		if db.CaseStudies == nil || db.Products == nil || db.Stack == nil || db.Glossary == nil {
			t.Fatal("EmptyDatabase() has nil collections")
		}
		if !db.IsEmpty() {
			t.Error("IsEmpty() = false, want true")
		}
		out, err := json.Marshal(db)
		if err != nil {
			t.Fatal(err)
		}
		if want := `{"case_studies":[],"products":[],"stack":[],"glossary":[]}`; string(out) != want {
			t.Errorf("Marshal() = %s, want %s", out, want)
		}
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		db := NewDatabase(
			[]CaseStudy{{ID: "cs1", Persona: "first"}, {ID: "cs1", Persona: "second"}},
			[]Product{{ID: "p1", Name: "One"}, {ID: "p1", Name: "Other"}},
			[]StackEntry{{ID: "s1", Name: "Stack"}},
			nil,
		)
		cs, ok := db.CaseStudy("cs1")
		if !ok || cs.Persona != "first" {
			t.Errorf("CaseStudy(cs1) = %+v, %v; want persona %q", cs, ok, "first")
		}
		p, ok := db.Product("p1")
		if !ok || p.Name != "One" {
			t.Errorf("Product(p1) = %+v, %v; want name %q", p, ok, "One")
		}
		if _, ok := db.StackEntry("s1"); !ok {
			t.Error("StackEntry(s1) not found")
		}
		if _, ok := db.StackEntry("s2"); ok {
			t.Error("StackEntry(s2) found, want missing")
		}
		if diff := cmp.Diff([]string{"case_study:cs1", "product:p1"}, db.Duplicates()); diff != "" {
			t.Errorf("Duplicates() mismatch (-want +got):\n%s", diff)
		}
		if len(db.CaseStudies) != 2 {
			t.Errorf("len(CaseStudies) = %d, want 2", len(db.CaseStudies))
		}
	})
}
