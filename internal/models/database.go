package models

// Database is the immutable aggregate of all datasets. It is built once by
// the loader and only read afterwards.
type Database struct {
	CaseStudies []CaseStudy     `json:"case_studies"`
	Products    []Product       `json:"products"`
	Stack       []StackEntry    `json:"stack"`
	Glossary    []GlossaryEntry `json:"glossary"`

	caseStudyIdx map[string]int
	productIdx   map[string]int
	stackIdx     map[string]int
	duplicates   []string
}

// NewDatabase builds a Database and its identifier indexes. Nil collections
// are replaced by empty ones. On duplicate identifiers the first occurrence
// wins; the duplicates are reported by Duplicates.
func NewDatabase(caseStudies []CaseStudy, products []Product, stack []StackEntry, glossary []GlossaryEntry) *Database {
	if caseStudies == nil {
		caseStudies = []CaseStudy{}
	}
	if products == nil {
		products = []Product{}
	}
	if stack == nil {
		stack = []StackEntry{}
	}
	if glossary == nil {
		glossary = []GlossaryEntry{}
	}
	d := &Database{
		CaseStudies:  caseStudies,
		Products:     products,
		Stack:        stack,
		Glossary:     glossary,
		caseStudyIdx: make(map[string]int, len(caseStudies)),
		productIdx:   make(map[string]int, len(products)),
		stackIdx:     make(map[string]int, len(stack)),
	}
	for i := range caseStudies {
		d.index(d.caseStudyIdx, "case_study", caseStudies[i].ID, i)
	}
	for i := range products {
		d.index(d.productIdx, "product", products[i].ID, i)
	}
	for i := range stack {
		d.index(d.stackIdx, "stack", stack[i].ID, i)
	}
	return d
}

// EmptyDatabase returns a well-formed Database with no data.
func EmptyDatabase() *Database {
	return NewDatabase(nil, nil, nil, nil)
}

func (d *Database) index(idx map[string]int, kind, id string, i int) {
	if _, ok := idx[id]; ok {
		d.duplicates = append(d.duplicates, kind+":"+id)
		return
	}
	idx[id] = i
}

// IsEmpty reports whether no dataset holds any entry.
func (d *Database) IsEmpty() bool {
	return len(d.CaseStudies) == 0 && len(d.Products) == 0 && len(d.Stack) == 0 && len(d.Glossary) == 0
}

// Duplicates lists "kind:id" for every identifier seen more than once.
func (d *Database) Duplicates() []string {
	return d.duplicates
}

// CaseStudy looks up a case study by identifier.
func (d *Database) CaseStudy(id string) (CaseStudy, bool) {
	i, ok := d.caseStudyIdx[id]
	if !ok {
		return CaseStudy{}, false
	}
	return d.CaseStudies[i], true
}

// Product looks up a product by identifier.
func (d *Database) Product(id string) (Product, bool) {
	i, ok := d.productIdx[id]
	if !ok {
		return Product{}, false
	}
	return d.Products[i], true
}

// StackEntry looks up a technology stack entry by identifier.
func (d *Database) StackEntry(id string) (StackEntry, bool) {
	i, ok := d.stackIdx[id]
	if !ok {
		return StackEntry{}, false
	}
	return d.Stack[i], true
}
