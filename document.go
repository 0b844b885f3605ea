package regcheck

// DocumentType identifies a kind of corporate/legal document. It is a key
// into a Mapping that associates each type with its official checklist
// source.
type DocumentType string

// Candidate represents a document link discovered while scraping an
// official site. Summary is set only after the LLM relevance filter
// includes the candidate.
type Candidate struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary,omitempty"`
}

// Validate returns an error if the candidate contains invalid fields.
func (c *Candidate) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "candidate URL required")
	}
	return nil
}

// RedFlag is a compliance issue detected by the red-flag stage. Fields are
// persisted verbatim to the JSON and TSV reports.
type RedFlag struct {
	Issue        string `json:"issue"`
	LawReference string `json:"law_reference"`
	Snippet      string `json:"snippet"`
}

// Report is the structured output of the red-flag detection stage.
type Report struct {
	Summary  string    `json:"summary"`
	RedFlags []RedFlag `json:"red_flags"`
}

// ChecklistResult holds the outcome of the checklist discovery stage.
// OfficialURL is nil when the classified type has no mapping entry.
type ChecklistResult struct {
	OfficialURL *string     `json:"official_url"`
	Documents   []Candidate `json:"checklist_documents"`
}

// Result aggregates the outcome of one pipeline run. It is constructed
// once per uploaded document; nothing is persisted beyond the per-run
// report files and the rule vector store.
type Result struct {
	DocumentType  DocumentType `json:"identified_document_type"`
	Matched       bool         `json:"type_matched"`
	OfficialURL   *string      `json:"official_url"`
	Checklists    []Candidate  `json:"checklist_documents"`
	MissingItems  []string     `json:"missing_items"`
	Summary       string       `json:"summary"`
	RedFlags      []RedFlag    `json:"red_flags"`
	ReportPath    string       `json:"report_path,omitempty"`
	TSVPath       string       `json:"tsv_path,omitempty"`
	AnnotatedPath string       `json:"annotated_path,omitempty"`
}
