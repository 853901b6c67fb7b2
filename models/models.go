package models

// Metadata keys known to the navigator. Backends may send more.
const (
	MetaBranch         = "branch"
	MetaBranchName     = "branch_name"
	MetaDiscipline     = "discipline"
	MetaDisciplineName = "discipline_name"
	MetaDocumentNumber = "document_number"
	MetaRevision       = "revision"
	MetaFilename       = "filename"
	MetaDocumentType   = "document_type"
	MetaSource         = "source"
	MetaDocumentName   = "document_name"
	MetaSection        = "section"
	MetaRequirementID  = "requirement_id"
	MetaPageNumber     = "page_number"
)

type Result struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Content  string   `json:"content" yaml:"content"`
	Score    float64  `json:"score" yaml:"score"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Response is the envelope returned by the search endpoint.
type Response struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
	Query   string   `json:"query,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type SearchRequest struct {
	Query   string  `json:"query"`
	Filters Filters `json:"filters"`
}

type Document struct {
	ID       string   `json:"id"`
	Filename string   `json:"filename"`
	Status   string   `json:"status"`
	Metadata Metadata `json:"metadata"`
}

type DocumentsResponse struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total"`
	Error     string     `json:"error,omitempty"`
}

type HealthResponse struct {
	Status           string `json:"status"`
	BackendConnected bool   `json:"backend_connected"`
}
