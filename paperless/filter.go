package paperless

// Document list selectors accepted by the search endpoint.
const (
	DocListDocs  = "docs"
	DocListTrash = "trash"
)

// SearchFilter is the parameter bundle for SearchDocuments. Its JSON keys
// are the wire format of the search endpoint; the service validates nothing,
// so neither does the client. Nullable fields are pointers so an unset field
// serializes as null rather than a zero value.
type SearchFilter struct {
	SearchQuery string  `json:"searchQuery"`
	Contractor  *string `json:"contractor"`
	Author      string  `json:"author"`
	Signed      *bool   `json:"signed"`
	DateFrom    *string `json:"dateFrom"`
	DateTo      *string `json:"dateTo"`
	DocList     string  `json:"docList"`
	Offset      int     `json:"offset"`
	Limit       int     `json:"limit"`
}

// NewSearchFilter returns a filter with the service defaults: all authors,
// the active document list, first page of 40 results.
func NewSearchFilter() *SearchFilter {
	return &SearchFilter{
		Author:  "all",
		DocList: DocListDocs,
		Limit:   40,
	}
}
