package context7

// DocumentState is the lifecycle state Context7 reports for a library's
// documentation set.
type DocumentState string

const (
	StateDelete    DocumentState = "delete"
	StateError     DocumentState = "error"
	StateFinalized DocumentState = "finalized"
	StateInitial   DocumentState = "initial"
)

// Library is one candidate returned by the library search endpoint.
type Library struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Branch         string        `json:"branch"`
	LastUpdateDate string        `json:"lastUpdateDate"`
	State          DocumentState `json:"state"`
	TotalTokens    float64       `json:"totalTokens"`
	TotalSnippets  float64       `json:"totalSnippets"`
	Stars          *float64      `json:"stars,omitempty"`
	TrustScore     *float64      `json:"trustScore,omitempty"`
	BenchmarkScore *float64      `json:"benchmarkScore,omitempty"`
	Versions       []string      `json:"versions"`
	Score          *float64      `json:"score,omitempty"`
	VIP            *bool         `json:"vip,omitempty"`
	Verified       *bool         `json:"verified,omitempty"`
}

// SearchResponse is the body of a library search.
type SearchResponse struct {
	Error   string    `json:"error,omitempty"`
	Results []Library `json:"results"`
}

// CodeListEntry is one code block variant within a snippet.
type CodeListEntry struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// CodeSnippet is an example code block with its surrounding metadata.
type CodeSnippet struct {
	CodeTitle       string          `json:"codeTitle"`
	CodeDescription string          `json:"codeDescription"`
	CodeLanguage    string          `json:"codeLanguage"`
	CodeTokens      float64         `json:"codeTokens"`
	CodeID          string          `json:"codeId"`
	PageTitle       string          `json:"pageTitle"`
	CodeList        []CodeListEntry `json:"codeList"`
}

// InfoSnippet is a prose excerpt from the documentation.
type InfoSnippet struct {
	PageID        string  `json:"pageId,omitempty"`
	Breadcrumb    string  `json:"breadcrumb,omitempty"`
	Content       string  `json:"content"`
	ContentTokens float64 `json:"contentTokens"`
}

// Rules are usage guidelines attached to a documentation set.
type Rules struct {
	Global      []string `json:"global,omitempty"`
	LibraryOwn  []string `json:"libraryOwn,omitempty"`
	LibraryTeam []string `json:"libraryTeam,omitempty"`
}

// DocsResponse is the structured body of a documentation query.
type DocsResponse struct {
	CodeSnippets []CodeSnippet `json:"codeSnippets"`
	InfoSnippets []InfoSnippet `json:"infoSnippets"`
	Rules        *Rules        `json:"rules,omitempty"`
}
