package models

// Language identifies one of the two supported response languages
type Language string

const (
	LangEnglish Language = "english"
	LangHindi   Language = "hindi"
)

// DocType identifies which retrieval pool a document belongs to.
// The values double as display labels in composed replies.
type DocType string

const (
	DocDefinition DocType = "Definition"
	DocSavingTip  DocType = "Saving Tip"
	DocScamAlert  DocType = "Scam Alert"
)

// Document is a single retrievable knowledge item. The store is built once
// at startup and never mutated, so documents are shared across requests
// without locking.
type Document struct {
	Type         DocType
	SearchKey    string
	Content      string
	ContentHindi string // placeholder text when no translation exists
	Keywords     []string
}

// Body returns the document text for the requested language
func (d Document) Body(lang Language) string {
	if lang == LangHindi && d.ContentHindi != "" {
		return d.ContentHindi
	}
	return d.Content
}
