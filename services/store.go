package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"finlit-bot/models"
)

const (
	missingTranslationEN = "Translation not available."
	missingTranslationHI = "अनुवाद उपलब्ध नहीं है।"
)

// TermRecord is a definition entry in the document source
type TermRecord struct {
	Question      string   `json:"question" bson:"question"`
	Response      string   `json:"response" bson:"response"`
	ResponseHindi string   `json:"response_hindi,omitempty" bson:"response_hindi,omitempty"`
	Keywords      []string `json:"keywords,omitempty" bson:"keywords,omitempty"`
}

// TipRecord is a saving-tip entry in the document source
type TipRecord struct {
	Tip         string `json:"tip" bson:"tip"`
	Detail      string `json:"detail" bson:"detail"`
	DetailHindi string `json:"detail_hindi,omitempty" bson:"detail_hindi,omitempty"`
}

// ScamRecord is a scam-alert entry in the document source
type ScamRecord struct {
	ScamName            string `json:"scam_name" bson:"scam_name"`
	WarningSign         string `json:"warning_sign" bson:"warning_sign"`
	PreventionTip       string `json:"prevention_tip" bson:"prevention_tip"`
	WarningSignHindi    string `json:"warning_sign_hindi,omitempty" bson:"warning_sign_hindi,omitempty"`
	PreventionTipHindi  string `json:"prevention_tip_hindi,omitempty" bson:"prevention_tip_hindi,omitempty"`
}

// dataFile mirrors the JSON layout of the bilingual dataset
type dataFile struct {
	Terms  []TermRecord `json:"financial_literacy_terms"`
	Advice struct {
		SavingTips []TipRecord  `json:"saving_tips"`
		ScamAlerts []ScamRecord `json:"scam_alerts"`
	} `json:"financial_advice"`
}

// Store is the immutable in-memory document collection. It is built once at
// startup and shared read-only across all requests.
type Store struct {
	docs []models.Document
}

// NewStore builds a store from already-parsed source records
func NewStore(terms []TermRecord, tips []TipRecord, scams []ScamRecord) *Store {
	docs := make([]models.Document, 0, len(terms)+len(tips)+len(scams))

	for _, t := range terms {
		keywords := []string{strings.ToLower(t.Question)}
		for _, k := range t.Keywords {
			keywords = append(keywords, strings.ToLower(k))
		}
		hindi := t.ResponseHindi
		if hindi == "" {
			hindi = missingTranslationEN
		}
		docs = append(docs, models.Document{
			Type:         models.DocDefinition,
			SearchKey:    t.Question,
			Content:      t.Response,
			ContentHindi: hindi,
			Keywords:     keywords,
		})
	}

	for _, t := range tips {
		keywords := []string{strings.ToLower(t.Tip)}
		keywords = append(keywords, longTokens(t.Detail)...)
		hindiDetail := t.DetailHindi
		if hindiDetail == "" {
			hindiDetail = missingTranslationHI
		}
		docs = append(docs, models.Document{
			Type:         models.DocSavingTip,
			SearchKey:    t.Tip,
			Content:      "Tip: " + t.Detail,
			ContentHindi: "सुझाव: " + hindiDetail,
			Keywords:     keywords,
		})
	}

	for _, s := range scams {
		content := fmt.Sprintf("Warning: %s | Prevention: %s", s.WarningSign, s.PreventionTip)
		warningHindi := s.WarningSignHindi
		if warningHindi == "" {
			warningHindi = missingTranslationHI
		}
		preventionHindi := s.PreventionTipHindi
		if preventionHindi == "" {
			preventionHindi = missingTranslationHI
		}
		keywords := []string{strings.ToLower(s.ScamName)}
		keywords = append(keywords, longTokens(content)...)
		docs = append(docs, models.Document{
			Type:         models.DocScamAlert,
			SearchKey:    s.ScamName,
			Content:      content,
			ContentHindi: fmt.Sprintf("चेतावनी: %s | रोकथाम: %s", warningHindi, preventionHindi),
			Keywords:     keywords,
		})
	}

	return &Store{docs: docs}
}

// NewEmptyStore returns a store with no documents, used when no source could
// be loaded
func NewEmptyStore() *Store {
	return &Store{}
}

// LoadStore reads the bilingual JSON dataset from disk and flattens it into
// searchable documents. A missing or malformed file yields a DataLoadError.
func LoadStore(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataLoadError{Source: path, Err: err}
	}

	var data dataFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &DataLoadError{Source: path, Err: err}
	}

	store := NewStore(data.Terms, data.Advice.SavingTips, data.Advice.ScamAlerts)

	slog.Info("Document store loaded",
		"source", path,
		"documents", store.Len(),
	)

	return store, nil
}

// Documents returns the full document list. Callers must not mutate it.
func (s *Store) Documents() []models.Document {
	return s.docs
}

// ByType returns all documents in one retrieval pool
func (s *Store) ByType(t models.DocType) []models.Document {
	var out []models.Document
	for _, d := range s.docs {
		if d.Type == t {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of loaded documents
func (s *Store) Len() int {
	return len(s.docs)
}

// longTokens extracts the lowercase tokens longer than three characters,
// used as match keywords for tips and scam alerts
func longTokens(text string) []string {
	var out []string
	for _, word := range strings.Fields(text) {
		if len(word) > 3 {
			out = append(out, strings.ToLower(word))
		}
	}
	return out
}
