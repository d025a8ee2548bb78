package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"finlit-bot/models"
)

const sampleData = `{
  "financial_literacy_terms": [
    {
      "question": "SIP",
      "response": "A Systematic Investment Plan invests a fixed amount at regular intervals.",
      "response_hindi": "एसआईपी नियमित अंतराल पर एक निश्चित राशि निवेश करता है।",
      "keywords": ["sip", "Systematic"]
    },
    {
      "question": "EMI",
      "response": "The fixed monthly amount paid to repay a loan."
    }
  ],
  "financial_advice": {
    "saving_tips": [
      {
        "tip": "Pay Yourself First",
        "detail": "Put away part of your income on payday."
      }
    ],
    "scam_alerts": [
      {
        "scam_name": "Lottery Scam",
        "warning_sign": "You won a prize you never entered.",
        "prevention_tip": "Never pay fees to claim winnings."
      }
    ]
  }
}`

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "financial_data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStore(t *testing.T) {
	store, err := LoadStore(writeDataFile(t, sampleData))
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}

	if store.Len() != 4 {
		t.Fatalf("store.Len() = %d, want 4", store.Len())
	}

	defs := store.ByType(models.DocDefinition)
	if len(defs) != 2 {
		t.Fatalf("definitions = %d, want 2", len(defs))
	}

	sip := defs[0]
	if sip.SearchKey != "SIP" {
		t.Errorf("SearchKey = %q, want %q", sip.SearchKey, "SIP")
	}
	wantKeywords := []string{"sip", "sip", "systematic"}
	if len(sip.Keywords) != len(wantKeywords) {
		t.Fatalf("keywords = %v, want %v", sip.Keywords, wantKeywords)
	}
	for i, k := range wantKeywords {
		if sip.Keywords[i] != k {
			t.Errorf("keywords[%d] = %q, want %q", i, sip.Keywords[i], k)
		}
	}

	// Untranslated definition falls back to the placeholder
	emi := defs[1]
	if emi.ContentHindi != missingTranslationEN {
		t.Errorf("EMI ContentHindi = %q, want placeholder", emi.ContentHindi)
	}
}

func TestLoadStoreTipDocument(t *testing.T) {
	store, err := LoadStore(writeDataFile(t, sampleData))
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}

	tips := store.ByType(models.DocSavingTip)
	if len(tips) != 1 {
		t.Fatalf("tips = %d, want 1", len(tips))
	}

	tip := tips[0]
	if tip.Content != "Tip: Put away part of your income on payday." {
		t.Errorf("tip content = %q", tip.Content)
	}
	if tip.ContentHindi != "सुझाव: "+missingTranslationHI {
		t.Errorf("tip hindi content = %q", tip.ContentHindi)
	}

	// Title plus every detail token longer than three characters
	want := []string{"pay yourself first", "away", "part", "your", "income", "payday."}
	if len(tip.Keywords) != len(want) {
		t.Fatalf("tip keywords = %v, want %v", tip.Keywords, want)
	}
	for i, k := range want {
		if tip.Keywords[i] != k {
			t.Errorf("tip keywords[%d] = %q, want %q", i, tip.Keywords[i], k)
		}
	}
}

func TestLoadStoreScamDocument(t *testing.T) {
	store, err := LoadStore(writeDataFile(t, sampleData))
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}

	scams := store.ByType(models.DocScamAlert)
	if len(scams) != 1 {
		t.Fatalf("scams = %d, want 1", len(scams))
	}

	scam := scams[0]
	wantContent := "Warning: You won a prize you never entered. | Prevention: Never pay fees to claim winnings."
	if scam.Content != wantContent {
		t.Errorf("scam content = %q, want %q", scam.Content, wantContent)
	}
	if scam.Keywords[0] != "lottery scam" {
		t.Errorf("scam keywords[0] = %q, want %q", scam.Keywords[0], "lottery scam")
	}
}

func TestLoadStoreMissingFile(t *testing.T) {
	_, err := LoadStore(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var loadErr *DataLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %T, want *DataLoadError", err)
	}
}

func TestLoadStoreMalformedFile(t *testing.T) {
	_, err := LoadStore(writeDataFile(t, "{not json"))
	if err == nil {
		t.Fatal("expected error for malformed file")
	}

	var loadErr *DataLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %T, want *DataLoadError", err)
	}
}

func TestBundledDataFile(t *testing.T) {
	store, err := LoadStore("../financial_data.json")
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if store.Len() == 0 {
		t.Fatal("bundled dataset produced an empty store")
	}
	for _, docType := range []models.DocType{models.DocDefinition, models.DocSavingTip, models.DocScamAlert} {
		if len(store.ByType(docType)) == 0 {
			t.Errorf("bundled dataset has no %s documents", docType)
		}
	}
}
