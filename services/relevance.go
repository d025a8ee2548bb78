package services

import "strings"

// English finance vocabulary matched token-for-token. The multi-word entries
// are carried over from the production keyword list; a whitespace token can
// never equal them, so they are inert but kept for parity with the dataset.
var financeKeywords = map[string]bool{
	"account": true, "asset": true, "bank": true, "bond": true,
	"business": true, "capital": true, "cash": true, "credit": true,
	"debt": true, "economy": true, "finance": true, "fund": true,
	"insurance": true, "invest": true, "loan": true, "market": true,
	"money": true, "mortgage": true, "pay": true, "rate": true,
	"risk": true, "stock": true, "tax": true, "wealth": true,
	"apr": true, "kyc": true, "cdo": true, "reit": true,
	"roth": true, "ira": true, "401k": true, "liability": true,
	"income": true, "expense": true, "investing": true, "crypto": true,
	"scam": true, "scams": true, "tip": true, "tips": true,
	"define": true, "what is": true, "mlm": true, "blockchain": true,
	"nifty": true, "sip": true, "ipo": true, "eps": true,
	"pe": true, "gdp": true, "cpi": true, "sensex": true,
	"nifty 50": true,
}

// Hindi finance markers matched as substrings anywhere in the raw text
var financeHindiSubstrings = []string{
	"बचत", "निवेश", "ऋण", "घोटाला", "वित्तीय", "टिप",
}

// IsFinancialQuery guesses whether an utterance is about finance. It gates
// the generative fallback and the vague-query heuristic, never local
// retrieval.
func IsFinancialQuery(utterance string) bool {
	for _, token := range strings.Fields(strings.ToLower(utterance)) {
		if financeKeywords[token] {
			return true
		}
	}

	for _, marker := range financeHindiSubstrings {
		if strings.Contains(utterance, marker) {
			return true
		}
	}

	return false
}
