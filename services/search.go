package services

import (
	"log/slog"
	"math/rand"
	"strings"

	"finlit-bot/models"
)

// scoreThreshold is the minimum score a document needs to count as a match
const scoreThreshold = 0.5

// Rand is the random source used for tie-breaking and sampling. Production
// uses the process-wide math/rand source; tests inject a seeded one.
type Rand interface {
	Intn(n int) int
	Perm(n int) []int
}

// stdRand delegates to the shared math/rand source, which is safe for
// concurrent use
type stdRand struct{}

func (stdRand) Intn(n int) int   { return rand.Intn(n) }
func (stdRand) Perm(n int) []int { return rand.Perm(n) }

// Retriever scores the document store against queries using a fixed additive
// heuristic. It holds no per-request state.
type Retriever struct {
	store *Store
	rnd   Rand
}

// NewRetriever creates a retriever over the given store. Pass a nil Rand to
// use the default source.
func NewRetriever(store *Store, rnd Rand) *Retriever {
	if rnd == nil {
		rnd = stdRand{}
	}
	return &Retriever{store: store, rnd: rnd}
}

// Search scores every document against the query and returns the best match,
// or nil when nothing clears the threshold. Ties at the running maximum are
// collected only once that maximum has itself cleared the threshold, and the
// winner is drawn from the tie set at random.
func (r *Retriever) Search(query string) *models.Document {
	queryLower := strings.ToLower(query)

	var topMatches []models.Document
	highest := 0.0

	for _, doc := range r.store.Documents() {
		score := scoreDocument(doc, queryLower)

		if score > highest {
			highest = score
			topMatches = []models.Document{doc}
		} else if score == highest && score >= scoreThreshold {
			topMatches = append(topMatches, doc)
		}
	}

	if highest < scoreThreshold || len(topMatches) == 0 {
		slog.Debug("No document cleared the score threshold",
			"query", query,
			"topScore", highest,
		)
		return nil
	}

	chosen := topMatches[r.rnd.Intn(len(topMatches))]

	slog.Info("Lexical search completed",
		"query", query,
		"topScore", highest,
		"tieSetSize", len(topMatches),
		"searchKey", chosen.SearchKey,
		"docType", chosen.Type,
	)

	return &chosen
}

// SearchRelated picks one random document of the given type, used to enrich
// definition replies. Returns nil when the pool is empty.
func (r *Retriever) SearchRelated(docType models.DocType) *models.Document {
	pool := r.store.ByType(docType)
	if len(pool) == 0 {
		return nil
	}
	doc := pool[r.rnd.Intn(len(pool))]
	return &doc
}

// SearchManyTips samples up to count distinct saving tips uniformly at
// random. The output order is the sampling order, not a ranking.
func (r *Retriever) SearchManyTips(count int) []models.Document {
	tips := r.store.ByType(models.DocSavingTip)
	if count > len(tips) {
		count = len(tips)
	}
	if count <= 0 {
		return nil
	}

	selected := make([]models.Document, 0, count)
	for _, idx := range r.rnd.Perm(len(tips))[:count] {
		selected = append(selected, tips[idx])
	}
	return selected
}

// scoreDocument applies the additive scoring heuristic for one document.
// The query is expected to be lowercased already.
func scoreDocument(doc models.Document, query string) float64 {
	score := 0.0

	// Intent-word bonus keyed on the document's pool
	switch doc.Type {
	case models.DocScamAlert:
		if strings.Contains(query, "scam") {
			score += 1.5
		}
	case models.DocSavingTip:
		if strings.Contains(query, "tip") || strings.Contains(query, "save") {
			score += 1.0
		}
	case models.DocDefinition:
		if strings.Contains(query, "what is") || strings.Contains(query, "define") || strings.Contains(query, "term") {
			score += 0.5
		}
	}

	if strings.Contains(query, strings.ToLower(doc.SearchKey)) {
		score += 1.0
	}

	for _, keyword := range doc.Keywords {
		if strings.Contains(query, keyword) {
			score += 0.5
		}
	}

	if strings.Contains(strings.ToLower(doc.Content), query) {
		score += 0.4
	}

	return score
}
