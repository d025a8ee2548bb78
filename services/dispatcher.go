package services

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"finlit-bot/models"
)

// Greeting and small-talk vocabularies. Greetings match as substrings,
// closings as the whole normalized query, small talk as a prefix.
var (
	greetingWords   = []string{"hello", "hi", "hey", "howdy", "sup", "namaste", "namaskar"}
	closingPhrases  = map[string]bool{"thank you": true, "thanks": true, "bye": true, "goodbye": true, "cheers": true, "start": true}
	smallTalkStarts = []string{"how are you", "good morning", "good evening"}
)

// Queries that ask for "more" without saying more of what
var vaguePhrases = map[string]bool{"more": true, "next": true, "again": true, "tell me more": true}

// Markers that make a query a tip request, and the words that resolve how
// many tips were asked for. Includes Hindi cardinals.
var (
	tipMarkers  = []string{"saving tip", "tip", "bachat", "sujhav"}
	numberWords = map[string]int{
		"two": 2, "three": 3, "four": 4, "5": 5, "five": 5,
		"multiple": 3, "several": 3, "many": 3,
		"do": 2, "teen": 3, "char": 4, "paanch": 5,
	}
)

// queryContext carries the per-request view of one utterance. It is built at
// the start of Respond and discarded at the end, never shared or persisted.
type queryContext struct {
	raw        string
	normalized string
	tokens     []string
	lang       models.Language
	financial  bool
}

// rule is one step of the dispatch ladder. apply returns the reply and true
// when the rule handled the query; a false return lets evaluation continue,
// which the multi-tip rule uses when no tip count resolves.
type rule struct {
	name  string
	apply func(ctx context.Context, q *queryContext) (string, bool)
}

// Responder turns one utterance into one reply. It is stateless per request;
// the store behind the retriever and the locale tables are the only shared
// data, both read-only.
type Responder struct {
	retriever *Retriever
	generator Generator
	rules     []rule
}

// NewResponder wires the dispatch ladder over the given retriever and
// fallback generator
func NewResponder(retriever *Retriever, generator Generator) *Responder {
	r := &Responder{
		retriever: retriever,
		generator: generator,
	}
	r.rules = []rule{
		{name: "language-selection", apply: r.languageSelection},
		{name: "greeting", apply: r.greeting},
		{name: "vague-query", apply: r.vagueQuery},
		{name: "multi-tip", apply: r.multiTip},
	}
	return r
}

// Respond executes the full decision ladder for a single message and always
// returns a non-empty reply
func (r *Responder) Respond(ctx context.Context, utterance string) string {
	q := &queryContext{
		raw:        utterance,
		normalized: strings.ToLower(strings.TrimSpace(utterance)),
	}
	q.tokens = strings.Fields(q.normalized)
	q.lang = DetectLanguage(utterance)
	q.financial = IsFinancialQuery(utterance)

	slog.Info("Handling utterance",
		"lang", q.lang,
		"financial", q.financial,
		"tokens", len(q.tokens),
	)

	for _, rule := range r.rules {
		if reply, handled := rule.apply(ctx, q); handled {
			slog.Info("Dispatch rule matched", "rule", rule.name)
			return reply
		}
	}

	return r.retrieveAndCompose(ctx, q)
}

// languageSelection handles an explicit menu choice. Neither branch runs any
// retrieval.
func (r *Responder) languageSelection(_ context.Context, q *queryContext) (string, bool) {
	switch q.normalized {
	case "1", "english", "e":
		return locales[models.LangEnglish].confirmation, true
	case "2", "hindi", "h":
		return locales[models.LangHindi].confirmation, true
	}
	return "", false
}

// greeting answers any greeting or sign-off with the bilingual language menu
func (r *Responder) greeting(_ context.Context, q *queryContext) (string, bool) {
	for _, g := range greetingWords {
		if strings.Contains(q.normalized, g) {
			return languageMenu, true
		}
	}
	if closingPhrases[q.normalized] {
		return languageMenu, true
	}
	for _, prefix := range smallTalkStarts {
		if strings.HasPrefix(q.normalized, prefix) {
			return languageMenu, true
		}
	}
	return "", false
}

// vagueQuery catches queries with no searchable topic: a known vague phrase,
// or at most two tokens with no finance signal
func (r *Responder) vagueQuery(_ context.Context, q *queryContext) (string, bool) {
	if vaguePhrases[q.normalized] || (len(q.tokens) <= 2 && !q.financial) {
		return locales[q.lang].vagueQuery, true
	}
	return "", false
}

// multiTip resolves "give me 3 saving tips" style requests. The first number
// word or numeral token > 1 wins; a tip-flavored query with no resolvable
// count falls through to single retrieval.
func (r *Responder) multiTip(_ context.Context, q *queryContext) (string, bool) {
	tipRequest := false
	for _, marker := range tipMarkers {
		if strings.Contains(q.normalized, marker) {
			tipRequest = true
			break
		}
	}
	if !tipRequest {
		return "", false
	}

	count := 1
	for _, token := range q.tokens {
		if n, ok := numberWords[token]; ok {
			count = n
			break
		}
		if n, err := strconv.Atoi(token); err == nil && n > 1 {
			count = n
			break
		}
	}

	if count <= 1 {
		return "", false
	}

	tips := r.retriever.SearchManyTips(count)
	return ComposeTips(tips, q.lang), true
}

// retrieveAndCompose is the tail of the ladder: primary retrieval, the
// generative fallback for unmatched in-domain queries, then composition or
// the out-of-scope refusal
func (r *Responder) retrieveAndCompose(ctx context.Context, q *queryContext) string {
	match := r.retriever.Search(q.raw)

	if match == nil && q.financial {
		text, err := r.generator.Explain(ctx, q.raw, q.lang)
		if err != nil {
			// Degrade visibly: the failure text becomes the reply body
			text = err.Error()
		}
		match = &models.Document{
			Type:      models.DocDefinition,
			SearchKey: q.raw,
			Content:   text,
		}
	}

	if match == nil {
		return locales[q.lang].outOfScope
	}

	if match.Type == models.DocDefinition {
		tip := r.retriever.SearchRelated(models.DocSavingTip)
		scam := r.retriever.SearchRelated(models.DocScamAlert)
		return ComposeDefinition(match, q.raw, q.lang, tip, scam)
	}

	return ComposeSingle(match, q.lang)
}
