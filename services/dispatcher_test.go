package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"finlit-bot/models"
)

// fakeGenerator records the fallback call and returns a canned definition
type fakeGenerator struct {
	text      string
	err       error
	calls     int
	utterance string
	lang      models.Language
}

func (f *fakeGenerator) Explain(_ context.Context, utterance string, lang models.Language) (string, error) {
	f.calls++
	f.utterance = utterance
	f.lang = lang
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func newTestResponder(gen Generator) *Responder {
	if gen == nil {
		gen = &fakeGenerator{text: "a canned definition"}
	}
	return NewResponder(seededRetriever(1), gen)
}

func TestRespondLanguageSelection(t *testing.T) {
	r := newTestResponder(nil)
	ctx := context.Background()

	english := locales[models.LangEnglish].confirmation
	hindi := locales[models.LangHindi].confirmation

	tests := []struct {
		utterance string
		want      string
	}{
		{"1", english},
		{"english", english},
		{"e", english},
		{"2", hindi},
		{"h", hindi},
		// "hindi" contains the greeting substring "hi" but the menu
		// choice is resolved first
		{"hindi", hindi},
		{"  Hindi  ", hindi},
	}

	for _, tt := range tests {
		if got := r.Respond(ctx, tt.utterance); got != tt.want {
			t.Errorf("Respond(%q) = %q, want %q", tt.utterance, got, tt.want)
		}
	}
}

func TestRespondGreeting(t *testing.T) {
	r := newTestResponder(nil)
	ctx := context.Background()

	for _, utterance := range []string{
		"hello",
		"Hey there",
		"namaste",
		"thanks",
		"bye",
		"start",
		"how are you doing today",
	} {
		if got := r.Respond(ctx, utterance); got != languageMenu {
			t.Errorf("Respond(%q) = %q, want the language menu", utterance, got)
		}
	}
}

func TestRespondVagueQuery(t *testing.T) {
	r := newTestResponder(nil)
	ctx := context.Background()

	for _, utterance := range []string{"more", "tell me more", "next", "ok great"} {
		if got := r.Respond(ctx, utterance); got != locales[models.LangEnglish].vagueQuery {
			t.Errorf("Respond(%q) = %q, want the vague-query reply", utterance, got)
		}
	}

	// Two tokens with a finance signal is not vague; it reaches retrieval
	got := r.Respond(ctx, "sip details")
	if got == locales[models.LangEnglish].vagueQuery {
		t.Errorf("Respond(%q) returned the vague-query reply", "sip details")
	}
}

func TestRespondMultiTip(t *testing.T) {
	r := newTestResponder(nil)
	ctx := context.Background()

	got := r.Respond(ctx, "give me two saving tips")
	if !strings.HasPrefix(got, "Here are 2 popular Saving Tips:") {
		t.Fatalf("reply = %q, want the two-tip listing", got)
	}
	if !strings.Contains(got, "1. **") || !strings.Contains(got, "2. **") {
		t.Errorf("reply is not numbered: %q", got)
	}
}

func TestRespondMultiTipHindi(t *testing.T) {
	r := newTestResponder(nil)

	got := r.Respond(context.Background(), "mujhe do bachat tips batao")
	if !strings.HasPrefix(got, "यहाँ 2 लोकप्रिय बचत सुझाव दिए गए हैं:") {
		t.Fatalf("reply = %q, want the Hindi two-tip listing", got)
	}
}

func TestRespondMultiTipCountClamped(t *testing.T) {
	r := newTestResponder(nil)

	// The store holds two tips, so a request for five lists them all
	got := r.Respond(context.Background(), "give me 5 saving tips")
	if !strings.HasPrefix(got, "Here are 2 popular Saving Tips:") {
		t.Fatalf("reply = %q, want the clamped two-tip listing", got)
	}
}

func TestRespondTipWithoutCountFallsThrough(t *testing.T) {
	r := newTestResponder(nil)

	// No resolvable count, so the query goes through single retrieval
	got := r.Respond(context.Background(), "give me a saving tip")
	if strings.Contains(got, "popular Saving Tips") {
		t.Fatalf("reply = %q, want a single-tip reply", got)
	}
	if !strings.Contains(got, "(Saving Tip):") {
		t.Errorf("reply = %q, want a single saving tip", got)
	}
}

func TestRespondDefinitionWithEnrichment(t *testing.T) {
	gen := &fakeGenerator{text: "unused"}
	r := newTestResponder(gen)

	got := r.Respond(context.Background(), "What is SIP?")

	for _, want := range []string{
		locales[models.LangEnglish].explainedHeader,
		"**SIP**:",
		"A Systematic Investment Plan",
		locales[models.LangEnglish].tipHeader,
		locales[models.LangEnglish].scamHeader,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("reply missing %q:\n%s", want, got)
		}
	}

	if gen.calls != 0 {
		t.Errorf("generator called %d times for a matched query", gen.calls)
	}
}

func TestRespondGenerativeFallback(t *testing.T) {
	gen := &fakeGenerator{text: "A protocol event that halves mining rewards."}
	r := newTestResponder(gen)

	got := r.Respond(context.Background(), "blockchain halving schedule")

	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}
	if gen.utterance != "blockchain halving schedule" {
		t.Errorf("generator received %q", gen.utterance)
	}
	if gen.lang != models.LangEnglish {
		t.Errorf("generator lang = %q", gen.lang)
	}

	// Fallback replies title-case the raw utterance in the English locale
	if !strings.Contains(got, "**Blockchain Halving Schedule**:") {
		t.Errorf("reply missing the title-cased heading:\n%s", got)
	}
	if !strings.Contains(got, gen.text) {
		t.Errorf("reply missing the generated body:\n%s", got)
	}
	if !strings.Contains(got, locales[models.LangEnglish].explainedHeader) {
		t.Errorf("reply missing the definition header:\n%s", got)
	}
}

func TestRespondFallbackErrorBecomesReply(t *testing.T) {
	gen := UnavailableGenerator{Reason: errors.New("client not configured")}
	r := newTestResponder(gen)

	got := r.Respond(context.Background(), "blockchain halving schedule")

	if !strings.Contains(got, "A Gemini API error occurred: client not configured") {
		t.Errorf("reply = %q, want the generation error text as the body", got)
	}
	if !strings.Contains(got, locales[models.LangEnglish].explainedHeader) {
		t.Errorf("reply = %q, want the definition framing around the error", got)
	}
}

func TestRespondOutOfScope(t *testing.T) {
	gen := &fakeGenerator{text: "unused"}
	r := newTestResponder(gen)
	ctx := context.Background()

	got := r.Respond(ctx, "who won the cricket match yesterday")
	if got != locales[models.LangEnglish].outOfScope {
		t.Errorf("reply = %q, want the English refusal", got)
	}

	got = r.Respond(ctx, "आज का मौसम बताओ ज़रा")
	if got != locales[models.LangHindi].outOfScope {
		t.Errorf("reply = %q, want the Hindi refusal", got)
	}

	if gen.calls != 0 {
		t.Errorf("generator called %d times for out-of-scope queries", gen.calls)
	}
}

func TestRespondIsDeterministicPerSeed(t *testing.T) {
	const query = "what is emi"

	build := func() *Responder {
		return NewResponder(
			NewRetriever(searchFixture(), rand.New(rand.NewSource(42))),
			&fakeGenerator{text: "unused"},
		)
	}

	first := build().Respond(context.Background(), query)
	for i := 0; i < 3; i++ {
		if again := build().Respond(context.Background(), query); again != first {
			t.Fatalf("same seed produced different replies:\n%s\n---\n%s", again, first)
		}
	}
}
