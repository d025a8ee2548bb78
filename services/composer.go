package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	textlanguage "golang.org/x/text/language"

	"finlit-bot/models"
)

// languageMenu is always presented English-first so a first-time user can
// read it regardless of detected locale
const languageMenu = "Hello! I'm your **Financial Literacy Chatbot**.\n" +
	"Please choose your preferred language to proceed:\n" +
	"1. English (अंग्रेज़ी)\n" +
	"2. Hindi (हिंदी)\n" +
	"-------------------------------------\n" +
	"Or, start typing your financial question directly."

// localeStrings holds the fixed per-locale reply fragments. Initialized once
// at startup, read-only afterwards.
type localeStrings struct {
	confirmation    string
	vagueQuery      string
	outOfScope      string
	explainedHeader string
	tipHeader       string
	scamHeader      string
}

var locales = map[models.Language]localeStrings{
	models.LangEnglish: {
		confirmation:    "Hello! You have chosen English. I can help you with financial terms, saving tips, and scam alerts. What can I look up for you?",
		vagueQuery:      "I need a clearer topic to search! Please specify the term you want more information about (e.g., 'What is SIP?' or 'Give me a saving tip').",
		outOfScope:      "❌ I can only answer questions related to **Financial Literacy** (terms, tips, and scams). Please ask a financial query.",
		explainedHeader: "**📚 Financial Term Explained:**",
		tipHeader:       "\n***\n**💡 Related Saving Tip:**",
		scamHeader:      "\n***\n**🚨 Financial Scam Alert:**",
	},
	models.LangHindi: {
		confirmation:    "नमस्ते! आपने हिंदी भाषा चुनी है। मैं आपके वित्तीय शब्दों, बचत के सुझाव और घोटालों की चेतावनी में मदद कर सकता हूँ। आप क्या जानना चाहेंगे?",
		vagueQuery:      "मुझे खोजने के लिए एक स्पष्ट विषय चाहिए! कृपया उस शब्द को निर्दिष्ट करें जिसके बारे में आप अधिक जानकारी चाहते हैं।",
		outOfScope:      "❌ मैं केवल **वित्तीय साक्षरता** से संबंधित सवालों का जवाब दे सकता हूँ। कृपया कोई वित्तीय शब्द या सलाह पूछें।",
		explainedHeader: "**📚 वित्तीय शब्द की व्याख्या:**",
		tipHeader:       "\n***\n**💡 संबंधित बचत सुझाव:**",
		scamHeader:      "\n***\n**🚨 वित्तीय घोटाला चेतावनी:**",
	},
}

// ComposeDefinition renders a definition reply: localized header, bolded
// title, body, then independent enrichment with a random tip and scam alert.
// A match whose search key equals the raw utterance came from the fallback
// path, so its content is used verbatim and the title is the utterance
// itself (title-cased in the English locale only).
func ComposeDefinition(match *models.Document, utterance string, lang models.Language, tip, scam *models.Document) string {
	strs := locales[lang]
	fromFallback := match.SearchKey == utterance

	var title, body string
	if fromFallback {
		title = utterance
		if lang == models.LangEnglish {
			title = cases.Title(textlanguage.English).String(utterance)
		}
		body = match.Content
	} else {
		title = match.SearchKey
		body = match.Body(lang)
	}

	parts := []string{
		fmt.Sprintf("%s\n**%s**:\n%s", strs.explainedHeader, title, body),
	}

	if tip != nil {
		parts = append(parts, strs.tipHeader)
		parts = append(parts, fmt.Sprintf("**%s (%s):**\n%s", tip.SearchKey, tip.Type, tip.Body(lang)))
	}

	if scam != nil {
		parts = append(parts, strs.scamHeader)
		parts = append(parts, fmt.Sprintf("**%s (%s):**\n%s", scam.SearchKey, scam.Type, scam.Body(lang)))
	}

	return strings.Join(parts, "\n")
}

// ComposeSingle renders a saving-tip or scam-alert primary match. No
// enrichment applies on this path.
func ComposeSingle(match *models.Document, lang models.Language) string {
	return fmt.Sprintf("**%s (%s):**\n%s", match.SearchKey, match.Type, match.Body(lang))
}

// ComposeTips renders the numbered multi-tip listing in sampling order
func ComposeTips(tips []models.Document, lang models.Language) string {
	var b strings.Builder

	if lang == models.LangHindi {
		fmt.Fprintf(&b, "यहाँ %d लोकप्रिय बचत सुझाव दिए गए हैं:\n\n", len(tips))
	} else {
		fmt.Fprintf(&b, "Here are %d popular Saving Tips:\n\n", len(tips))
	}

	for i, tip := range tips {
		fmt.Fprintf(&b, "%d. **%s (%s):**\n", i+1, tip.SearchKey, tip.Type)
		fmt.Fprintf(&b, "   %s\n\n", tip.Body(lang))
	}

	return strings.TrimSpace(b.String())
}
