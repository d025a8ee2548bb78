package services

import (
	"strings"

	"finlit-bot/models"
)

// Transliterated Hindi words that show up in Latin-script messages
var hindiTranslitKeywords = map[string]bool{
	"namaste": true,
	"mujhe":   true,
	"hindi":   true,
	"bachat":  true,
	"nivesh":  true,
	"ghotala": true,
	"kya":     true,
	"kaise":   true,
	"aap":     true,
	"mera":    true,
	"kon":     true,
	"nahi":    true,
	"hai":     true,
	"batao":   true,
}

// DetectLanguage classifies an utterance as Hindi or English. Devanagari
// script wins outright; otherwise any exact transliterated-Hindi token marks
// the message as Hindi. No confidence score, no external model.
func DetectLanguage(utterance string) models.Language {
	for _, r := range utterance {
		if r >= 0x0900 && r <= 0x097F {
			return models.LangHindi
		}
	}

	for _, token := range strings.Fields(strings.ToLower(utterance)) {
		if hindiTranslitKeywords[token] {
			return models.LangHindi
		}
	}

	return models.LangEnglish
}
