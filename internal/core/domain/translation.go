package domain

import "time"

// Translation is one entry of the translation history log.
type Translation struct {
	ID             string    `json:"id"`
	OriginalText   string    `json:"originalText"`
	TranslatedText string    `json:"translatedText"`
	SourceLanguage string    `json:"sourceLanguage"`
	TargetLanguage string    `json:"targetLanguage"`
	Timestamp      time.Time `json:"timestamp"`
	UserID         string    `json:"userId,omitempty"`
}

// TranslationResult is what the language model gateway produces for one request.
type TranslationResult struct {
	SourceLanguage string `json:"sourceLanguage"`
	TranslatedText string `json:"translatedText"`
}

// UnknownLanguage is reported when language detection yields nothing.
const UnknownLanguage = "Unknown"
