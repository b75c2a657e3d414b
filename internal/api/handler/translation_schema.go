package handler

import "time"

type translateRequest struct {
	Text           string `json:"text"           validate:"required,max=5000" example:"Dzień dobry"`
	TargetLanguage string `json:"targetLanguage" validate:"required"          example:"English"`
	// Save asks for the result to be written to the history log.
	Save   bool   `json:"save"`
	UserID string `json:"userId"`
}

type translateResponse struct {
	SourceLanguage string `json:"sourceLanguage"`
	TranslatedText string `json:"translatedText"`
}

type createTranslationRequest struct {
	OriginalText   string `json:"originalText"   validate:"required"`
	TranslatedText string `json:"translatedText" validate:"required"`
	SourceLanguage string `json:"sourceLanguage" validate:"required"`
	TargetLanguage string `json:"targetLanguage" validate:"required"`
	UserID         string `json:"userId"`
}

type translationResponse struct {
	ID             string    `json:"id"`
	OriginalText   string    `json:"originalText"`
	TranslatedText string    `json:"translatedText"`
	SourceLanguage string    `json:"sourceLanguage"`
	TargetLanguage string    `json:"targetLanguage"`
	Timestamp      time.Time `json:"timestamp"`
	UserID         string    `json:"userId,omitempty"`
}

type historyResponse struct {
	History []translationResponse `json:"history"`
}

type createTranslationResponse struct {
	Success     bool                `json:"success"`
	Translation translationResponse `json:"translation"`
}

type successResponse struct {
	Success bool `json:"success"`
}
