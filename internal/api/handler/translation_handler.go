package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/polyglot/translator/internal/core/domain"
	"github.com/polyglot/translator/internal/core/ports"
)

// HistoryRecorder is the interface the handler uses to save translations
// off the request path.
type HistoryRecorder interface {
	Enqueue(in ports.CreateTranslationInput)
}

type TranslationHandler struct {
	service  ports.TranslationService
	recorder HistoryRecorder
}

// NewTranslationHandler creates the handler. recorder may be nil, in which
// case the save flag is ignored.
func NewTranslationHandler(service ports.TranslationService, recorder HistoryRecorder) *TranslationHandler {
	return &TranslationHandler{service: service, recorder: recorder}
}

// Translate handles POST /api/translate.
//
// @Summary      Detect the language of a text and translate it
// @Tags         translate
// @Accept       json
// @Produce      json
// @Param        body  body      translateRequest  true  "Text and target language"
// @Success      200   {object}  translateResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/translate [post]
func (h *TranslationHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		if req.Text == "" || req.TargetLanguage == "" {
			return fmt.Errorf("%w: text and target language are required", domain.ErrValidation)
		}
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	res, err := h.service.Translate(c.Request().Context(), req.Text, req.TargetLanguage)
	if err != nil {
		return err
	}

	// A failed save is logged by the dispatcher and never fails the response.
	if req.Save && h.recorder != nil {
		h.recorder.Enqueue(ports.CreateTranslationInput{
			OriginalText:   req.Text,
			TranslatedText: res.TranslatedText,
			SourceLanguage: res.SourceLanguage,
			TargetLanguage: req.TargetLanguage,
			UserID:         ownerOrSession(c, req.UserID),
		})
	}

	return c.JSON(http.StatusOK, translateResponse{
		SourceLanguage: res.SourceLanguage,
		TranslatedText: res.TranslatedText,
	})
}
