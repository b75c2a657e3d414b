package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/polyglot/translator/internal/core/domain"
	"github.com/polyglot/translator/internal/core/ports"
)

type HistoryHandler struct {
	service ports.HistoryService
}

func NewHistoryHandler(service ports.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// List handles GET /api/history.
//
// @Summary      List translation history, newest first
// @Description  With userId, the user's entries; without, the last 10 entries overall.
// @Tags         history
// @Produce      json
// @Param        userId  query     string  false  "Owner filter"
// @Success      200     {object}  historyResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/history [get]
func (h *HistoryHandler) List(c echo.Context) error {
	owner := ownerOrSession(c, c.QueryParam("userId"))

	items, err := h.service.List(c.Request().Context(), owner)
	if err != nil {
		return err
	}

	out := make([]translationResponse, len(items))
	for i, t := range items {
		out[i] = toTranslationResponse(t)
	}
	return c.JSON(http.StatusOK, historyResponse{History: out})
}

// Create handles POST /api/history.
//
// @Summary      Save a translation to the history log
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        body  body      createTranslationRequest  true  "Translation"
// @Success      200   {object}  createTranslationResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/history [post]
func (h *HistoryHandler) Create(c echo.Context) error {
	var req createTranslationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All translation fields are required")
	}

	t, err := h.service.Create(c.Request().Context(), ports.CreateTranslationInput{
		OriginalText:   req.OriginalText,
		TranslatedText: req.TranslatedText,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		UserID:         ownerOrSession(c, req.UserID),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, createTranslationResponse{
		Success:     true,
		Translation: toTranslationResponse(t),
	})
}

// Delete handles DELETE /api/history.
//
// @Summary      Delete a translation
// @Description  With userId, only the owner's entry is deleted.
// @Tags         history
// @Produce      json
// @Param        id      query     string  true   "Translation id"
// @Param        userId  query     string  false  "Owner"
// @Success      200     {object}  successResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/history [delete]
func (h *HistoryHandler) Delete(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Translation ID is required")
	}

	if err := h.service.Delete(c.Request().Context(), id, ownerOrSession(c, c.QueryParam("userId"))); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func toTranslationResponse(t *domain.Translation) translationResponse {
	return translationResponse{
		ID:             t.ID,
		OriginalText:   t.OriginalText,
		TranslatedText: t.TranslatedText,
		SourceLanguage: t.SourceLanguage,
		TargetLanguage: t.TargetLanguage,
		Timestamp:      t.Timestamp.UTC(),
		UserID:         t.UserID,
	}
}
