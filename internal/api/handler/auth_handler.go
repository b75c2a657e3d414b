package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/polyglot/translator/internal/core/domain"
	"github.com/polyglot/translator/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Handle dispatches POST /api/auth on the "action" field.
//
// @Summary      Register, login, logout or verify a session
// @Description  register needs username, email, password; login needs email (email or username) and password; logout and verify need sessionId.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authRequest  true  "Auth action"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth [post]
func (h *AuthHandler) Handle(c echo.Context) error {
	// The body is read once; each action validates only the fields it needs.
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	switch req.Action {
	case actionRegister:
		return h.register(c, req)
	case actionLogin:
		return h.login(c, req)
	case actionLogout:
		return h.logout(c, req)
	case actionVerify:
		return h.verify(c, req)
	default:
		return domain.ErrInvalidAction
	}
}

func (h *AuthHandler) register(c echo.Context, req authRequest) error {
	if err := validate(c, &registerRequest{Username: req.Username, Email: req.Email, Password: req.Password}); err != nil {
		return err
	}

	res, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Success: true, User: &res.User, SessionID: res.SessionID})
}

func (h *AuthHandler) login(c echo.Context, req authRequest) error {
	if err := validate(c, &loginRequest{Email: req.Email, Password: req.Password}); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Success: true, User: &res.User, SessionID: res.SessionID})
}

func (h *AuthHandler) logout(c echo.Context, req authRequest) error {
	if err := validate(c, &sessionRequest{SessionID: req.SessionID}); err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), req.SessionID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Success: true})
}

func (h *AuthHandler) verify(c echo.Context, req authRequest) error {
	if err := validate(c, &sessionRequest{SessionID: req.SessionID}); err != nil {
		return err
	}

	user, err := h.authService.Verify(c.Request().Context(), req.SessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Success: true, User: user})
}

// validate runs the echo validator and tags failures as domain.ErrValidation.
func validate(c echo.Context, v any) error {
	if err := c.Validate(v); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	return nil
}
