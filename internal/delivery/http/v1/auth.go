package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/event-planner/internal/services"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
)

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email,max=255"`
	Password string `json:"password" form:"password" binding:"required,min=6,max=255"`
}

// bindCredentials reads the login form and pairs it with the client
// fingerprint. It aborts the request on failure.
func (h *handlerImpl) bindCredentials(c *gin.Context) (services.LoginParams, bool) {
	var req loginRequest
	err := c.ShouldBind(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind credentials")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return services.LoginParams{}, false
	}

	fingerprint, ok := h.fingerprint(c)
	if !ok {
		return services.LoginParams{}, false
	}
	return services.LoginParams{
		Email:       req.Email,
		Password:    req.Password,
		Fingerprint: fingerprint,
	}, true
}

func (h *handlerImpl) fingerprint(c *gin.Context) (string, bool) {
	fingerprint, err := generateFingerprint(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to generate fingerprint")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return "", false
	}
	return fingerprint, true
}

func abortAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrUserPasswordMismatch),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrSessionExpired):
		abort(c, newUnauthorizedError(err.Error()))
	case errors.Is(err, services.ErrUserAlreadyExists):
		abort(c, newConflictError(err.Error()))
	default:
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	params, ok := h.bindCredentials(c)
	if !ok {
		return
	}

	result, err := h.auth.Login(c, params)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to login")
		abortAuthError(c, err)
		return
	}

	setTokenCookies(c, result)
	c.Status(http.StatusOK)
}

func (h *handlerImpl) HandleRegister(c *gin.Context) {
	params, ok := h.bindCredentials(c)
	if !ok {
		return
	}

	result, err := h.auth.Register(c, params)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to register user")
		abortAuthError(c, err)
		return
	}

	setTokenCookies(c, result)
	c.Status(http.StatusCreated)
}

func (h *handlerImpl) HandleRefresh(c *gin.Context) {
	h.refresh(c)
	if c.IsAborted() {
		return
	}

	c.Status(http.StatusOK)
}

// refresh rotates the session from the refresh token cookie. On success the
// new cookies are set and the new access token is stored in the context.
func (h *handlerImpl) refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get refresh token cookie")
		abort(c, newBadRequestError(errMandatoryCookieNotFound.Error()))
		return
	}

	fingerprint, ok := h.fingerprint(c)
	if !ok {
		return
	}

	result, err := h.auth.Refresh(c, services.RefreshParams{
		RefreshToken: refreshToken,
		Fingerprint:  fingerprint,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to refresh session")
		abortAuthError(c, err)
		return
	}

	setTokenCookies(c, result)
	c.Set(accessTokenCtxKey, result.AccessToken)
}

func (h *handlerImpl) HandleLogout(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	err := h.auth.Logout(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to logout")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	clearCookie(c, accessTokenCookie)
	clearCookie(c, refreshTokenCookie)

	c.Status(http.StatusNoContent)
}

func generateFingerprint(c *gin.Context) (string, error) {
	fingerprintBytes, err := json.Marshal(map[string]string{
		"client_ip":  c.ClientIP(),
		"user_agent": c.Request.UserAgent(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal json: %w", err)
	}
	return string(fingerprintBytes), nil
}

func getStringFromContext(c *gin.Context, key string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}

func setTokenCookies(c *gin.Context, result *services.LoginResult) {
	// The access token cookie stays readable by client scripts, which send it
	// back in the Authorization header.
	setCookie(c, accessTokenCookie, result.AccessToken, result.AccessTokenExpiresAt, false)
	setCookie(c, refreshTokenCookie, result.RefreshToken, result.RefreshTokenExpiresAt, true)
}

func setCookie(c *gin.Context, name, value string, expiresAt time.Time, httpOnly bool) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(name, value, maxAge, "/", "", false, httpOnly)
}

func clearCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", false, false)
}
