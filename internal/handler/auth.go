package handler

import (
	"context"  // provides context with cancellation for DB calls
	"errors"   // errors matches repository sentinels
	"net/http" // HTTP status codes and primitives
	"strings"  // string trimming utilities
	"time"     // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/tcprodojo/backend/internal/model"      // admin account model
	"github.com/tcprodojo/backend/internal/repository" // sentinel errors
	"github.com/tcprodojo/backend/internal/utils"      // hashing and token issuing
)

// AdminStore is the slice of the admin repository the auth handler needs.
type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)
}

// Auth bundles dependencies for the login and verify endpoints.
type Auth struct {
	secret string
	admins AdminStore
}

func NewAuth(secret string, admins AdminStore) *Auth {
	return &Auth{secret: secret, admins: admins}
}

// ----- DTOs -----

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles POST /api/admin/login: verify credentials and return a
// bearer token valid for eight hours.
func (h *Auth) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	admin, err := h.admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "incorrect username or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(admin.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "incorrect username or password"})
	}

	access, err := utils.NewAccessToken(h.secret, admin.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{AccessToken: access.Token, TokenType: "bearer"})
}

// Verify handles GET /api/admin/verify behind the authorization gate and
// echoes back the authenticated subject.
func (h *Auth) Verify(c echo.Context) error {
	username, _ := c.Get("username").(string)
	return c.JSON(http.StatusOK, echo.Map{"username": username, "authenticated": true})
}
