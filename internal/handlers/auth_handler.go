package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/food-ordering/internal/auth"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/httpresp"
	"github.com/BruksfildServices01/food-ordering/internal/logging"
	"github.com/BruksfildServices01/food-ordering/internal/usecase/account"
)

type AuthHandler struct {
	accounts *account.Service
	resolver *auth.Resolver
	cookie   SessionCookie
}

func NewAuthHandler(
	accounts *account.Service,
	resolver *auth.Resolver,
	cookie SessionCookie,
) *AuthHandler {
	return &AuthHandler{accounts: accounts, resolver: resolver, cookie: cookie}
}

// --------- Customers ---------

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req account.RegisterUserInput
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.accounts.RegisterUser(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "User registered successfully",
		"user_id": u.ID,
	})
}

func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req account.LoginInput
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.accounts.LoginUser(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.cookie.set(c, res.SessionID)
	httpresp.OK(c, gin.H{
		"message": "Login successful",
		"user":    res.User,
		"token":   res.Token,
	})
}

// --------- Staff ---------

func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req account.RegisterAdminInput
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.accounts.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":  "Admin registered successfully",
		"admin_id": a.ID,
	})
}

func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req account.LoginInput
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.accounts.LoginAdmin(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.cookie.set(c, res.SessionID)
	httpresp.OK(c, gin.H{
		"message": "Login successful",
		"admin":   res.Admin,
		"token":   res.Token,
	})
}

// --------- Shared ---------

// Logout always succeeds for the client; store failures are only logged.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.accounts.Logout(ctx, h.resolver.SessionID(c.Request)); err != nil {
		logging.FromContext(ctx).Warn("session delete failed", "error", err)
	}

	h.cookie.clear(c)
	httpresp.Message(c, "Logout successful")
}

// Session reports the identity behind the session cookie, ignoring any bearer token.
func (h *AuthHandler) Session(c *gin.Context) {
	id, ok, err := h.resolver.FromSession(c.Request)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"logged_in": false})
		return
	}

	body := gin.H{
		"logged_in": true,
		"user_id":   id.SubjectID,
		"user_type": id.Role,
		"username":  id.Username,
	}
	if id.AdminRole != "" {
		body["admin_role"] = id.AdminRole
	}
	c.JSON(http.StatusOK, body)
}
