// README: Auth, profile, and language HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelgenie/internal/modules/account"
)

type AccountHandler struct {
	accounts *account.Service
}

func NewAccountHandler(accounts *account.Service) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	profile, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeAccountError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, profile)
}

// Register handles POST /api/auth/register.
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	profile, err := h.accounts.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeAccountError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, profile)
}

// Logout handles POST /api/auth/logout.
func (h *AccountHandler) Logout(c *gin.Context) {
	h.accounts.Logout()
	c.Status(http.StatusNoContent)
}

// Profile handles GET /api/profile.
func (h *AccountHandler) Profile(c *gin.Context) {
	profile, ok := h.accounts.CurrentUser()
	if !ok {
		writeError(c, http.StatusNotFound, "not logged in")
		return
	}
	writeJSON(c, http.StatusOK, profile)
}

type languageReq struct {
	Language string `json:"language"`
}

// GetLanguage handles GET /api/settings/language.
func (h *AccountHandler) GetLanguage(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"language": h.accounts.Language()})
}

// SetLanguage handles PUT /api/settings/language.
func (h *AccountHandler) SetLanguage(c *gin.Context) {
	var req languageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.accounts.SetLanguage(account.Language(req.Language)); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
