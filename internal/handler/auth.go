package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/onmovie/internal/middleware"
	"github.com/user/onmovie/internal/model"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=32"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// issueSession writes the JWT cookie and mirrors the user into the cookie
// session.
func (h *Handler) issueSession(c *gin.Context, user *model.User) error {
	token, err := middleware.GenerateToken(user.ID, user.Email, user.Username, user.Role, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		return err
	}
	c.SetCookie("token", token, int(h.Config.JWTExpiry.Seconds()), "/", "", false, true)

	session := sessions.Default(c)
	session.Set("userinfo", model.SessionUser{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	})
	return session.Save()
}

// Register creates an account and logs it in.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid registration payload: "+err.Error())
		return
	}

	existing, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if existing != nil {
		fail(c, http.StatusConflict, "email already registered")
		return
	}

	user, err := h.Repos.User.Create(req.Email, req.Username, req.Password)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.issueSession(c, user); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, Envelope{Result: user})
}

// Login verifies credentials and issues the auth cookie.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid login payload: "+err.Error())
		return
	}

	user, err := h.Repos.User.FindByEmail(req.Email)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if user == nil || !h.Repos.User.CheckPassword(user, req.Password) {
		fail(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := h.issueSession(c, user); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, Envelope{Result: user})
}

// Logout clears the auth cookie and the session.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)

	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()

	ok(c, Envelope{Message: "logged out"})
}

// Me returns the authenticated account.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.Repos.User.FindByID(middleware.GetUserID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if user == nil {
		fail(c, http.StatusNotFound, "user not found")
		return
	}
	ok(c, Envelope{Result: user})
}
