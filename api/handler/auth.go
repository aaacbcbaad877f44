package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jmcnair/voterhub/api/auth"
	"github.com/jmcnair/voterhub/api/models"
	"github.com/jmcnair/voterhub/database"
)

type signupForm struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}

type loginForm struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// SignupForm renders the signup page.
func (h *Handler) SignupForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flash": auth.PopFlash(c)})
}

// Signup registers a new user and logs them in. Duplicate emails and
// usernames re-present the form with a message rather than failing hard.
func (h *Handler) Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, username and a password of at least 6 characters are required"})
		return
	}

	user, err := h.db.SignupUser(c.Request.Context(), form.Email, form.Username, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "email or username already taken"})
		case errors.Is(err, database.ErrEmptyPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "password must not be empty"})
		default:
			log.Error("signup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		}
		return
	}

	if err := auth.Login(c, user); err != nil {
		log.Error("failed to save session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": models.ToUser(user)})
}

// LoginForm renders the login page.
func (h *Handler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flash": auth.PopFlash(c)})
}

// Login authenticates a user. The error response is the same whether the
// username was unknown or the password wrong.
func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := h.db.AuthenticateUser(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, database.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	if err := auth.Login(c, user); err != nil {
		log.Error("failed to save session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": models.ToUser(user)})
}

// Logout clears the session and redirects home.
func (h *Handler) Logout(c *gin.Context) {
	if err := auth.Logout(c); err != nil {
		log.Error("failed to clear session", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// DeleteAccount removes the current user and their likes, then clears
// the session.
func (h *Handler) DeleteAccount(c *gin.Context) {
	user := auth.CurrentUser(c)

	if err := h.db.DeleteUser(c.Request.Context(), user.ID); err != nil {
		log.Error("failed to delete user", "error", err, "user", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}

	if err := auth.Logout(c); err != nil {
		log.Error("failed to clear session", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}
