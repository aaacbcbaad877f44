// Package auth holds the session middleware. The session only ever
// stores the user id; the middleware resolves it into a full user record
// once per request so handlers never touch the session themselves.
package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/jmcnair/voterhub/database"
)

const (
	sessionUserKey  = "user_id"
	sessionFlashKey = "flash"

	contextUserKey = "user"
)

// LoadUser resolves the session's user id into the current user and
// stores it in the gin context. Anonymous requests pass through with no
// user set. A session pointing at a deleted user is cleared.
func LoadUser(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		id, ok := session.Get(sessionUserKey).(uint)
		if !ok {
			c.Next()
			return
		}

		user, err := db.GetUser(c.Request.Context(), id)
		if err != nil {
			session.Delete(sessionUserKey)
			_ = session.Save()
			c.Next()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireAuth redirects anonymous requests to the homepage with a flash
// message.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			Flash(c, "Access unauthorized.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		}
	}
}

// CurrentUser returns the user resolved by LoadUser, or nil for
// anonymous requests.
func CurrentUser(c *gin.Context) *database.User {
	user, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	return user.(*database.User)
}

// Login stores the user id in the session.
func Login(c *gin.Context, user *database.User) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	return session.Save()
}

// Logout clears the session.
func Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// Flash stores a one-shot message in the session.
func Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.Set(sessionFlashKey, message)
	_ = session.Save()
}

// PopFlash returns and clears the pending flash message, if any.
func PopFlash(c *gin.Context) string {
	session := sessions.Default(c)
	message, ok := session.Get(sessionFlashKey).(string)
	if !ok {
		return ""
	}
	session.Delete(sessionFlashKey)
	_ = session.Save()
	return message
}
