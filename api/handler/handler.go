package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jmcnair/voterhub/api/auth"
	"github.com/jmcnair/voterhub/api/models"
	"github.com/jmcnair/voterhub/congress"
	"github.com/jmcnair/voterhub/database"
)

// Handler holds the dependencies shared by all route handlers.
type Handler struct {
	db             *database.DB
	congress       *congress.Client
	congressNumber int
}

func New(db *database.DB, client *congress.Client, congressNumber int) *Handler {
	return &Handler{
		db:             db,
		congress:       client,
		congressNumber: congressNumber,
	}
}

// Home renders the homepage: anonymous visitors get a bare payload,
// authenticated users get their liked members.
func (h *Handler) Home(c *gin.Context) {
	home := models.Home{}

	if user := auth.CurrentUser(c); user != nil {
		home.User = models.ToUser(user)

		liked, err := h.db.LikedMembers(c.Request.Context(), user.ID)
		if err != nil {
			log.Error("failed to load liked members", "error", err)
		} else {
			home.LikedMembers = models.ToLikedMembers(liked)
		}
	}

	if flash := auth.PopFlash(c); flash != "" {
		c.JSON(http.StatusOK, gin.H{"home": home, "flash": flash})
		return
	}
	c.JSON(http.StatusOK, gin.H{"home": home})
}

// NotFound renders the generic not-found payload.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
}
