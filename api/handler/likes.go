package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jmcnair/voterhub/api/auth"
	"github.com/jmcnair/voterhub/database"
)

type likeForm struct {
	MemberID  string `form:"member-id" json:"member_id" binding:"required"`
	FirstName string `form:"first-name" json:"first_name"`
	LastName  string `form:"last-name" json:"last_name"`
}

// ToggleLike flips the like edge between the current user and a member.
// The member row is created from the submitted names the first time any
// user likes it.
func (h *Handler) ToggleLike(c *gin.Context) {
	user := auth.CurrentUser(c)

	var form likeForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "member-id is required"})
		return
	}

	liked, err := h.db.ToggleLike(c.Request.Context(), user.ID, database.GovMember{
		ID:        form.MemberID,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	})
	if err != nil {
		log.Error("failed to toggle like", "error", err, "user", user.ID, "member", form.MemberID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member_id": form.MemberID, "liked": liked})
}

// ToggleLikeByID flips the like edge for a member that is already cached
// locally, addressed by id in the path.
func (h *Handler) ToggleLikeByID(c *gin.Context) {
	user := auth.CurrentUser(c)
	memberID := c.Param("id")

	liked, err := h.db.ToggleLikeByID(c.Request.Context(), user.ID, memberID)
	if err != nil {
		if errors.Is(err, database.ErrMemberNotFound) {
			h.NotFound(c)
			return
		}
		log.Error("failed to toggle like", "error", err, "user", user.ID, "member", memberID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member_id": memberID, "liked": liked})
}
