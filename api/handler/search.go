package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jmcnair/voterhub/api/auth"
	"github.com/jmcnair/voterhub/api/models"
	"github.com/jmcnair/voterhub/congress"
	"github.com/jmcnair/voterhub/pagination"
)

// HouseRoster renders the house member roster.
func (h *Handler) HouseRoster(c *gin.Context) {
	h.roster(c, congress.ChamberHouse)
}

// SenateRoster renders the senate member roster.
func (h *Handler) SenateRoster(c *gin.Context) {
	h.roster(c, congress.ChamberSenate)
}

func (h *Handler) roster(c *gin.Context, chamber congress.Chamber) {
	members, err := h.congress.Members(c.Request.Context(), chamber, h.congressNumber)
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	liked := map[string]bool{}
	if user := auth.CurrentUser(c); user != nil {
		for _, m := range members {
			isLiked, err := h.db.IsLiked(c.Request.Context(), user.ID, m.ID)
			if err != nil {
				log.Error("failed to check like state", "error", err)
				break
			}
			liked[m.ID] = isLiked
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"chamber": chamber,
		"members": models.ToMemberSummaries(members, liked),
	})
}

// MemberDetail renders a member's profile with one page of their vote
// history.
func (h *Handler) MemberDetail(c *gin.Context) {
	memberID := c.Param("id")
	page := pagination.ParsePage(c.Query("page"))

	profile, err := h.congress.MemberProfile(c.Request.Context(), memberID)
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	votes, err := h.congress.MemberVotes(c.Request.Context(), memberID, pagination.Offset(page), pagination.PageSize)
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	pages := pagination.Pages(pagination.Total(page, len(votes.Votes)))
	c.JSON(http.StatusOK, gin.H{
		"member": models.ToMemberDetail(profile, votes.Votes, page, pages),
	})
}

// BillSearch renders one page of free-text bill search results. The
// query arrives in the search-form-input parameter.
func (h *Handler) BillSearch(c *gin.Context) {
	query := c.Query("search-form-input")
	page := pagination.ParsePage(c.Query("page"))

	result, err := h.congress.SearchBills(c.Request.Context(), query, pagination.Offset(page))
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	pages := pagination.Pages(pagination.Total(page, len(result.Bills)))
	c.JSON(http.StatusOK, gin.H{
		"results": models.ToBillSearchPage(query, result.Bills, page, pages),
	})
}

// BillDetail renders a bill or nomination. The path carries a compound
// id of the form <itemID>-<congress>; item ids starting with "p" are
// nominations. Every lookup failure renders the generic not-found page.
func (h *Handler) BillDetail(c *gin.Context) {
	itemID, congressNumber, ok := splitCompoundID(c.Param("id"))
	if !ok {
		h.NotFound(c)
		return
	}

	detail, err := h.congress.BillOrNomination(c.Request.Context(), congressNumber, itemID)
	if err != nil {
		h.NotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": models.ToBillDetail(detail)})
}

// splitCompoundID splits an id like "hr123-116" or "PN123-116" into the
// item id and the congress number.
func splitCompoundID(compound string) (string, int, bool) {
	i := strings.LastIndex(compound, "-")
	if i <= 0 || i == len(compound)-1 {
		return "", 0, false
	}
	congressNumber, err := strconv.Atoi(compound[i+1:])
	if err != nil {
		return "", 0, false
	}
	return compound[:i], congressNumber, true
}

func (h *Handler) upstreamError(c *gin.Context, err error) {
	log.Error("upstream request failed", "error", err)
	if errors.Is(err, congress.ErrMalformedResponse) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "unexpected response from the legislative API"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "the legislative API is unavailable"})
}
