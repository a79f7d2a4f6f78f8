package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vanshikachilkoti/Wordlookup-Dictionary/pkg/similarity"

	"github.com/gin-gonic/gin"
)

const maxFuzzyLimit = 25

type FuzzyHandler struct {
	suggester Suggester
}

func NewFuzzyHandler(suggester Suggester) *FuzzyHandler {
	return &FuzzyHandler{suggester: suggester}
}

// Suggest serves GET /fuzzy?q=&limit= as a bare JSON array of words.
// An empty query returns [] without touching the remote service, and a
// degraded suggester (missing token, remote failure) also yields [].
func (h *FuzzyHandler) Suggest(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, []string{})
		return
	}

	limit := similarity.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxFuzzyLimit {
		limit = maxFuzzyLimit
	}

	matches := h.suggester.Suggest(c.Request.Context(), query, limit)
	if matches == nil {
		matches = []string{}
	}
	c.JSON(http.StatusOK, matches)
}
