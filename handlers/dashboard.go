package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	history HistoryStore
	users   UserStore
	log     *slog.Logger
}

func NewDashboardHandler(history HistoryStore, users UserStore, log *slog.Logger) *DashboardHandler {
	return &DashboardHandler{history: history, users: users, log: log}
}

// Show renders the user's past lookups, most recent first.
func (h *DashboardHandler) Show(c *gin.Context) {
	userID := c.GetInt("userId")

	username := ""
	if user, err := h.users.GetByID(userID); err == nil && user != nil {
		username = user.Username
	}

	entries, err := h.history.ForUser(userID)
	if err != nil {
		h.log.Error("history read failed", "userId", userID, "err", err)
		c.HTML(http.StatusInternalServerError, "dashboard.html", gin.H{
			"Username": username,
			"Error":    "Could not load your search history",
		})
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Username": username,
		"History":  entries,
	})
}
