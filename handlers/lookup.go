package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type LookupHandler struct {
	fetcher DefinitionFetcher
	history HistoryStore
	log     *slog.Logger
}

func NewLookupHandler(fetcher DefinitionFetcher, history HistoryStore, log *slog.Logger) *LookupHandler {
	return &LookupHandler{fetcher: fetcher, history: history, log: log}
}

// Home renders the lookup page. On POST the submitted word is
// normalized, defined, and appended to the user's history. The fetcher
// never fails: whatever text it returns is what the user sees.
func (h *LookupHandler) Home(c *gin.Context) {
	word := ""
	definition := ""

	if c.Request.Method == http.MethodPost {
		word = strings.ToLower(strings.TrimSpace(c.PostForm("word")))
		if word != "" {
			definition = h.fetcher.Fetch(c.Request.Context(), word)
			userID := c.GetInt("userId")
			if _, err := h.history.Record(userID, word, definition); err != nil {
				h.log.Error("history record failed", "userId", userID, "word", word, "err", err)
			}
		}
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Word":       word,
		"Definition": definition,
	})
}
