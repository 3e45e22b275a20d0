package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListHistory lista as gerações mais recentes
// GET /api/historico?limite=N
func (h *Handler) ListHistory(c *gin.Context) {
	limit := 20
	if v := c.Query("limite"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.store.ListRecentGenerations(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao consultar o histórico"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"geracoes": entries,
		"total":    len(entries),
	})
}
