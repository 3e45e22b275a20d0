package v1

import (
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
)

// Download baixa a planilha gerada (link de uso único)
// GET /api/download/:token
func (h *Handler) Download(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token ausente"})
		return
	}

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "link de download expirado"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		h.downloads.delete(token)
		c.JSON(http.StatusNotFound, gin.H{"error": "arquivo gerado não encontrado"})
		return
	}

	c.Header("Content-Disposition", buildDownloadContentDisposition(item.fileName, item.year, item.month))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(item.filePath)

	// O token é de uso único; o arquivo continua em exports.
	h.downloads.delete(token)
}

// buildDownloadContentDisposition monta o Content-Disposition com um nome
// ASCII de reserva e o nome real em UTF-8 (RFC 5987).
func buildDownloadContentDisposition(fileName string, year, month int) string {
	fallback := fmt.Sprintf("fichas-%04d-%02d.xlsx", year, month)
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s",
		fallback, url.PathEscape(fileName))
}
