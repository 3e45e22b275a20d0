package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse estado da aplicação
type StatusResponse struct {
	Aplicacao     string `json:"aplicacao"`
	Versao        string `json:"versao"`
	UltimoAno     int    `json:"ultimoAno"`     // ano da última geração
	UltimoMes     int    `json:"ultimoMes"`     // mês da última geração
	UltimaFonte   string `json:"ultimaFonte"`   // última planilha base usada
	TotalGeracoes int    `json:"totalGeracoes"` // gerações registradas
}

// AppName e AppVersion identificam a aplicação na API.
const (
	AppName    = "igreja-escola"
	AppVersion = "1.0.0"
)

// GetStatus devolve o estado da aplicação
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		Aplicacao: AppName,
		Versao:    AppVersion,
	}

	// Sem histórico ainda, os campos ficam zerados.
	if year, month, err := h.store.GetLastYearMonth(); err == nil {
		resp.UltimoAno = year
		resp.UltimoMes = month
	}
	if fonte, err := h.store.GetLastSource(); err == nil {
		resp.UltimaFonte = fonte
	}
	if count, err := h.store.CountGenerations(); err == nil {
		resp.TotalGeracoes = count
	}

	c.JSON(http.StatusOK, resp)
}
