package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/santosml/igreja-escola/internal/generator"
	"github.com/santosml/igreja-escola/internal/store"
)

// Handler processador da API
type Handler struct {
	store      *store.Store
	generator  *generator.Generator
	uploadsDir string
	exportsDir string
	downloads  *downloadStore
}

// NewHandler cria o processador da API
func NewHandler(store *store.Store, gen *generator.Generator, uploadsDir, exportsDir string) *Handler {
	return &Handler{
		store:      store,
		generator:  gen,
		uploadsDir: uploadsDir,
		exportsDir: exportsDir,
		downloads:  newDownloadStore(),
	}
}

// RegisterRoutes registra as rotas da API
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// Estado da aplicação
	router.GET("/status", h.GetStatus)

	// Geração de fichas
	router.POST("/gerar", h.Gerar)
	router.GET("/download/:token", h.Download)

	// Histórico
	router.GET("/historico", h.ListHistory)
}
