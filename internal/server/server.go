package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	v1 "github.com/santosml/igreja-escola/internal/api/v1"
	"github.com/santosml/igreja-escola/internal/config"
	"github.com/santosml/igreja-escola/internal/generator"
	"github.com/santosml/igreja-escola/internal/store"
)

//go:embed all:dist
var staticFiles embed.FS

// Server servidor HTTP da aplicação
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *v1.Handler
}

// NewServer cria o servidor
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "igreja-escola.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	gen := generator.New(cfg.EngineOptions())
	apiHandler := v1.NewHandler(sqliteStore, gen,
		filepath.Join(dataDir, "uploads"),
		filepath.Join(dataDir, "exports"))

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		api:    apiHandler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes registra rotas e middlewares
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API
	api := s.router.Group("/api")
	{
		s.api.RegisterRoutes(api)
	}

	// Interface web
	if devMode {
		// Em desenvolvimento, a interface roda no servidor do Vite.
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		sub, _ := fs.Sub(staticFiles, "dist")

		s.router.GET("/", func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})

		s.router.NoRoute(func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})
	}
}

// Run inicia o servidor
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore expõe a camada de persistência (para testes)
func (s *Server) GetStore() *store.Store {
	return s.store
}
