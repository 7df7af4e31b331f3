package http

import (
	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/iotiq/account-deletion/internal/config"
	"github.com/iotiq/account-deletion/internal/metrics"
	"github.com/rs/zerolog"
	"net/http"
	"path"
	"time"
)

// Server is a wrapper for the HTTP server.
type Server struct {
	*http.Server
	logger zerolog.Logger
}

// NewServer creates and configures a new Gin server.
func NewServer(cfg *config.Config, handlers *Handlers, m *metrics.Metrics, logger *zerolog.Logger) *Server {
	log := logger.With().Str("layer", "http_server").Logger()
	log.Info().Msg("initializing http server")

	log.Info().Str("mode", cfg.HTTP.GinMode).Msg("setting gin mode")
	gin.SetMode(cfg.HTTP.GinMode)

	router := newRouter(cfg, handlers, m, log)

	log.Info().Strs("origins", cfg.HTTP.AllowedOrigins).Msg("initializing middleware: cors")
	handler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	})(router)

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{server, log}
}

func newRouter(cfg *config.Config, handlers *Handlers, m *metrics.Metrics, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	log.Info().Msg("initializing middleware: request id, logging, recovery")
	router.Use(RequestID(), RequestLogger(log), Recovery(log))

	log.Info().Msg("registering api routes")
	handlers.RegisterRoutes(router)

	log.Info().Msg("registering health check and metrics endpoints")
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	if cfg.HTTP.StaticDir != "" {
		log.Info().Str("dir", cfg.HTTP.StaticDir).Msg("serving frontend")
	}
	router.NoRoute(staticOrNotFound(cfg.HTTP.StaticDir, log))

	return router
}

// staticOrNotFound serves files from dir for unmatched GET and HEAD requests and
// answers everything else with the JSON 404 body.
func staticOrNotFound(dir string, log zerolog.Logger) gin.HandlerFunc {
	var fs http.FileSystem
	if dir != "" {
		fs = gin.Dir(dir, false)
	}

	return func(c *gin.Context) {
		method := c.Request.Method
		if fs != nil && (method == http.MethodGet || method == http.MethodHead) {
			name := path.Clean("/" + c.Request.URL.Path)
			if servable(fs, name) {
				c.FileFromFS(name, fs)
				return
			}
		}

		log.Info().Str("path", c.Request.URL.Path).Msg("404 - route not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgRouteNotFound})
	}
}

// servable reports whether name is a file, or a directory holding index.html.
func servable(fs http.FileSystem, name string) bool {
	f, err := fs.Open(name)
	if err != nil {
		return false
	}
	stat, err := f.Stat()
	_ = f.Close()
	if err != nil {
		return false
	}
	if !stat.IsDir() {
		return true
	}
	return servable(fs, path.Join(name, "index.html"))
}
