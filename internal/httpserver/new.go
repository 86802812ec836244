package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	appConfig "meckano-helper/config"
	reportHTTP "meckano-helper/internal/report/delivery/http"
	"meckano-helper/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	config      *appConfig.Config

	// Report domain
	reportHandler reportHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *appConfig.Config

	// Report domain
	ReportHandler reportHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.Default(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		config:        cfg.AppConfig,
		reportHandler: cfg.ReportHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("app config is required")
	}
	if srv.reportHandler == nil {
		return errors.New("report handler is required")
	}
	return nil
}
