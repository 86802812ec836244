package http

import (
	"github.com/gin-gonic/gin"

	"meckano-helper/internal/report"
	pkgLog "meckano-helper/pkg/log"
)

// Handler is the HTTP delivery interface for the report domain.
type Handler interface {
	Fill(c *gin.Context)
	Run(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc report.UseCase
}

// New creates the report HTTP handler.
func New(l pkgLog.Logger, uc report.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
