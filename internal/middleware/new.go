package middleware

import (
	"meckano-helper/config"
	"meckano-helper/pkg/log"
)

type Middleware struct {
	l      log.Logger
	config *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:      l,
		config: cfg,
	}
}
