package app

import (
	"freight-matching-platform/internal/config"
	"freight-matching-platform/internal/logx"
)

// NewLogger builds the process logger from the LOG_BACKEND and LOG_LEVEL settings.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	return logx.New(cfg.Log.Backend, cfg.Log.Level)
}
