package middlewares

import (
	"medibill-service/internal/app/config"
	"medibill-service/internal/app/services/shared/redis"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	SessionRepository redis.SessionRepository
	InternalConfig    *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionRepository redis.SessionRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:               logger,
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
	}
}
