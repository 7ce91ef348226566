package redis

import (
	"context"

	"medibill-service/internal/app/models"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, session *models.Session, ttlInHour int) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
