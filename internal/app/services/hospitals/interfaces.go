package hospitals

import (
	"context"

	"medibill-service/internal/app/models"
)

type HospitalRepository interface {
	// FindConfig returns the singleton hospital document, or nil when the
	// hospital has not been configured yet.
	FindConfig(ctx context.Context) (*models.Hospital, error)
	// UpsertConfig replaces the identity fields and share percentages
	// wholesale; totalEarnings is never touched by a settings update.
	UpsertConfig(ctx context.Context, hospital *models.Hospital) (*models.Hospital, error)
	// IncrementEarnings adds amount to totalEarnings with an atomic $inc.
	IncrementEarnings(ctx context.Context, amount float64) error
}
