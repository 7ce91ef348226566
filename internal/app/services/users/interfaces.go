package users

import (
	"context"

	"medibill-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByUserType(ctx context.Context, userType models.UserType) ([]models.User, error)
}
