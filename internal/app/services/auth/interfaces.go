package auth

import (
	"context"

	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	GetCurrentUser(ctx context.Context, userID string) (*responses.LoggedInUser, error)
}
