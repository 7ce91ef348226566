package auth

import (
	"context"

	"medibill-service/internal/app/config"
	"medibill-service/internal/app/models"
	"medibill-service/internal/app/services/shared/redis"
	"medibill-service/internal/app/services/users"
	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/dto/responses"
	"medibill-service/internal/pkg/exceptions"
	"medibill-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository    users.UserRepository
	SessionRepository redis.SessionRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	userRepository users.UserRepository,
	sessionRepository redis.SessionRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		UserRepository:    userRepository,
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	// Same response whether the email or the password missed, so the
	// endpoint cannot be used to probe which accounts exist.
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		UserType:  user.UserType,
	}
	err = uc.SessionRepository.CreateSession(ctx, session, uc.InternalConfig.App.SessionTTLInHour)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token: token,
		User: responses.LoggedInUser{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			UserType: user.UserType,
		},
	}, nil
}

func (uc *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*responses.LoggedInUser, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	return &responses.LoggedInUser{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		UserType: user.UserType,
	}, nil
}
