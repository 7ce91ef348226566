package auth

import (
	"context"
	"testing"

	"medibill-service/internal/app/config"
	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUserType(ctx context.Context, userType models.UserType) ([]models.User, error) {
	args := m.Called(ctx, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session *models.Session, ttlInHour int) error {
	args := m.Called(ctx, session, ttlInHour)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newAuthUsecaseWithMocks() (AuthUsecase, *MockUserRepository, *MockSessionRepository) {
	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)

	internalConfig := &config.InternalConfig{
		App: config.App{SessionTTLInHour: 12},
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 12},
	}

	uc := NewAuthUsecase(userRepo, sessionRepo, internalConfig, zap.NewNop())
	return uc, userRepo, sessionRepo
}

func TestAuthUsecase_Login(t *testing.T) {
	hashed, err := utils.HashPassword("secret123")
	assert.NoError(t, err)

	storedUser := &models.User{
		ID:       "user-1",
		Name:     "Admin",
		Email:    "admin@hospital.com",
		Password: hashed,
		UserType: models.UserTypeAdmin,
	}

	t.Run("returns a token and creates a session", func(t *testing.T) {
		uc, userRepo, sessionRepo := newAuthUsecaseWithMocks()

		userRepo.On("FindByEmail", mock.Anything, "admin@hospital.com").Return(storedUser, nil)
		sessionRepo.On("CreateSession", mock.Anything, mock.MatchedBy(func(session *models.Session) bool {
			return session.UserID == "user-1" && session.UserType == models.UserTypeAdmin && session.SessionID != ""
		}), 12).Return(nil)

		result, err := uc.Login(context.Background(), &requests.Login{
			Email:    "admin@hospital.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "user-1", result.User.ID)
		assert.Equal(t, models.UserTypeAdmin, result.User.UserType)

		sessionID, err := utils.ParseSessionJWT(result.Token, "test-secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, sessionID)

		sessionRepo.AssertExpectations(t)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		uc, userRepo, sessionRepo := newAuthUsecaseWithMocks()

		userRepo.On("FindByEmail", mock.Anything, "admin@hospital.com").Return(storedUser, nil)

		_, err := uc.Login(context.Background(), &requests.Login{
			Email:    "admin@hospital.com",
			Password: "wrong-password",
		})

		assert.Error(t, err)
		sessionRepo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown email gets the same rejection", func(t *testing.T) {
		uc, userRepo, _ := newAuthUsecaseWithMocks()

		userRepo.On("FindByEmail", mock.Anything, "nobody@hospital.com").Return(nil, nil)

		_, err := uc.Login(context.Background(), &requests.Login{
			Email:    "nobody@hospital.com",
			Password: "secret123",
		})

		assert.Error(t, err)
	})
}

func TestAuthUsecase_GetCurrentUser(t *testing.T) {
	t.Run("returns profile without the password hash", func(t *testing.T) {
		uc, userRepo, _ := newAuthUsecaseWithMocks()

		userRepo.On("FindByID", mock.Anything, "user-1").Return(&models.User{
			ID:       "user-1",
			Name:     "Admin",
			Email:    "admin@hospital.com",
			UserType: models.UserTypeAdmin,
		}, nil)

		user, err := uc.GetCurrentUser(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "Admin", user.Name)
	})

	t.Run("missing user is an error", func(t *testing.T) {
		uc, userRepo, _ := newAuthUsecaseWithMocks()

		userRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		_, err := uc.GetCurrentUser(context.Background(), "ghost")

		assert.Error(t, err)
	})
}
