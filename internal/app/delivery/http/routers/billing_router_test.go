package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibill-service/internal/app/config"
	"medibill-service/internal/app/delivery/http/middlewares"
	"medibill-service/internal/app/models"
	"medibill-service/internal/app/services/billing"
	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/dto/responses"
	"medibill-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBillingUsecase struct {
	mock.Mock
}

func (m *MockBillingUsecase) GenerateBill(ctx context.Context, generatedBy string, request *requests.GenerateBill) (*responses.Bill, error) {
	args := m.Called(ctx, generatedBy, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Bill), args.Error(1)
}

func (m *MockBillingUsecase) UpdateBill(ctx context.Context, billID string, request *requests.GenerateBill) (*responses.Bill, error) {
	args := m.Called(ctx, billID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Bill), args.Error(1)
}

func (m *MockBillingUsecase) GetAllBills(ctx context.Context) ([]responses.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Bill), args.Error(1)
}

func (m *MockBillingUsecase) GetBillByID(ctx context.Context, billID string) (*responses.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Bill), args.Error(1)
}

func (m *MockBillingUsecase) SearchBills(ctx context.Context, query string) ([]responses.Bill, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Bill), args.Error(1)
}

func (m *MockBillingUsecase) GetDoctorProfile(ctx context.Context, doctorID string) (*responses.DoctorProfile, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DoctorProfile), args.Error(1)
}

func (m *MockBillingUsecase) GetBrokerProfile(ctx context.Context, brokerID string) (*responses.BrokerProfile, error) {
	args := m.Called(ctx, brokerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BrokerProfile), args.Error(1)
}

func (m *MockBillingUsecase) GetHospitalProfile(ctx context.Context) (*responses.HospitalProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.HospitalProfile), args.Error(1)
}

type routerMockSessionRepository struct {
	mock.Mock
}

func (m *routerMockSessionRepository) CreateSession(ctx context.Context, session *models.Session, ttlInHour int) error {
	args := m.Called(ctx, session, ttlInHour)
	return args.Error(0)
}

func (m *routerMockSessionRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *routerMockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func TestBillingRouter(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}

	sessionRepo := new(routerMockSessionRepository)
	middlewareInstance := middlewares.NewMiddlewares(logger, sessionRepo, internalConfig)

	mockUsecase := new(MockBillingUsecase)
	billingController := billing.NewBillingController(mockUsecase, logger)

	router := chi.NewRouter()
	router.Route("/billing", func(r chi.Router) {
		attachBillingRoutes(r, middlewareInstance, billingController)
	})

	t.Run("rejects requests without a token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/billing/", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("manager can list bills", func(t *testing.T) {
		sessionRepo.On("GetSession", mock.Anything, "session-1").Return(&models.Session{
			SessionID: "session-1",
			UserID:    "user-1",
			UserType:  models.UserTypeManager,
		}, nil)
		mockUsecase.On("GetAllBills", mock.Anything).Return([]responses.Bill{}, nil)

		token, err := utils.GenerateSessionJWT("session-1", "test-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/billing/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockUsecase.AssertExpectations(t)
	})
}
