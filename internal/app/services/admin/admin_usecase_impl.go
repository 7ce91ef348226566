package admin

import (
	"context"
	"math"
	"time"

	"medibill-service/internal/app/config"
	"medibill-service/internal/app/models"
	"medibill-service/internal/app/services/billing"
	"medibill-service/internal/app/services/hospitals"
	"medibill-service/internal/app/services/users"
	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/dto/responses"
	"medibill-service/internal/pkg/exceptions"
	"medibill-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type adminUsecase struct {
	UserRepository     users.UserRepository
	HospitalRepository hospitals.HospitalRepository
	BillRepository     billing.BillRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewAdminUsecase(
	userRepository users.UserRepository,
	hospitalRepository hospitals.HospitalRepository,
	billRepository billing.BillRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AdminUsecase {
	return &adminUsecase{
		UserRepository:     userRepository,
		HospitalRepository: hospitalRepository,
		BillRepository:     billRepository,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *adminUsecase) createUser(ctx context.Context, request *requests.CreateUserAccount, userType models.UserType) (*responses.CreatedUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		UserType: userType,
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("adminUsecase.createUser error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.CreatedUser{
		ID:    userID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (uc *adminUsecase) RegisterAdmin(ctx context.Context, request *requests.CreateUserAccount) (*responses.CreatedUser, error) {
	return uc.createUser(ctx, request, models.UserTypeAdmin)
}

func (uc *adminUsecase) CreateManager(ctx context.Context, request *requests.CreateUserAccount) (*responses.CreatedUser, error) {
	return uc.createUser(ctx, request, models.UserTypeManager)
}

func (uc *adminUsecase) GetAllManagers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindByUserType(ctx, models.UserTypeManager)
}

// todayWindow returns local midnight to the next midnight in the
// configured timezone, falling back to the server location when the
// configured name does not load.
func (uc *adminUsecase) todayWindow() (time.Time, time.Time) {
	location, err := time.LoadLocation(uc.InternalConfig.App.Timezone)
	if err != nil {
		location = time.Local
	}
	now := time.Now().In(location)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, location)
	return from, from.AddDate(0, 0, 1)
}

func (uc *adminUsecase) GetDashboard(ctx context.Context) (*responses.Dashboard, error) {
	hospitalEarnings := 0.0
	hospital, err := uc.HospitalRepository.FindConfig(ctx)
	if err != nil {
		return nil, err
	}
	if hospital != nil {
		hospitalEarnings = hospital.TotalEarnings
	}

	from, to := uc.todayWindow()

	todayCount, err := uc.BillRepository.CountBillsByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	totalCount, err := uc.BillRepository.CountBills(ctx)
	if err != nil {
		return nil, err
	}
	todayRevenue, err := uc.BillRepository.SumTotalAmountByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := uc.BillRepository.SumTotalAmount(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.Dashboard{
		HospitalEarnings: hospitalEarnings,
		TodayBillsCount:  todayCount,
		TotalBillsCount:  totalCount,
		TodayRevenue:     todayRevenue,
		TotalRevenue:     totalRevenue,
	}, nil
}

func (uc *adminUsecase) GetHospitalSettings(ctx context.Context) (*models.Hospital, error) {
	hospital, err := uc.HospitalRepository.FindConfig(ctx)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalConfigNotFound(nil)
	}
	return hospital, nil
}

func (uc *adminUsecase) UpdateHospitalSettings(ctx context.Context, request *requests.UpdateHospitalSettings) (*models.Hospital, error) {
	sum := request.HospitalSharePercentage + request.DoctorSharePercentage + request.BrokerSharePercentage
	if math.Abs(sum-100) > 1e-9 {
		return nil, exceptions.ErrSharePercentagesSum(nil)
	}

	hospital := &models.Hospital{
		Name:                    request.Name,
		Address:                 request.Address,
		ContactNumber:           request.ContactNumber,
		Email:                   request.Email,
		HospitalSharePercentage: request.HospitalSharePercentage,
		DoctorSharePercentage:   request.DoctorSharePercentage,
		BrokerSharePercentage:   request.BrokerSharePercentage,
	}

	return uc.HospitalRepository.UpsertConfig(ctx, hospital)
}
