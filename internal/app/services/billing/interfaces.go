package billing

import (
	"context"
	"time"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/dto/responses"
)

type BillingUsecase interface {
	GenerateBill(ctx context.Context, generatedBy string, request *requests.GenerateBill) (*responses.Bill, error)
	// UpdateBill recomputes the bill from the new inputs under the current
	// hospital configuration and applies the fresh shares additively to
	// the earnings counters. Amounts already credited from the previous
	// version are left in place.
	UpdateBill(ctx context.Context, billID string, request *requests.GenerateBill) (*responses.Bill, error)
	GetAllBills(ctx context.Context) ([]responses.Bill, error)
	GetBillByID(ctx context.Context, billID string) (*responses.Bill, error)
	SearchBills(ctx context.Context, query string) ([]responses.Bill, error)
	GetDoctorProfile(ctx context.Context, doctorID string) (*responses.DoctorProfile, error)
	GetBrokerProfile(ctx context.Context, brokerID string) (*responses.BrokerProfile, error)
	GetHospitalProfile(ctx context.Context) (*responses.HospitalProfile, error)
}

type BillRepository interface {
	// CreateBill maps a duplicate billNumber index conflict to a conflict
	// error so the workflow can regenerate the number and retry.
	CreateBill(ctx context.Context, bill *models.Bill) (string, error)
	FindByID(ctx context.Context, billID string) (*models.Bill, error)
	FindAll(ctx context.Context) ([]models.Bill, error)
	FindRecent(ctx context.Context, limit int64) ([]models.Bill, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Bill, error)
	FindByDoctorIDs(ctx context.Context, doctorIDs []string) ([]models.Bill, error)
	FindByBrokerID(ctx context.Context, brokerID string) ([]models.Bill, error)
	FindByPatientIDs(ctx context.Context, patientIDs []string) ([]models.Bill, error)
	FindByBillNumberPattern(ctx context.Context, pattern string) ([]models.Bill, error)
	UpdateBill(ctx context.Context, bill *models.Bill) error
	CountBills(ctx context.Context) (int64, error)
	CountBillsByDateRange(ctx context.Context, from, to time.Time) (int64, error)
	SumTotalAmount(ctx context.Context) (float64, error)
	SumTotalAmountByDateRange(ctx context.Context, from, to time.Time) (float64, error)
}
