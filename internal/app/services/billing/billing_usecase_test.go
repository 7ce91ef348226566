package billing

import (
	"context"
	"sync"
	"testing"
	"time"

	"medibill-service/internal/app/config"
	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) CreateBill(ctx context.Context, bill *models.Bill) (string, error) {
	args := m.Called(ctx, bill)
	return args.String(0), args.Error(1)
}

func (m *MockBillRepository) FindByID(ctx context.Context, billID string) (*models.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindAll(ctx context.Context) ([]models.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindRecent(ctx context.Context, limit int64) ([]models.Bill, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Bill, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByDoctorIDs(ctx context.Context, doctorIDs []string) ([]models.Bill, error) {
	args := m.Called(ctx, doctorIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByBrokerID(ctx context.Context, brokerID string) ([]models.Bill, error) {
	args := m.Called(ctx, brokerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByPatientIDs(ctx context.Context, patientIDs []string) ([]models.Bill, error) {
	args := m.Called(ctx, patientIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByBillNumberPattern(ctx context.Context, pattern string) ([]models.Bill, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) UpdateBill(ctx context.Context, bill *models.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) CountBills(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillRepository) CountBillsByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillRepository) SumTotalAmount(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockBillRepository) SumTotalAmountByDateRange(ctx context.Context, from, to time.Time) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

type MockHospitalRepository struct {
	mock.Mock
}

func (m *MockHospitalRepository) FindConfig(ctx context.Context) (*models.Hospital, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *MockHospitalRepository) UpsertConfig(ctx context.Context, hospital *models.Hospital) (*models.Hospital, error) {
	args := m.Called(ctx, hospital)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *MockHospitalRepository) IncrementEarnings(ctx context.Context, amount float64) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByNamePattern(ctx context.Context, pattern string) ([]models.Doctor, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) IncrementEarnings(ctx context.Context, doctorID string, amount float64) error {
	args := m.Called(ctx, doctorID, amount)
	return args.Error(0)
}

type MockBrokerRepository struct {
	mock.Mock
}

func (m *MockBrokerRepository) CreateBroker(ctx context.Context, broker *models.Broker) (string, error) {
	args := m.Called(ctx, broker)
	return args.String(0), args.Error(1)
}

func (m *MockBrokerRepository) FindByID(ctx context.Context, brokerID string) (*models.Broker, error) {
	args := m.Called(ctx, brokerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Broker), args.Error(1)
}

func (m *MockBrokerRepository) FindAll(ctx context.Context) ([]models.Broker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Broker), args.Error(1)
}

func (m *MockBrokerRepository) IncrementCommission(ctx context.Context, brokerID string, amount float64) error {
	args := m.Called(ctx, brokerID, amount)
	return args.Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByNamePattern(ctx context.Context, pattern string) ([]models.Patient, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

type MockTestRepository struct {
	mock.Mock
}

func (m *MockTestRepository) CreateTest(ctx context.Context, test *models.Test) (string, error) {
	args := m.Called(ctx, test)
	return args.String(0), args.Error(1)
}

func (m *MockTestRepository) FindByName(ctx context.Context, name string) (*models.Test, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Test), args.Error(1)
}

func (m *MockTestRepository) FindByIDs(ctx context.Context, testIDs []string) ([]models.Test, error) {
	args := m.Called(ctx, testIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Test), args.Error(1)
}

func (m *MockTestRepository) FindAll(ctx context.Context) ([]models.Test, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Test), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBillEvent(ctx context.Context, eventType, billID, billNumber string) error {
	args := m.Called(ctx, eventType, billID, billNumber)
	return args.Error(0)
}

type MockReceiptArchive struct {
	mock.Mock
}

func (m *MockReceiptArchive) ArchiveReceipt(ctx context.Context, billNumber string, receipt interface{}) (string, error) {
	args := m.Called(ctx, billNumber, receipt)
	return args.String(0), args.Error(1)
}

type usecaseMocks struct {
	billRepo     *MockBillRepository
	hospitalRepo *MockHospitalRepository
	doctorRepo   *MockDoctorRepository
	brokerRepo   *MockBrokerRepository
	patientRepo  *MockPatientRepository
	testRepo     *MockTestRepository
	publisher    *MockEventPublisher
	archive      *MockReceiptArchive
}

func newBillingUsecaseWithMocks() (BillingUsecase, *usecaseMocks) {
	mocks := &usecaseMocks{
		billRepo:     new(MockBillRepository),
		hospitalRepo: new(MockHospitalRepository),
		doctorRepo:   new(MockDoctorRepository),
		brokerRepo:   new(MockBrokerRepository),
		patientRepo:  new(MockPatientRepository),
		testRepo:     new(MockTestRepository),
		publisher:    new(MockEventPublisher),
		archive:      new(MockReceiptArchive),
	}

	internalConfig := &config.InternalConfig{
		App: config.App{BillNumberMaxRetries: 3},
	}

	uc := NewBillingUsecase(
		mocks.billRepo,
		mocks.hospitalRepo,
		mocks.doctorRepo,
		mocks.brokerRepo,
		mocks.patientRepo,
		mocks.testRepo,
		mocks.publisher,
		mocks.archive,
		internalConfig,
		zap.NewNop(),
	)
	return uc, mocks
}

func stubHappyInputs(mocks *usecaseMocks, withBroker bool) {
	mocks.hospitalRepo.On("FindConfig", mock.Anything).Return(&models.Hospital{
		Name:                    "City Hospital",
		HospitalSharePercentage: 60,
		DoctorSharePercentage:   30,
		BrokerSharePercentage:   10,
	}, nil)
	mocks.patientRepo.On("FindByID", mock.Anything, "patient-1").Return(&models.Patient{ID: "patient-1", Name: "Asha"}, nil)
	mocks.doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(&models.Doctor{ID: "doctor-1", Name: "Dr. Rao"}, nil)
	if withBroker {
		mocks.brokerRepo.On("FindByID", mock.Anything, "broker-1").Return(&models.Broker{ID: "broker-1", Name: "Kumar"}, nil)
	}
	mocks.testRepo.On("FindByIDs", mock.Anything, []string{"test-1", "test-2"}).Return([]models.Test{
		{ID: "test-1", Name: "CBC", Price: 600},
		{ID: "test-2", Name: "Lipid Panel", Price: 400},
	}, nil)
}

func TestBillingUsecase_GenerateBill(t *testing.T) {
	t.Run("generates bill and credits all three parties", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()
		stubHappyInputs(mocks, true)

		mocks.billRepo.On("CreateBill", mock.Anything, mock.AnythingOfType("*models.Bill")).Return("bill-1", nil)
		mocks.hospitalRepo.On("IncrementEarnings", mock.Anything, 600.0).Return(nil)
		mocks.doctorRepo.On("IncrementEarnings", mock.Anything, "doctor-1", 300.0).Return(nil)
		mocks.brokerRepo.On("IncrementCommission", mock.Anything, "broker-1", 100.0).Return(nil)
		mocks.publisher.On("PublishBillEvent", mock.Anything, "bill.created", "bill-1", mock.AnythingOfType("string")).Return(nil)
		mocks.archive.On("ArchiveReceipt", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return("receipt.json", nil)

		bill, err := uc.GenerateBill(context.Background(), "user-1", &requests.GenerateBill{
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			BrokerID:  "broker-1",
			TestIDs:   []string{"test-1", "test-2"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "bill-1", bill.ID)
		assert.Equal(t, 1000.0, bill.Subtotal)
		assert.Equal(t, 600.0, bill.HospitalShare)
		assert.Equal(t, 300.0, bill.DoctorShare)
		assert.Equal(t, 100.0, bill.BrokerShare)
		assert.Equal(t, 1000.0, bill.TotalAmount)
		assert.Equal(t, "Asha", bill.Patient.Name)
		assert.Equal(t, "Kumar", bill.Broker.Name)
		assert.Regexp(t, `^BILL-\d{6}-\d{3}$`, bill.BillNumber)

		mocks.hospitalRepo.AssertExpectations(t)
		mocks.doctorRepo.AssertExpectations(t)
		mocks.brokerRepo.AssertExpectations(t)
		mocks.publisher.AssertExpectations(t)
		mocks.archive.AssertExpectations(t)
	})

	t.Run("without broker the broker slice goes to the hospital", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()
		stubHappyInputs(mocks, false)

		mocks.billRepo.On("CreateBill", mock.Anything, mock.AnythingOfType("*models.Bill")).Return("bill-2", nil)
		mocks.hospitalRepo.On("IncrementEarnings", mock.Anything, 700.0).Return(nil)
		mocks.doctorRepo.On("IncrementEarnings", mock.Anything, "doctor-1", 300.0).Return(nil)
		mocks.publisher.On("PublishBillEvent", mock.Anything, "bill.created", "bill-2", mock.AnythingOfType("string")).Return(nil)
		mocks.archive.On("ArchiveReceipt", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return("receipt.json", nil)

		bill, err := uc.GenerateBill(context.Background(), "user-1", &requests.GenerateBill{
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			TestIDs:   []string{"test-1", "test-2"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 700.0, bill.HospitalShare)
		assert.Equal(t, 0.0, bill.BrokerShare)
		assert.Nil(t, bill.Broker)
		mocks.brokerRepo.AssertNotCalled(t, "IncrementCommission", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects bill when hospital is unconfigured", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()
		mocks.hospitalRepo.On("FindConfig", mock.Anything).Return(nil, nil)

		_, err := uc.GenerateBill(context.Background(), "user-1", &requests.GenerateBill{
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			TestIDs:   []string{"test-1"},
		})

		assert.Error(t, err)
		mocks.billRepo.AssertNotCalled(t, "CreateBill", mock.Anything, mock.Anything)
	})

	t.Run("rejects bill when any test id does not resolve", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()
		mocks.hospitalRepo.On("FindConfig", mock.Anything).Return(&models.Hospital{
			HospitalSharePercentage: 60,
			DoctorSharePercentage:   30,
			BrokerSharePercentage:   10,
		}, nil)
		mocks.patientRepo.On("FindByID", mock.Anything, "patient-1").Return(&models.Patient{ID: "patient-1", Name: "Asha"}, nil)
		mocks.doctorRepo.On("FindByID", mock.Anything, "doctor-1").Return(&models.Doctor{ID: "doctor-1", Name: "Dr. Rao"}, nil)
		mocks.testRepo.On("FindByIDs", mock.Anything, []string{"test-1", "missing"}).Return([]models.Test{
			{ID: "test-1", Name: "CBC", Price: 600},
		}, nil)

		_, err := uc.GenerateBill(context.Background(), "user-1", &requests.GenerateBill{
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			TestIDs:   []string{"test-1", "missing"},
		})

		assert.Error(t, err)
		mocks.billRepo.AssertNotCalled(t, "CreateBill", mock.Anything, mock.Anything)
		mocks.hospitalRepo.AssertNotCalled(t, "IncrementEarnings", mock.Anything, mock.Anything)
	})

	t.Run("regenerates the bill number on a duplicate conflict", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()
		stubHappyInputs(mocks, false)

		mocks.billRepo.On("CreateBill", mock.Anything, mock.AnythingOfType("*models.Bill")).
			Return("", exceptions.ErrDuplicateBillNumber(nil)).Once()
		mocks.billRepo.On("CreateBill", mock.Anything, mock.AnythingOfType("*models.Bill")).
			Return("bill-3", nil).Once()
		mocks.hospitalRepo.On("IncrementEarnings", mock.Anything, 700.0).Return(nil)
		mocks.doctorRepo.On("IncrementEarnings", mock.Anything, "doctor-1", 300.0).Return(nil)
		mocks.publisher.On("PublishBillEvent", mock.Anything, "bill.created", "bill-3", mock.AnythingOfType("string")).Return(nil)
		mocks.archive.On("ArchiveReceipt", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return("receipt.json", nil)

		bill, err := uc.GenerateBill(context.Background(), "user-1", &requests.GenerateBill{
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			TestIDs:   []string{"test-1", "test-2"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "bill-3", bill.ID)
		mocks.billRepo.AssertNumberOfCalls(t, "CreateBill", 2)
	})

	t.Run("gives up after exhausting the retry budget", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()
		stubHappyInputs(mocks, false)

		mocks.billRepo.On("CreateBill", mock.Anything, mock.AnythingOfType("*models.Bill")).
			Return("", exceptions.ErrDuplicateBillNumber(nil))

		_, err := uc.GenerateBill(context.Background(), "user-1", &requests.GenerateBill{
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			TestIDs:   []string{"test-1", "test-2"},
		})

		assert.Error(t, err)
		mocks.billRepo.AssertNumberOfCalls(t, "CreateBill", 4)
		mocks.hospitalRepo.AssertNotCalled(t, "IncrementEarnings", mock.Anything, mock.Anything)
	})

	t.Run("publish or archive failures do not fail the request", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()
		stubHappyInputs(mocks, false)

		mocks.billRepo.On("CreateBill", mock.Anything, mock.AnythingOfType("*models.Bill")).Return("bill-4", nil)
		mocks.hospitalRepo.On("IncrementEarnings", mock.Anything, 700.0).Return(nil)
		mocks.doctorRepo.On("IncrementEarnings", mock.Anything, "doctor-1", 300.0).Return(nil)
		mocks.publisher.On("PublishBillEvent", mock.Anything, "bill.created", "bill-4", mock.AnythingOfType("string")).
			Return(exceptions.ErrRabbitMQPublishMessage(nil, "billing_events_queue"))
		mocks.archive.On("ArchiveReceipt", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return("", exceptions.ErrMinioCreateObject(nil, "bill-receipts"))

		bill, err := uc.GenerateBill(context.Background(), "user-1", &requests.GenerateBill{
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			TestIDs:   []string{"test-1", "test-2"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "bill-4", bill.ID)
	})
}

func TestBillingUsecase_ConcurrentGenerateBill(t *testing.T) {
	t.Run("parallel generations accumulate doctor earnings additively", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()
		stubHappyInputs(mocks, false)

		mocks.billRepo.On("CreateBill", mock.Anything, mock.AnythingOfType("*models.Bill")).Return("bill-1", nil)
		mocks.hospitalRepo.On("IncrementEarnings", mock.Anything, 700.0).Return(nil)
		mocks.publisher.On("PublishBillEvent", mock.Anything, "bill.created", "bill-1", mock.AnythingOfType("string")).Return(nil)
		mocks.archive.On("ArchiveReceipt", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return("receipt.json", nil)

		// The doctor counter behaves like the atomic increment in the
		// store: each credit lands in full, whatever the interleaving.
		var mu sync.Mutex
		doctorTotal := 500.0
		mocks.doctorRepo.On("IncrementEarnings", mock.Anything, "doctor-1", 300.0).
			Run(func(args mock.Arguments) {
				mu.Lock()
				doctorTotal += args.Get(2).(float64)
				mu.Unlock()
			}).
			Return(nil)

		const workers = 8
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.GenerateBill(context.Background(), "user-1", &requests.GenerateBill{
					PatientID: "patient-1",
					DoctorID:  "doctor-1",
					TestIDs:   []string{"test-1", "test-2"},
				})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 500.0+workers*300.0, doctorTotal)
		mocks.doctorRepo.AssertNumberOfCalls(t, "IncrementEarnings", workers)
	})
}

func TestBillingUsecase_GetHospitalProfile(t *testing.T) {
	t.Run("returns the hospital with its latest bills", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()

		mocks.hospitalRepo.On("FindConfig", mock.Anything).Return(&models.Hospital{
			Name:          "City Hospital",
			TotalEarnings: 1200,
		}, nil)
		mocks.billRepo.On("FindRecent", mock.Anything, int64(10)).Return([]models.Bill{
			{ID: "bill-1", BillNumber: "BILL-000001-001", PatientID: "patient-1", DoctorID: "doctor-1"},
		}, nil)

		mocks.patientRepo.On("FindAll", mock.Anything).Return([]models.Patient{{ID: "patient-1", Name: "Asha"}}, nil)
		mocks.doctorRepo.On("FindAll", mock.Anything).Return([]models.Doctor{{ID: "doctor-1", Name: "Dr. Rao"}}, nil)
		mocks.brokerRepo.On("FindAll", mock.Anything).Return([]models.Broker{}, nil)
		mocks.testRepo.On("FindAll", mock.Anything).Return([]models.Test{}, nil)

		profile, err := uc.GetHospitalProfile(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "City Hospital", profile.Hospital.Name)
		assert.Equal(t, 1200.0, profile.Hospital.TotalEarnings)
		assert.Len(t, profile.RecentBills, 1)
		assert.Equal(t, "Asha", profile.RecentBills[0].Patient.Name)
		assert.Equal(t, "Dr. Rao", profile.RecentBills[0].Doctor.Name)
		mocks.billRepo.AssertExpectations(t)
	})

	t.Run("unconfigured hospital is rejected", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()
		mocks.hospitalRepo.On("FindConfig", mock.Anything).Return(nil, nil)

		_, err := uc.GetHospitalProfile(context.Background())

		assert.Error(t, err)
		mocks.billRepo.AssertNotCalled(t, "FindRecent", mock.Anything, mock.Anything)
	})
}

func TestBillingUsecase_SearchBills(t *testing.T) {
	t.Run("merges matches across bill number, patient and doctor", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()

		billByNumber := models.Bill{ID: "bill-1", BillNumber: "BILL-000001-001", PatientID: "patient-1", DoctorID: "doctor-1"}
		billByPatient := models.Bill{ID: "bill-2", BillNumber: "BILL-000002-002", PatientID: "patient-1", DoctorID: "doctor-1"}

		mocks.billRepo.On("FindByBillNumberPattern", mock.Anything, "asha").Return([]models.Bill{billByNumber}, nil)
		mocks.patientRepo.On("FindByNamePattern", mock.Anything, "asha").Return([]models.Patient{{ID: "patient-1", Name: "Asha"}}, nil)
		mocks.billRepo.On("FindByPatientIDs", mock.Anything, []string{"patient-1"}).Return([]models.Bill{billByNumber, billByPatient}, nil)
		mocks.doctorRepo.On("FindByNamePattern", mock.Anything, "asha").Return([]models.Doctor{}, nil)
		mocks.billRepo.On("FindByDoctorIDs", mock.Anything, []string{}).Return([]models.Bill{}, nil)

		mocks.patientRepo.On("FindAll", mock.Anything).Return([]models.Patient{{ID: "patient-1", Name: "Asha"}}, nil)
		mocks.doctorRepo.On("FindAll", mock.Anything).Return([]models.Doctor{{ID: "doctor-1", Name: "Dr. Rao"}}, nil)
		mocks.brokerRepo.On("FindAll", mock.Anything).Return([]models.Broker{}, nil)
		mocks.testRepo.On("FindAll", mock.Anything).Return([]models.Test{}, nil)

		bills, err := uc.SearchBills(context.Background(), "asha")

		assert.NoError(t, err)
		assert.Len(t, bills, 2)
		assert.Equal(t, "Asha", bills[0].Patient.Name)
		assert.Equal(t, "Dr. Rao", bills[0].Doctor.Name)
	})
}

func TestBillingUsecase_UpdateBill(t *testing.T) {
	existing := &models.Bill{
		ID:          "bill-1",
		PatientID:   "patient-1",
		DoctorID:    "doctor-1",
		GeneratedBy: "user-1",
		BillNumber:  "BILL-123456-789",
		BillDate:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("keeps identity fields and credits fresh shares additively", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()
		stubHappyInputs(mocks, true)

		mocks.billRepo.On("FindByID", mock.Anything, "bill-1").Return(existing, nil)
		mocks.billRepo.On("UpdateBill", mock.Anything, mock.AnythingOfType("*models.Bill")).Return(nil)
		mocks.hospitalRepo.On("IncrementEarnings", mock.Anything, 600.0).Return(nil)
		mocks.doctorRepo.On("IncrementEarnings", mock.Anything, "doctor-1", 300.0).Return(nil)
		mocks.brokerRepo.On("IncrementCommission", mock.Anything, "broker-1", 100.0).Return(nil)
		mocks.publisher.On("PublishBillEvent", mock.Anything, "bill.updated", "bill-1", "BILL-123456-789").Return(nil)
		mocks.archive.On("ArchiveReceipt", mock.Anything, "BILL-123456-789", mock.Anything).Return("receipt.json", nil)

		bill, err := uc.UpdateBill(context.Background(), "bill-1", &requests.GenerateBill{
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			BrokerID:  "broker-1",
			TestIDs:   []string{"test-1", "test-2"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "BILL-123456-789", bill.BillNumber)
		assert.Equal(t, existing.BillDate, bill.BillDate)
		assert.Equal(t, "user-1", bill.GeneratedBy)
		assert.Equal(t, 600.0, bill.HospitalShare)

		mocks.hospitalRepo.AssertExpectations(t)
		mocks.publisher.AssertExpectations(t)
	})

	t.Run("unknown bill id is rejected", func(t *testing.T) {
		uc, mocks := newBillingUsecaseWithMocks()
		mocks.billRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.UpdateBill(context.Background(), "missing", &requests.GenerateBill{
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			TestIDs:   []string{"test-1"},
		})

		assert.Error(t, err)
		mocks.billRepo.AssertNotCalled(t, "UpdateBill", mock.Anything, mock.Anything)
	})
}
