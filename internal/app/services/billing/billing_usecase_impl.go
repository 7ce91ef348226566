package billing

import (
	"context"
	"errors"
	"sort"
	"time"

	"medibill-service/internal/app/config"
	"medibill-service/internal/app/models"
	"medibill-service/internal/app/services/brokers"
	"medibill-service/internal/app/services/doctors"
	"medibill-service/internal/app/services/hospitals"
	"medibill-service/internal/app/services/labtests"
	"medibill-service/internal/app/services/patients"
	"medibill-service/internal/app/services/shared/messaging"
	"medibill-service/internal/app/services/shared/storage"
	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/dto/responses"
	"medibill-service/internal/pkg/exceptions"
	"medibill-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type billingUsecase struct {
	BillRepository     BillRepository
	HospitalRepository hospitals.HospitalRepository
	DoctorRepository   doctors.DoctorRepository
	BrokerRepository   brokers.BrokerRepository
	PatientRepository  patients.PatientRepository
	TestRepository     labtests.TestRepository
	EventPublisher     messaging.BillingEventPublisher
	ReceiptArchive     storage.ReceiptArchive
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewBillingUsecase(
	billRepository BillRepository,
	hospitalRepository hospitals.HospitalRepository,
	doctorRepository doctors.DoctorRepository,
	brokerRepository brokers.BrokerRepository,
	patientRepository patients.PatientRepository,
	testRepository labtests.TestRepository,
	eventPublisher messaging.BillingEventPublisher,
	receiptArchive storage.ReceiptArchive,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) BillingUsecase {
	return &billingUsecase{
		BillRepository:     billRepository,
		HospitalRepository: hospitalRepository,
		DoctorRepository:   doctorRepository,
		BrokerRepository:   brokerRepository,
		PatientRepository:  patientRepository,
		TestRepository:     testRepository,
		EventPublisher:     eventPublisher,
		ReceiptArchive:     receiptArchive,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

// billInputs holds the resolved entities a bill references, loaded and
// checked before any document is written.
type billInputs struct {
	hospital *models.Hospital
	patient  *models.Patient
	doctor   *models.Doctor
	broker   *models.Broker
	items    []models.BillItem
	tests    []models.Test
	subtotal float64
}

func (uc *billingUsecase) resolveInputs(ctx context.Context, request *requests.GenerateBill) (*billInputs, error) {
	hospital, err := uc.HospitalRepository.FindConfig(ctx)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalConfigNotFound(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	var broker *models.Broker
	if request.BrokerID != "" {
		broker, err = uc.BrokerRepository.FindByID(ctx, request.BrokerID)
		if err != nil {
			return nil, err
		}
		if broker == nil {
			return nil, exceptions.ErrBrokerNotFound(nil)
		}
	}

	tests, err := uc.TestRepository.FindByIDs(ctx, request.TestIDs)
	if err != nil {
		return nil, err
	}
	// Strict match: every requested test must resolve, or the bill is
	// rejected before anything is persisted.
	if len(tests) != len(request.TestIDs) {
		return nil, exceptions.ErrTestsNotFound(nil)
	}

	testsByID := make(map[string]models.Test, len(tests))
	for _, test := range tests {
		testsByID[test.ID] = test
	}

	items := make([]models.BillItem, 0, len(request.TestIDs))
	subtotal := 0.0
	for _, testID := range request.TestIDs {
		test, ok := testsByID[testID]
		if !ok {
			return nil, exceptions.ErrTestsNotFound(nil)
		}
		items = append(items, models.BillItem{TestID: test.ID, Price: test.Price})
		subtotal += test.Price
	}

	return &billInputs{
		hospital: hospital,
		patient:  patient,
		doctor:   doctor,
		broker:   broker,
		items:    items,
		tests:    tests,
		subtotal: subtotal,
	}, nil
}

// applyEarnings credits the computed shares to the three running
// counters. Each credit is an atomic increment; there is no cross
// document transaction, so a mid-sequence failure leaves the earlier
// credits in place and surfaces the error.
func (uc *billingUsecase) applyEarnings(ctx context.Context, in *billInputs, shares ShareResult) error {
	if err := uc.HospitalRepository.IncrementEarnings(ctx, shares.HospitalShare); err != nil {
		return err
	}
	if err := uc.DoctorRepository.IncrementEarnings(ctx, in.doctor.ID, shares.DoctorShare); err != nil {
		return err
	}
	if in.broker != nil && shares.BrokerShare > 0 {
		if err := uc.BrokerRepository.IncrementCommission(ctx, in.broker.ID, shares.BrokerShare); err != nil {
			return err
		}
	}
	return nil
}

// finalizeBill publishes the lifecycle event and archives the receipt.
// Both are best-effort: failures are logged and never fail the request.
func (uc *billingUsecase) finalizeBill(ctx context.Context, eventType string, bill *models.Bill, display *responses.Bill) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := uc.EventPublisher.PublishBillEvent(ctx, eventType, bill.ID, bill.BillNumber); err != nil {
		uc.Log.Warn("billingUsecase failed publishing bill event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBillNumberKey, bill.BillNumber),
			zap.Error(err),
		)
	}

	if _, err := uc.ReceiptArchive.ArchiveReceipt(ctx, bill.BillNumber, display); err != nil {
		uc.Log.Warn("billingUsecase failed archiving receipt",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBillNumberKey, bill.BillNumber),
			zap.Error(err),
		)
	}
}

func (uc *billingUsecase) GenerateBill(ctx context.Context, generatedBy string, request *requests.GenerateBill) (*responses.Bill, error) {
	in, err := uc.resolveInputs(ctx, request)
	if err != nil {
		return nil, err
	}

	shares, err := CalculateShares(ShareInput{
		Subtotal:    in.subtotal,
		HospitalPct: in.hospital.HospitalSharePercentage,
		DoctorPct:   in.hospital.DoctorSharePercentage,
		BrokerPct:   in.hospital.BrokerSharePercentage,
		HasBroker:   in.broker != nil,
	})
	if err != nil {
		return nil, err
	}

	bill := &models.Bill{
		PatientID:     in.patient.ID,
		DoctorID:      in.doctor.ID,
		Tests:         in.items,
		Subtotal:      shares.TotalAmount,
		HospitalShare: shares.HospitalShare,
		DoctorShare:   shares.DoctorShare,
		BrokerShare:   shares.BrokerShare,
		TotalAmount:   shares.TotalAmount,
		GeneratedBy:   generatedBy,
		BillDate:      time.Now(),
	}
	if in.broker != nil {
		bill.BrokerID = in.broker.ID
	}

	// The unique index on billNumber is the duplicate guard; on a
	// conflict generate a fresh number and try again.
	maxRetries := uc.InternalConfig.App.BillNumberMaxRetries
	var billID string
	for attempt := 0; ; attempt++ {
		bill.BillNumber = utils.GenerateBillNumber()
		billID, err = uc.BillRepository.CreateBill(ctx, bill)
		if err == nil {
			break
		}
		var customErr *exceptions.CustomError
		if !errors.As(err, &customErr) || customErr.StatusCode != constvars.StatusConflict || attempt >= maxRetries {
			return nil, err
		}
	}
	bill.ID = billID

	if err := uc.applyEarnings(ctx, in, shares); err != nil {
		return nil, err
	}

	display := uc.toBillResponse(bill, in)
	uc.finalizeBill(ctx, constvars.EventBillCreated, bill, display)

	return display, nil
}

func (uc *billingUsecase) UpdateBill(ctx context.Context, billID string, request *requests.GenerateBill) (*responses.Bill, error) {
	existing, err := uc.BillRepository.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrBillNotFound(nil)
	}

	in, err := uc.resolveInputs(ctx, request)
	if err != nil {
		return nil, err
	}

	shares, err := CalculateShares(ShareInput{
		Subtotal:    in.subtotal,
		HospitalPct: in.hospital.HospitalSharePercentage,
		DoctorPct:   in.hospital.DoctorSharePercentage,
		BrokerPct:   in.hospital.BrokerSharePercentage,
		HasBroker:   in.broker != nil,
	})
	if err != nil {
		return nil, err
	}

	bill := &models.Bill{
		ID:            existing.ID,
		PatientID:     in.patient.ID,
		DoctorID:      in.doctor.ID,
		Tests:         in.items,
		Subtotal:      shares.TotalAmount,
		HospitalShare: shares.HospitalShare,
		DoctorShare:   shares.DoctorShare,
		BrokerShare:   shares.BrokerShare,
		TotalAmount:   shares.TotalAmount,
		GeneratedBy:   existing.GeneratedBy,
		BillNumber:    existing.BillNumber,
		BillDate:      existing.BillDate,
	}
	if in.broker != nil {
		bill.BrokerID = in.broker.ID
	}

	if err := uc.BillRepository.UpdateBill(ctx, bill); err != nil {
		return nil, err
	}

	// The fresh shares are credited on top of whatever the previous
	// version already credited; prior amounts are not reversed.
	if err := uc.applyEarnings(ctx, in, shares); err != nil {
		return nil, err
	}

	display := uc.toBillResponse(bill, in)
	uc.finalizeBill(ctx, constvars.EventBillUpdated, bill, display)

	return display, nil
}

func (uc *billingUsecase) GetAllBills(ctx context.Context) ([]responses.Bill, error) {
	bills, err := uc.BillRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toBillResponses(ctx, bills)
}

func (uc *billingUsecase) GetBillByID(ctx context.Context, billID string) (*responses.Bill, error) {
	bill, err := uc.BillRepository.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, exceptions.ErrBillNotFound(nil)
	}

	displays, err := uc.toBillResponses(ctx, []models.Bill{*bill})
	if err != nil {
		return nil, err
	}
	return &displays[0], nil
}

// SearchBills matches the query against bill numbers, patient names and
// doctor names, and merges the result sets.
func (uc *billingUsecase) SearchBills(ctx context.Context, query string) ([]responses.Bill, error) {
	if query == "" {
		return uc.GetAllBills(ctx)
	}

	byNumber, err := uc.BillRepository.FindByBillNumberPattern(ctx, query)
	if err != nil {
		return nil, err
	}

	matchedPatients, err := uc.PatientRepository.FindByNamePattern(ctx, query)
	if err != nil {
		return nil, err
	}
	patientIDs := make([]string, 0, len(matchedPatients))
	for _, patient := range matchedPatients {
		patientIDs = append(patientIDs, patient.ID)
	}
	byPatient, err := uc.BillRepository.FindByPatientIDs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}

	matchedDoctors, err := uc.DoctorRepository.FindByNamePattern(ctx, query)
	if err != nil {
		return nil, err
	}
	doctorIDs := make([]string, 0, len(matchedDoctors))
	for _, doctor := range matchedDoctors {
		doctorIDs = append(doctorIDs, doctor.ID)
	}
	byDoctor, err := uc.BillRepository.FindByDoctorIDs(ctx, doctorIDs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(byNumber))
	merged := make([]models.Bill, 0, len(byNumber)+len(byPatient)+len(byDoctor))
	for _, bill := range append(append(byNumber, byPatient...), byDoctor...) {
		if seen[bill.ID] {
			continue
		}
		seen[bill.ID] = true
		merged = append(merged, bill)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].BillDate.After(merged[j].BillDate)
	})

	return uc.toBillResponses(ctx, merged)
}

func (uc *billingUsecase) GetDoctorProfile(ctx context.Context, doctorID string) (*responses.DoctorProfile, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	bills, err := uc.BillRepository.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	displays, err := uc.toBillResponses(ctx, bills)
	if err != nil {
		return nil, err
	}

	return &responses.DoctorProfile{Doctor: doctor, Bills: displays}, nil
}

func (uc *billingUsecase) GetBrokerProfile(ctx context.Context, brokerID string) (*responses.BrokerProfile, error) {
	broker, err := uc.BrokerRepository.FindByID(ctx, brokerID)
	if err != nil {
		return nil, err
	}
	if broker == nil {
		return nil, exceptions.ErrBrokerNotFound(nil)
	}

	bills, err := uc.BillRepository.FindByBrokerID(ctx, brokerID)
	if err != nil {
		return nil, err
	}
	displays, err := uc.toBillResponses(ctx, bills)
	if err != nil {
		return nil, err
	}

	return &responses.BrokerProfile{Broker: broker, Bills: displays}, nil
}

// recentBillsLimit caps the bill list attached to the hospital profile.
const recentBillsLimit = 10

func (uc *billingUsecase) GetHospitalProfile(ctx context.Context) (*responses.HospitalProfile, error) {
	hospital, err := uc.HospitalRepository.FindConfig(ctx)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalConfigNotFound(nil)
	}

	bills, err := uc.BillRepository.FindRecent(ctx, recentBillsLimit)
	if err != nil {
		return nil, err
	}
	displays, err := uc.toBillResponses(ctx, bills)
	if err != nil {
		return nil, err
	}

	return &responses.HospitalProfile{Hospital: hospital, RecentBills: displays}, nil
}

// toBillResponse maps a bill whose references were already resolved
// during the generate/update flow.
func (uc *billingUsecase) toBillResponse(bill *models.Bill, in *billInputs) *responses.Bill {
	testNames := make(map[string]string, len(in.tests))
	for _, test := range in.tests {
		testNames[test.ID] = test.Name
	}

	display := &responses.Bill{
		ID:            bill.ID,
		BillNumber:    bill.BillNumber,
		Patient:       responses.NamedRef{ID: in.patient.ID, Name: in.patient.Name},
		Doctor:        responses.NamedRef{ID: in.doctor.ID, Name: in.doctor.Name},
		Tests:         make([]responses.BillTestItem, 0, len(bill.Tests)),
		Subtotal:      bill.Subtotal,
		HospitalShare: bill.HospitalShare,
		DoctorShare:   bill.DoctorShare,
		BrokerShare:   bill.BrokerShare,
		TotalAmount:   bill.TotalAmount,
		GeneratedBy:   bill.GeneratedBy,
		BillDate:      bill.BillDate,
	}
	if in.broker != nil {
		display.Broker = &responses.NamedRef{ID: in.broker.ID, Name: in.broker.Name}
	}
	for _, item := range bill.Tests {
		display.Tests = append(display.Tests, responses.BillTestItem{
			TestID: item.TestID,
			Name:   testNames[item.TestID],
			Price:  item.Price,
		})
	}
	return display
}

// toBillResponses resolves references for read paths. The back office
// catalog is small, so lookups are built from full collection scans
// instead of per-bill queries.
func (uc *billingUsecase) toBillResponses(ctx context.Context, bills []models.Bill) ([]responses.Bill, error) {
	displays := make([]responses.Bill, 0, len(bills))
	if len(bills) == 0 {
		return displays, nil
	}

	allPatients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	allDoctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	allBrokers, err := uc.BrokerRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	allTests, err := uc.TestRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	patientNames := make(map[string]string, len(allPatients))
	for _, p := range allPatients {
		patientNames[p.ID] = p.Name
	}
	doctorNames := make(map[string]string, len(allDoctors))
	for _, d := range allDoctors {
		doctorNames[d.ID] = d.Name
	}
	brokerNames := make(map[string]string, len(allBrokers))
	for _, b := range allBrokers {
		brokerNames[b.ID] = b.Name
	}
	testNames := make(map[string]string, len(allTests))
	for _, t := range allTests {
		testNames[t.ID] = t.Name
	}

	for _, bill := range bills {
		display := responses.Bill{
			ID:            bill.ID,
			BillNumber:    bill.BillNumber,
			Patient:       responses.NamedRef{ID: bill.PatientID, Name: patientNames[bill.PatientID]},
			Doctor:        responses.NamedRef{ID: bill.DoctorID, Name: doctorNames[bill.DoctorID]},
			Tests:         make([]responses.BillTestItem, 0, len(bill.Tests)),
			Subtotal:      bill.Subtotal,
			HospitalShare: bill.HospitalShare,
			DoctorShare:   bill.DoctorShare,
			BrokerShare:   bill.BrokerShare,
			TotalAmount:   bill.TotalAmount,
			GeneratedBy:   bill.GeneratedBy,
			BillDate:      bill.BillDate,
		}
		if bill.BrokerID != "" {
			display.Broker = &responses.NamedRef{ID: bill.BrokerID, Name: brokerNames[bill.BrokerID]}
		}
		for _, item := range bill.Tests {
			display.Tests = append(display.Tests, responses.BillTestItem{
				TestID: item.TestID,
				Name:   testNames[item.TestID],
				Price:  item.Price,
			})
		}
		displays = append(displays, display)
	}

	return displays, nil
}
