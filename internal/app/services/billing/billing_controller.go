package billing

import (
	"net/http"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/exceptions"
	"medibill-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BillingController struct {
	BillingUsecase BillingUsecase
	Log            *zap.Logger
}

func NewBillingController(billingUsecase BillingUsecase, logger *zap.Logger) *BillingController {
	return &BillingController{
		BillingUsecase: billingUsecase,
		Log:            logger,
	}
}

func (ctrl *BillingController) GenerateBill(w http.ResponseWriter, r *http.Request) {
	request := new(requests.GenerateBill)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeGenerateBillRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)

	bill, err := ctrl.BillingUsecase.GenerateBill(r.Context(), session.UserID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BillGeneratedSuccess, bill)
}

func (ctrl *BillingController) UpdateBill(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, "billID")

	request := new(requests.GenerateBill)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeGenerateBillRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	bill, err := ctrl.BillingUsecase.UpdateBill(r.Context(), billID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillUpdatedSuccess, bill)
}

func (ctrl *BillingController) GetAllBills(w http.ResponseWriter, r *http.Request) {
	bills, err := ctrl.BillingUsecase.GetAllBills(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillsFetchedSuccess, bills)
}

func (ctrl *BillingController) GetBillByID(w http.ResponseWriter, r *http.Request) {
	billID := chi.URLParam(r, "billID")

	bill, err := ctrl.BillingUsecase.GetBillByID(r.Context(), billID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillFetchedSuccess, bill)
}

func (ctrl *BillingController) SearchBills(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	bills, err := ctrl.BillingUsecase.SearchBills(r.Context(), query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillsFetchedSuccess, bills)
}

func (ctrl *BillingController) GetDoctorProfile(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	profile, err := ctrl.BillingUsecase.GetDoctorProfile(r.Context(), doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorFetchedSuccess, profile)
}

func (ctrl *BillingController) GetHospitalProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := ctrl.BillingUsecase.GetHospitalProfile(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalProfileFetchedSuccess, profile)
}

func (ctrl *BillingController) GetBrokerProfile(w http.ResponseWriter, r *http.Request) {
	brokerID := chi.URLParam(r, "brokerID")

	profile, err := ctrl.BillingUsecase.GetBrokerProfile(r.Context(), brokerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BrokerFetchedSuccess, profile)
}
