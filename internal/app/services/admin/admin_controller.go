package admin

import (
	"net/http"

	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/exceptions"
	"medibill-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AdminController struct {
	AdminUsecase AdminUsecase
	Log          *zap.Logger
}

func NewAdminController(adminUsecase AdminUsecase, logger *zap.Logger) *AdminController {
	return &AdminController{
		AdminUsecase: adminUsecase,
		Log:          logger,
	}
}

func (ctrl *AdminController) decodeUserAccount(w http.ResponseWriter, r *http.Request) *requests.CreateUserAccount {
	request := new(requests.CreateUserAccount)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return nil
	}

	utils.SanitizeCreateUserAccountRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return nil
	}

	return request
}

func (ctrl *AdminController) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	request := ctrl.decodeUserAccount(w, r)
	if request == nil {
		return
	}

	user, err := ctrl.AdminUsecase.RegisterAdmin(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AdminCreatedSuccess, user)
}

func (ctrl *AdminController) CreateManager(w http.ResponseWriter, r *http.Request) {
	request := ctrl.decodeUserAccount(w, r)
	if request == nil {
		return
	}

	user, err := ctrl.AdminUsecase.CreateManager(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ManagerCreatedSuccess, user)
}

func (ctrl *AdminController) GetAllManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := ctrl.AdminUsecase.GetAllManagers(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ManagersFetchedSuccess, managers)
}

func (ctrl *AdminController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := ctrl.AdminUsecase.GetDashboard(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardFetchedSuccess, dashboard)
}

func (ctrl *AdminController) GetHospitalSettings(w http.ResponseWriter, r *http.Request) {
	hospital, err := ctrl.AdminUsecase.GetHospitalSettings(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalFetchedSuccess, hospital)
}

func (ctrl *AdminController) UpdateHospitalSettings(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateHospitalSettings)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	hospital, err := ctrl.AdminUsecase.UpdateHospitalSettings(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalUpdatedSuccess, hospital)
}
