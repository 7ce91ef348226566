package doctors

import (
	"net/http"

	"medibill-service/internal/app/models"
	"medibill-service/internal/pkg/constvars"
	"medibill-service/internal/pkg/dto/requests"
	"medibill-service/internal/pkg/exceptions"
	"medibill-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	DoctorUsecase DoctorUsecase
	Log           *zap.Logger
}

func NewDoctorController(doctorUsecase DoctorUsecase, logger *zap.Logger) *DoctorController {
	return &DoctorController{
		DoctorUsecase: doctorUsecase,
		Log:           logger,
	}
}

func (ctrl *DoctorController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDoctor)
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

	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)

	doctor, err := ctrl.DoctorUsecase.CreateDoctor(r.Context(), session.UserID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorCreatedSuccess, doctor)
}

func (ctrl *DoctorController) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := ctrl.DoctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsFetchedSuccess, doctors)
}
