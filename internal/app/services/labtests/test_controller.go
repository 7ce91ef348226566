package labtests

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

type TestController struct {
	TestUsecase TestUsecase
	Log         *zap.Logger
}

func NewTestController(testUsecase TestUsecase, logger *zap.Logger) *TestController {
	return &TestController{
		TestUsecase: testUsecase,
		Log:         logger,
	}
}

func (ctrl *TestController) CreateTest(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateTest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateTestRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)

	test, err := ctrl.TestUsecase.CreateTest(r.Context(), session.UserID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.TestCreatedSuccess, test)
}

func (ctrl *TestController) GetAllTests(w http.ResponseWriter, r *http.Request) {
	tests, err := ctrl.TestUsecase.GetAllTests(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TestsFetchedSuccess, tests)
}
