package auth

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

type AuthController struct {
	AuthUsecase AuthUsecase
	Log         *zap.Logger
}

func NewAuthController(authUsecase AuthUsecase, logger *zap.Logger) *AuthController {
	return &AuthController{
		AuthUsecase: authUsecase,
		Log:         logger,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeLoginRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.AuthUsecase.Login(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, result)
}

func (ctrl *AuthController) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)

	user, err := ctrl.AuthUsecase.GetCurrentUser(r.Context(), session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserProfileFetchSuccess, user)
}
