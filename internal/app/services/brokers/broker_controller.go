package brokers

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

type BrokerController struct {
	BrokerUsecase BrokerUsecase
	Log           *zap.Logger
}

func NewBrokerController(brokerUsecase BrokerUsecase, logger *zap.Logger) *BrokerController {
	return &BrokerController{
		BrokerUsecase: brokerUsecase,
		Log:           logger,
	}
}

func (ctrl *BrokerController) CreateBroker(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBroker)
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

	broker, err := ctrl.BrokerUsecase.CreateBroker(r.Context(), session.UserID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BrokerCreatedSuccess, broker)
}

func (ctrl *BrokerController) GetAllBrokers(w http.ResponseWriter, r *http.Request) {
	brokers, err := ctrl.BrokerUsecase.GetAllBrokers(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BrokersFetchedSuccess, brokers)
}
