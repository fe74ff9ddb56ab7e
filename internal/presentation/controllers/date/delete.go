package date

import (
	"encoding/json"
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteImportantDateController struct {
	AuthenticateUser              usecase.AuthenticateUser
	RemoveImportantDateRepository usecase.RemoveImportantDateRepository
}

func NewDeleteImportantDateController(
	authenticate usecase.AuthenticateUser,
	removeImportantDate usecase.RemoveImportantDateRepository,
) *DeleteImportantDateController {
	return &DeleteImportantDateController{
		AuthenticateUser:              authenticate,
		RemoveImportantDateRepository: removeImportantDate,
	}
}

type DeleteImportantDateControllerBody struct {
	UserId      string `json:"userId"`
	DeviceToken string `json:"deviceToken"`
}

func (c *DeleteImportantDateController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body DeleteImportantDateControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "corpo da requisição inválido",
		}, http.StatusBadRequest)
	}

	user, err := c.AuthenticateUser.Authenticate(body.UserId, models.NewCredential(body.DeviceToken))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao autenticar usuário",
		}, http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Não autorizado",
		}, http.StatusForbidden)
	}

	dateId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "formato de id inválido",
		}, http.StatusBadRequest)
	}

	dateToRemove := user.HasImportantDate(dateId)
	if dateToRemove == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Data não encontrada",
		}, http.StatusNotFound)
	}

	err = c.RemoveImportantDateRepository.Remove(user.Id, dateId, &models.HistoryEntry{
		Action:  "Data importante removida",
		Details: dateToRemove.Title + " - " + dateToRemove.Date.Format("02/01/2006"),
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao remover data importante",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(map[string]bool{"success": true}, http.StatusOK)
}
