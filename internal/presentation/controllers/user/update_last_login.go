package user

import (
	"encoding/json"
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
)

type UpdateLastLoginController struct {
	AuthenticateUser          usecase.AuthenticateUser
	UpdateLastLoginRepository usecase.UpdateLastLoginRepository
}

func NewUpdateLastLoginController(
	authenticate usecase.AuthenticateUser,
	updateLastLogin usecase.UpdateLastLoginRepository,
) *UpdateLastLoginController {
	return &UpdateLastLoginController{
		AuthenticateUser:          authenticate,
		UpdateLastLoginRepository: updateLastLogin,
	}
}

type UpdateLastLoginControllerBody struct {
	DeviceToken string `json:"deviceToken"`
}

func (c *UpdateLastLoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateLastLoginControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "corpo da requisição inválido",
		}, http.StatusBadRequest)
	}

	user, err := c.AuthenticateUser.Authenticate(r.Req.PathValue("id"), models.NewCredential(body.DeviceToken))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao autenticar usuário",
		}, http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Usuário não encontrado",
		}, http.StatusNotFound)
	}

	if err := c.UpdateLastLoginRepository.Update(user.Id); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao atualizar último acesso",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(map[string]bool{"success": true}, http.StatusOK)
}
