package user

import (
	"encoding/json"
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
)

type UpdateUserSettingsController struct {
	AuthenticateUser             usecase.AuthenticateUser
	UpdateUserSettingsRepository usecase.UpdateUserSettingsRepository
}

func NewUpdateUserSettingsController(
	authenticate usecase.AuthenticateUser,
	updateSettings usecase.UpdateUserSettingsRepository,
) *UpdateUserSettingsController {
	return &UpdateUserSettingsController{
		AuthenticateUser:             authenticate,
		UpdateUserSettingsRepository: updateSettings,
	}
}

type UpdateUserSettingsControllerBody struct {
	DeviceToken string              `json:"deviceToken"`
	Settings    models.UserSettings `json:"settings"`
}

type UpdateUserSettingsControllerResponse struct {
	Success  bool                 `json:"success"`
	Settings *models.UserSettings `json:"settings"`
}

func (c *UpdateUserSettingsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateUserSettingsControllerBody
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

	settings, err := c.UpdateUserSettingsRepository.Update(user.Id, &body.Settings)
	if err != nil || settings == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao atualizar configurações",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&UpdateUserSettingsControllerResponse{
		Success:  true,
		Settings: settings,
	}, http.StatusOK)
}
