package user

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
)

type GetUserByUsernameController struct {
	FindUserByUsernameRepository usecase.FindUserByUsernameRepository
}

func NewGetUserByUsernameController(findByUsername usecase.FindUserByUsernameRepository) *GetUserByUsernameController {
	return &GetUserByUsernameController{
		FindUserByUsernameRepository: findByUsername,
	}
}

func (c *GetUserByUsernameController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	deviceToken := r.UrlParams.Get("deviceToken")
	if deviceToken == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Token obrigatório",
		}, http.StatusBadRequest)
	}

	user, err := c.FindUserByUsernameRepository.Find(r.Req.PathValue("username"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao buscar usuário",
		}, http.StatusInternalServerError)
	}

	// A username with a wrong token answers the same as a missing user, so
	// the route never confirms which usernames exist.
	if user == nil || !models.NewCredential(deviceToken).Matches(user.DeviceToken) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Usuário não encontrado ou token inválido",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(user, http.StatusOK)
}
