package date

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
)

type GetImportantDatesController struct {
	AuthenticateUser usecase.AuthenticateUser
}

func NewGetImportantDatesController(authenticate usecase.AuthenticateUser) *GetImportantDatesController {
	return &GetImportantDatesController{
		AuthenticateUser: authenticate,
	}
}

func (c *GetImportantDatesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	user, err := c.AuthenticateUser.Authenticate(r.Req.PathValue("userId"), models.NewCredential(r.UrlParams.Get("deviceToken")))
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

	return helpers.CreateResponse(user.ImportantDates, http.StatusOK)
}
