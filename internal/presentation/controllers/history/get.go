package history

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetHistoryController struct {
	AuthenticateUser         usecase.AuthenticateUser
	FindFamilyByIdRepository usecase.FindFamilyByIdRepository
}

func NewGetHistoryController(
	authenticate usecase.AuthenticateUser,
	findFamilyById usecase.FindFamilyByIdRepository,
) *GetHistoryController {
	return &GetHistoryController{
		AuthenticateUser:         authenticate,
		FindFamilyByIdRepository: findFamilyById,
	}
}

func (c *GetHistoryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	familyIdHex := r.UrlParams.Get("familyId")
	if familyIdHex == "" {
		return helpers.CreateResponse(user.History, http.StatusOK)
	}

	familyId, err := primitive.ObjectIDFromHex(familyIdHex)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "formato de id de família inválido",
		}, http.StatusBadRequest)
	}

	family, err := c.FindFamilyByIdRepository.Find(familyId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao buscar família",
		}, http.StatusInternalServerError)
	}
	if family == nil || !family.HasMember(user.Id) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Não autorizado",
		}, http.StatusForbidden)
	}

	return helpers.CreateResponse(family.History, http.StatusOK)
}
