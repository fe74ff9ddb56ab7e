package history

import (
	"encoding/json"
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateHistoryEntryController struct {
	AuthenticateUser           usecase.AuthenticateUser
	AddUserHistoryRepository   usecase.AddUserHistoryRepository
	FindFamilyByIdRepository   usecase.FindFamilyByIdRepository
	AddFamilyHistoryRepository usecase.AddFamilyHistoryRepository
	Validate                   *validator.Validate
}

func NewCreateHistoryEntryController(
	authenticate usecase.AuthenticateUser,
	addUserHistory usecase.AddUserHistoryRepository,
	findFamilyById usecase.FindFamilyByIdRepository,
	addFamilyHistory usecase.AddFamilyHistoryRepository,
) *CreateHistoryEntryController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateHistoryEntryController{
		AuthenticateUser:           authenticate,
		AddUserHistoryRepository:   addUserHistory,
		FindFamilyByIdRepository:   findFamilyById,
		AddFamilyHistoryRepository: addFamilyHistory,
		Validate:                   validate,
	}
}

type CreateHistoryEntryControllerBody struct {
	Action      string `json:"action" validate:"required,max=100"`
	Details     string `json:"details" validate:"max=200"`
	FamilyId    string `json:"familyId"`
	UserId      string `json:"userId" validate:"required"`
	DeviceToken string `json:"deviceToken" validate:"required"`
}

type CreateHistoryEntryControllerResponse struct {
	Message string               `json:"message"`
	Entry   *models.HistoryEntry `json:"entry"`
}

func (c *CreateHistoryEntryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateHistoryEntryControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "corpo da requisição inválido",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
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

	if body.FamilyId != "" {
		return c.handleFamilyEntry(user, &body)
	}

	entry, err := c.AddUserHistoryRepository.Add(user.Id, &models.HistoryEntry{
		Action:  body.Action,
		Details: body.Details,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao salvar histórico",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&CreateHistoryEntryControllerResponse{
		Message: "Histórico registrado",
		Entry:   entry,
	}, http.StatusCreated)
}

func (c *CreateHistoryEntryController) handleFamilyEntry(user *models.User, body *CreateHistoryEntryControllerBody) *presentationProtocols.HttpResponse {
	familyId, err := primitive.ObjectIDFromHex(body.FamilyId)
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

	entry, err := c.AddFamilyHistoryRepository.Add(family.Id, &models.HistoryEntry{
		Action:  body.Action,
		Details: body.Details,
		UserId:  &user.Id,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao salvar histórico",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&CreateHistoryEntryControllerResponse{
		Message: "Histórico registrado",
		Entry:   entry,
	}, http.StatusCreated)
}
