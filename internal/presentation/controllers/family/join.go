package family

import (
	"encoding/json"
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type JoinFamilyController struct {
	AuthenticateUser           usecase.AuthenticateUser
	FindFamilyByCodeRepository usecase.FindFamilyByCodeRepository
	AddFamilyMemberRepository  usecase.AddFamilyMemberRepository
	AddUserFamilyRepository    usecase.AddUserFamilyRepository
	AddFamilyHistoryRepository usecase.AddFamilyHistoryRepository
	Validate                   *validator.Validate
}

func NewJoinFamilyController(
	authenticate usecase.AuthenticateUser,
	findByCode usecase.FindFamilyByCodeRepository,
	addMember usecase.AddFamilyMemberRepository,
	addUserFamily usecase.AddUserFamilyRepository,
	addFamilyHistory usecase.AddFamilyHistoryRepository,
) *JoinFamilyController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &JoinFamilyController{
		AuthenticateUser:           authenticate,
		FindFamilyByCodeRepository: findByCode,
		AddFamilyMemberRepository:  addMember,
		AddUserFamilyRepository:    addUserFamily,
		AddFamilyHistoryRepository: addFamilyHistory,
		Validate:                   validate,
	}
}

type JoinFamilyControllerBody struct {
	Code        string `json:"code" validate:"required,len=6"`
	UserId      string `json:"userId" validate:"required"`
	DeviceToken string `json:"deviceToken" validate:"required"`
}

type JoinFamilyControllerResponse struct {
	Message string         `json:"message"`
	Family  *models.Family `json:"family"`
}

func (c *JoinFamilyController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body JoinFamilyControllerBody
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

	family, err := c.FindFamilyByCodeRepository.Find(body.Code)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao buscar família",
		}, http.StatusInternalServerError)
	}
	if family == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Família não encontrada",
		}, http.StatusNotFound)
	}

	if family.HasMember(user.Id) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Você já é membro desta família",
		}, http.StatusBadRequest)
	}

	if err := c.AddFamilyMemberRepository.Add(family.Id, user.Id); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao entrar na família",
		}, http.StatusInternalServerError)
	}

	if err := c.AddUserFamilyRepository.Add(user.Id, family.Id); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao vincular família ao usuário",
		}, http.StatusInternalServerError)
	}

	c.AddFamilyHistoryRepository.Add(family.Id, &models.HistoryEntry{
		Action:  "Novo membro",
		Details: user.Username + " entrou na família",
		UserId:  &user.Id,
	})

	family.Members = append(family.Members, user.Id)

	return helpers.CreateResponse(&JoinFamilyControllerResponse{
		Message: "Você entrou na família!",
		Family:  family,
	}, http.StatusOK)
}
