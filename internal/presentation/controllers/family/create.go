package family

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"github.com/controledecontas/expenses-backend/internal/utils"
	"github.com/go-playground/validator/v10"
)

const maxJoinCodeAttempts = 5

type CreateFamilyController struct {
	AuthenticateUser           usecase.AuthenticateUser
	FindFamilyByCodeRepository usecase.FindFamilyByCodeRepository
	CreateFamilyRepository     usecase.CreateFamilyRepository
	AddUserFamilyRepository    usecase.AddUserFamilyRepository
	Validate                   *validator.Validate
}

func NewCreateFamilyController(
	authenticate usecase.AuthenticateUser,
	findByCode usecase.FindFamilyByCodeRepository,
	createFamily usecase.CreateFamilyRepository,
	addUserFamily usecase.AddUserFamilyRepository,
) *CreateFamilyController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateFamilyController{
		AuthenticateUser:           authenticate,
		FindFamilyByCodeRepository: findByCode,
		CreateFamilyRepository:     createFamily,
		AddUserFamilyRepository:    addUserFamily,
		Validate:                   validate,
	}
}

type CreateFamilyControllerBody struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	UserId      string `json:"userId" validate:"required"`
	DeviceToken string `json:"deviceToken" validate:"required"`
}

type CreateFamilyControllerResponse struct {
	Message string         `json:"message"`
	Family  *models.Family `json:"family"`
}

func (c *CreateFamilyController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateFamilyControllerBody
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

	code, err := c.generateUnusedCode()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao gerar código da família",
		}, http.StatusInternalServerError)
	}

	family, err := c.CreateFamilyRepository.Create(&models.FamilyInput{
		Name:      body.Name,
		Code:      code,
		CreatedBy: user.Id,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao criar família",
		}, http.StatusInternalServerError)
	}

	if err := c.AddUserFamilyRepository.Add(user.Id, family.Id); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao vincular família ao usuário",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&CreateFamilyControllerResponse{
		Message: "Família criada!",
		Family:  family,
	}, http.StatusCreated)
}

// generateUnusedCode retries generation while the code is already taken
// instead of assuming the random space is collision-free.
func (c *CreateFamilyController) generateUnusedCode() (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxJoinCodeAttempts; attempt++ {
		code, err := utils.GenerateJoinCode()
		if err != nil {
			return "", err
		}

		existing, err := c.FindFamilyByCodeRepository.Find(code)
		if err != nil {
			lastErr = err
			continue
		}
		if existing == nil {
			return code, nil
		}
	}

	if lastErr == nil {
		lastErr = errors.New("não foi possível gerar um código de família único")
	}
	return "", lastErr
}
