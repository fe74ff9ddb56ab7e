package date

import (
	"encoding/json"
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type CreateImportantDateController struct {
	AuthenticateUser           usecase.AuthenticateUser
	AddImportantDateRepository usecase.AddImportantDateRepository
	Validate                   *validator.Validate
}

func NewCreateImportantDateController(
	authenticate usecase.AuthenticateUser,
	addImportantDate usecase.AddImportantDateRepository,
) *CreateImportantDateController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateImportantDateController{
		AuthenticateUser:           authenticate,
		AddImportantDateRepository: addImportantDate,
		Validate:                   validate,
	}
}

type CreateImportantDateControllerBody struct {
	Title       string `json:"title" validate:"required,max=50"`
	Date        string `json:"date" validate:"required"`
	Notes       string `json:"notes" validate:"max=200"`
	UserId      string `json:"userId" validate:"required"`
	DeviceToken string `json:"deviceToken" validate:"required"`
}

type CreateImportantDateControllerResponse struct {
	Message string                `json:"message"`
	Date    *models.ImportantDate `json:"date"`
}

func (c *CreateImportantDateController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateImportantDateControllerBody
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

	when, err := helpers.ParseDate(body.Date)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "data inválida",
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

	date, err := c.AddImportantDateRepository.Add(user.Id, &models.ImportantDate{
		Title: body.Title,
		Date:  when,
		Notes: body.Notes,
	}, &models.HistoryEntry{
		Action:  "Data importante adicionada",
		Details: body.Title + " - " + when.Format("02/01/2006"),
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao salvar data importante",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&CreateImportantDateControllerResponse{
		Message: "Data adicionada",
		Date:    date,
	}, http.StatusCreated)
}
