package expense

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateExpenseController struct {
	AuthenticateUser                usecase.AuthenticateUser
	FindFamilyByIdRepository        usecase.FindFamilyByIdRepository
	CreateExpenseRepository         usecase.CreateExpenseRepository
	AttachExpenseToUserRepository   usecase.AttachExpenseToUserRepository
	AttachExpenseToFamilyRepository usecase.AttachExpenseToFamilyRepository
	DeleteReportCacheRepository     usecase.DeleteReportCacheRepository
	Validate                        *validator.Validate
}

func NewCreateExpenseController(
	authenticate usecase.AuthenticateUser,
	findFamilyById usecase.FindFamilyByIdRepository,
	createExpense usecase.CreateExpenseRepository,
	attachToUser usecase.AttachExpenseToUserRepository,
	attachToFamily usecase.AttachExpenseToFamilyRepository,
	deleteReportCache usecase.DeleteReportCacheRepository,
) *CreateExpenseController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateExpenseController{
		AuthenticateUser:                authenticate,
		FindFamilyByIdRepository:        findFamilyById,
		CreateExpenseRepository:         createExpense,
		AttachExpenseToUserRepository:   attachToUser,
		AttachExpenseToFamilyRepository: attachToFamily,
		DeleteReportCacheRepository:     deleteReportCache,
		Validate:                        validate,
	}
}

type CreateExpenseControllerBody struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,min=0"`
	Type        string  `json:"type" validate:"required,oneof=expense income"`
	DueDate     string  `json:"dueDate" validate:"required"`
	PaymentType string  `json:"paymentType" validate:"required,oneof=dinheiro cartão boleto transferência outro"`
	Responsavel string  `json:"responsavel"`
	Notes       string  `json:"notes"`
	UserId      string  `json:"userId" validate:"required"`
	FamilyId    string  `json:"familyId"`
	DeviceToken string  `json:"deviceToken" validate:"required"`
}

type CreateExpenseControllerResponse struct {
	Message string          `json:"message"`
	Expense *models.Expense `json:"expense"`
}

func (c *CreateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateExpenseControllerBody
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

	dueDate, err := helpers.ParseDate(body.DueDate)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "data de vencimento inválida",
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

	var familyId *primitive.ObjectID
	if body.FamilyId != "" {
		id, err := primitive.ObjectIDFromHex(body.FamilyId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "formato de familyId inválido",
			}, http.StatusBadRequest)
		}

		family, err := c.FindFamilyByIdRepository.Find(id)
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

		familyId = &id
	}

	expense, err := c.CreateExpenseRepository.Create(&models.ExpenseInput{
		Description: body.Description,
		Amount:      body.Amount,
		Type:        body.Type,
		DueDate:     dueDate,
		PaymentType: body.PaymentType,
		Responsavel: body.Responsavel,
		Notes:       body.Notes,
		UserId:      user.Id,
		FamilyId:    familyId,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Erro ao salvar despesa",
		}, http.StatusInternalServerError)
	}

	entry := &models.HistoryEntry{
		Action:  historyAction(expense.Type, "adicionada"),
		Details: fmt.Sprintf("%s - R$ %.2f", expense.Description, expense.Amount),
	}
	if err := c.AttachExpenseToUserRepository.Attach(user.Id, expense.Id, entry); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao vincular despesa ao usuário",
		}, http.StatusInternalServerError)
	}

	if familyId != nil {
		if err := c.AttachExpenseToFamilyRepository.Attach(*familyId, expense.Id); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "erro ao vincular despesa à família",
			}, http.StatusInternalServerError)
		}
	}

	if c.DeleteReportCacheRepository != nil {
		c.DeleteReportCacheRepository.Delete(
			helpers.WeeklyReportCacheKey(user.Id),
			helpers.MonthlyReportCacheKey(user.Id),
		)
	}

	return helpers.CreateResponse(&CreateExpenseControllerResponse{
		Message: "Despesa adicionada!",
		Expense: expense,
	}, http.StatusCreated)
}

func historyAction(kind string, verb string) string {
	if kind == models.ExpenseKindIncome {
		return "Receita " + verb
	}
	return "Despesa " + verb
}
