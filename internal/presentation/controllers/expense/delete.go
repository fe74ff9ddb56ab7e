package expense

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteExpenseController struct {
	AuthenticateUser                  usecase.AuthenticateUser
	FindExpenseByIdRepository         usecase.FindExpenseByIdRepository
	DeleteExpenseRepository           usecase.DeleteExpenseRepository
	DetachExpenseFromUserRepository   usecase.DetachExpenseFromUserRepository
	DetachExpenseFromFamilyRepository usecase.DetachExpenseFromFamilyRepository
	DeleteReportCacheRepository       usecase.DeleteReportCacheRepository
}

func NewDeleteExpenseController(
	authenticate usecase.AuthenticateUser,
	findExpenseById usecase.FindExpenseByIdRepository,
	deleteExpense usecase.DeleteExpenseRepository,
	detachFromUser usecase.DetachExpenseFromUserRepository,
	detachFromFamily usecase.DetachExpenseFromFamilyRepository,
	deleteReportCache usecase.DeleteReportCacheRepository,
) *DeleteExpenseController {
	return &DeleteExpenseController{
		AuthenticateUser:                  authenticate,
		FindExpenseByIdRepository:         findExpenseById,
		DeleteExpenseRepository:           deleteExpense,
		DetachExpenseFromUserRepository:   detachFromUser,
		DetachExpenseFromFamilyRepository: detachFromFamily,
		DeleteReportCacheRepository:       deleteReportCache,
	}
}

type DeleteExpenseControllerBody struct {
	UserId      string `json:"userId"`
	DeviceToken string `json:"deviceToken"`
}

func (c *DeleteExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body DeleteExpenseControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "corpo da requisição inválido",
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

	expenseId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "formato de id inválido",
		}, http.StatusBadRequest)
	}

	expense, err := c.FindExpenseByIdRepository.Find(expenseId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao buscar despesa",
		}, http.StatusInternalServerError)
	}

	// A non-owner gets the same answer as a missing record: the expense is
	// not theirs to see or delete.
	if expense == nil || expense.UserId != user.Id {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Despesa não encontrada",
		}, http.StatusNotFound)
	}

	if err := c.DeleteExpenseRepository.Delete(expense.Id); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao remover despesa",
		}, http.StatusInternalServerError)
	}

	entry := &models.HistoryEntry{
		Action:  historyAction(expense.Type, "removida"),
		Details: fmt.Sprintf("%s - R$ %.2f", expense.Description, expense.Amount),
	}
	if err := c.DetachExpenseFromUserRepository.Detach(user.Id, expense.Id, entry); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao desvincular despesa do usuário",
		}, http.StatusInternalServerError)
	}

	if expense.FamilyId != nil {
		if err := c.DetachExpenseFromFamilyRepository.Detach(*expense.FamilyId, expense.Id); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "erro ao desvincular despesa da família",
			}, http.StatusInternalServerError)
		}
	}

	if c.DeleteReportCacheRepository != nil {
		c.DeleteReportCacheRepository.Delete(
			helpers.WeeklyReportCacheKey(user.Id),
			helpers.MonthlyReportCacheKey(user.Id),
		)
	}

	return helpers.CreateResponse(map[string]bool{"success": true}, http.StatusOK)
}
