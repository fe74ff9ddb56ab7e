package expense

import (
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetExpensesController struct {
	AuthenticateUser               usecase.AuthenticateUser
	FindFamilyByIdRepository       usecase.FindFamilyByIdRepository
	FindPersonalExpensesRepository usecase.FindPersonalExpensesRepository
	FindFamilyExpensesRepository   usecase.FindFamilyExpensesRepository
	FindUsersByIdsRepository       usecase.FindUsersByIdsRepository
}

func NewGetExpensesController(
	authenticate usecase.AuthenticateUser,
	findFamilyById usecase.FindFamilyByIdRepository,
	findPersonal usecase.FindPersonalExpensesRepository,
	findByFamily usecase.FindFamilyExpensesRepository,
	findUsersByIds usecase.FindUsersByIdsRepository,
) *GetExpensesController {
	return &GetExpensesController{
		AuthenticateUser:               authenticate,
		FindFamilyByIdRepository:       findFamilyById,
		FindPersonalExpensesRepository: findPersonal,
		FindFamilyExpensesRepository:   findByFamily,
		FindUsersByIdsRepository:       findUsersByIds,
	}
}

// ExpenseUser is the contributor's display identity attached to family
// listings. The credential digest never rides along.
type ExpenseUser struct {
	Id        primitive.ObjectID `json:"id"`
	Username  string             `json:"username"`
	PhotoPath string             `json:"photoPath"`
}

type FamilyExpenseItem struct {
	models.Expense
	User *ExpenseUser `json:"user,omitempty"`
}

func (c *GetExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	familyIdParam := r.UrlParams.Get("familyId")
	if familyIdParam == "" {
		expenses, err := c.FindPersonalExpensesRepository.Find(user.Id)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "erro ao buscar despesas",
			}, http.StatusInternalServerError)
		}

		return helpers.CreateResponse(expenses, http.StatusOK)
	}

	familyId, err := primitive.ObjectIDFromHex(familyIdParam)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "formato de familyId inválido",
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

	expenses, err := c.FindFamilyExpensesRepository.Find(familyId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao buscar despesas",
		}, http.StatusInternalServerError)
	}

	items, err := c.withContributors(expenses)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao buscar membros da família",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(items, http.StatusOK)
}

func (c *GetExpensesController) withContributors(expenses []models.Expense) ([]FamilyExpenseItem, error) {
	seen := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID
	for _, expense := range expenses {
		if !seen[expense.UserId] {
			seen[expense.UserId] = true
			ids = append(ids, expense.UserId)
		}
	}

	contributors := make(map[primitive.ObjectID]*ExpenseUser)
	if len(ids) > 0 {
		users, err := c.FindUsersByIdsRepository.Find(ids)
		if err != nil {
			return nil, err
		}
		for i := range users {
			contributors[users[i].Id] = &ExpenseUser{
				Id:        users[i].Id,
				Username:  users[i].Username,
				PhotoPath: users[i].PhotoPath,
			}
		}
	}

	items := make([]FamilyExpenseItem, 0, len(expenses))
	for _, expense := range expenses {
		items = append(items, FamilyExpenseItem{
			Expense: expense,
			User:    contributors[expense.UserId],
		})
	}

	return items, nil
}
