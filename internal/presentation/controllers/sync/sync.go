package sync

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SyncDataController merges client-buffered offline writes into server state.
// It authenticates once, snapshots the user document, and then processes each
// candidate record independently: duplicates are skipped, failures are logged
// and skipped, and the response carries whatever subset was actually created.
type SyncDataController struct {
	AuthenticateUser                usecase.AuthenticateUser
	CreateExpenseRepository         usecase.CreateExpenseRepository
	FindExpenseByIdRepository       usecase.FindExpenseByIdRepository
	AttachExpenseToUserRepository   usecase.AttachExpenseToUserRepository
	FindFamilyByIdRepository        usecase.FindFamilyByIdRepository
	AttachExpenseToFamilyRepository usecase.AttachExpenseToFamilyRepository
	AddImportantDateRepository      usecase.AddImportantDateRepository
	AddUserHistoryRepository        usecase.AddUserHistoryRepository
	AddFamilyHistoryRepository      usecase.AddFamilyHistoryRepository
	DeleteReportCacheRepository     usecase.DeleteReportCacheRepository
	Validate                        *validator.Validate
}

func NewSyncDataController(
	authenticate usecase.AuthenticateUser,
	createExpense usecase.CreateExpenseRepository,
	findExpenseById usecase.FindExpenseByIdRepository,
	attachExpenseToUser usecase.AttachExpenseToUserRepository,
	findFamilyById usecase.FindFamilyByIdRepository,
	attachExpenseToFamily usecase.AttachExpenseToFamilyRepository,
	addImportantDate usecase.AddImportantDateRepository,
	addUserHistory usecase.AddUserHistoryRepository,
	addFamilyHistory usecase.AddFamilyHistoryRepository,
	deleteReportCache usecase.DeleteReportCacheRepository,
) *SyncDataController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &SyncDataController{
		AuthenticateUser:                authenticate,
		CreateExpenseRepository:         createExpense,
		FindExpenseByIdRepository:       findExpenseById,
		AttachExpenseToUserRepository:   attachExpenseToUser,
		FindFamilyByIdRepository:        findFamilyById,
		AttachExpenseToFamilyRepository: attachExpenseToFamily,
		AddImportantDateRepository:      addImportantDate,
		AddUserHistoryRepository:        addUserHistory,
		AddFamilyHistoryRepository:      addFamilyHistory,
		DeleteReportCacheRepository:     deleteReportCache,
		Validate:                        validate,
	}
}

type SyncExpenseItem struct {
	Id          string  `json:"id"`
	Description string  `json:"description" validate:"required,max=100"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=expense income"`
	DueDate     string  `json:"dueDate" validate:"required"`
	PaymentType string  `json:"paymentType" validate:"required,oneof=dinheiro cartão boleto transferência outro"`
	Responsavel string  `json:"responsavel"`
	Notes       string  `json:"notes" validate:"max=200"`
	FamilyId    string  `json:"familyId"`
}

type SyncImportantDateItem struct {
	Id        string `json:"id"`
	Title     string `json:"title" validate:"required,max=50"`
	Date      string `json:"date" validate:"required"`
	Notes     string `json:"notes" validate:"max=200"`
	CreatedAt string `json:"createdAt"`
}

type SyncHistoryItem struct {
	Id        string `json:"id"`
	Action    string `json:"action" validate:"required,max=100"`
	Details   string `json:"details" validate:"max=200"`
	Timestamp string `json:"timestamp"`
	Scope     string `json:"scope"`
	FamilyId  string `json:"familyId"`
}

type SyncDataControllerBody struct {
	UserId         string                  `json:"userId" validate:"required"`
	DeviceToken    string                  `json:"deviceToken" validate:"required"`
	Expenses       []SyncExpenseItem       `json:"expenses"`
	ImportantDates []SyncImportantDateItem `json:"importantDates"`
	History        []SyncHistoryItem       `json:"history"`
}

type SyncDataControllerResponse struct {
	Expenses []models.Expense       `json:"expenses"`
	Dates    []models.ImportantDate `json:"dates"`
	History  []models.HistoryEntry  `json:"history"`
}

func (c *SyncDataController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body SyncDataControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "corpo da requisição inválido",
		}, http.StatusBadRequest)
	}

	if body.UserId == "" || body.DeviceToken == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Campos obrigatórios",
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

	response := &SyncDataControllerResponse{
		Expenses: []models.Expense{},
		Dates:    []models.ImportantDate{},
		History:  []models.HistoryEntry{},
	}

	families := map[primitive.ObjectID]*models.Family{}

	for i := range body.Expenses {
		created := c.syncExpense(user, families, &body.Expenses[i])
		if created != nil {
			response.Expenses = append(response.Expenses, *created)
		}
	}

	for i := range body.ImportantDates {
		created := c.syncImportantDate(user, &body.ImportantDates[i])
		if created != nil {
			response.Dates = append(response.Dates, *created)
		}
	}

	for i := range body.History {
		created := c.syncHistoryEntry(user, families, &body.History[i])
		if created != nil {
			response.History = append(response.History, *created)
		}
	}

	if len(response.Expenses) > 0 && c.DeleteReportCacheRepository != nil {
		c.DeleteReportCacheRepository.Delete(
			helpers.WeeklyReportCacheKey(user.Id),
			helpers.MonthlyReportCacheKey(user.Id),
		)
	}

	return helpers.CreateResponse(response, http.StatusOK)
}

// syncExpense creates the candidate expense unless a record with its id
// already exists. Synced expenses push list references only; the client
// already recorded the matching history entries offline.
func (c *SyncDataController) syncExpense(user *models.User, families map[primitive.ObjectID]*models.Family, item *SyncExpenseItem) *models.Expense {
	if err := c.Validate.Struct(item); err != nil {
		log.Printf("sync: despesa ignorada: %v", err)
		return nil
	}

	input := &models.ExpenseInput{
		Description: item.Description,
		Amount:      item.Amount,
		Type:        item.Type,
		PaymentType: item.PaymentType,
		Responsavel: item.Responsavel,
		Notes:       item.Notes,
		UserId:      user.Id,
	}

	dueDate, err := helpers.ParseDate(item.DueDate)
	if err != nil {
		log.Printf("sync: despesa ignorada: %v", err)
		return nil
	}
	input.DueDate = dueDate

	if item.Id != "" {
		expenseId, err := primitive.ObjectIDFromHex(item.Id)
		if err != nil {
			log.Printf("sync: despesa ignorada: id inválido %q", item.Id)
			return nil
		}
		existing, err := c.FindExpenseByIdRepository.Find(expenseId)
		if err != nil {
			log.Printf("sync: despesa ignorada: %v", err)
			return nil
		}
		if existing != nil {
			return nil
		}
		input.Id = &expenseId
	}

	var family *models.Family
	if item.FamilyId != "" {
		family = c.lookupFamily(families, item.FamilyId)
		if family == nil || !family.HasMember(user.Id) {
			log.Printf("sync: despesa ignorada: família %q indisponível", item.FamilyId)
			return nil
		}
		input.FamilyId = &family.Id
	}

	expense, err := c.CreateExpenseRepository.Create(input)
	if err != nil {
		log.Printf("sync: despesa ignorada: %v", err)
		return nil
	}

	if err := c.AttachExpenseToUserRepository.Attach(user.Id, expense.Id, nil); err != nil {
		log.Printf("sync: vínculo de despesa com usuário falhou: %v", err)
	}
	if family != nil {
		if err := c.AttachExpenseToFamilyRepository.Attach(family.Id, expense.Id); err != nil {
			log.Printf("sync: vínculo de despesa com família falhou: %v", err)
		}
	}

	return expense
}

// syncImportantDate appends the candidate date unless the snapshot taken at
// authentication already holds its id. Client-supplied ids and creation times
// are kept.
func (c *SyncDataController) syncImportantDate(user *models.User, item *SyncImportantDateItem) *models.ImportantDate {
	if err := c.Validate.Struct(item); err != nil {
		log.Printf("sync: data importante ignorada: %v", err)
		return nil
	}

	date := &models.ImportantDate{
		Title: item.Title,
		Notes: item.Notes,
	}

	when, err := helpers.ParseDate(item.Date)
	if err != nil {
		log.Printf("sync: data importante ignorada: %v", err)
		return nil
	}
	date.Date = when

	if item.Id != "" {
		dateId, err := primitive.ObjectIDFromHex(item.Id)
		if err != nil {
			log.Printf("sync: data importante ignorada: id inválido %q", item.Id)
			return nil
		}
		if user.HasImportantDate(dateId) != nil {
			return nil
		}
		date.Id = dateId
	}

	if item.CreatedAt != "" {
		if createdAt, err := helpers.ParseDate(item.CreatedAt); err == nil {
			date.CreatedAt = createdAt
		}
	}

	created, err := c.AddImportantDateRepository.Add(user.Id, date, nil)
	if err != nil {
		log.Printf("sync: data importante ignorada: %v", err)
		return nil
	}

	return created
}

// syncHistoryEntry appends the candidate entry to the user's or, for family
// scope, the family's log. Family entries from non-members are skipped whole.
func (c *SyncDataController) syncHistoryEntry(user *models.User, families map[primitive.ObjectID]*models.Family, item *SyncHistoryItem) *models.HistoryEntry {
	if err := c.Validate.Struct(item); err != nil {
		log.Printf("sync: histórico ignorado: %v", err)
		return nil
	}

	entry := &models.HistoryEntry{
		Action:  item.Action,
		Details: item.Details,
	}

	if item.Id != "" {
		entryId, err := primitive.ObjectIDFromHex(item.Id)
		if err != nil {
			log.Printf("sync: histórico ignorado: id inválido %q", item.Id)
			return nil
		}
		entry.Id = entryId
	}

	if item.Timestamp != "" {
		if timestamp, err := helpers.ParseDate(item.Timestamp); err == nil {
			entry.Timestamp = timestamp
		}
	}

	if item.Scope == "family" {
		// A family entry with no family cannot have membership verified, so
		// it is skipped whole rather than rewritten as user history.
		if item.FamilyId == "" {
			log.Printf("sync: histórico ignorado: escopo de família sem familyId")
			return nil
		}
		family := c.lookupFamily(families, item.FamilyId)
		if family == nil || !family.HasMember(user.Id) {
			log.Printf("sync: histórico ignorado: família %q indisponível", item.FamilyId)
			return nil
		}
		if !entry.Id.IsZero() && family.HasHistoryEntry(entry.Id) {
			return nil
		}
		entry.UserId = &user.Id
		created, err := c.AddFamilyHistoryRepository.Add(family.Id, entry)
		if err != nil {
			log.Printf("sync: histórico ignorado: %v", err)
			return nil
		}
		family.History = append(family.History, *created)
		return created
	}

	if !entry.Id.IsZero() && user.HasHistoryEntry(entry.Id) {
		return nil
	}

	created, err := c.AddUserHistoryRepository.Add(user.Id, entry)
	if err != nil {
		log.Printf("sync: histórico ignorado: %v", err)
		return nil
	}
	user.History = append(user.History, *created)
	return created
}

// lookupFamily resolves and caches family snapshots so one sync batch reads
// each family at most once.
func (c *SyncDataController) lookupFamily(families map[primitive.ObjectID]*models.Family, familyIdHex string) *models.Family {
	familyId, err := primitive.ObjectIDFromHex(familyIdHex)
	if err != nil {
		return nil
	}
	if family, ok := families[familyId]; ok {
		return family
	}

	family, err := c.FindFamilyByIdRepository.Find(familyId)
	if err != nil {
		log.Printf("sync: falha ao buscar família %s: %v", familyIdHex, err)
		return nil
	}
	families[familyId] = family
	return family
}
