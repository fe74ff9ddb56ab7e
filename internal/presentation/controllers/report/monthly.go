package report

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
)

type MonthlyReportController struct {
	AuthenticateUser               usecase.AuthenticateUser
	FindExpensesByPeriodRepository usecase.FindExpensesByPeriodRepository
	FindReportCacheRepository      usecase.FindReportCacheRepository
	SaveReportCacheRepository      usecase.SaveReportCacheRepository
}

func NewMonthlyReportController(
	authenticate usecase.AuthenticateUser,
	findByPeriod usecase.FindExpensesByPeriodRepository,
	findCache usecase.FindReportCacheRepository,
	saveCache usecase.SaveReportCacheRepository,
) *MonthlyReportController {
	return &MonthlyReportController{
		AuthenticateUser:               authenticate,
		FindExpensesByPeriodRepository: findByPeriod,
		FindReportCacheRepository:      findCache,
		SaveReportCacheRepository:      saveCache,
	}
}

type MonthlyReportControllerResponse struct {
	Expenses  []models.Expense          `json:"expenses"`
	ChartData *helpers.MonthlyChartData `json:"chartData"`
}

func (c *MonthlyReportController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	cacheKey := helpers.MonthlyReportCacheKey(user.Id)
	if c.FindReportCacheRepository != nil {
		if payload, err := c.FindReportCacheRepository.Find(cacheKey); err == nil && payload != "" {
			return cachedResponse(payload)
		}
	}

	from, to := helpers.MonthBounds(time.Now())
	expenses, err := c.FindExpensesByPeriodRepository.Find(user.Id, from, to)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao buscar despesas do mês",
		}, http.StatusInternalServerError)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	response := &MonthlyReportControllerResponse{
		Expenses:  expenses,
		ChartData: helpers.BuildMonthlyChart(expenses),
	}

	if c.SaveReportCacheRepository != nil {
		if payload, err := json.Marshal(response); err == nil {
			c.SaveReportCacheRepository.Save(cacheKey, string(payload), reportCacheTTL)
		}
	}

	return helpers.CreateResponse(response, http.StatusOK)
}
