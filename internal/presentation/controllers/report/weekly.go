package report

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
)

const reportCacheTTL = 10 * time.Minute

type WeeklyReportController struct {
	AuthenticateUser               usecase.AuthenticateUser
	FindExpensesByPeriodRepository usecase.FindExpensesByPeriodRepository
	FindReportCacheRepository      usecase.FindReportCacheRepository
	SaveReportCacheRepository      usecase.SaveReportCacheRepository
}

func NewWeeklyReportController(
	authenticate usecase.AuthenticateUser,
	findByPeriod usecase.FindExpensesByPeriodRepository,
	findCache usecase.FindReportCacheRepository,
	saveCache usecase.SaveReportCacheRepository,
) *WeeklyReportController {
	return &WeeklyReportController{
		AuthenticateUser:               authenticate,
		FindExpensesByPeriodRepository: findByPeriod,
		FindReportCacheRepository:      findCache,
		SaveReportCacheRepository:      saveCache,
	}
}

type WeeklyReportControllerResponse struct {
	Expenses  []models.Expense         `json:"expenses"`
	ChartData *helpers.WeeklyChartData `json:"chartData"`
}

func (c *WeeklyReportController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	cacheKey := helpers.WeeklyReportCacheKey(user.Id)
	if c.FindReportCacheRepository != nil {
		if payload, err := c.FindReportCacheRepository.Find(cacheKey); err == nil && payload != "" {
			return cachedResponse(payload)
		}
	}

	from, to := helpers.WeekBounds(time.Now())
	expenses, err := c.FindExpensesByPeriodRepository.Find(user.Id, from, to)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao buscar despesas da semana",
		}, http.StatusInternalServerError)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	response := &WeeklyReportControllerResponse{
		Expenses:  expenses,
		ChartData: helpers.BuildWeeklyChart(expenses),
	}

	c.saveToCache(cacheKey, response)

	return helpers.CreateResponse(response, http.StatusOK)
}

func (c *WeeklyReportController) saveToCache(key string, response *WeeklyReportControllerResponse) {
	if c.SaveReportCacheRepository == nil {
		return
	}
	if payload, err := json.Marshal(response); err == nil {
		c.SaveReportCacheRepository.Save(key, string(payload), reportCacheTTL)
	}
}

func cachedResponse(payload string) *presentationProtocols.HttpResponse {
	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader([]byte(payload))),
		StatusCode: http.StatusOK,
	}
}
