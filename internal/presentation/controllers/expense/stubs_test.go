package expense

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubAuthenticateUser struct {
	user *models.User
	err  error
}

func (s *stubAuthenticateUser) Authenticate(userId string, credential models.Credential) (*models.User, error) {
	return s.user, s.err
}

type stubFindFamilyById struct {
	family *models.Family
	err    error
}

func (s *stubFindFamilyById) Find(primitive.ObjectID) (*models.Family, error) {
	return s.family, s.err
}

type stubCreateExpense struct {
	input *models.ExpenseInput
	err   error
}

func (s *stubCreateExpense) Create(input *models.ExpenseInput) (*models.Expense, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.input = input

	id := primitive.NewObjectID()
	if input.Id != nil {
		id = *input.Id
	}
	return &models.Expense{
		Id:          id,
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		DueDate:     input.DueDate,
		PaymentType: input.PaymentType,
		Responsavel: input.Responsavel,
		Notes:       input.Notes,
		UserId:      input.UserId,
		FamilyId:    input.FamilyId,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

type stubAttachToUser struct {
	entries []*models.HistoryEntry
	err     error
}

func (s *stubAttachToUser) Attach(userId primitive.ObjectID, expenseId primitive.ObjectID, entry *models.HistoryEntry) error {
	s.entries = append(s.entries, entry)
	return s.err
}

type stubAttachToFamily struct {
	attached []primitive.ObjectID
	err      error
}

func (s *stubAttachToFamily) Attach(familyId primitive.ObjectID, expenseId primitive.ObjectID) error {
	s.attached = append(s.attached, expenseId)
	return s.err
}

type stubFindExpenseById struct {
	expense *models.Expense
	err     error
}

func (s *stubFindExpenseById) Find(primitive.ObjectID) (*models.Expense, error) {
	return s.expense, s.err
}

type stubDeleteExpense struct {
	deleted []primitive.ObjectID
	err     error
}

func (s *stubDeleteExpense) Delete(expenseId primitive.ObjectID) error {
	s.deleted = append(s.deleted, expenseId)
	return s.err
}

type stubDetachFromUser struct {
	entries []*models.HistoryEntry
	err     error
}

func (s *stubDetachFromUser) Detach(userId primitive.ObjectID, expenseId primitive.ObjectID, entry *models.HistoryEntry) error {
	s.entries = append(s.entries, entry)
	return s.err
}

type stubDetachFromFamily struct {
	detached []primitive.ObjectID
	err      error
}

func (s *stubDetachFromFamily) Detach(familyId primitive.ObjectID, expenseId primitive.ObjectID) error {
	s.detached = append(s.detached, expenseId)
	return s.err
}

type stubDeleteReportCache struct {
	keys []string
}

func (s *stubDeleteReportCache) Delete(keys ...string) error {
	s.keys = append(s.keys, keys...)
	return nil
}

type stubFindPersonalExpenses struct {
	expenses []models.Expense
	err      error
}

func (s *stubFindPersonalExpenses) Find(primitive.ObjectID) ([]models.Expense, error) {
	return s.expenses, s.err
}

type stubFindFamilyExpenses struct {
	expenses []models.Expense
	err      error
}

func (s *stubFindFamilyExpenses) Find(primitive.ObjectID) ([]models.Expense, error) {
	return s.expenses, s.err
}

type stubFindUsersByIds struct {
	users []models.User
	err   error
}

func (s *stubFindUsersByIds) Find([]primitive.ObjectID) ([]models.User, error) {
	return s.users, s.err
}

func jsonRequest(t *testing.T, method string, target string, body any, pathValues map[string]string) presentationProtocols.HttpRequest {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	for key, value := range pathValues {
		req.SetPathValue(key, value)
	}

	return presentationProtocols.HttpRequest{
		Body:      io.NopCloser(bytes.NewReader(payload)),
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func decodeResponse(t *testing.T, response *presentationProtocols.HttpResponse, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(response.Body).Decode(out))
}
