package sync

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
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

type stubCreateExpense struct {
	created []*models.ExpenseInput
	err     error
}

func (s *stubCreateExpense) Create(input *models.ExpenseInput) (*models.Expense, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, input)

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
		UserId:      input.UserId,
		FamilyId:    input.FamilyId,
	}, nil
}

type stubFindExpenseById struct {
	existing map[primitive.ObjectID]*models.Expense
}

func (s *stubFindExpenseById) Find(expenseId primitive.ObjectID) (*models.Expense, error) {
	return s.existing[expenseId], nil
}

type stubAttachToUser struct {
	attached []primitive.ObjectID
	entries  []*models.HistoryEntry
}

func (s *stubAttachToUser) Attach(userId primitive.ObjectID, expenseId primitive.ObjectID, entry *models.HistoryEntry) error {
	s.attached = append(s.attached, expenseId)
	s.entries = append(s.entries, entry)
	return nil
}

type stubFindFamilyById struct {
	family *models.Family
}

func (s *stubFindFamilyById) Find(primitive.ObjectID) (*models.Family, error) {
	return s.family, nil
}

type stubAttachToFamily struct {
	attached []primitive.ObjectID
}

func (s *stubAttachToFamily) Attach(familyId primitive.ObjectID, expenseId primitive.ObjectID) error {
	s.attached = append(s.attached, expenseId)
	return nil
}

type stubAddImportantDate struct {
	added []*models.ImportantDate
}

func (s *stubAddImportantDate) Add(userId primitive.ObjectID, date *models.ImportantDate, entry *models.HistoryEntry) (*models.ImportantDate, error) {
	if date.Id.IsZero() {
		date.Id = primitive.NewObjectID()
	}
	s.added = append(s.added, date)
	return date, nil
}

type stubAddUserHistory struct {
	entries []*models.HistoryEntry
}

func (s *stubAddUserHistory) Add(userId primitive.ObjectID, entry *models.HistoryEntry) (*models.HistoryEntry, error) {
	if entry.Id.IsZero() {
		entry.Id = primitive.NewObjectID()
	}
	s.entries = append(s.entries, entry)
	return entry, nil
}

type stubAddFamilyHistory struct {
	entries []*models.HistoryEntry
}

func (s *stubAddFamilyHistory) Add(familyId primitive.ObjectID, entry *models.HistoryEntry) (*models.HistoryEntry, error) {
	if entry.Id.IsZero() {
		entry.Id = primitive.NewObjectID()
	}
	s.entries = append(s.entries, entry)
	return entry, nil
}

type stubDeleteReportCache struct {
	keys []string
}

func (s *stubDeleteReportCache) Delete(keys ...string) error {
	s.keys = append(s.keys, keys...)
	return nil
}

type syncFixture struct {
	controller    *SyncDataController
	createExpense *stubCreateExpense
	findExpense   *stubFindExpenseById
	attachToUser  *stubAttachToUser
	family        *stubFindFamilyById
	attachFamily  *stubAttachToFamily
	addDate       *stubAddImportantDate
	userHistory   *stubAddUserHistory
	familyHistory *stubAddFamilyHistory
	cache         *stubDeleteReportCache
}

func newSyncFixture(user *models.User) *syncFixture {
	f := &syncFixture{
		createExpense: &stubCreateExpense{},
		findExpense:   &stubFindExpenseById{existing: map[primitive.ObjectID]*models.Expense{}},
		attachToUser:  &stubAttachToUser{},
		family:        &stubFindFamilyById{},
		attachFamily:  &stubAttachToFamily{},
		addDate:       &stubAddImportantDate{},
		userHistory:   &stubAddUserHistory{},
		familyHistory: &stubAddFamilyHistory{},
		cache:         &stubDeleteReportCache{},
	}
	f.controller = NewSyncDataController(
		&stubAuthenticateUser{user: user},
		f.createExpense,
		f.findExpense,
		f.attachToUser,
		f.family,
		f.attachFamily,
		f.addDate,
		f.userHistory,
		f.familyHistory,
		f.cache,
	)
	return f
}

func syncRequest(t *testing.T, body any) presentationProtocols.HttpRequest {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/sync-data", bytes.NewReader(payload))

	return presentationProtocols.HttpRequest{
		Body:      io.NopCloser(bytes.NewReader(payload)),
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func decodeSyncResponse(t *testing.T, response *presentationProtocols.HttpResponse) *SyncDataControllerResponse {
	t.Helper()
	var body SyncDataControllerResponse
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	return &body
}

func expenseItem(id string) map[string]any {
	return map[string]any{
		"id":          id,
		"description": "Mercado",
		"amount":      350.0,
		"type":        "expense",
		"dueDate":     "2026-08-20",
		"paymentType": "cartão",
	}
}

func TestSyncCreatesBufferedExpenses(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID()}
	f := newSyncFixture(user)
	offlineId := primitive.NewObjectID()

	response := f.controller.Handle(syncRequest(t, map[string]any{
		"userId":      user.Id.Hex(),
		"deviceToken": "device-1",
		"expenses":    []map[string]any{expenseItem(offlineId.Hex())},
	}))

	assert.Equal(t, http.StatusOK, response.StatusCode)

	body := decodeSyncResponse(t, response)
	require.Len(t, body.Expenses, 1)
	assert.Equal(t, offlineId, body.Expenses[0].Id)
	assert.Equal(t, user.Id, body.Expenses[0].UserId)

	require.Len(t, f.attachToUser.attached, 1)
	// Offline clients already logged these locally; the reconciler only
	// restores the reference.
	assert.Nil(t, f.attachToUser.entries[0])
	assert.Len(t, f.cache.keys, 2)
}

func TestSyncSkipsAlreadySyncedExpense(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID()}
	f := newSyncFixture(user)
	offlineId := primitive.NewObjectID()
	f.findExpense.existing[offlineId] = &models.Expense{Id: offlineId, UserId: user.Id}

	response := f.controller.Handle(syncRequest(t, map[string]any{
		"userId":      user.Id.Hex(),
		"deviceToken": "device-1",
		"expenses":    []map[string]any{expenseItem(offlineId.Hex())},
	}))

	assert.Equal(t, http.StatusOK, response.StatusCode)

	body := decodeSyncResponse(t, response)
	assert.Empty(t, body.Expenses)
	assert.Empty(t, f.createExpense.created)
	assert.Empty(t, f.cache.keys)
}

func TestSyncSkipsBadItemsAndKeepsTheRest(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID()}
	f := newSyncFixture(user)

	badItem := expenseItem("")
	badItem["paymentType"] = "pix"

	response := f.controller.Handle(syncRequest(t, map[string]any{
		"userId":      user.Id.Hex(),
		"deviceToken": "device-1",
		"expenses":    []map[string]any{badItem, expenseItem("")},
	}))

	assert.Equal(t, http.StatusOK, response.StatusCode)

	body := decodeSyncResponse(t, response)
	require.Len(t, body.Expenses, 1)
	assert.Equal(t, "Mercado", body.Expenses[0].Description)
}

func TestSyncDeduplicatesImportantDates(t *testing.T) {
	knownId := primitive.NewObjectID()
	user := &models.User{
		Id: primitive.NewObjectID(),
		ImportantDates: []models.ImportantDate{
			{Id: knownId, Title: "Aniversário", Date: time.Now()},
		},
	}
	f := newSyncFixture(user)

	response := f.controller.Handle(syncRequest(t, map[string]any{
		"userId":      user.Id.Hex(),
		"deviceToken": "device-1",
		"importantDates": []map[string]any{
			{"id": knownId.Hex(), "title": "Aniversário", "date": "2026-09-01"},
			{"title": "Consulta", "date": "2026-09-10"},
		},
	}))

	assert.Equal(t, http.StatusOK, response.StatusCode)

	body := decodeSyncResponse(t, response)
	require.Len(t, body.Dates, 1)
	assert.Equal(t, "Consulta", body.Dates[0].Title)
	require.Len(t, f.addDate.added, 1)
}

func TestSyncFamilyHistoryRequiresMembership(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID(), Username: "maria"}
	f := newSyncFixture(user)
	f.family.family = &models.Family{
		Id:      primitive.NewObjectID(),
		Members: []primitive.ObjectID{primitive.NewObjectID()},
	}

	response := f.controller.Handle(syncRequest(t, map[string]any{
		"userId":      user.Id.Hex(),
		"deviceToken": "device-1",
		"history": []map[string]any{
			{"action": "Despesa adicionada", "scope": "family", "familyId": f.family.family.Id.Hex()},
		},
	}))

	assert.Equal(t, http.StatusOK, response.StatusCode)

	body := decodeSyncResponse(t, response)
	assert.Empty(t, body.History)
	assert.Empty(t, f.familyHistory.entries)
}

func TestSyncFamilyHistoryWithoutFamilyIdIsSkipped(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID(), Username: "maria"}
	f := newSyncFixture(user)

	response := f.controller.Handle(syncRequest(t, map[string]any{
		"userId":      user.Id.Hex(),
		"deviceToken": "device-1",
		"history": []map[string]any{
			{"action": "Despesa adicionada", "scope": "family"},
		},
	}))

	assert.Equal(t, http.StatusOK, response.StatusCode)

	// Never demoted to user history: membership cannot be verified.
	body := decodeSyncResponse(t, response)
	assert.Empty(t, body.History)
	assert.Empty(t, f.userHistory.entries)
	assert.Empty(t, f.familyHistory.entries)
}

func TestSyncFamilyHistoryTagsActingUser(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID(), Username: "maria"}
	f := newSyncFixture(user)
	f.family.family = &models.Family{
		Id:      primitive.NewObjectID(),
		Members: []primitive.ObjectID{user.Id},
	}

	response := f.controller.Handle(syncRequest(t, map[string]any{
		"userId":      user.Id.Hex(),
		"deviceToken": "device-1",
		"history": []map[string]any{
			{"action": "Despesa adicionada", "details": "Mercado - R$ 350.00", "scope": "family", "familyId": f.family.family.Id.Hex()},
		},
	}))

	assert.Equal(t, http.StatusOK, response.StatusCode)

	body := decodeSyncResponse(t, response)
	require.Len(t, body.History, 1)
	require.Len(t, f.familyHistory.entries, 1)
	require.NotNil(t, f.familyHistory.entries[0].UserId)
	assert.Equal(t, user.Id, *f.familyHistory.entries[0].UserId)
}

func TestSyncResubmittedUserHistoryIsIdempotent(t *testing.T) {
	entryId := primitive.NewObjectID()
	user := &models.User{
		Id: primitive.NewObjectID(),
		History: []models.HistoryEntry{
			{Id: entryId, Action: "Despesa adicionada"},
		},
	}
	f := newSyncFixture(user)

	response := f.controller.Handle(syncRequest(t, map[string]any{
		"userId":      user.Id.Hex(),
		"deviceToken": "device-1",
		"history": []map[string]any{
			{"id": entryId.Hex(), "action": "Despesa adicionada"},
		},
	}))

	assert.Equal(t, http.StatusOK, response.StatusCode)

	body := decodeSyncResponse(t, response)
	assert.Empty(t, body.History)
	assert.Empty(t, f.userHistory.entries)
}

func TestSyncWithBadToken(t *testing.T) {
	f := newSyncFixture(nil)

	response := f.controller.Handle(syncRequest(t, map[string]any{
		"userId":      primitive.NewObjectID().Hex(),
		"deviceToken": "wrong",
	}))

	assert.Equal(t, http.StatusForbidden, response.StatusCode)
}
