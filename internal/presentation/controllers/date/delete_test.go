package date

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

type stubRemoveImportantDate struct {
	removed []primitive.ObjectID
	entries []*models.HistoryEntry
	err     error
}

func (s *stubRemoveImportantDate) Remove(userId primitive.ObjectID, dateId primitive.ObjectID, entry *models.HistoryEntry) error {
	s.removed = append(s.removed, dateId)
	s.entries = append(s.entries, entry)
	return s.err
}

func deleteRequest(t *testing.T, userId primitive.ObjectID, dateId string) presentationProtocols.HttpRequest {
	t.Helper()

	payload, err := json.Marshal(map[string]string{
		"userId":      userId.Hex(),
		"deviceToken": "device-1",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/dates/"+dateId, bytes.NewReader(payload))
	req.SetPathValue("id", dateId)

	return presentationProtocols.HttpRequest{
		Body:      io.NopCloser(bytes.NewReader(payload)),
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func TestDeleteImportantDate(t *testing.T) {
	dateId := primitive.NewObjectID()
	user := &models.User{
		Id: primitive.NewObjectID(),
		ImportantDates: []models.ImportantDate{
			{Id: dateId, Title: "Aniversário", Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)},
		},
	}
	removeStub := &stubRemoveImportantDate{}

	controller := NewDeleteImportantDateController(
		&stubAuthenticateUser{user: user},
		removeStub,
	)

	response := controller.Handle(deleteRequest(t, user.Id, dateId.Hex()))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, []primitive.ObjectID{dateId}, removeStub.removed)

	require.Len(t, removeStub.entries, 1)
	assert.Equal(t, "Data importante removida", removeStub.entries[0].Action)
	assert.Equal(t, "Aniversário - 01/09/2026", removeStub.entries[0].Details)
}

func TestDeleteUnknownImportantDate(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID()}
	removeStub := &stubRemoveImportantDate{}

	controller := NewDeleteImportantDateController(
		&stubAuthenticateUser{user: user},
		removeStub,
	)

	response := controller.Handle(deleteRequest(t, user.Id, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	assert.Empty(t, removeStub.removed)

	var body presentationProtocols.ErrorResponse
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Equal(t, "Data não encontrada", body.Error)
}

func TestDeleteImportantDateWithBadToken(t *testing.T) {
	controller := NewDeleteImportantDateController(
		&stubAuthenticateUser{user: nil},
		&stubRemoveImportantDate{},
	)

	response := controller.Handle(deleteRequest(t, primitive.NewObjectID(), primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusForbidden, response.StatusCode)
}
