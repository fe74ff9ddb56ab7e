package family

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

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

type stubFindFamilyByCode struct {
	family *models.Family
	err    error
}

func (s *stubFindFamilyByCode) Find(code string) (*models.Family, error) {
	return s.family, s.err
}

type stubAddFamilyMember struct {
	added []primitive.ObjectID
	err   error
}

func (s *stubAddFamilyMember) Add(familyId primitive.ObjectID, userId primitive.ObjectID) error {
	s.added = append(s.added, userId)
	return s.err
}

type stubAddUserFamily struct {
	added []primitive.ObjectID
	err   error
}

func (s *stubAddUserFamily) Add(userId primitive.ObjectID, familyId primitive.ObjectID) error {
	s.added = append(s.added, familyId)
	return s.err
}

type stubAddFamilyHistory struct {
	entries []*models.HistoryEntry
	err     error
}

func (s *stubAddFamilyHistory) Add(familyId primitive.ObjectID, entry *models.HistoryEntry) (*models.HistoryEntry, error) {
	s.entries = append(s.entries, entry)
	return entry, s.err
}

func jsonRequest(t *testing.T, method string, target string, body any) presentationProtocols.HttpRequest {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))

	return presentationProtocols.HttpRequest{
		Body:      io.NopCloser(bytes.NewReader(payload)),
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func TestJoinFamily(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID(), Username: "maria"}
	family := &models.Family{
		Id:      primitive.NewObjectID(),
		Name:    "Silva",
		Code:    "ABC123",
		Members: []primitive.ObjectID{primitive.NewObjectID()},
	}
	addMemberStub := &stubAddFamilyMember{}
	addUserFamilyStub := &stubAddUserFamily{}
	historyStub := &stubAddFamilyHistory{}

	controller := NewJoinFamilyController(
		&stubAuthenticateUser{user: user},
		&stubFindFamilyByCode{family: family},
		addMemberStub,
		addUserFamilyStub,
		historyStub,
	)

	response := controller.Handle(jsonRequest(t, http.MethodPost, "/families/join", map[string]string{
		"code":        "ABC123",
		"userId":      user.Id.Hex(),
		"deviceToken": "device-1",
	}))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, []primitive.ObjectID{user.Id}, addMemberStub.added)
	assert.Equal(t, []primitive.ObjectID{family.Id}, addUserFamilyStub.added)

	require.Len(t, historyStub.entries, 1)
	assert.Equal(t, "Novo membro", historyStub.entries[0].Action)
	assert.Equal(t, "maria entrou na família", historyStub.entries[0].Details)

	var body JoinFamilyControllerResponse
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Equal(t, "Você entrou na família!", body.Message)
	assert.Contains(t, body.Family.Members, user.Id)
}

func TestJoinFamilyTwice(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID(), Username: "maria"}
	family := &models.Family{
		Id:      primitive.NewObjectID(),
		Code:    "ABC123",
		Members: []primitive.ObjectID{user.Id},
	}
	addMemberStub := &stubAddFamilyMember{}

	controller := NewJoinFamilyController(
		&stubAuthenticateUser{user: user},
		&stubFindFamilyByCode{family: family},
		addMemberStub,
		&stubAddUserFamily{},
		&stubAddFamilyHistory{},
	)

	response := controller.Handle(jsonRequest(t, http.MethodPost, "/families/join", map[string]string{
		"code":        "ABC123",
		"userId":      user.Id.Hex(),
		"deviceToken": "device-1",
	}))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Empty(t, addMemberStub.added)

	var body presentationProtocols.ErrorResponse
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Equal(t, "Você já é membro desta família", body.Error)
}

func TestJoinFamilyWithUnknownCode(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID()}

	controller := NewJoinFamilyController(
		&stubAuthenticateUser{user: user},
		&stubFindFamilyByCode{family: nil},
		&stubAddFamilyMember{},
		&stubAddUserFamily{},
		&stubAddFamilyHistory{},
	)

	response := controller.Handle(jsonRequest(t, http.MethodPost, "/families/join", map[string]string{
		"code":        "ZZZZZZ",
		"userId":      user.Id.Hex(),
		"deviceToken": "device-1",
	}))

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestJoinFamilyWithBadToken(t *testing.T) {
	controller := NewJoinFamilyController(
		&stubAuthenticateUser{user: nil},
		&stubFindFamilyByCode{},
		&stubAddFamilyMember{},
		&stubAddUserFamily{},
		&stubAddFamilyHistory{},
	)

	response := controller.Handle(jsonRequest(t, http.MethodPost, "/families/join", map[string]string{
		"code":        "ABC123",
		"userId":      primitive.NewObjectID().Hex(),
		"deviceToken": "wrong",
	}))

	assert.Equal(t, http.StatusForbidden, response.StatusCode)
}

func TestJoinFamilyWithShortCode(t *testing.T) {
	controller := NewJoinFamilyController(
		&stubAuthenticateUser{},
		&stubFindFamilyByCode{},
		&stubAddFamilyMember{},
		&stubAddUserFamily{},
		&stubAddFamilyHistory{},
	)

	response := controller.Handle(jsonRequest(t, http.MethodPost, "/families/join", map[string]string{
		"code":        "ABC",
		"userId":      primitive.NewObjectID().Hex(),
		"deviceToken": "device-1",
	}))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}
