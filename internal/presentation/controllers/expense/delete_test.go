package expense

import (
	"net/http"
	"testing"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func deleteBody(userId primitive.ObjectID) map[string]any {
	return map[string]any{
		"userId":      userId.Hex(),
		"deviceToken": "device-1",
	}
}

func TestDeleteExpense(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID()}
	expense := &models.Expense{
		Id:          primitive.NewObjectID(),
		Description: "Internet",
		Amount:      99.90,
		Type:        models.ExpenseKindExpense,
		UserId:      user.Id,
	}
	deleteStub := &stubDeleteExpense{}
	detachStub := &stubDetachFromUser{}
	cacheStub := &stubDeleteReportCache{}

	controller := NewDeleteExpenseController(
		&stubAuthenticateUser{user: user},
		&stubFindExpenseById{expense: expense},
		deleteStub,
		detachStub,
		&stubDetachFromFamily{},
		cacheStub,
	)

	response := controller.Handle(jsonRequest(t, http.MethodDelete, "/expenses/"+expense.Id.Hex(), deleteBody(user.Id), map[string]string{"id": expense.Id.Hex()}))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, []primitive.ObjectID{expense.Id}, deleteStub.deleted)

	require.Len(t, detachStub.entries, 1)
	assert.Equal(t, "Despesa removida", detachStub.entries[0].Action)
	assert.Equal(t, "Internet - R$ 99.90", detachStub.entries[0].Details)
	assert.Len(t, cacheStub.keys, 2)
}

func TestDeleteExpenseFromAnotherUser(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID()}
	expense := &models.Expense{
		Id:     primitive.NewObjectID(),
		UserId: primitive.NewObjectID(), // someone else's
	}
	deleteStub := &stubDeleteExpense{}

	controller := NewDeleteExpenseController(
		&stubAuthenticateUser{user: user},
		&stubFindExpenseById{expense: expense},
		deleteStub,
		&stubDetachFromUser{},
		&stubDetachFromFamily{},
		nil,
	)

	response := controller.Handle(jsonRequest(t, http.MethodDelete, "/expenses/"+expense.Id.Hex(), deleteBody(user.Id), map[string]string{"id": expense.Id.Hex()}))

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	assert.Empty(t, deleteStub.deleted)
}

func TestDeleteMissingExpense(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID()}

	controller := NewDeleteExpenseController(
		&stubAuthenticateUser{user: user},
		&stubFindExpenseById{expense: nil},
		&stubDeleteExpense{},
		&stubDetachFromUser{},
		&stubDetachFromFamily{},
		nil,
	)

	response := controller.Handle(jsonRequest(t, http.MethodDelete, "/expenses/"+primitive.NewObjectID().Hex(), deleteBody(user.Id), map[string]string{"id": primitive.NewObjectID().Hex()}))

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestDeleteFamilyExpenseDetachesFromFamily(t *testing.T) {
	user := &models.User{Id: primitive.NewObjectID()}
	familyId := primitive.NewObjectID()
	expense := &models.Expense{
		Id:       primitive.NewObjectID(),
		Type:     models.ExpenseKindIncome,
		UserId:   user.Id,
		FamilyId: &familyId,
	}
	detachFamilyStub := &stubDetachFromFamily{}
	detachUserStub := &stubDetachFromUser{}

	controller := NewDeleteExpenseController(
		&stubAuthenticateUser{user: user},
		&stubFindExpenseById{expense: expense},
		&stubDeleteExpense{},
		detachUserStub,
		detachFamilyStub,
		nil,
	)

	response := controller.Handle(jsonRequest(t, http.MethodDelete, "/expenses/"+expense.Id.Hex(), deleteBody(user.Id), map[string]string{"id": expense.Id.Hex()}))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, []primitive.ObjectID{expense.Id}, detachFamilyStub.detached)
	require.Len(t, detachUserStub.entries, 1)
	assert.Equal(t, "Receita removida", detachUserStub.entries[0].Action)
}
