package user_repository

import (
	"context"
	"time"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateUserRepository struct {
	Db *mongo.Database
}

func NewCreateUserRepository(db *mongo.Database) *CreateUserRepository {
	return &CreateUserRepository{
		Db: db,
	}
}

func (r *CreateUserRepository) Create(input *models.UserInput) (*models.User, error) {
	collection := r.Db.Collection("users")

	user := &models.User{
		Id:             primitive.NewObjectID(),
		Username:       input.Username,
		PhotoPath:      input.PhotoPath,
		DeviceToken:    input.DeviceToken,
		LastLogin:      time.Now(),
		Expenses:       []primitive.ObjectID{},
		ImportantDates: []models.ImportantDate{},
		History:        []models.HistoryEntry{},
		Families:       []primitive.ObjectID{},
		Settings: models.UserSettings{
			WeeklyReport:  false,
			MonthlyReport: false,
			DarkTheme:     true,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()
	_, err := collection.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}
