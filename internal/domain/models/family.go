package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Family struct {
	Id        primitive.ObjectID   `bson:"_id" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Code      string               `bson:"code" json:"code"` // 6 chars, uppercase, unique
	Members   []primitive.ObjectID `bson:"members" json:"members"`
	Expenses  []primitive.ObjectID `bson:"expenses" json:"expenses"`
	History   []HistoryEntry       `bson:"history" json:"history"`
	CreatedBy primitive.ObjectID   `bson:"created_by" json:"createdBy"`
	CreatedAt time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updatedAt"`
}

type FamilyInput struct {
	Name      string             `bson:"name"`
	Code      string             `bson:"code"`
	CreatedBy primitive.ObjectID `bson:"created_by"`
}

func (f *Family) HasMember(userId primitive.ObjectID) bool {
	for _, member := range f.Members {
		if member == userId {
			return true
		}
	}
	return false
}

func (f *Family) HasHistoryEntry(id primitive.ObjectID) bool {
	for i := range f.History {
		if f.History[i].Id == id {
			return true
		}
	}
	return false
}
