package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserSettings struct {
	WeeklyReport  bool `bson:"weekly_report" json:"weeklyReport"`
	MonthlyReport bool `bson:"monthly_report" json:"monthlyReport"`
	DarkTheme     bool `bson:"dark_theme" json:"darkTheme"`
}

type ImportantDate struct {
	Id        primitive.ObjectID `bson:"_id" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Date      time.Time          `bson:"date" json:"date"`
	Notes     string             `bson:"notes" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type HistoryEntry struct {
	Id        primitive.ObjectID  `bson:"_id" json:"id"`
	Action    string              `bson:"action" json:"action"`
	Details   string              `bson:"details" json:"details,omitempty"`
	Timestamp time.Time           `bson:"timestamp" json:"timestamp"`
	Scope     string              `bson:"scope" json:"scope"` // user | family
	UserId    *primitive.ObjectID `bson:"user_id" json:"userId,omitempty"`
}

type User struct {
	Id             primitive.ObjectID   `bson:"_id" json:"id"`
	Username       string               `bson:"username" json:"username"`
	PhotoPath      string               `bson:"photo_path" json:"photoPath"`
	DeviceToken    string               `bson:"device_token" json:"-"` // credential digest, never serialized
	LastLogin      time.Time            `bson:"last_login" json:"lastLogin"`
	Expenses       []primitive.ObjectID `bson:"expenses" json:"expenses"`
	ImportantDates []ImportantDate      `bson:"important_dates" json:"importantDates"`
	History        []HistoryEntry       `bson:"history" json:"history"`
	Families       []primitive.ObjectID `bson:"families" json:"families"`
	Settings       UserSettings         `bson:"settings" json:"settings"`
	CreatedAt      time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updatedAt"`
}

type UserInput struct {
	Username    string `bson:"username"`
	PhotoPath   string `bson:"photo_path"`
	DeviceToken string `bson:"device_token"` // credential digest
}

func (u *User) HasImportantDate(id primitive.ObjectID) *ImportantDate {
	for i := range u.ImportantDates {
		if u.ImportantDates[i].Id == id {
			return &u.ImportantDates[i]
		}
	}
	return nil
}

func (u *User) HasHistoryEntry(id primitive.ObjectID) bool {
	for i := range u.History {
		if u.History[i].Id == id {
			return true
		}
	}
	return false
}
