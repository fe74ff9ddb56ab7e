package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ExpenseKindExpense = "expense"
	ExpenseKindIncome  = "income"
)

// PaymentTypes is the fixed enumeration the monthly report aggregates over.
var PaymentTypes = []string{"dinheiro", "cartão", "boleto", "transferência", "outro"}

type Expense struct {
	Id          primitive.ObjectID  `bson:"_id" json:"id"`
	Description string              `bson:"description" json:"description"`
	Amount      float64             `bson:"amount" json:"amount"`
	Type        string              `bson:"type" json:"type"` // expense | income
	DueDate     time.Time           `bson:"due_date" json:"dueDate"`
	PaymentType string              `bson:"payment_type" json:"paymentType"`
	Responsavel string              `bson:"responsavel" json:"responsavel,omitempty"`
	Notes       string              `bson:"notes" json:"notes,omitempty"`
	UserId      primitive.ObjectID  `bson:"user_id" json:"userId"`
	FamilyId    *primitive.ObjectID `bson:"family_id" json:"familyId,omitempty"`
	CreatedAt   time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updatedAt"`
}

type ExpenseInput struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"` // kept when syncing offline records
	Description string              `bson:"description"`
	Amount      float64             `bson:"amount"`
	Type        string              `bson:"type"`
	DueDate     time.Time           `bson:"due_date"`
	PaymentType string              `bson:"payment_type"`
	Responsavel string              `bson:"responsavel"`
	Notes       string              `bson:"notes"`
	UserId      primitive.ObjectID  `bson:"user_id"`
	FamilyId    *primitive.ObjectID `bson:"family_id"`
}
