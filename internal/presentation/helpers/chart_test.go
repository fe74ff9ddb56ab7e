package helpers

import (
	"testing"
	"time"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func expenseOn(day time.Time, kind string, paymentType string, amount float64) models.Expense {
	return models.Expense{
		Description: "conta",
		Amount:      amount,
		Type:        kind,
		PaymentType: paymentType,
		DueDate:     day,
	}
}

func TestBuildWeeklyChart(t *testing.T) {
	sunday := time.Date(2026, 8, 23, 10, 0, 0, 0, time.Local)
	monday := sunday.AddDate(0, 0, 1)
	saturday := sunday.AddDate(0, 0, 6)

	chart := BuildWeeklyChart([]models.Expense{
		expenseOn(monday, models.ExpenseKindExpense, "boleto", 1200),
		expenseOn(monday, models.ExpenseKindExpense, "cartão", 80.50),
		expenseOn(monday, models.ExpenseKindIncome, "transferência", 3000),
		expenseOn(saturday, models.ExpenseKindExpense, "dinheiro", 45),
		expenseOn(sunday, models.ExpenseKindIncome, "dinheiro", 150),
	})

	assert.Equal(t, []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}, chart.Labels)

	assert.Equal(t, 1280.50, chart.DespesaData[1])
	assert.Equal(t, 3000.0, chart.ReceitaData[1])
	assert.Equal(t, 45.0, chart.DespesaData[6])
	assert.Equal(t, 150.0, chart.ReceitaData[0])

	// Days with no expenses stay at zero.
	for _, day := range []int{2, 3, 4, 5} {
		assert.Zero(t, chart.DespesaData[day])
		assert.Zero(t, chart.ReceitaData[day])
	}
}

func TestBuildWeeklyChartEmpty(t *testing.T) {
	chart := BuildWeeklyChart(nil)

	assert.Len(t, chart.DespesaData, 7)
	assert.Len(t, chart.ReceitaData, 7)
	for i := range chart.DespesaData {
		assert.Zero(t, chart.DespesaData[i])
		assert.Zero(t, chart.ReceitaData[i])
	}
}

func TestBuildMonthlyChart(t *testing.T) {
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)

	chart := BuildMonthlyChart([]models.Expense{
		expenseOn(day, models.ExpenseKindExpense, "boleto", 1200),
		expenseOn(day, models.ExpenseKindExpense, "boleto", 300),
		expenseOn(day, models.ExpenseKindExpense, "cartão", 99.90),
		expenseOn(day, models.ExpenseKindIncome, "transferência", 5000),
	})

	assert.Equal(t, []string{"Dinheiro", "Cartão", "Boleto", "Transferência", "Outro"}, chart.Labels)
	assert.Equal(t, []float64{0, 99.90, 1500, 5000, 0}, chart.Data)
}
