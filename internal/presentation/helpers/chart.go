package helpers

import (
	"unicode"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
)

// WeekdayLabels is the fixed weekly chart axis, aligned to time.Weekday.
var WeekdayLabels = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

type WeeklyChartData struct {
	Labels      []string  `json:"labels"`
	DespesaData []float64 `json:"despesaData"`
	ReceitaData []float64 `json:"receitaData"`
}

// BuildWeeklyChart sums amounts per (weekday, kind). Both series always have
// exactly seven entries; days without expenses stay at zero.
func BuildWeeklyChart(expenses []models.Expense) *WeeklyChartData {
	despesas := make([]float64, len(WeekdayLabels))
	receitas := make([]float64, len(WeekdayLabels))

	for _, expense := range expenses {
		day := int(expense.DueDate.Weekday())
		switch expense.Type {
		case models.ExpenseKindExpense:
			despesas[day] += expense.Amount
		case models.ExpenseKindIncome:
			receitas[day] += expense.Amount
		}
	}

	return &WeeklyChartData{
		Labels:      WeekdayLabels,
		DespesaData: despesas,
		ReceitaData: receitas,
	}
}

type MonthlyChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// BuildMonthlyChart sums amounts per payment method over the fixed
// enumeration; methods without expenses stay at zero.
func BuildMonthlyChart(expenses []models.Expense) *MonthlyChartData {
	labels := make([]string, len(models.PaymentTypes))
	data := make([]float64, len(models.PaymentTypes))

	for i, paymentType := range models.PaymentTypes {
		labels[i] = capitalize(paymentType)
		for _, expense := range expenses {
			if expense.PaymentType == paymentType {
				data[i] += expense.Amount
			}
		}
	}

	return &MonthlyChartData{
		Labels: labels,
		Data:   data,
	}
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
