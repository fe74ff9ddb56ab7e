package expense

import (
	"bytes"
	"io"
	"net/http"

	"github.com/controledecontas/expenses-backend/internal/domain/models"
	"github.com/controledecontas/expenses-backend/internal/domain/usecase"
	"github.com/controledecontas/expenses-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controledecontas/expenses-backend/internal/presentation/protocols"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var exportHeaders = []string{"Descrição", "Valor", "Tipo", "Vencimento", "Pagamento", "Responsável", "Observações"}

// ExportExpensesController writes the personal or family ledger as an .xlsx
// spreadsheet, under the same auth and membership rules as the listing.
type ExportExpensesController struct {
	AuthenticateUser               usecase.AuthenticateUser
	FindFamilyByIdRepository       usecase.FindFamilyByIdRepository
	FindPersonalExpensesRepository usecase.FindPersonalExpensesRepository
	FindFamilyExpensesRepository   usecase.FindFamilyExpensesRepository
}

func NewExportExpensesController(
	authenticate usecase.AuthenticateUser,
	findFamilyById usecase.FindFamilyByIdRepository,
	findPersonal usecase.FindPersonalExpensesRepository,
	findByFamily usecase.FindFamilyExpensesRepository,
) *ExportExpensesController {
	return &ExportExpensesController{
		AuthenticateUser:               authenticate,
		FindFamilyByIdRepository:       findFamilyById,
		FindPersonalExpensesRepository: findPersonal,
		FindFamilyExpensesRepository:   findByFamily,
	}
}

func (c *ExportExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	user, err := c.AuthenticateUser.Authenticate(r.Req.PathValue("userId"), models.NewCredential(r.UrlParams.Get("deviceToken")))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao autenticar usuário",
		}, http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Não autorizado",
		}, http.StatusForbidden)
	}

	var expenses []models.Expense
	if familyIdParam := r.UrlParams.Get("familyId"); familyIdParam != "" {
		familyId, err := primitive.ObjectIDFromHex(familyIdParam)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "formato de familyId inválido",
			}, http.StatusBadRequest)
		}

		family, err := c.FindFamilyByIdRepository.Find(familyId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "erro ao buscar família",
			}, http.StatusInternalServerError)
		}
		if family == nil || !family.HasMember(user.Id) {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "Não autorizado",
			}, http.StatusForbidden)
		}

		expenses, err = c.FindFamilyExpensesRepository.Find(familyId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "erro ao buscar despesas",
			}, http.StatusInternalServerError)
		}
	} else {
		expenses, err = c.FindPersonalExpensesRepository.Find(user.Id)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "erro ao buscar despesas",
			}, http.StatusInternalServerError)
		}
	}

	buf, err := buildSpreadsheet(expenses)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "erro ao gerar planilha",
		}, http.StatusInternalServerError)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	header.Set("Content-Disposition", `attachment; filename="despesas.xlsx"`)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(buf),
		StatusCode: http.StatusOK,
		Header:     header,
	}
}

func buildSpreadsheet(expenses []models.Expense) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, title := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for row, expense := range expenses {
		kind := "Despesa"
		if expense.Type == models.ExpenseKindIncome {
			kind = "Receita"
		}

		values := []any{
			expense.Description,
			expense.Amount,
			kind,
			expense.DueDate.Format("02/01/2006"),
			expense.PaymentType,
			expense.Responsavel,
			expense.Notes,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}
