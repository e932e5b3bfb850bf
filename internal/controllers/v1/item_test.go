package v1_test

import (
	"net/http"

	v1 "github.com/haniellevi/SANTODINHIERO-sub001/internal/controllers/v1"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateItemInOtherUsersMonth() {
	month := suite.month(maria, 2025, 3)

	for _, path := range []string{"/api/incomes", "/api/investments", "/api/misc-expenses"} {
		r := suite.request(http.MethodPost, path, map[string]any{"monthId": month.ID, "description": "Stolen", "amount": 10}, &joao)
		suite.assertStatus(http.StatusNotFound, r)
	}

	r := suite.request(http.MethodPost, "/api/expenses", map[string]any{"monthId": month.ID, "description": "Stolen", "totalAmount": 10}, &joao)
	suite.assertStatus(http.StatusNotFound, r)
}

func (suite *TestSuiteStandard) TestCreateItemValidation() {
	month := suite.month(maria, 2025, 3)

	tests := []struct {
		name string
		path string
		body map[string]any
	}{
		{"income below minimum", "/api/incomes", map[string]any{"monthId": month.ID, "description": "Tip", "amount": 0.001}},
		{"income zero", "/api/incomes", map[string]any{"monthId": month.ID, "description": "Nothing", "amount": 0}},
		{"income without description", "/api/incomes", map[string]any{"monthId": month.ID, "description": "  ", "amount": 10}},
		{"income invalid day", "/api/incomes", map[string]any{"monthId": month.ID, "description": "Salary", "amount": 10, "dayOfMonth": 32}},
		{"expense below minimum", "/api/expenses", map[string]any{"monthId": month.ID, "description": "Rent", "totalAmount": 0}},
		{"expense invalid type", "/api/expenses", map[string]any{"monthId": month.ID, "description": "Rent", "totalAmount": 10, "type": "LUXURY"}},
		{"expense overpaid", "/api/expenses", map[string]any{"monthId": month.ID, "description": "Rent", "totalAmount": 10, "paidAmount": 20}},
		{"investment below minimum", "/api/investments", map[string]any{"monthId": month.ID, "description": "Fund", "amount": -5}},
		{"misc below minimum", "/api/misc-expenses", map[string]any{"monthId": month.ID, "description": "Coffee", "amount": 0.005}},
		{"broken body", "/api/incomes", map[string]any{"monthId": "not-a-uuid", "description": "Salary", "amount": 10}},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodPost, tt.path, tt.body, &maria)
		suite.Assert().Equal(http.StatusBadRequest, r.Code, "%s: %s", tt.name, r.Body.String())
	}
}

func (suite *TestSuiteStandard) TestUpdateIncome() {
	month := suite.month(maria, 2025, 3)
	income := suite.createIncome(maria, month.ID, "Salary", 1000)

	r := suite.request(http.MethodPatch, "/api/incomes/"+income.ID.String(), map[string]any{"description": " Bonus ", "amount": 1250.75}, &maria)
	suite.assertStatus(http.StatusOK, r)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Bonus", response.Data.Description)
	suite.Assert().True(decimal.RequireFromString("1250.75").Equal(response.Data.Amount))

	var stored models.Income
	suite.Require().Nil(suite.env.DB.Where("id = ?", income.ID).First(&stored).Error)
	suite.Assert().Equal("Bonus", stored.Description)
	suite.Assert().Equal(month.ID, stored.MonthID)

	// Fields not in the body stay as they are
	r = suite.request(http.MethodPatch, "/api/incomes/"+income.ID.String(), map[string]any{"dayOfMonth": 5}, &maria)
	suite.assertStatus(http.StatusOK, r)
	suite.Require().Nil(suite.env.DB.Where("id = ?", income.ID).First(&stored).Error)
	suite.Assert().Equal("Bonus", stored.Description)
	suite.Require().NotNil(stored.DayOfMonth)
	suite.Assert().Equal(5, *stored.DayOfMonth)

	// Items do not move between months
	other := suite.month(maria, 2025, 4)
	r = suite.request(http.MethodPatch, "/api/incomes/"+income.ID.String(), map[string]any{"monthId": other.ID, "amount": 900}, &maria)
	suite.assertStatus(http.StatusOK, r)
	suite.Require().Nil(suite.env.DB.Where("id = ?", income.ID).First(&stored).Error)
	suite.Assert().Equal(month.ID, stored.MonthID)
}

func (suite *TestSuiteStandard) TestUpdateIncomeErrors() {
	month := suite.month(maria, 2025, 3)
	income := suite.createIncome(maria, month.ID, "Salary", 1000)
	path := "/api/incomes/" + income.ID.String()

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"amount too small", path, map[string]any{"amount": 0}, http.StatusBadRequest},
		{"empty body", path, map[string]any{}, http.StatusBadRequest},
		{"only month", path, map[string]any{"monthId": month.ID}, http.StatusBadRequest},
		{"broken json", path, `{"amount": `, http.StatusBadRequest},
		{"invalid id", "/api/incomes/not-a-uuid", map[string]any{"amount": 10}, http.StatusBadRequest},
		{"unknown id", "/api/incomes/65392deb-5e92-4268-b114-297faad6cdce", map[string]any{"amount": 10}, http.StatusNotFound},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodPatch, tt.path, tt.body, &maria)
		suite.Assert().Equal(tt.status, r.Code, "%s: %s", tt.name, r.Body.String())
	}

	r := suite.request(http.MethodPatch, path, map[string]any{"amount": 5}, &joao)
	suite.assertStatus(http.StatusNotFound, r)
}

func (suite *TestSuiteStandard) TestDeleteItems() {
	month := suite.month(maria, 2025, 3)
	income := suite.createIncome(maria, month.ID, "Salary", 1000)
	expense := suite.createExpense(maria, month.ID, "Rent", 500, models.ExpenseStandard)

	r := suite.request(http.MethodDelete, "/api/incomes/"+income.ID.String(), nil, &joao)
	suite.assertStatus(http.StatusNotFound, r)

	r = suite.request(http.MethodDelete, "/api/incomes/"+income.ID.String(), nil, &maria)
	suite.assertStatus(http.StatusNoContent, r)

	r = suite.request(http.MethodDelete, "/api/expenses/"+expense.ID.String(), nil, &maria)
	suite.assertStatus(http.StatusNoContent, r)

	r = suite.request(http.MethodDelete, "/api/incomes/"+income.ID.String(), nil, &maria)
	suite.assertStatus(http.StatusNotFound, r)

	details := suite.month(maria, 2025, 3)
	suite.Assert().Empty(details.Incomes)
	suite.Assert().Empty(details.Expenses)
}

func (suite *TestSuiteStandard) TestReorderIncomes() {
	month := suite.month(maria, 2025, 3)
	first := suite.createIncome(maria, month.ID, "First", 100)
	second := suite.createIncome(maria, month.ID, "Second", 200)
	third := suite.createIncome(maria, month.ID, "Third", 300)

	r := suite.request(http.MethodPost, "/api/incomes/order", map[string]any{"items": []map[string]any{
		{"id": third.ID, "order": 0},
		{"id": first.ID, "order": 1},
		{"id": second.ID, "order": 2},
	}}, &maria)
	suite.assertStatus(http.StatusNoContent, r)

	incomes := suite.month(maria, 2025, 3).Incomes
	suite.Require().Len(incomes, 3)
	suite.Assert().Equal([]string{"Third", "First", "Second"}, []string{incomes[0].Description, incomes[1].Description, incomes[2].Description})
}

func (suite *TestSuiteStandard) TestReorderIsAllOrNothing() {
	month := suite.month(maria, 2025, 3)
	first := suite.createIncome(maria, month.ID, "First", 100)

	foreign := suite.month(joao, 2025, 3)
	theirs := suite.createIncome(joao, foreign.ID, "Theirs", 100)

	r := suite.request(http.MethodPost, "/api/incomes/order", map[string]any{"items": []map[string]any{
		{"id": first.ID, "order": 7},
		{"id": theirs.ID, "order": 8},
	}}, &maria)
	suite.assertStatus(http.StatusNotFound, r)

	var stored models.Income
	suite.Require().Nil(suite.env.DB.Where("id = ?", first.ID).First(&stored).Error)
	suite.Assert().Equal(0, stored.Order)

	r = suite.request(http.MethodPost, "/api/incomes/order", map[string]any{}, &maria)
	suite.assertStatus(http.StatusBadRequest, r)
}

func (suite *TestSuiteStandard) TestIncomeToggles() {
	month := suite.month(maria, 2025, 3)
	income := suite.createIncome(maria, month.ID, "Salary", 1000)

	r := suite.request(http.MethodPost, "/api/incomes/"+income.ID.String()+"/received", map[string]any{"value": true}, &maria)
	suite.assertStatus(http.StatusOK, r)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.IsReceived)

	r = suite.request(http.MethodPost, "/api/incomes/"+income.ID.String()+"/tithe", map[string]any{"value": true}, &maria)
	suite.assertStatus(http.StatusOK, r)

	var stored models.Income
	suite.Require().Nil(suite.env.DB.Where("id = ?", income.ID).First(&stored).Error)
	suite.Assert().True(stored.IsReceived)
	suite.Assert().True(stored.IsTithePaid)

	r = suite.request(http.MethodPost, "/api/incomes/"+income.ID.String()+"/received", map[string]any{}, &maria)
	suite.assertStatus(http.StatusBadRequest, r)

	r = suite.request(http.MethodPost, "/api/incomes/"+income.ID.String()+"/received", map[string]any{"value": false}, &joao)
	suite.assertStatus(http.StatusNotFound, r)
}

func (suite *TestSuiteStandard) TestExpensePaid() {
	month := suite.month(maria, 2025, 3)
	expense := suite.createExpense(maria, month.ID, "Rent", 1200, "")
	suite.Assert().Equal(models.ExpenseStandard, expense.Type, "the type defaults to STANDARD")

	r := suite.request(http.MethodPost, "/api/expenses/"+expense.ID.String()+"/paid", map[string]any{"value": true}, &maria)
	suite.assertStatus(http.StatusOK, r)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.IsPaid)
	suite.Assert().True(decimal.NewFromInt(1200).Equal(response.Data.PaidAmount))

	r = suite.request(http.MethodPost, "/api/expenses/"+expense.ID.String()+"/paid", map[string]any{"value": false}, &maria)
	suite.assertStatus(http.StatusOK, r)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Data.IsPaid)
	suite.Assert().True(response.Data.PaidAmount.IsZero())
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	month := suite.month(maria, 2025, 3)
	expense := suite.createExpense(maria, month.ID, "Rent", 1200, models.ExpenseStandard)
	path := "/api/expenses/" + expense.ID.String()

	r := suite.request(http.MethodPatch, path, map[string]any{"paidAmount": 600}, &maria)
	suite.assertStatus(http.StatusOK, r)

	r = suite.request(http.MethodPatch, path, map[string]any{"totalAmount": 0}, &maria)
	suite.assertStatus(http.StatusBadRequest, r)

	r = suite.request(http.MethodPatch, path, map[string]any{"totalAmount": 500}, &maria)
	suite.assertStatus(http.StatusBadRequest, r)
	suite.Assert().Equal(models.ErrPaidAmountInvalid.Error(), test.DecodeError(suite.T(), &r))
}

func (suite *TestSuiteStandard) TestInvestmentAndMiscItems() {
	month := suite.month(maria, 2025, 3)

	r := suite.request(http.MethodPost, "/api/investments", map[string]any{"monthId": month.ID, "description": "Fund", "amount": 300}, &maria)
	suite.assertStatus(http.StatusCreated, r)
	var investment v1.InvestmentResponse
	test.DecodeResponse(suite.T(), &r, &investment)

	r = suite.request(http.MethodPost, "/api/misc-expenses", map[string]any{"monthId": month.ID, "description": "Coffee", "amount": 12.5}, &maria)
	suite.assertStatus(http.StatusCreated, r)
	var misc v1.MiscExpenseResponse
	test.DecodeResponse(suite.T(), &r, &misc)

	r = suite.request(http.MethodPost, "/api/investments/"+investment.Data.ID.String()+"/paid", map[string]any{"value": true}, &maria)
	suite.assertStatus(http.StatusOK, r)
	r = suite.request(http.MethodPatch, "/api/misc-expenses/"+misc.Data.ID.String(), map[string]any{"amount": 15}, &maria)
	suite.assertStatus(http.StatusOK, r)

	details := suite.month(maria, 2025, 3)
	suite.Require().Len(details.Investments, 1)
	suite.Assert().True(details.Investments[0].IsPaid)
	suite.Require().Len(details.MiscExpenses, 1)
	suite.Assert().True(decimal.NewFromInt(15).Equal(details.MiscExpenses[0].Amount))

	r = suite.request(http.MethodDelete, "/api/misc-expenses/"+misc.Data.ID.String(), nil, &maria)
	suite.assertStatus(http.StatusNoContent, r)
	r = suite.request(http.MethodDelete, "/api/investments/"+investment.Data.ID.String(), nil, &maria)
	suite.assertStatus(http.StatusNoContent, r)
}

func (suite *TestSuiteStandard) TestItemOptions() {
	r := suite.request(http.MethodOptions, "/api/incomes", nil, nil)
	suite.assertStatus(http.StatusNoContent, r)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "/api/expenses/65392deb-5e92-4268-b114-297faad6cdce", nil, nil)
	suite.assertStatus(http.StatusNoContent, r)
	suite.Assert().Equal("OPTIONS, PATCH, DELETE", r.Header().Get("allow"))
}
