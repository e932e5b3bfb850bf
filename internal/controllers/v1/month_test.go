package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/haniellevi/SANTODINHIERO-sub001/internal/controllers/v1"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/events"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/test"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMonthsRequireCaller() {
	r := suite.request(http.MethodGet, "/api/months/current", nil, nil)
	suite.assertStatus(http.StatusUnauthorized, r)
}

func (suite *TestSuiteStandard) TestGetMonthCreatesOnce() {
	first := suite.month(maria, 2025, 3)
	second := suite.month(maria, 2025, 3)

	suite.Assert().Equal(first.ID, second.ID)
	suite.Assert().Equal(2025, first.Year)
	suite.Assert().Equal(3, first.Month.Month)
	suite.Assert().Equal(0, first.DaysLeft, "past periods have no days left")
	suite.Assert().False(first.PlanningAlert)

	var count int64
	suite.env.DB.Model(&models.Month{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestGetCurrentMonth() {
	r := suite.request(http.MethodGet, "/api/months/current", nil, &maria)
	suite.assertStatus(http.StatusOK, r)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	now := time.Now()
	suite.Assert().Equal(now.Year(), response.Data.Year)
	suite.Assert().Equal(int(now.Month()), response.Data.Month.Month)
	suite.Assert().GreaterOrEqual(response.Data.DaysLeft, 0)
	suite.Assert().Less(response.Data.DaysLeft, 31)
}

func (suite *TestSuiteStandard) TestGetMonthInvalidPeriod() {
	for _, path := range []string{"/api/months/2025/13", "/api/months/2025/0", "/api/months/abc/3"} {
		r := suite.request(http.MethodGet, path, nil, &maria)
		suite.assertStatus(http.StatusBadRequest, r)
	}
}

func (suite *TestSuiteStandard) TestListMonths() {
	suite.month(maria, 2025, 4)
	suite.month(maria, 2024, 12)
	suite.month(joao, 2025, 1)

	r := suite.request(http.MethodGet, "/api/months", nil, &maria)
	suite.assertStatus(http.StatusOK, r)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal([]types.Period{
		types.NewPeriod(2024, time.December),
		types.NewPeriod(2025, time.April),
	}, response.Data)
}

func (suite *TestSuiteStandard) TestMonthTotals() {
	month := suite.month(maria, 2025, 3)
	suite.createIncome(maria, month.ID, "Salary", 1500)
	suite.createExpense(maria, month.ID, "Rent", 900, models.ExpenseStandard)
	suite.createExpense(maria, month.ID, "Investments", 200, models.ExpenseInvestmentTotal)

	r := suite.request(http.MethodPost, "/api/investments", map[string]any{"monthId": month.ID, "description": "Fund", "amount": 200}, &maria)
	suite.assertStatus(http.StatusCreated, r)
	r = suite.request(http.MethodPost, "/api/misc-expenses", map[string]any{"monthId": month.ID, "description": "Groceries", "amount": 80}, &maria)
	suite.assertStatus(http.StatusCreated, r)

	totals := suite.month(maria, 2025, 3).Totals
	suite.Assert().True(decimal.NewFromInt(1500).Equal(totals.Income))
	suite.Assert().True(decimal.NewFromInt(150).Equal(totals.Tithe))
	suite.Assert().True(decimal.NewFromInt(1330).Equal(totals.Outflow), totals.Outflow.String())
	suite.Assert().True(decimal.NewFromInt(170).Equal(totals.Balance), totals.Balance.String())
}

func (suite *TestSuiteStandard) TestAmountsAreNumbers() {
	month := suite.month(maria, 2025, 3)
	suite.createIncome(maria, month.ID, "Salary", 1500.5)

	r := suite.request(http.MethodGet, "/api/months/2025/3", nil, &maria)
	suite.assertStatus(http.StatusOK, r)
	suite.Assert().Contains(r.Body.String(), `"amount":1500.5`)
	suite.Assert().Contains(r.Body.String(), `"totalIncome":1500.5`)
}

func (suite *TestSuiteStandard) TestCreateEmptyMonth() {
	user := suite.user(maria)

	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"external id", map[string]any{"userId": maria.ExternalID, "month": 5, "year": 2025}, http.StatusCreated},
		{"internal id", map[string]any{"userId": user.ID.String(), "month": 6, "year": 2025}, http.StatusCreated},
		{"exists", map[string]any{"userId": maria.ExternalID, "month": 5, "year": 2025}, http.StatusBadRequest},
		{"other user", map[string]any{"userId": joao.ExternalID, "month": 7, "year": 2025}, http.StatusForbidden},
		{"invalid month", map[string]any{"userId": maria.ExternalID, "month": 13, "year": 2025}, http.StatusBadRequest},
		{"missing fields", map[string]any{"userId": maria.ExternalID}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.env.Request(t, http.MethodPost, "/api/months/create-empty", tt.body, test.Token(t, maria))
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}

	r := suite.request(http.MethodPost, "/api/months/create-empty", map[string]any{"userId": maria.ExternalID, "month": 8, "year": 2025}, &maria)
	var response v1.CreateEmptyMonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Success)
	suite.Assert().Equal(8, response.Month.Month)
	suite.Assert().Equal(user.ID, response.Month.UserID)
}

func (suite *TestSuiteStandard) TestDuplicateMonth() {
	month := suite.month(maria, 2024, 12)
	income := suite.createIncome(maria, month.ID, "Salary", 3000)
	expense := suite.createExpense(maria, month.ID, "Rent", 1200, models.ExpenseStandard)
	suite.createExpense(maria, month.ID, "Church", 300, models.ExpenseTithe)

	r := suite.request(http.MethodPost, "/api/incomes/"+income.ID.String()+"/received", map[string]any{"value": true}, &maria)
	suite.assertStatus(http.StatusOK, r)
	r = suite.request(http.MethodPost, "/api/expenses/"+expense.ID.String()+"/paid", map[string]any{"value": true}, &maria)
	suite.assertStatus(http.StatusOK, r)

	r = suite.request(http.MethodPost, "/api/months/2024/12/duplicate", nil, &maria)
	suite.assertStatus(http.StatusCreated, r)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	next := response.Data

	suite.Assert().Equal(2025, next.Year)
	suite.Assert().Equal(1, next.Month.Month)
	suite.Require().Len(next.Incomes, 1)
	suite.Assert().False(next.Incomes[0].IsReceived)
	suite.Require().Len(next.Expenses, 1, "only standard expenses are copied")
	suite.Assert().False(next.Expenses[0].IsPaid)
	suite.Assert().True(next.Expenses[0].PaidAmount.IsZero())

	published := suite.env.Events.Events(events.MonthDuplicated)
	suite.Require().Len(published, 1)
	suite.Assert().Equal(maria.ExternalID, published[0].Actor)

	// The target exists now
	r = suite.request(http.MethodPost, "/api/months/2024/12/duplicate", nil, &maria)
	suite.assertStatus(http.StatusBadRequest, r)

	r = suite.request(http.MethodPost, "/api/months/2023/1/duplicate", nil, &maria)
	suite.assertStatus(http.StatusNotFound, r)
}

func (suite *TestSuiteStandard) TestDeleteMonth() {
	month := suite.month(maria, 2025, 2)
	suite.createIncome(maria, month.ID, "Salary", 1000)

	r := suite.request(http.MethodDelete, "/api/months/2025/2", nil, &joao)
	suite.assertStatus(http.StatusNotFound, r)

	r = suite.request(http.MethodDelete, "/api/months/2025/2", nil, &maria)
	suite.assertStatus(http.StatusNoContent, r)

	var count int64
	suite.env.DB.Model(&models.Income{}).Count(&count)
	suite.Assert().Equal(int64(0), count, "items are deleted with the month")

	r = suite.request(http.MethodDelete, "/api/months/2025/2", nil, &maria)
	suite.assertStatus(http.StatusNotFound, r)
}

func (suite *TestSuiteStandard) TestSetMonthTithe() {
	month := suite.month(maria, 2025, 3)
	suite.createIncome(maria, month.ID, "Salary", 2000)

	r := suite.request(http.MethodPost, "/api/months/2025/3/tithe", map[string]any{"value": true}, &maria)
	suite.assertStatus(http.StatusOK, r)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(200).Equal(response.Data.TithePaidAmount), response.Data.TithePaidAmount.String())

	r = suite.request(http.MethodPost, "/api/months/2025/3/tithe", map[string]any{"value": false}, &maria)
	suite.assertStatus(http.StatusOK, r)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.TithePaidAmount.IsZero())

	r = suite.request(http.MethodPost, "/api/months/2025/3/tithe", map[string]any{}, &maria)
	suite.assertStatus(http.StatusBadRequest, r)

	r = suite.request(http.MethodPost, "/api/months/2020/3/tithe", map[string]any{"value": true}, &maria)
	suite.assertStatus(http.StatusNotFound, r)
}
