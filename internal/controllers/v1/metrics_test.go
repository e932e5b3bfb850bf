package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/haniellevi/SANTODINHIERO-sub001/internal/controllers/v1"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDashboard() {
	joaoUser := suite.user(joao)
	suite.user(maria)
	_, err := models.SetUserActive(suite.env.DB, joaoUser.ID, false)
	suite.Require().Nil(err)

	r := suite.request(http.MethodGet, "/api/admin/dashboard", nil, &admin)
	suite.assertStatus(http.StatusOK, r)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.UserCounts{TotalUsers: 3, ActiveUsers: 2}, response.Data)
}

func (suite *TestSuiteStandard) TestMetrics() {
	now := time.Now()
	month := suite.month(maria, now.Year(), int(now.Month()))
	suite.createIncome(maria, month.ID, "Salary", 2000)
	suite.createIncome(maria, month.ID, "Freelance", 500)

	r := suite.request(http.MethodPost, fmt.Sprintf("/api/months/%d/%d/tithe", now.Year(), int(now.Month())), map[string]any{"value": true}, &maria)
	suite.assertStatus(http.StatusOK, r)

	other := suite.month(joao, 2024, 6)
	suite.createIncome(joao, other.ID, "Salary", 1000)

	r = suite.request(http.MethodGet, "/api/admin/metrics", nil, &admin)
	suite.assertStatus(http.StatusOK, r)

	var response v1.MetricsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(int64(3), response.Data.TotalUsers)
	suite.Assert().Equal(int64(3), response.Data.NewUsersThisMonth)
	suite.Assert().True(decimal.NewFromInt(3500).Equal(response.Data.TotalTransactionVolume), response.Data.TotalTransactionVolume.String())
	suite.Assert().True(decimal.NewFromInt(250).Equal(response.Data.TitheVolume), response.Data.TitheVolume.String())
}

func (suite *TestSuiteStandard) TestMetricsEmpty() {
	r := suite.request(http.MethodGet, "/api/admin/metrics", nil, &admin)
	suite.assertStatus(http.StatusOK, r)
	suite.Assert().Contains(r.Body.String(), `"totalTransactionVolume":0`)

	r = suite.request(http.MethodGet, "/api/admin/expense-distribution", nil, &admin)
	suite.assertStatus(http.StatusOK, r)
	suite.Assert().JSONEq(`{"data":[]}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestExpenseDistribution() {
	month := suite.month(maria, 2025, 3)
	suite.createExpense(maria, month.ID, "Rent", 1000, models.ExpenseStandard)
	suite.createExpense(maria, month.ID, "Power", 150.5, models.ExpenseStandard)
	suite.createExpense(maria, month.ID, "Church", 300, models.ExpenseTithe)

	r := suite.request(http.MethodGet, "/api/admin/expense-distribution", nil, &admin)
	suite.assertStatus(http.StatusOK, r)

	var response v1.DistributionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(models.ExpenseStandard, response.Data[0].Name)
	suite.Assert().True(decimal.RequireFromString("1150.5").Equal(response.Data[0].Value), response.Data[0].Value.String())
	suite.Assert().Equal(models.ExpenseTithe, response.Data[1].Name)
	suite.Assert().True(decimal.NewFromInt(300).Equal(response.Data[1].Value))
}

func (suite *TestSuiteStandard) TestRecentFeedback() {
	for i := 0; i < 7; i++ {
		r := suite.request(http.MethodPost, "/api/feedback", map[string]any{"message": fmt.Sprintf("Message %d", i)}, &maria)
		suite.assertStatus(http.StatusCreated, r)
	}

	r := suite.request(http.MethodGet, "/api/admin/feedback", nil, &admin)
	suite.assertStatus(http.StatusOK, r)

	var response v1.FeedbackListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 5)
	suite.Assert().Equal(maria.Name, response.Data[0].UserName)
	suite.Assert().Equal(maria.Email, response.Data[0].UserEmail)
}
