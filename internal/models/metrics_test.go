package models_test

import (
	"context"
	"fmt"
	"time"

	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAdminMetrics() {
	now := time.Now()
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")

	// Bob signed up last month
	lastMonth := types.PeriodOf(now).Start(now.Location()).Add(-48 * time.Hour).UTC()
	suite.Require().Nil(suite.db.Model(&bob).UpdateColumn("created_at", lastMonth).Error)

	march, err := models.GetOrCreateMonth(suite.db, alice.ID, types.NewPeriod(2025, time.March))
	suite.Require().Nil(err)
	suite.createTestIncome(march, "1000")
	suite.createTestIncome(march, "500")
	suite.Require().Nil(models.SetTithePaid(suite.db, &march, false))

	april, err := models.GetOrCreateMonth(suite.db, bob.ID, types.NewPeriod(2025, time.April))
	suite.Require().Nil(err)
	suite.createTestIncome(april, "250.5")
	suite.Require().Nil(suite.db.Model(&april).UpdateColumn("tithe_paid_amount", decimal.NewFromInt(25)).Error)

	metrics, err := models.AdminMetrics(context.Background(), suite.db, now)
	suite.Require().Nil(err)

	suite.Assert().Equal(int64(2), metrics.TotalUsers)
	suite.Assert().Equal(int64(1), metrics.NewUsersThisMonth)
	suite.Assert().True(metrics.TotalTransactionVolume.Equal(decimal.RequireFromString("1750.5")), metrics.TotalTransactionVolume.String())
	suite.Assert().True(metrics.TitheVolume.Equal(decimal.NewFromInt(25)), metrics.TitheVolume.String())
}

// New users are counted from local midnight on the first day of the month, inclusive.
func (suite *TestSuiteStandard) TestAdminMetricsNewUsersBoundary() {
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, loc)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, loc)

	signups := map[string]time.Time{
		"before": start.Add(-time.Millisecond),
		"at":     start,
		"after":  start.Add(time.Hour),
	}

	for id, createdAt := range signups {
		user := suite.createTestUser(id)
		suite.Require().Nil(suite.db.Model(&user).UpdateColumn("created_at", createdAt.UTC()).Error)
	}

	metrics, err := models.AdminMetrics(context.Background(), suite.db, now)
	suite.Require().Nil(err)

	suite.Assert().Equal(int64(3), metrics.TotalUsers)
	suite.Assert().Equal(int64(2), metrics.NewUsersThisMonth)
}

func (suite *TestSuiteStandard) TestAdminMetricsEmpty() {
	metrics, err := models.AdminMetrics(context.Background(), suite.db, time.Now())
	suite.Require().Nil(err)

	suite.Assert().Zero(metrics.TotalUsers)
	suite.Assert().True(metrics.TotalTransactionVolume.IsZero())
	suite.Assert().True(metrics.TitheVolume.IsZero())
}

func (suite *TestSuiteStandard) TestAdminMetricsDBClosed() {
	suite.CloseDB()

	_, err := models.AdminMetrics(context.Background(), suite.db, time.Now())
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestExpenseDistribution() {
	user := suite.createTestUser("distribution")
	m, err := models.GetOrCreateMonth(suite.db, user.ID, types.NewPeriod(2025, time.March))
	suite.Require().Nil(err)

	amounts := map[models.ExpenseType][]string{
		models.ExpenseStandard:        {"100", "250.25"},
		models.ExpenseTithe:           {"150"},
		models.ExpenseInvestmentTotal: {"300"},
	}

	total := decimal.Zero
	for expenseType, values := range amounts {
		for _, v := range values {
			suite.createTestExpense(m, expenseType, v)
			total = total.Add(decimal.RequireFromString(v))
		}
	}

	entries, err := models.ExpenseDistribution(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(entries, 3)

	sum := decimal.Zero
	byType := map[models.ExpenseType]decimal.Decimal{}
	for _, e := range entries {
		sum = sum.Add(e.Value)
		byType[e.Name] = e.Value
	}

	suite.Assert().True(sum.Equal(total), "group sums must add up to the total, got %s, want %s", sum, total)
	suite.Assert().True(byType[models.ExpenseStandard].Equal(decimal.RequireFromString("350.25")))
}

func (suite *TestSuiteStandard) TestRecentFeedback() {
	user := suite.createTestUser("feedback")

	for i := 0; i < 7; i++ {
		f := models.Feedback{UserID: user.ID, Type: models.FeedbackSuggestion, Message: fmt.Sprintf("Idea %d", i)}
		suite.Require().Nil(suite.db.Create(&f).Error)
		suite.Require().Nil(suite.db.Model(&f).UpdateColumn("created_at", time.Now().Add(time.Duration(i)*time.Minute)).Error)
	}

	entries, err := models.RecentFeedback(suite.db, 5)
	suite.Require().Nil(err)
	suite.Require().Len(entries, 5)

	suite.Assert().Equal("Idea 6", entries[0].Message)
	suite.Assert().Equal("Idea 2", entries[4].Message)
	suite.Assert().Equal(user.Email, entries[0].UserEmail)
	suite.Assert().Equal(user.Name, entries[0].UserName)
}

func (suite *TestSuiteStandard) TestFeedbackValidation() {
	user := suite.createTestUser("fbv")

	err := suite.db.Create(&models.Feedback{UserID: user.ID, Type: "RANT", Message: "x"}).Error
	suite.Assert().ErrorIs(err, models.ErrFeedbackTypeInvalid)

	err = suite.db.Create(&models.Feedback{UserID: user.ID, Message: "  "}).Error
	suite.Assert().ErrorIs(err, models.ErrFeedbackMessageEmpty)
}

func (suite *TestSuiteStandard) TestCountUsers() {
	suite.createTestUser("one")
	two := suite.createTestUser("two")
	_, err := models.SetUserActive(suite.db, two.ID, false)
	suite.Require().Nil(err)

	counts, err := models.CountUsers(suite.db)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.UserCounts{TotalUsers: 2, ActiveUsers: 1}, counts)
}
