package models_test

import (
	"sync"
	"time"

	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetOrCreateMonthIsIdempotent() {
	user := suite.createTestUser("idempotent")
	period := types.NewPeriod(2025, time.March)

	first, err := models.GetOrCreateMonth(suite.db, user.ID, period)
	suite.Require().Nil(err)
	suite.createTestIncome(first, "1000")

	second, err := models.GetOrCreateMonth(suite.db, user.ID, period)
	suite.Require().Nil(err)

	suite.Assert().Equal(first.ID, second.ID)
	suite.Assert().Len(second.Incomes, 1)
	suite.Assert().True(second.TithePaidAmount.IsZero())
}

func (suite *TestSuiteStandard) TestGetOrCreateMonthConcurrent() {
	user := suite.createTestUser("concurrent")
	period := types.NewPeriod(2025, time.April)

	var wg sync.WaitGroup
	ids := make(chan string, 10)
	errs := make(chan error, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := models.GetOrCreateMonth(suite.db, user.ID, period)
			if err != nil {
				errs <- err
				return
			}
			ids <- m.ID.String()
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		suite.Assert().Nil(err)
	}

	seen := map[string]bool{}
	for id := range ids {
		seen[id] = true
	}
	suite.Assert().Len(seen, 1, "All callers must observe the same month")

	var count int64
	suite.db.Model(&models.Month{}).Where("user_id = ?", user.ID).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestGetOrCreateMonthInvalidPeriod() {
	user := suite.createTestUser("invalid")

	for _, p := range []types.Period{types.NewPeriod(2025, 0), types.NewPeriod(2025, 13), types.NewPeriod(1800, time.May)} {
		_, err := models.GetOrCreateMonth(suite.db, user.ID, p)
		suite.Assert().ErrorIs(err, types.ErrInvalidPeriod, p.String())
	}
}

func (suite *TestSuiteStandard) TestGetOrCreateCurrentMonth() {
	user := suite.createTestUser("current")
	now := time.Date(2025, time.July, 14, 10, 0, 0, 0, time.UTC)

	m, err := models.GetOrCreateCurrentMonth(suite.db, user.ID, now)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.NewPeriod(2025, time.July), m.Period())
}

func (suite *TestSuiteStandard) TestMonthItemsAreOrdered() {
	user := suite.createTestUser("ordered")
	m, err := models.GetOrCreateMonth(suite.db, user.ID, types.NewPeriod(2025, time.March))
	suite.Require().Nil(err)

	for i, description := range []string{"third", "first", "second"} {
		order := map[string]int{"first": 0, "second": 1, "third": 2}[description]
		income := models.Income{IncomeEditable: models.IncomeEditable{
			MonthID:     m.ID,
			Description: description,
			Amount:      decimal.NewFromInt(int64(i + 1)),
			Order:       order,
		}}
		suite.Require().Nil(suite.db.Create(&income).Error)
	}

	m, err = models.FindMonth(suite.db, user.ID, m.Period())
	suite.Require().Nil(err)
	suite.Require().Len(m.Incomes, 3)
	suite.Assert().Equal("first", m.Incomes[0].Description)
	suite.Assert().Equal("second", m.Incomes[1].Description)
	suite.Assert().Equal("third", m.Incomes[2].Description)
}

func (suite *TestSuiteStandard) TestCreateEmptyMonthExists() {
	user := suite.createTestUser("empty")
	period := types.NewPeriod(2025, time.May)

	_, err := models.CreateEmptyMonth(suite.db, user.ID, period)
	suite.Require().Nil(err)

	_, err = models.CreateEmptyMonth(suite.db, user.ID, period)
	suite.Assert().ErrorIs(err, models.ErrMonthExists)
}

func (suite *TestSuiteStandard) TestMonthsAreScopedToUsers() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	period := types.NewPeriod(2025, time.May)

	a, err := models.GetOrCreateMonth(suite.db, alice.ID, period)
	suite.Require().Nil(err)
	b, err := models.GetOrCreateMonth(suite.db, bob.ID, period)
	suite.Require().Nil(err)

	suite.Assert().NotEqual(a.ID, b.ID)
}

func (suite *TestSuiteStandard) TestListUserMonths() {
	user := suite.createTestUser("list")
	for _, p := range []types.Period{
		types.NewPeriod(2025, time.February),
		types.NewPeriod(2024, time.December),
		types.NewPeriod(2025, time.January),
	} {
		_, err := models.GetOrCreateMonth(suite.db, user.ID, p)
		suite.Require().Nil(err)
	}

	periods, err := models.ListUserMonths(suite.db, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]types.Period{
		types.NewPeriod(2024, time.December),
		types.NewPeriod(2025, time.January),
		types.NewPeriod(2025, time.February),
	}, periods)
}

func (suite *TestSuiteStandard) TestDuplicateMonth() {
	user := suite.createTestUser("duplicate")
	period := types.NewPeriod(2025, time.December)

	m, err := models.GetOrCreateMonth(suite.db, user.ID, period)
	suite.Require().Nil(err)

	income := suite.createTestIncome(m, "2000")
	suite.Require().Nil(suite.db.Model(&income).Update("is_received", true).Error)

	rent := suite.createTestExpense(m, models.ExpenseStandard, "900")
	suite.Require().Nil(models.SetExpensePaid(suite.db, &rent, true))
	suite.createTestExpense(m, models.ExpenseTithe, "200")

	suite.Require().Nil(suite.db.Create(&models.Investment{InvestmentEditable: models.InvestmentEditable{MonthID: m.ID, Description: "Fund", Amount: decimal.NewFromInt(100), IsPaid: true}}).Error)
	suite.Require().Nil(suite.db.Create(&models.MiscExpense{MiscExpenseEditable: models.MiscExpenseEditable{MonthID: m.ID, Description: "Coffee", Amount: decimal.NewFromInt(5)}}).Error)

	next, err := models.DuplicateMonth(suite.db, user.ID, period)
	suite.Require().Nil(err)

	suite.Assert().Equal(types.NewPeriod(2026, time.January), next.Period())

	suite.Require().Len(next.Incomes, 1)
	suite.Assert().False(next.Incomes[0].IsReceived)
	suite.Assert().True(next.Incomes[0].Amount.Equal(decimal.NewFromInt(2000)))

	suite.Require().Len(next.Expenses, 1, "Only STANDARD expenses are copied")
	suite.Assert().Equal("Expense 900", next.Expenses[0].Description)
	suite.Assert().False(next.Expenses[0].IsPaid)
	suite.Assert().True(next.Expenses[0].PaidAmount.IsZero())

	suite.Require().Len(next.Investments, 1)
	suite.Assert().False(next.Investments[0].IsPaid)

	suite.Assert().Len(next.MiscExpenses, 0)

	_, err = models.DuplicateMonth(suite.db, user.ID, period)
	suite.Assert().ErrorIs(err, models.ErrMonthExists)
}

func (suite *TestSuiteStandard) TestDuplicateMonthMissingSource() {
	user := suite.createTestUser("nosource")

	_, err := models.DuplicateMonth(suite.db, user.ID, types.NewPeriod(2025, time.June))
	suite.Assert().ErrorIs(err, models.ErrMonthNotFound)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteMonthCascades() {
	user := suite.createTestUser("cascade")
	period := types.NewPeriod(2025, time.March)

	m, err := models.GetOrCreateMonth(suite.db, user.ID, period)
	suite.Require().Nil(err)
	suite.createTestIncome(m, "100")
	suite.createTestExpense(m, models.ExpenseStandard, "50")

	suite.Require().Nil(models.DeleteMonth(suite.db, user.ID, period))

	var incomes, expenses int64
	suite.db.Model(&models.Income{}).Where("month_id = ?", m.ID).Count(&incomes)
	suite.db.Model(&models.Expense{}).Where("month_id = ?", m.ID).Count(&expenses)
	suite.Assert().Zero(incomes)
	suite.Assert().Zero(expenses)

	suite.Assert().ErrorIs(models.DeleteMonth(suite.db, user.ID, period), models.ErrMonthNotFound)
}

func (suite *TestSuiteStandard) TestDeleteMonthsBeforeAndExcept() {
	user := suite.createTestUser("maintenance")
	for _, p := range []types.Period{
		types.NewPeriod(2024, time.November),
		types.NewPeriod(2025, time.February),
		types.NewPeriod(2025, time.March),
		types.NewPeriod(2025, time.April),
	} {
		_, err := models.GetOrCreateMonth(suite.db, user.ID, p)
		suite.Require().Nil(err)
	}

	deleted, err := models.DeleteMonthsBefore(suite.db, types.NewPeriod(2025, time.March))
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(2), deleted)

	deleted, err = models.DeleteMonthsExcept(suite.db, types.NewPeriod(2025, time.March))
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), deleted)

	periods, err := models.ListUserMonths(suite.db, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]types.Period{types.NewPeriod(2025, time.March)}, periods)
}

func (suite *TestSuiteStandard) TestSetTithePaid() {
	user := suite.createTestUser("tithe")
	m, err := models.GetOrCreateMonth(suite.db, user.ID, types.NewPeriod(2025, time.March))
	suite.Require().Nil(err)
	suite.createTestIncome(m, "1000")
	suite.createTestIncome(m, "500")

	m, err = models.FindMonth(suite.db, user.ID, m.Period())
	suite.Require().Nil(err)

	suite.Require().Nil(models.SetTithePaid(suite.db, &m, true))
	m, _ = models.FindMonth(suite.db, user.ID, m.Period())
	suite.Assert().True(m.TithePaidAmount.Equal(decimal.NewFromInt(150)), m.TithePaidAmount.String())

	suite.Require().Nil(models.SetTithePaid(suite.db, &m, false))
	m, _ = models.FindMonth(suite.db, user.ID, m.Period())
	suite.Assert().True(m.TithePaidAmount.IsZero())
}
