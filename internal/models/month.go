package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// titheRate is the share of the income that is tithed.
var titheRate = decimal.RequireFromString("0.1")

// Month is one user's ledger for a calendar month. There is at most one
// Month per user and period.
type Month struct {
	DefaultModel
	UserID          uuid.UUID       `json:"userId" gorm:"uniqueIndex:month_user_period;not null" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Month           int             `json:"month" gorm:"uniqueIndex:month_user_period;not null" example:"3"`
	Year            int             `json:"year" gorm:"uniqueIndex:month_user_period;not null" example:"2025"`
	TithePaidAmount decimal.Decimal `json:"tithePaidAmount" gorm:"type:DECIMAL(20,8);not null;default:0" example:"150"`
	Incomes         []Income        `json:"incomes" gorm:"constraint:OnDelete:CASCADE"`
	Expenses        []Expense       `json:"expenses" gorm:"constraint:OnDelete:CASCADE"`
	Investments     []Investment    `json:"investments" gorm:"constraint:OnDelete:CASCADE"`
	MiscExpenses    []MiscExpense   `json:"miscExpenses" gorm:"constraint:OnDelete:CASCADE"`
}

// Period returns the calendar month the ledger is for.
func (m Month) Period() types.Period {
	return types.NewPeriod(m.Year, time.Month(m.Month))
}

// Totals are the sums derived from a Month and its items.
type Totals struct {
	Income     decimal.Decimal `json:"totalIncome" example:"1500"`
	Tithe      decimal.Decimal `json:"titheAmount" example:"150"`
	Investment decimal.Decimal `json:"totalInvestment" example:"200"`
	Misc       decimal.Decimal `json:"totalMisc" example:"80"`
	Expense    decimal.Decimal `json:"totalExpense" example:"900"`
	Paid       decimal.Decimal `json:"totalPaid" example:"450"`
	Outflow    decimal.Decimal `json:"totalOutflow" example:"1330"`
	Balance    decimal.Decimal `json:"balance" example:"170"`
}

// Totals computes the totals for the month. The items must be loaded.
//
// The outflow counts standard and tithe expenses only, investments and
// miscellaneous expenses are added from their own lists and the tithe
// is added as 10% of the income.
func (m Month) Totals() Totals {
	t := Totals{
		Income:     decimal.Zero,
		Investment: decimal.Zero,
		Misc:       decimal.Zero,
		Expense:    decimal.Zero,
		Paid:       decimal.Zero,
	}

	for _, i := range m.Incomes {
		t.Income = t.Income.Add(i.Amount)
	}

	for _, i := range m.Investments {
		t.Investment = t.Investment.Add(i.Amount)
	}

	for _, e := range m.MiscExpenses {
		t.Misc = t.Misc.Add(e.Amount)
	}

	standard := decimal.Zero
	for _, e := range m.Expenses {
		t.Expense = t.Expense.Add(e.TotalAmount)
		t.Paid = t.Paid.Add(e.PaidAmount)

		if e.Type == ExpenseStandard || e.Type == ExpenseTithe {
			standard = standard.Add(e.TotalAmount)
		}
	}

	t.Tithe = Tithe(t.Income)
	t.Outflow = standard.Add(t.Investment).Add(t.Misc).Add(t.Tithe)
	t.Balance = t.Income.Sub(t.Outflow)

	return t
}

// Tithe returns the tithe for an income.
func Tithe(income decimal.Decimal) decimal.Decimal {
	return income.Mul(titheRate)
}

// orderedItems sorts the preloaded items by their position in the list.
func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, created_at ASC")
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Incomes", orderedItems).
		Preload("Expenses", orderedItems).
		Preload("Investments", orderedItems).
		Preload("MiscExpenses", orderedItems)
}

func periodCondition(db *gorm.DB, userID uuid.UUID, p types.Period) *gorm.DB {
	return db.Where("user_id = ? AND month = ? AND year = ?", userID, int(p.Month), p.Year)
}

// FindMonth returns the month with all items for the user and period.
func FindMonth(db *gorm.DB, userID uuid.UUID, p types.Period) (Month, error) {
	var month Month
	err := periodCondition(withItems(db), userID, p).First(&month).Error
	if err != nil {
		return Month{}, err
	}

	return month, nil
}

// GetOrCreateMonth returns the month for the user and period with all items loaded,
// creating an empty one if it does not exist.
//
// Creation is an insert that ignores conflicts on the unique period index
// followed by a read. Concurrent callers for the same period therefore
// all get the same row.
func GetOrCreateMonth(db *gorm.DB, userID uuid.UUID, p types.Period) (Month, error) {
	if err := p.Validate(); err != nil {
		return Month{}, err
	}

	month := Month{
		UserID:          userID,
		Month:           int(p.Month),
		Year:            p.Year,
		TithePaidAmount: decimal.Zero,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "year"}},
		DoNothing: true,
	}).Create(&month).Error
	if err != nil {
		return Month{}, err
	}

	return FindMonth(db, userID, p)
}

// GetOrCreateCurrentMonth provisions the month that now is in.
func GetOrCreateCurrentMonth(db *gorm.DB, userID uuid.UUID, now time.Time) (Month, error) {
	return GetOrCreateMonth(db, userID, types.PeriodOf(now))
}

// CreateEmptyMonth creates an empty month. It fails with ErrMonthExists if
// the user already has a month for the period.
func CreateEmptyMonth(db *gorm.DB, userID uuid.UUID, p types.Period) (Month, error) {
	if err := p.Validate(); err != nil {
		return Month{}, err
	}

	month := Month{
		UserID:          userID,
		Month:           int(p.Month),
		Year:            p.Year,
		TithePaidAmount: decimal.Zero,
	}

	err := db.Create(&month).Error
	if err != nil {
		return Month{}, err
	}

	return month, nil
}

// ListUserMonths returns the periods the user has a month for, oldest first.
func ListUserMonths(db *gorm.DB, userID uuid.UUID) ([]types.Period, error) {
	var months []Month
	err := db.Select("month", "year").Where("user_id = ?", userID).Order("year ASC, month ASC").Find(&months).Error
	if err != nil {
		return nil, err
	}

	periods := make([]types.Period, 0, len(months))
	for _, m := range months {
		periods = append(periods, m.Period())
	}

	return periods, nil
}

// DuplicateMonth copies a month into the following period.
//
// Incomes and investments are copied with their status reset. Of the
// expenses, only STANDARD ones are copied, unpaid. Miscellaneous expenses
// are not copied.
func DuplicateMonth(db *gorm.DB, userID uuid.UUID, p types.Period) (Month, error) {
	if err := p.Validate(); err != nil {
		return Month{}, err
	}

	next := p.Next()
	err := db.Transaction(func(tx *gorm.DB) error {
		source, err := FindMonth(tx, userID, p)
		if errors.Is(err, ErrResourceNotFound) {
			return ErrMonthNotFound
		} else if err != nil {
			return err
		}

		target, err := CreateEmptyMonth(tx, userID, next)
		if err != nil {
			return err
		}

		var incomes []Income
		for _, i := range source.Incomes {
			i.IncomeEditable.MonthID = target.ID
			i.IsReceived = false
			i.IsTithePaid = false
			incomes = append(incomes, Income{IncomeEditable: i.IncomeEditable})
		}

		var expenses []Expense
		for _, e := range source.Expenses {
			if e.Type != ExpenseStandard {
				continue
			}
			e.ExpenseEditable.MonthID = target.ID
			e.PaidAmount = decimal.Zero
			e.IsPaid = false
			expenses = append(expenses, Expense{ExpenseEditable: e.ExpenseEditable})
		}

		var investments []Investment
		for _, i := range source.Investments {
			i.InvestmentEditable.MonthID = target.ID
			i.IsPaid = false
			investments = append(investments, Investment{InvestmentEditable: i.InvestmentEditable})
		}

		if len(incomes) > 0 {
			if err := tx.Create(&incomes).Error; err != nil {
				return err
			}
		}

		if len(expenses) > 0 {
			if err := tx.Create(&expenses).Error; err != nil {
				return err
			}
		}

		if len(investments) > 0 {
			return tx.Create(&investments).Error
		}

		return nil
	})
	if err != nil {
		return Month{}, err
	}

	return FindMonth(db, userID, next)
}

// DeleteMonth deletes the user's month for the period together with all its items.
func DeleteMonth(db *gorm.DB, userID uuid.UUID, p types.Period) error {
	res := periodCondition(db, userID, p).Delete(&Month{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrMonthNotFound
	}

	return nil
}

// DeleteMonthsBefore deletes all months, of all users, before the period.
func DeleteMonthsBefore(db *gorm.DB, p types.Period) (int64, error) {
	res := db.Where("year < ? OR (year = ? AND month < ?)", p.Year, p.Year, int(p.Month)).Delete(&Month{})
	return res.RowsAffected, res.Error
}

// DeleteMonthsExcept deletes all months, of all users, that are not for the period.
func DeleteMonthsExcept(db *gorm.DB, p types.Period) (int64, error) {
	res := db.Where("NOT (year = ? AND month = ?)", p.Year, int(p.Month)).Delete(&Month{})
	return res.RowsAffected, res.Error
}

// SetTithePaid marks the tithe of the month as paid with the current tithe amount,
// or as unpaid.
func SetTithePaid(db *gorm.DB, month *Month, paid bool) error {
	amount := decimal.Zero
	if paid {
		amount = month.Totals().Tithe
	}

	return db.Model(month).Select("TithePaidAmount").Updates(Month{TithePaidAmount: amount}).Error
}
