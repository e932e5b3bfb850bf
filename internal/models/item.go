package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item is implemented by the entries of a Month.
type Item interface {
	Income | Expense | Investment | MiscExpense
}

func validateItem(description string, day *int, amounts ...decimal.Decimal) error {
	if description == "" {
		return ErrDescriptionEmpty
	}

	for _, a := range amounts {
		if a.IsNegative() {
			return ErrAmountNegative
		}
	}

	if day != nil && (*day < 1 || *day > 31) {
		return ErrDayOfMonthInvalid
	}

	return nil
}

// OwnedBy limits a query on month items to the items in the user's months.
func OwnedBy(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("month_id IN (?)", db.Session(&gorm.Session{NewDB: true}).Model(&Month{}).Select("id").Where("user_id = ?", userID))
	}
}

// FindItem returns the item with the ID if it belongs to one of the user's months.
func FindItem[T Item](db *gorm.DB, userID, id uuid.UUID) (T, error) {
	var item T
	err := db.Scopes(OwnedBy(userID)).Where("id = ?", id).First(&item).Error
	return item, err
}

// ItemPosition is the new position of an item in its list.
type ItemPosition struct {
	ID    uuid.UUID `json:"id" binding:"required" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Order int       `json:"order" example:"2"`
}

// Reorder sets the positions of the user's items of type T in a single transaction.
// If one of the items does not belong to the user, nothing is changed.
func Reorder[T Item](db *gorm.DB, userID uuid.UUID, positions []ItemPosition) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, p := range positions {
			var item T
			res := tx.Model(&item).Scopes(OwnedBy(userID)).Where("id = ?", p.ID).UpdateColumn("position", p.Order)
			if res.Error != nil {
				return res.Error
			}

			if res.RowsAffected == 0 {
				return tx.Scopes(OwnedBy(userID)).Where("id = ?", p.ID).First(&item).Error
			}
		}

		return nil
	})
}

type Income struct {
	DefaultModel
	IncomeEditable
}

type IncomeEditable struct {
	MonthID     uuid.UUID       `json:"monthId" gorm:"index;not null" example:"0f8a7c3e-6b1f-4a6c-9d7e-5c2b1a0f9e8d"` // ID of the month the income belongs to
	Description string          `json:"description" example:"Salary"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"3500"`
	DayOfMonth  *int            `json:"dayOfMonth" example:"5"` // Day of the month the income is expected on
	IsReceived  bool            `json:"isReceived" example:"false"`
	IsTithePaid bool            `json:"isTithePaid" example:"false"`
	Order       int             `json:"order" gorm:"column:position" example:"0"` // Position in the list of incomes
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)
	return nil
}

func (i *Income) AfterSave(_ *gorm.DB) error {
	return validateItem(i.Description, i.DayOfMonth, i.Amount)
}

type ExpenseType string

const (
	ExpenseStandard        ExpenseType = "STANDARD"
	ExpenseTithe           ExpenseType = "TITHE"
	ExpenseInvestmentTotal ExpenseType = "INVESTMENT_TOTAL"
	ExpenseMiscTotal       ExpenseType = "MISC_TOTAL"
)

func (t ExpenseType) Valid() bool {
	switch t {
	case ExpenseStandard, ExpenseTithe, ExpenseInvestmentTotal, ExpenseMiscTotal:
		return true
	}
	return false
}

type Expense struct {
	DefaultModel
	ExpenseEditable
}

type ExpenseEditable struct {
	MonthID     uuid.UUID       `json:"monthId" gorm:"index;not null" example:"0f8a7c3e-6b1f-4a6c-9d7e-5c2b1a0f9e8d"`
	Description string          `json:"description" example:"Rent"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:DECIMAL(20,8)" example:"1200"`
	PaidAmount  decimal.Decimal `json:"paidAmount" gorm:"type:DECIMAL(20,8);not null;default:0" example:"0"`
	IsPaid      bool            `json:"isPaid" example:"false"`
	DayOfMonth  *int            `json:"dayOfMonth" example:"10"`
	Type        ExpenseType     `json:"type" gorm:"index;not null;default:STANDARD" example:"STANDARD"`
	Order       int             `json:"order" gorm:"column:position" example:"0"`
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Type == "" {
		e.Type = ExpenseStandard
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if !e.Type.Valid() {
		return ErrExpenseTypeInvalid
	}

	if e.PaidAmount.GreaterThan(e.TotalAmount) {
		return ErrPaidAmountInvalid
	}

	return validateItem(e.Description, e.DayOfMonth, e.TotalAmount, e.PaidAmount)
}

// SetExpensePaid marks the expense as fully paid or unpaid.
func SetExpensePaid(db *gorm.DB, expense *Expense, paid bool) error {
	paidAmount := decimal.Zero
	if paid {
		paidAmount = expense.TotalAmount
	}

	return db.Model(expense).Select("IsPaid", "PaidAmount").Updates(Expense{ExpenseEditable: ExpenseEditable{IsPaid: paid, PaidAmount: paidAmount}}).Error
}

type Investment struct {
	DefaultModel
	InvestmentEditable
}

type InvestmentEditable struct {
	MonthID     uuid.UUID       `json:"monthId" gorm:"index;not null" example:"0f8a7c3e-6b1f-4a6c-9d7e-5c2b1a0f9e8d"`
	Description string          `json:"description" example:"Index fund"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"300"`
	IsPaid      bool            `json:"isPaid" example:"false"`
	DayOfMonth  *int            `json:"dayOfMonth" example:"15"`
	Order       int             `json:"order" gorm:"column:position" example:"0"`
}

func (i *Investment) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)
	return nil
}

func (i *Investment) AfterSave(_ *gorm.DB) error {
	return validateItem(i.Description, i.DayOfMonth, i.Amount)
}

type MiscExpense struct {
	DefaultModel
	MiscExpenseEditable
}

type MiscExpenseEditable struct {
	MonthID     uuid.UUID       `json:"monthId" gorm:"index;not null" example:"0f8a7c3e-6b1f-4a6c-9d7e-5c2b1a0f9e8d"`
	Description string          `json:"description" example:"Groceries"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"80"`
	IsPaid      bool            `json:"isPaid" example:"false"`
	DayOfMonth  *int            `json:"dayOfMonth" example:"20"`
	Order       int             `json:"order" gorm:"column:position" example:"0"`
}

func (e *MiscExpense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	return nil
}

func (e *MiscExpense) AfterSave(_ *gorm.DB) error {
	return validateItem(e.Description, e.DayOfMonth, e.Amount)
}
