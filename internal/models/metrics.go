package models

import (
	"context"
	"time"

	"github.com/haniellevi/SANTODINHIERO-sub001/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// The aggregations in this file scan the full tables. Once the user base
// grows they need to be served from pre-aggregated summary tables.

// Metrics are the platform wide numbers on the admin dashboard.
type Metrics struct {
	TotalUsers             int64           `json:"totalUsers" example:"120"`
	NewUsersThisMonth      int64           `json:"newUsersThisMonth" example:"14"`
	TotalTransactionVolume decimal.Decimal `json:"totalTransactionVolume" example:"482310.5"`
	TitheVolume            decimal.Decimal `json:"titheVolume" example:"32140"`
}

// AdminMetrics computes the platform wide metrics. New users are counted
// from midnight on the first day of now's month in now's location.
func AdminMetrics(ctx context.Context, db *gorm.DB, now time.Time) (Metrics, error) {
	var m Metrics
	monthStart := types.PeriodOf(now).Start(now.Location())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return db.WithContext(ctx).Model(&User{}).Count(&m.TotalUsers).Error
	})

	g.Go(func() error {
		return db.WithContext(ctx).Model(&User{}).Where("created_at >= ?", monthStart.UTC()).Count(&m.NewUsersThisMonth).Error
	})

	g.Go(func() error {
		var err error
		m.TotalTransactionVolume, err = sum(db.WithContext(ctx).Model(&Income{}), "amount")
		return err
	})

	g.Go(func() error {
		var err error
		m.TitheVolume, err = sum(db.WithContext(ctx).Model(&Month{}), "tithe_paid_amount")
		return err
	})

	if err := g.Wait(); err != nil {
		return Metrics{}, err
	}

	return m, nil
}

func sum(db *gorm.DB, column string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := db.Select("SUM(" + column + ")").Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

// DistributionEntry is the sum of all expenses of one type.
type DistributionEntry struct {
	Name  ExpenseType     `json:"name" example:"STANDARD"`
	Value decimal.Decimal `json:"value" example:"120430.2"`
}

// ExpenseDistribution sums the total amount of all expenses per type.
func ExpenseDistribution(db *gorm.DB) ([]DistributionEntry, error) {
	var rows []struct {
		Type  ExpenseType
		Total decimal.NullDecimal
	}

	err := db.Model(&Expense{}).Select("type, SUM(total_amount) AS total").Group("type").Order("type").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]DistributionEntry, 0, len(rows))
	for _, r := range rows {
		value := decimal.Zero
		if r.Total.Valid {
			value = r.Total.Decimal
		}
		entries = append(entries, DistributionEntry{Name: r.Type, Value: value})
	}

	return entries, nil
}

// FeedbackEntry is a feedback with the submitter's contact data.
type FeedbackEntry struct {
	Feedback
	UserName  string `json:"userName" example:"Maria Silva"`
	UserEmail string `json:"userEmail" example:"maria@example.com"`
}

// RecentFeedback returns the newest feedback entries.
func RecentFeedback(db *gorm.DB, limit int) ([]FeedbackEntry, error) {
	var feedback []Feedback
	err := db.Preload("User").Order("created_at DESC").Limit(limit).Find(&feedback).Error
	if err != nil {
		return nil, err
	}

	entries := make([]FeedbackEntry, 0, len(feedback))
	for _, f := range feedback {
		entries = append(entries, FeedbackEntry{Feedback: f, UserName: f.User.Name, UserEmail: f.User.Email})
	}

	return entries, nil
}

// UserCounts are the user numbers for the admin overview.
type UserCounts struct {
	TotalUsers  int64 `json:"totalUsers" example:"120"`
	ActiveUsers int64 `json:"activeUsers" example:"113"`
}

func CountUsers(db *gorm.DB) (UserCounts, error) {
	var c UserCounts
	err := db.Model(&User{}).Count(&c.TotalUsers).Error
	if err != nil {
		return UserCounts{}, err
	}

	err = db.Model(&User{}).Where("is_active = ?", true).Count(&c.ActiveUsers).Error
	return c, err
}
