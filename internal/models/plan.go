package models

import (
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Plan is a subscription plan offered in the catalog. Plans are not linked to
// users, the billing provider owns subscriptions.
type Plan struct {
	DefaultModel
	PlanEditable
}

type PlanEditable struct {
	ExternalID        *string        `json:"externalId" gorm:"uniqueIndex:plan_external_id" example:"plan_2b9c"` // ID of the plan at the billing provider
	BillingSource     string         `json:"billingSource" example:"clerk"`
	Name              string         `json:"name" gorm:"not null" example:"Família"`
	ExternalName      string         `json:"externalName" example:"familia"`
	Currency          string         `json:"currency" example:"brl"`
	PriceMonthlyCents int64          `json:"priceMonthlyCents" example:"1990"`
	PriceYearlyCents  int64          `json:"priceYearlyCents" example:"19900"`
	Description       string         `json:"description" example:"Everything a family needs"`
	Features          datatypes.JSON `json:"features" swaggertype:"array,object"` // Encoded list of features
	Badge             string         `json:"badge" example:"Popular"`
	Highlight         bool           `json:"highlight" example:"false"`
	CTAType           string         `json:"ctaType" example:"checkout"`
	CTALabel          string         `json:"ctaLabel" example:"Assinar"`
	CTAURL            string         `json:"ctaUrl" example:"https://santodinheiro.app/checkout"`
	Active            bool           `json:"active" gorm:"index" example:"true"`
	SortOrder         int            `json:"sortOrder" example:"1"`
}

// PlanDefaults returns the values for fields a new plan does not specify.
func PlanDefaults() PlanEditable {
	return PlanEditable{
		BillingSource: "clerk",
		Currency:      "brl",
		CTAType:       "checkout",
		Active:        true,
	}
}

// Feature is one entry of a plan's feature list.
type Feature struct {
	Name     string `json:"name" example:"Unlimited months"`
	Included bool   `json:"included" example:"true"`
}

func (p *Plan) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Currency = strings.ToLower(strings.TrimSpace(p.Currency))

	if p.ExternalID != nil && strings.TrimSpace(*p.ExternalID) == "" {
		p.ExternalID = nil
	}

	return nil
}

func (p *Plan) AfterSave(_ *gorm.DB) error {
	if p.Name == "" {
		return ErrPlanNameEmpty
	}

	if p.PriceMonthlyCents < 0 || p.PriceYearlyCents < 0 {
		return ErrPlanPriceNegative
	}

	if _, err := currency.ParseISO(p.Currency); err != nil {
		return ErrCurrencyInvalid
	}

	if _, err := p.FeatureList(); err != nil {
		return err
	}

	return nil
}

// FeatureList decodes the features of the plan. Empty features decode to an empty list.
func (p Plan) FeatureList() ([]Feature, error) {
	features := []Feature{}
	if len(p.Features) == 0 || string(p.Features) == "null" {
		return features, nil
	}

	if err := json.Unmarshal(p.Features, &features); err != nil {
		return nil, errors.Join(ErrFeaturesEncoding, err)
	}

	return features, nil
}

// ActivePlans returns the active plans, cheapest first.
func ActivePlans(db *gorm.DB) ([]Plan, error) {
	var plans []Plan
	err := db.Where("active = ?", true).Order("price_monthly_cents ASC, sort_order ASC").Find(&plans).Error
	return plans, err
}
