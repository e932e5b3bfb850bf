package models_test

import (
	"testing"

	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func (suite *TestSuiteStandard) createTestPlan(name string, price int64, active bool) models.Plan {
	editable := models.PlanDefaults()
	editable.Name = name
	editable.PriceMonthlyCents = price
	editable.Active = active

	plan := models.Plan{PlanEditable: editable}
	suite.Require().Nil(suite.db.Create(&plan).Error, "Plan could not be saved")

	return plan
}

func (suite *TestSuiteStandard) TestActivePlans() {
	suite.createTestPlan("Premium", 4990, true)
	suite.createTestPlan("Retired", 990, false)
	suite.createTestPlan("Basic", 1990, true)
	suite.createTestPlan("Free", 0, true)

	plans, err := models.ActivePlans(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(plans, 3)

	suite.Assert().Equal("Free", plans[0].Name)
	suite.Assert().Equal("Basic", plans[1].Name)
	suite.Assert().Equal("Premium", plans[2].Name)
	for _, p := range plans {
		suite.Assert().True(p.Active)
	}
}

func (suite *TestSuiteStandard) TestPlanValidation() {
	tests := []struct {
		name   string
		modify func(*models.PlanEditable)
		err    error
	}{
		{"empty name", func(p *models.PlanEditable) { p.Name = "  " }, models.ErrPlanNameEmpty},
		{"negative price", func(p *models.PlanEditable) { p.PriceYearlyCents = -1 }, models.ErrPlanPriceNegative},
		{"unknown currency", func(p *models.PlanEditable) { p.Currency = "xyz1" }, models.ErrCurrencyInvalid},
		{"broken features", func(p *models.PlanEditable) { p.Features = datatypes.JSON(`{"name": `) }, models.ErrFeaturesEncoding},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			editable := models.PlanDefaults()
			editable.Name = "Plan"
			tt.modify(&editable)

			err := suite.db.Create(&models.Plan{PlanEditable: editable}).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestPlanCurrencyNormalized() {
	editable := models.PlanDefaults()
	editable.Name = "Euro"
	editable.Currency = " EUR "

	plan := models.Plan{PlanEditable: editable}
	suite.Require().Nil(suite.db.Create(&plan).Error)
	suite.Assert().Equal("eur", plan.Currency)
}

func (suite *TestSuiteStandard) TestPlanExternalIDUnique() {
	id := "plan_abc"
	for i, expected := range []error{nil, models.ErrPlanExternalIDNotUnique} {
		editable := models.PlanDefaults()
		editable.Name = "Plan"
		editable.ExternalID = &id

		err := suite.db.Create(&models.Plan{PlanEditable: editable}).Error
		if expected == nil {
			suite.Assert().Nil(err, i)
			continue
		}
		suite.Assert().ErrorIs(err, expected)
	}

	// Plans without external ID do not conflict
	suite.createTestPlan("A", 0, true)
	suite.createTestPlan("B", 0, true)
}

func (suite *TestSuiteStandard) TestPlanFeatureList() {
	plan := models.Plan{PlanEditable: models.PlanEditable{Features: datatypes.JSON(`[{"name": "Reports", "included": true}]`)}}

	features, err := plan.FeatureList()
	suite.Require().Nil(err)
	suite.Assert().Equal([]models.Feature{{Name: "Reports", Included: true}}, features)

	features, err = models.Plan{}.FeatureList()
	suite.Require().Nil(err)
	suite.Assert().Empty(features)

	_, err = models.Plan{PlanEditable: models.PlanEditable{Features: datatypes.JSON(`"just a string"`)}}.FeatureList()
	suite.Assert().ErrorIs(err, models.ErrFeaturesEncoding)
}
