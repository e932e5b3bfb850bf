package v1_test

import (
	"net/http"

	v1 "github.com/haniellevi/SANTODINHIERO-sub001/internal/controllers/v1"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/test"
)

func (suite *TestSuiteStandard) createPlan(body map[string]any) v1.PlanDetail {
	r := suite.request(http.MethodPost, "/api/admin/plans", body, &admin)
	suite.assertStatus(http.StatusCreated, r)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestPublicPlans() {
	suite.createPlan(map[string]any{"name": "Família", "priceMonthlyCents": 2990})
	suite.createPlan(map[string]any{"name": "Básico", "priceMonthlyCents": 990, "features": []map[string]any{
		{"name": "Unlimited months", "included": true},
		{"name": "Shared access", "included": false},
	}})
	suite.createPlan(map[string]any{"name": "Legacy", "priceMonthlyCents": 0, "active": false})

	r := suite.request(http.MethodGet, "/api/public/plans", nil, nil)
	suite.assertStatus(http.StatusOK, r)

	var response v1.PlanListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2, "inactive plans are not public")
	suite.Assert().Equal("Básico", response.Data[0].Name)
	suite.Assert().Equal("Família", response.Data[1].Name)
	suite.Assert().Equal([]models.Feature{
		{Name: "Unlimited months", Included: true},
		{Name: "Shared access", Included: false},
	}, response.Data[0].Features)
	suite.Assert().Equal([]models.Feature{}, response.Data[1].Features)
}

func (suite *TestSuiteStandard) TestCreatePlanDefaults() {
	plan := suite.createPlan(map[string]any{"name": " Pro ", "currency": "USD"})

	suite.Assert().Equal("Pro", plan.Name)
	suite.Assert().Equal("usd", plan.Currency)
	suite.Assert().Equal("clerk", plan.BillingSource)
	suite.Assert().Equal("checkout", plan.CTAType)
	suite.Assert().True(plan.Active)
	suite.Assert().Nil(plan.ExternalID)
}

func (suite *TestSuiteStandard) TestCreatePlanErrors() {
	suite.createPlan(map[string]any{"name": "Pro", "externalId": "plan_pro"})

	tests := []struct {
		name string
		body map[string]any
	}{
		{"no name", map[string]any{"priceMonthlyCents": 100}},
		{"negative price", map[string]any{"name": "Cheap", "priceYearlyCents": -1}},
		{"invalid currency", map[string]any{"name": "Pro", "currency": "reais"}},
		{"features not a list", map[string]any{"name": "Pro", "features": "everything"}},
		{"duplicate external id", map[string]any{"name": "Pro 2", "externalId": "plan_pro"}},
	}

	for _, tt := range tests {
		r := suite.request(http.MethodPost, "/api/admin/plans", tt.body, &admin)
		suite.Assert().Equal(http.StatusBadRequest, r.Code, "%s: %s", tt.name, r.Body.String())
	}
}

func (suite *TestSuiteStandard) TestAdminPlanCRUD() {
	plan := suite.createPlan(map[string]any{"name": "Pro", "priceMonthlyCents": 1990, "badge": "Popular"})
	path := "/api/admin/plans/" + plan.ID.String()

	r := suite.request(http.MethodGet, path, nil, &admin)
	suite.assertStatus(http.StatusOK, r)

	r = suite.request(http.MethodPatch, path, map[string]any{"priceMonthlyCents": 2490, "highlight": true}, &admin)
	suite.assertStatus(http.StatusOK, r)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(int64(2490), response.Data.PriceMonthlyCents)
	suite.Assert().True(response.Data.Highlight)
	suite.Assert().Equal("Popular", response.Data.Badge, "fields not in the body are kept")

	r = suite.request(http.MethodPut, path, map[string]any{"features": []map[string]any{{"name": "Reports", "included": true}}}, &admin)
	suite.assertStatus(http.StatusOK, r)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal([]models.Feature{{Name: "Reports", Included: true}}, response.Data.Features)

	r = suite.request(http.MethodPatch, path, map[string]any{"features": 42}, &admin)
	suite.assertStatus(http.StatusBadRequest, r)

	r = suite.request(http.MethodGet, "/api/admin/plans", nil, &admin)
	suite.assertStatus(http.StatusOK, r)
	var list v1.PlanListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 1)

	r = suite.request(http.MethodDelete, path, nil, &admin)
	suite.assertStatus(http.StatusNoContent, r)

	r = suite.request(http.MethodGet, path, nil, &admin)
	suite.assertStatus(http.StatusNotFound, r)
	suite.Assert().Equal("there is no plan matching your query", test.DecodeError(suite.T(), &r))
}

func (suite *TestSuiteStandard) TestAdminRoutesRequireAdmin() {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/plans"},
		{http.MethodPost, "/api/admin/plans"},
		{http.MethodGet, "/api/admin/users"},
		{http.MethodPost, "/api/admin/users/sync-roles"},
		{http.MethodGet, "/api/admin/users/invitations"},
		{http.MethodGet, "/api/admin/storage"},
		{http.MethodGet, "/api/admin/dashboard"},
		{http.MethodGet, "/api/admin/metrics"},
		{http.MethodGet, "/api/admin/expense-distribution"},
		{http.MethodGet, "/api/admin/feedback"},
	}

	for _, p := range paths {
		r := suite.request(p.method, p.path, nil, &maria)
		suite.Assert().Equal(http.StatusUnauthorized, r.Code, "%s %s", p.method, p.path)

		r = suite.request(p.method, p.path, nil, nil)
		suite.Assert().Equal(http.StatusUnauthorized, r.Code, "%s %s anonymous", p.method, p.path)
	}
}

func (suite *TestSuiteStandard) TestPersistedRoleGrantsAdmin() {
	user := suite.user(maria)
	_, err := models.GrantAdmin(suite.env.DB, user, "test", admin.ExternalID)
	suite.Require().Nil(err)

	r := suite.request(http.MethodGet, "/api/admin/plans", nil, &maria)
	suite.assertStatus(http.StatusOK, r)
}
