package v1_test

import (
	"net/http"

	v1 "github.com/haniellevi/SANTODINHIERO-sub001/internal/controllers/v1"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/test"
)

func (suite *TestSuiteStandard) TestGetMe() {
	r := suite.request(http.MethodGet, "/api/me", nil, &maria)
	suite.assertStatus(http.StatusOK, r)

	var response v1.MeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(maria.ExternalID, response.Data.ExternalID)
	suite.Assert().Equal(maria.Email, response.Data.Email)
	suite.Assert().Equal(maria.Name, response.Data.Name)
	suite.Assert().False(response.Data.IsAdmin)
	suite.Assert().True(response.Data.IsTitheEnabled)

	r = suite.request(http.MethodGet, "/api/me", nil, &admin)
	suite.assertStatus(http.StatusOK, r)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.IsAdmin)
}

func (suite *TestSuiteStandard) TestUpdateSettings() {
	r := suite.request(http.MethodPatch, "/api/me/settings", map[string]any{"planningAlertDays": 5}, &maria)
	suite.assertStatus(http.StatusOK, r)

	var response v1.MeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(5, response.Data.PlanningAlertDays)
	suite.Assert().True(response.Data.IsTitheEnabled, "fields not in the body are kept")

	r = suite.request(http.MethodPatch, "/api/me/settings", map[string]any{"isTitheEnabled": false}, &maria)
	suite.assertStatus(http.StatusOK, r)

	stored := suite.user(maria)
	suite.Assert().False(stored.IsTitheEnabled)
	suite.Assert().Equal(5, stored.PlanningAlertDays)

	r = suite.request(http.MethodPatch, "/api/me/settings", map[string]any{"planningAlertDays": 40}, &maria)
	suite.assertStatus(http.StatusBadRequest, r)
	suite.Assert().Equal(models.ErrPlanningAlertDays.Error(), test.DecodeError(suite.T(), &r))

	r = suite.request(http.MethodPatch, "/api/me/settings", map[string]any{"role": "ADMIN"}, &maria)
	suite.assertStatus(http.StatusBadRequest, r)
	suite.Assert().Equal(models.RoleUser, suite.user(maria).Role)
}

func (suite *TestSuiteStandard) TestCreateFeedback() {
	r := suite.request(http.MethodPost, "/api/feedback", map[string]any{"type": "bug", "message": " The total is wrong "}, &maria)
	suite.assertStatus(http.StatusCreated, r)

	var response v1.FeedbackResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.FeedbackBug, response.Data.Type)
	suite.Assert().Equal("The total is wrong", response.Data.Message)
	suite.Assert().Equal(suite.user(maria).ID, response.Data.UserID)

	r = suite.request(http.MethodPost, "/api/feedback", map[string]any{"message": "Nice"}, &maria)
	suite.assertStatus(http.StatusCreated, r)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.FeedbackOther, response.Data.Type)

	r = suite.request(http.MethodPost, "/api/feedback", map[string]any{"type": "PRAISE", "message": "Nice"}, &maria)
	suite.assertStatus(http.StatusBadRequest, r)

	r = suite.request(http.MethodPost, "/api/feedback", map[string]any{"type": "BUG"}, &maria)
	suite.assertStatus(http.StatusBadRequest, r)
}
