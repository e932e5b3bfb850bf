package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
)

// recentFeedbackLimit is the number of feedback entries on the dashboard.
const recentFeedbackLimit = 5

func (co Controller) RegisterAdminMetricRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", co.GetDashboard)
	r.GET("/metrics", co.GetMetrics)
	r.GET("/expense-distribution", co.GetExpenseDistribution)
	r.GET("/feedback", co.GetFeedback)
}

type DashboardResponse struct {
	Data models.UserCounts `json:"data"`
}

type MetricsResponse struct {
	Data models.Metrics `json:"data"`
}

type DistributionResponse struct {
	Data []models.DistributionEntry `json:"data"`
}

type FeedbackListResponse struct {
	Data []models.FeedbackEntry `json:"data"`
}

// @Summary		User counts
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/admin/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	counts, err := models.CountUsers(co.db(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: counts})
}

// @Summary		Platform metrics
// @Description	Returns user numbers and the transaction and tithe volumes of all users
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	MetricsResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/admin/metrics [get]
func (co Controller) GetMetrics(c *gin.Context) {
	metrics, err := models.AdminMetrics(c.Request.Context(), co.DB, time.Now())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MetricsResponse{Data: metrics})
}

// @Summary		Expense distribution
// @Description	Returns the sum of all expenses per expense type
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	DistributionResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/admin/expense-distribution [get]
func (co Controller) GetExpenseDistribution(c *gin.Context) {
	entries, err := models.ExpenseDistribution(co.db(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, DistributionResponse{Data: entries})
}

// @Summary		Recent feedback
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	FeedbackListResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/admin/feedback [get]
func (co Controller) GetFeedback(c *gin.Context) {
	entries, err := models.RecentFeedback(co.db(c), recentFeedbackLimit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, FeedbackListResponse{Data: entries})
}
