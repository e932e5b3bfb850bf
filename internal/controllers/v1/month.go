package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/auth"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/events"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/types"
)

func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonths)
		r.GET("", co.GetMonths)
		r.GET("/current", co.GetCurrentMonth)
		r.POST("/create-empty", co.CreateEmptyMonth)
	}
	{
		r.GET("/:year/:month", co.GetMonth)
		r.DELETE("/:year/:month", co.DeleteMonth)
		r.POST("/:year/:month/duplicate", co.DuplicateMonth)
		r.POST("/:year/:month/tithe", co.SetMonthTithe)
	}
}

// MonthDetail is a month with its totals and the alerts for the period.
type MonthDetail struct {
	models.Month
	Totals        models.Totals `json:"totals"`
	DaysLeft      int           `json:"daysLeft" example:"12"`         // Days until the last day of the period, 0 on that day and for past periods
	PlanningAlert bool          `json:"planningAlert" example:"false"` // The next period should be planned
	ReviewAlert   bool          `json:"reviewAlert" example:"false"`   // The period ends in three days or fewer
}

func newMonthDetail(month models.Month, user models.User, now time.Time) MonthDetail {
	p := month.Period()

	alertDays := user.PlanningAlertDays
	if alertDays == 0 {
		alertDays = types.PlanningAlertDays
	}

	return MonthDetail{
		Month:         month,
		Totals:        month.Totals(),
		DaysLeft:      p.DaysLeft(now),
		PlanningAlert: p.PlanningAlert(now, alertDays),
		ReviewAlert:   p.ReviewAlert(now),
	}
}

type MonthResponse struct {
	Data MonthDetail `json:"data"`
}

type MonthListResponse struct {
	Data []types.Period `json:"data"`
}

type CreateEmptyMonthRequest struct {
	UserID string `json:"userId" binding:"required" example:"user_2a8f3kLq9"` // External or internal ID of the caller
	Month  int    `json:"month" binding:"required" example:"4"`
	Year   int    `json:"year" binding:"required" example:"2025"`
}

type CreateEmptyMonthResponse struct {
	Success bool         `json:"success" example:"true"`
	Month   models.Month `json:"month"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/api/months [options]
func OptionsMonths(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List months
// @Description	Returns the periods the caller has a month for, oldest first
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthListResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/months [get]
func (co Controller) GetMonths(c *gin.Context) {
	periods, err := models.ListUserMonths(co.db(c), auth.User(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: periods})
}

// @Summary		Get current month
// @Description	Returns the month for the current period with all items and totals. The month is created if it does not exist.
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/months/current [get]
func (co Controller) GetCurrentMonth(c *gin.Context) {
	user := auth.User(c)
	now := time.Now()

	month, err := models.GetOrCreateCurrentMonth(co.db(c), user.ID, now)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: newMonthDetail(month, user, now)})
}

// @Summary		Get month
// @Description	Returns the month for a period with all items and totals. The month is created if it does not exist.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			year	path		int	true	"Year"
// @Param			month	path		int	true	"Month, 1 to 12"
// @Router			/api/months/{year}/{month} [get]
func (co Controller) GetMonth(c *gin.Context) {
	var uri URIPeriod
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, types.ErrInvalidPeriod)
		return
	}

	user := auth.User(c)
	month, err := models.GetOrCreateMonth(co.db(c), user.ID, uri.period())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: newMonthDetail(month, user, time.Now())})
}

// @Summary		Create empty month
// @Description	Creates an empty month. Fails if the month already exists.
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		201		{object}	CreateEmptyMonthResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		403		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			month	body		CreateEmptyMonthRequest	true	"Month"
// @Router			/api/months/create-empty [post]
func (co Controller) CreateEmptyMonth(c *gin.Context) {
	var data CreateEmptyMonthRequest
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	user := auth.User(c)
	if data.UserID != user.ExternalID && data.UserID != user.ID.String() {
		writeError(c, errForbidden)
		return
	}

	month, err := models.CreateEmptyMonth(co.db(c), user.ID, types.NewPeriod(data.Year, time.Month(data.Month)))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateEmptyMonthResponse{Success: true, Month: month})
}

// @Summary		Duplicate month
// @Description	Copies incomes, standard expenses and investments of the month into the following period, with their status reset
// @Tags			Months
// @Produce		json
// @Success		201		{object}	MonthResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			year	path		int	true	"Year"
// @Param			month	path		int	true	"Month, 1 to 12"
// @Router			/api/months/{year}/{month}/duplicate [post]
func (co Controller) DuplicateMonth(c *gin.Context) {
	var uri URIPeriod
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, types.ErrInvalidPeriod)
		return
	}

	user := auth.User(c)
	month, err := models.DuplicateMonth(co.db(c), user.ID, uri.period())
	if err != nil {
		writeError(c, err)
		return
	}

	co.publish(c, events.MonthDuplicated, month.ID.String(), map[string]string{
		"from": uri.period().String(),
		"to":   month.Period().String(),
	})

	c.JSON(http.StatusCreated, MonthResponse{Data: newMonthDetail(month, user, time.Now())})
}

// @Summary		Delete month
// @Description	Deletes the month with all its items
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			year	path		int	true	"Year"
// @Param			month	path		int	true	"Month, 1 to 12"
// @Router			/api/months/{year}/{month} [delete]
func (co Controller) DeleteMonth(c *gin.Context) {
	var uri URIPeriod
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, types.ErrInvalidPeriod)
		return
	}

	err := models.DeleteMonth(co.db(c), auth.User(c).ID, uri.period())
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Set tithe status
// @Description	Marks the tithe of the month as paid with 10% of the income, or as unpaid
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			year	path		int				true	"Year"
// @Param			month	path		int				true	"Month, 1 to 12"
// @Param			status	body		ToggleRequest	true	"Paid"
// @Router			/api/months/{year}/{month}/tithe [post]
func (co Controller) SetMonthTithe(c *gin.Context) {
	var uri URIPeriod
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, types.ErrInvalidPeriod)
		return
	}

	var data ToggleRequest
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	user := auth.User(c)
	month, err := models.FindMonth(co.db(c), user.ID, uri.period())
	if err != nil {
		writeError(c, err)
		return
	}

	err = models.SetTithePaid(co.db(c), &month, *data.Value)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: newMonthDetail(month, user, time.Now())})
}
