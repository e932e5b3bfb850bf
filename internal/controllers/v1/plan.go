package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
)

func (co Controller) RegisterAdminPlanRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPlans)
		r.GET("", co.GetPlans)
		r.POST("", co.CreatePlan)
	}
	{
		r.OPTIONS("/:id", OptionsPlanDetail)
		r.GET("/:id", co.GetPlan)
		r.PATCH("/:id", co.UpdatePlan)
		r.PUT("/:id", co.UpdatePlan)
		r.DELETE("/:id", co.DeletePlan)
	}
}

// PlanDetail is a plan with its decoded feature list.
type PlanDetail struct {
	models.Plan
	Features []models.Feature `json:"features"`
}

func newPlanDetail(p models.Plan) (PlanDetail, error) {
	features, err := p.FeatureList()
	if err != nil {
		return PlanDetail{}, err
	}

	return PlanDetail{Plan: p, Features: features}, nil
}

func newPlanDetails(plans []models.Plan) ([]PlanDetail, error) {
	details := make([]PlanDetail, 0, len(plans))
	for _, p := range plans {
		d, err := newPlanDetail(p)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, nil
}

type PlanResponse struct {
	Data PlanDetail `json:"data"`
}

type PlanListResponse struct {
	Data []PlanDetail `json:"data"`
}

// planWriteError turns a feature decoding error on write into a client error.
func planWriteError(err error) error {
	if errors.Is(err, models.ErrFeaturesEncoding) {
		return errFeaturesInvalid
	}
	return err
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Router			/api/admin/plans [options]
func OptionsPlans(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/api/admin/plans/{id} [options]
func OptionsPlanDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

func (co Controller) findPlan(c *gin.Context) (models.Plan, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, httputil.ErrInvalidUUID)
		return models.Plan{}, false
	}

	var plan models.Plan
	if err := co.db(c).Where("id = ?", uri.ID.UUID).First(&plan).Error; err != nil {
		writeError(c, err)
		return models.Plan{}, false
	}

	return plan, true
}

// @Summary		List active plans
// @Description	Returns the active plans, cheapest first. This endpoint does not require authentication.
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	PlanListResponse
// @Failure		500	{object}	httperror.Error
// @Router			/api/public/plans [get]
func (co Controller) GetPublicPlans(c *gin.Context) {
	plans, err := models.ActivePlans(co.db(c))
	if err != nil {
		writeError(c, err)
		return
	}

	details, err := newPlanDetails(plans)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlanListResponse{Data: details})
}

// @Summary		List plans
// @Description	Returns all plans, newest first
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	PlanListResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/admin/plans [get]
func (co Controller) GetPlans(c *gin.Context) {
	var plans []models.Plan
	if err := co.db(c).Order("created_at DESC").Find(&plans).Error; err != nil {
		writeError(c, err)
		return
	}

	details, err := newPlanDetails(plans)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlanListResponse{Data: details})
}

// @Summary		Get plan
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	PlanResponse
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/admin/plans/{id} [get]
func (co Controller) GetPlan(c *gin.Context) {
	plan, ok := co.findPlan(c)
	if !ok {
		return
	}

	detail, err := newPlanDetail(plan)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlanResponse{Data: detail})
}

// @Summary		Create plan
// @Description	Creates a plan. Fields that are not sent use the plan defaults.
// @Tags			Plans
// @Accept			json
// @Produce		json
// @Success		201		{object}	PlanResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			plan	body		models.PlanEditable	true	"Plan"
// @Router			/api/admin/plans [post]
func (co Controller) CreatePlan(c *gin.Context) {
	data := models.PlanDefaults()
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	plan := models.Plan{PlanEditable: data}
	if err := co.db(c).Create(&plan).Error; err != nil {
		writeError(c, planWriteError(err))
		return
	}

	detail, err := newPlanDetail(plan)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PlanResponse{Data: detail})
}

// @Summary		Update plan
// @Description	Updates the fields of the plan that are set in the request body
// @Tags			Plans
// @Accept			json
// @Produce		json
// @Success		200		{object}	PlanResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string				true	"ID formatted as string"
// @Param			plan	body		models.PlanEditable	true	"Plan"
// @Router			/api/admin/plans/{id} [patch]
// @Router			/api/admin/plans/{id} [put]
func (co Controller) UpdatePlan(c *gin.Context) {
	plan, ok := co.findPlan(c)
	if !ok {
		return
	}

	fields, err := httputil.GetBodyFields(c, models.PlanEditable{})
	if err != nil {
		writeError(c, err)
		return
	}

	var data models.PlanEditable
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	if len(fields) == 0 {
		writeError(c, httputil.ErrRequestBodyEmpty)
		return
	}

	err = co.db(c).Model(&plan).Select("", fields...).Updates(models.Plan{PlanEditable: data}).Error
	if err != nil {
		writeError(c, planWriteError(err))
		return
	}

	detail, err := newPlanDetail(plan)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlanResponse{Data: detail})
}

// @Summary		Delete plan
// @Tags			Plans
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/admin/plans/{id} [delete]
func (co Controller) DeletePlan(c *gin.Context) {
	plan, ok := co.findPlan(c)
	if !ok {
		return
	}

	if err := co.db(c).Delete(&plan).Error; err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
