package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/shopspring/decimal"
)

func (co Controller) RegisterInvestmentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsItems)
		r.POST("", co.CreateInvestment)
		r.POST("/order", co.ReorderInvestments)
	}
	{
		r.OPTIONS("/:id", OptionsItemDetail)
		r.PATCH("/:id", co.UpdateInvestment)
		r.DELETE("/:id", co.DeleteInvestment)
		r.POST("/:id/paid", co.SetInvestmentPaid)
	}
}

type InvestmentResponse struct {
	Data models.Investment `json:"data"`
}

// @Summary		Create investment
// @Tags			Investments
// @Accept			json
// @Produce		json
// @Success		201		{object}	InvestmentResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			investment	body		models.InvestmentEditable	true	"Investment"
// @Router			/api/investments [post]
func (co Controller) CreateInvestment(c *gin.Context) {
	var data models.InvestmentEditable
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	if err := checkAmounts(data.Amount); err != nil {
		writeError(c, err)
		return
	}

	investment := models.Investment{InvestmentEditable: data}
	if err := createItem(co, c, data.MonthID, &investment); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, InvestmentResponse{Data: investment})
}

// @Summary		Update investment
// @Description	Updates the fields that are set in the request body
// @Tags			Investments
// @Accept			json
// @Produce		json
// @Success		200		{object}	InvestmentResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string					true	"ID formatted as string"
// @Param			investment	body		models.InvestmentEditable	true	"Investment"
// @Router			/api/investments/{id} [patch]
func (co Controller) UpdateInvestment(c *gin.Context) {
	investment, ok := findItem[models.Investment](co, c)
	if !ok {
		return
	}

	data, fields, err := bindUpdate[models.InvestmentEditable](c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := checkUpdatedAmounts(fields, map[string]decimal.Decimal{"Amount": data.Amount}); err != nil {
		writeError(c, err)
		return
	}

	err = co.db(c).Model(&investment).Select("", fields...).Updates(models.Investment{InvestmentEditable: data}).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, InvestmentResponse{Data: investment})
}

// @Summary		Delete investment
// @Tags			Investments
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/investments/{id} [delete]
func (co Controller) DeleteInvestment(c *gin.Context) {
	deleteItem[models.Investment](co, c)
}

// @Summary		Reorder investments
// @Tags			Investments
// @Accept			json
// @Success		204
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			order	body		ReorderRequest	true	"Positions"
// @Router			/api/investments/order [post]
func (co Controller) ReorderInvestments(c *gin.Context) {
	reorderItems[models.Investment](co, c)
}

// @Summary		Set paid status
// @Tags			Investments
// @Accept			json
// @Produce		json
// @Success		200		{object}	InvestmentResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string			true	"ID formatted as string"
// @Param			status	body		ToggleRequest	true	"Paid"
// @Router			/api/investments/{id}/paid [post]
func (co Controller) SetInvestmentPaid(c *gin.Context) {
	if investment, ok := toggleItem[models.Investment](co, c, "is_paid"); ok {
		c.JSON(http.StatusOK, InvestmentResponse{Data: investment})
	}
}
