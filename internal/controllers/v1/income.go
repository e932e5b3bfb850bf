package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/shopspring/decimal"
)

func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsItems)
		r.POST("", co.CreateIncome)
		r.POST("/order", co.ReorderIncomes)
	}
	{
		r.OPTIONS("/:id", OptionsItemDetail)
		r.PATCH("/:id", co.UpdateIncome)
		r.DELETE("/:id", co.DeleteIncome)
		r.POST("/:id/received", co.SetIncomeReceived)
		r.POST("/:id/tithe", co.SetIncomeTithePaid)
	}
}

type IncomeResponse struct {
	Data models.Income `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Items
// @Success		204
// @Router			/api/incomes [options]
func OptionsItems(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Items
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/api/incomes/{id} [options]
func OptionsItemDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		Create income
// @Description	Creates an income in one of the caller's months
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			income	body		models.IncomeEditable	true	"Income"
// @Router			/api/incomes [post]
func (co Controller) CreateIncome(c *gin.Context) {
	var data models.IncomeEditable
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	if err := checkAmounts(data.Amount); err != nil {
		writeError(c, err)
		return
	}

	income := models.Income{IncomeEditable: data}
	if err := createItem(co, c, data.MonthID, &income); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{Data: income})
}

// @Summary		Update income
// @Description	Updates the fields of an income that are set in the request body
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string					true	"ID formatted as string"
// @Param			income	body		models.IncomeEditable	true	"Income"
// @Router			/api/incomes/{id} [patch]
func (co Controller) UpdateIncome(c *gin.Context) {
	income, ok := findItem[models.Income](co, c)
	if !ok {
		return
	}

	data, fields, err := bindUpdate[models.IncomeEditable](c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := checkUpdatedAmounts(fields, map[string]decimal.Decimal{"Amount": data.Amount}); err != nil {
		writeError(c, err)
		return
	}

	err = co.db(c).Model(&income).Select("", fields...).Updates(models.Income{IncomeEditable: data}).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: income})
}

// @Summary		Delete income
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/incomes/{id} [delete]
func (co Controller) DeleteIncome(c *gin.Context) {
	deleteItem[models.Income](co, c)
}

// @Summary		Reorder incomes
// @Description	Sets the positions of incomes in their list. Either all positions are updated or none.
// @Tags			Incomes
// @Accept			json
// @Success		204
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			order	body		ReorderRequest	true	"Positions"
// @Router			/api/incomes/order [post]
func (co Controller) ReorderIncomes(c *gin.Context) {
	reorderItems[models.Income](co, c)
}

// @Summary		Set received status
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string			true	"ID formatted as string"
// @Param			status	body		ToggleRequest	true	"Received"
// @Router			/api/incomes/{id}/received [post]
func (co Controller) SetIncomeReceived(c *gin.Context) {
	if income, ok := toggleItem[models.Income](co, c, "is_received"); ok {
		c.JSON(http.StatusOK, IncomeResponse{Data: income})
	}
}

// @Summary		Set tithe status
// @Description	Marks the tithe on this income as paid or unpaid
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string			true	"ID formatted as string"
// @Param			status	body		ToggleRequest	true	"Tithe paid"
// @Router			/api/incomes/{id}/tithe [post]
func (co Controller) SetIncomeTithePaid(c *gin.Context) {
	if income, ok := toggleItem[models.Income](co, c, "is_tithe_paid"); ok {
		c.JSON(http.StatusOK, IncomeResponse{Data: income})
	}
}
