package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/shopspring/decimal"
)

func (co Controller) RegisterMiscExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsItems)
		r.POST("", co.CreateMiscExpense)
		r.POST("/order", co.ReorderMiscExpenses)
	}
	{
		r.OPTIONS("/:id", OptionsItemDetail)
		r.PATCH("/:id", co.UpdateMiscExpense)
		r.DELETE("/:id", co.DeleteMiscExpense)
		r.POST("/:id/paid", co.SetMiscExpensePaid)
	}
}

type MiscExpenseResponse struct {
	Data models.MiscExpense `json:"data"`
}

// @Summary		Create misc expense
// @Tags			Misc expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	MiscExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			miscExpense	body		models.MiscExpenseEditable	true	"MiscExpense"
// @Router			/api/misc-expenses [post]
func (co Controller) CreateMiscExpense(c *gin.Context) {
	var data models.MiscExpenseEditable
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	if err := checkAmounts(data.Amount); err != nil {
		writeError(c, err)
		return
	}

	miscExpense := models.MiscExpense{MiscExpenseEditable: data}
	if err := createItem(co, c, data.MonthID, &miscExpense); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MiscExpenseResponse{Data: miscExpense})
}

// @Summary		Update misc expense
// @Description	Updates the fields that are set in the request body
// @Tags			Misc expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	MiscExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string					true	"ID formatted as string"
// @Param			miscExpense	body		models.MiscExpenseEditable	true	"MiscExpense"
// @Router			/api/misc-expenses/{id} [patch]
func (co Controller) UpdateMiscExpense(c *gin.Context) {
	miscExpense, ok := findItem[models.MiscExpense](co, c)
	if !ok {
		return
	}

	data, fields, err := bindUpdate[models.MiscExpenseEditable](c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := checkUpdatedAmounts(fields, map[string]decimal.Decimal{"Amount": data.Amount}); err != nil {
		writeError(c, err)
		return
	}

	err = co.db(c).Model(&miscExpense).Select("", fields...).Updates(models.MiscExpense{MiscExpenseEditable: data}).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MiscExpenseResponse{Data: miscExpense})
}

// @Summary		Delete misc expense
// @Tags			Misc expenses
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/misc-expenses/{id} [delete]
func (co Controller) DeleteMiscExpense(c *gin.Context) {
	deleteItem[models.MiscExpense](co, c)
}

// @Summary		Reorder misc expenses
// @Tags			Misc expenses
// @Accept			json
// @Success		204
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			order	body		ReorderRequest	true	"Positions"
// @Router			/api/misc-expenses/order [post]
func (co Controller) ReorderMiscExpenses(c *gin.Context) {
	reorderItems[models.MiscExpense](co, c)
}

// @Summary		Set paid status
// @Tags			Misc expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	MiscExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string			true	"ID formatted as string"
// @Param			status	body		ToggleRequest	true	"Paid"
// @Router			/api/misc-expenses/{id}/paid [post]
func (co Controller) SetMiscExpensePaid(c *gin.Context) {
	if miscExpense, ok := toggleItem[models.MiscExpense](co, c, "is_paid"); ok {
		c.JSON(http.StatusOK, MiscExpenseResponse{Data: miscExpense})
	}
}
