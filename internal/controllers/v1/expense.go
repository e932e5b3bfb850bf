package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/shopspring/decimal"
)

func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsItems)
		r.POST("", co.CreateExpense)
		r.POST("/order", co.ReorderExpenses)
	}
	{
		r.OPTIONS("/:id", OptionsItemDetail)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
		r.POST("/:id/paid", co.SetExpensePaid)
	}
}

type ExpenseResponse struct {
	Data models.Expense `json:"data"`
}

// @Summary		Create expense
// @Description	Creates an expense in one of the caller's months
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			expense	body		models.ExpenseEditable	true	"Expense"
// @Router			/api/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var data models.ExpenseEditable
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	if err := checkAmounts(data.TotalAmount); err != nil {
		writeError(c, err)
		return
	}

	expense := models.Expense{ExpenseEditable: data}
	if err := createItem(co, c, data.MonthID, &expense); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: expense})
}

// @Summary		Update expense
// @Description	Updates the fields of an expense that are set in the request body
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string					true	"ID formatted as string"
// @Param			expense	body		models.ExpenseEditable	true	"Expense"
// @Router			/api/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	expense, ok := findItem[models.Expense](co, c)
	if !ok {
		return
	}

	data, fields, err := bindUpdate[models.ExpenseEditable](c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := checkUpdatedAmounts(fields, map[string]decimal.Decimal{"TotalAmount": data.TotalAmount}); err != nil {
		writeError(c, err)
		return
	}

	err = co.db(c).Model(&expense).Select("", fields...).Updates(models.Expense{ExpenseEditable: data}).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: expense})
}

// @Summary		Delete expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	deleteItem[models.Expense](co, c)
}

// @Summary		Reorder expenses
// @Description	Sets the positions of expenses in their list. Either all positions are updated or none.
// @Tags			Expenses
// @Accept			json
// @Success		204
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			order	body		ReorderRequest	true	"Positions"
// @Router			/api/expenses/order [post]
func (co Controller) ReorderExpenses(c *gin.Context) {
	reorderItems[models.Expense](co, c)
}

// @Summary		Set paid status
// @Description	Marks the expense as paid with its total amount, or as unpaid
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string			true	"ID formatted as string"
// @Param			status	body		ToggleRequest	true	"Paid"
// @Router			/api/expenses/{id}/paid [post]
func (co Controller) SetExpensePaid(c *gin.Context) {
	expense, ok := findItem[models.Expense](co, c)
	if !ok {
		return
	}

	var data ToggleRequest
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	if err := models.SetExpensePaid(co.db(c), &expense, *data.Value); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: expense})
}
