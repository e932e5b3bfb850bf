package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/auth"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// checkAmounts returns errAmountTooSmall if one of the amounts is below minAmount.
func checkAmounts(amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if a.LessThan(minAmount) {
			return errAmountTooSmall
		}
	}
	return nil
}

// createItem creates an item in one of the caller's months.
func createItem[T models.Item](co Controller, c *gin.Context, monthID uuid.UUID, item *T) error {
	err := co.db(c).Where("id = ? AND user_id = ?", monthID, auth.User(c).ID).First(&models.Month{}).Error
	if err != nil {
		return err
	}

	return co.db(c).Create(item).Error
}

// findItem returns the item referenced in the URI. If it cannot be found,
// the error response is written and ok is false.
func findItem[T models.Item](co Controller, c *gin.Context) (item T, ok bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, httputil.ErrInvalidUUID)
		return item, false
	}

	item, err := models.FindItem[T](co.db(c), auth.User(c).ID, uri.ID.UUID)
	if err != nil {
		writeError(c, err)
		return item, false
	}

	return item, true
}

// bindUpdate binds the body of a PATCH request and returns the fields it sets.
// Items cannot be moved to another month.
func bindUpdate[E any](c *gin.Context) (E, []any, error) {
	var data E

	fields, err := httputil.GetBodyFields(c, data)
	if err != nil {
		return data, nil, err
	}

	if err := httputil.BindData(c, &data); err != nil {
		return data, nil, err
	}

	fields = slices.DeleteFunc(fields, func(f any) bool { return f == "MonthID" })
	if len(fields) == 0 {
		return data, nil, httputil.ErrRequestBodyEmpty
	}

	return data, fields, nil
}

// checkUpdatedAmounts validates the amounts whose fields are part of the update.
func checkUpdatedAmounts(fields []any, amounts map[string]decimal.Decimal) error {
	for name, amount := range amounts {
		if slices.Contains(fields, any(name)) {
			if err := checkAmounts(amount); err != nil {
				return err
			}
		}
	}
	return nil
}

func deleteItem[T models.Item](co Controller, c *gin.Context) {
	item, ok := findItem[T](co, c)
	if !ok {
		return
	}

	if err := co.db(c).Delete(&item).Error; err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func reorderItems[T models.Item](co Controller, c *gin.Context) {
	var data ReorderRequest
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	if err := models.Reorder[T](co.db(c), auth.User(c).ID, data.Items); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// toggleItem sets a boolean column of the item referenced in the URI.
func toggleItem[T models.Item](co Controller, c *gin.Context, column string) (item T, ok bool) {
	item, ok = findItem[T](co, c)
	if !ok {
		return item, false
	}

	var data ToggleRequest
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return item, false
	}

	if err := co.db(c).Model(&item).Update(column, *data.Value).Error; err != nil {
		writeError(c, err)
		return item, false
	}

	return item, true
}
