package v1

import (
	"time"

	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/types"
	ez_uuid "github.com/haniellevi/SANTODINHIERO-sub001/internal/uuid"
	"github.com/shopspring/decimal"
)

// minAmount is the smallest amount the API accepts for month items.
var minAmount = decimal.RequireFromString("0.01")

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIPeriod struct {
	Year  int `uri:"year" binding:"required" example:"2025"`
	Month int `uri:"month" binding:"required" example:"3"`
}

func (u URIPeriod) period() types.Period {
	return types.NewPeriod(u.Year, time.Month(u.Month))
}

// URIExternalID identifies a resource at an external provider.
type URIExternalID struct {
	ID string `uri:"id" binding:"required" example:"inv_2b9cXk"`
}

// ToggleRequest sets a boolean status.
type ToggleRequest struct {
	Value *bool `json:"value" binding:"required" example:"true"`
}

type ReorderRequest struct {
	Items []models.ItemPosition `json:"items" binding:"required,dive"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}
