package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StorageObject is a file a user uploaded to the blob storage.
type StorageObject struct {
	DefaultModel
	DeletedAt      gorm.DeletedAt `json:"deletedAt" gorm:"index" swaggertype:"primitive,string"`
	UserID         uuid.UUID      `json:"userId" gorm:"index" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	ExternalUserID string         `json:"externalUserId" example:"user_2a8f3kLq9"`
	Provider       string         `json:"provider" example:"s3"`
	URL            string         `json:"url" example:"https://uploads.s3.us-east-1.amazonaws.com/uploads/65392deb/1714000000000-receipt.pdf"`
	Pathname       string         `json:"pathname" example:"uploads/65392deb/1714000000000-receipt.pdf"`
	Name           string         `json:"name" example:"receipt.pdf"`
	ContentType    string         `json:"contentType" example:"application/pdf"`
	Size           int64          `json:"size" example:"48213"`
}
