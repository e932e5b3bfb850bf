package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackType string

const (
	FeedbackBug        FeedbackType = "BUG"
	FeedbackSuggestion FeedbackType = "SUGGESTION"
	FeedbackOther      FeedbackType = "OTHER"
)

// Feedback is a message a user sent about the application.
type Feedback struct {
	DefaultModel
	UserID  uuid.UUID    `json:"userId" gorm:"index;not null" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	User    User         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Type    FeedbackType `json:"type" example:"SUGGESTION"`
	Message string       `json:"message" example:"Please add a yearly overview"`
}

func (f *Feedback) BeforeSave(_ *gorm.DB) error {
	f.Message = strings.TrimSpace(f.Message)
	f.Type = FeedbackType(strings.ToUpper(string(f.Type)))

	if f.Type == "" {
		f.Type = FeedbackOther
	}

	return nil
}

func (f *Feedback) AfterSave(_ *gorm.DB) error {
	switch f.Type {
	case FeedbackBug, FeedbackSuggestion, FeedbackOther:
	default:
		return ErrFeedbackTypeInvalid
	}

	if f.Message == "" {
		return ErrFeedbackMessageEmpty
	}

	return nil
}
