package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Clients match on this message
	ErrMonthExists   = errors.New("Month already exists")
	ErrMonthNotFound = fmt.Errorf("%w month for this period", ErrResourceNotFound)

	ErrDescriptionEmpty   = errors.New("the description must not be empty")
	ErrAmountNegative     = errors.New("amounts must not be negative")
	ErrDayOfMonthInvalid  = errors.New("the day of the month must be between 1 and 31")
	ErrExpenseTypeInvalid = errors.New("the expense type must be one of STANDARD, TITHE, INVESTMENT_TOTAL, MISC_TOTAL")
	ErrPaidAmountInvalid  = errors.New("the paid amount must be between zero and the total amount")

	ErrUserExternalIDNotUnique = errors.New("a user with this external ID already exists")
	ErrPlanningAlertDays       = errors.New("the planning alert days must be between 1 and 31")

	ErrPlanNameEmpty           = errors.New("the plan name must not be empty")
	ErrPlanExternalIDNotUnique = errors.New("a plan with this external ID already exists")
	ErrPlanPriceNegative       = errors.New("plan prices must not be negative")
	ErrCurrencyInvalid         = errors.New("the currency must be a valid ISO 4217 code")
	ErrFeaturesEncoding        = errors.New("the plan features could not be decoded")

	ErrFeedbackTypeInvalid  = errors.New("the feedback type must be one of BUG, SUGGESTION, OTHER")
	ErrFeedbackMessageEmpty = errors.New("the feedback message must not be empty")
)

// validationErrors are returned by the model hooks and constraint callbacks
// for data the client sent.
var validationErrors = []error{
	ErrMonthExists,
	ErrDescriptionEmpty,
	ErrAmountNegative,
	ErrDayOfMonthInvalid,
	ErrExpenseTypeInvalid,
	ErrPaidAmountInvalid,
	ErrUserExternalIDNotUnique,
	ErrPlanningAlertDays,
	ErrPlanNameEmpty,
	ErrPlanExternalIDNotUnique,
	ErrPlanPriceNegative,
	ErrCurrencyInvalid,
	ErrFeedbackTypeInvalid,
	ErrFeedbackMessageEmpty,
}

// IsValidationError reports whether err is caused by invalid data.
func IsValidationError(err error) bool {
	for _, e := range validationErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
