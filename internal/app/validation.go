package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"hotel_inventory/internal/domain"
)

// HotelInput carries the mutable hotel fields; status is never accepted from callers.
type HotelInput struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Address              string `json:"address" validate:"required,max=255"`
	City                 string `json:"city" validate:"required,max=255"`
	TaxID                *int64 `json:"tax_id" validate:"required"`
	TaxVerificationDigit *int64 `json:"tax_verification_digit" validate:"required"`
	RoomCountDeclared    *int64 `json:"room_count_declared" validate:"required"`
}

type RoomInput struct {
	HotelID       *int64 `json:"hotel_id" validate:"required"`
	Quantity      *int64 `json:"quantity" validate:"required,min=0,max=4294967295"`
	RoomType      string `json:"room_type" validate:"required,max=255"`
	Accommodation string `json:"accommodation" validate:"required,max=255"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so messages match the request payload
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (in *HotelInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
}

func (in *RoomInput) normalize() {
	in.RoomType = strings.TrimSpace(in.RoomType)
	in.Accommodation = strings.TrimSpace(in.Accommodation)
}

// validateInput runs struct validation and folds every failed field into one ValidationError.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Validation("invalid input: %v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return domain.Validation("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("the %s field is required", fe.Field())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("the %s field must not be greater than %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("the %s field must not be greater than %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("the %s field must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("the %s field is invalid (%s)", fe.Field(), fe.Tag())
	}
}
