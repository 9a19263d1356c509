package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidProduct is returned when a product definition is rejected.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrInvalidConfig is returned when a configuration change is rejected.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MaxAmount bounds every money, area and coverage figure. Anything larger,
// including infinities, cannot be quoted.
const MaxAmount = 1e12

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "amount" accepts finite numbers no larger than MaxAmount. NaN fails
	// every range tag silently, so it has to be rejected here too.
	if err := v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) <= MaxAmount
	}); err != nil {
		panic(err)
	}
	return v
}

// validationError wraps sentinel with a readable summary of the failed
// struct-tag checks in err.
func validationError(sentinel error, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", sentinel, strings.Join(parts, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be negative", fe.Field())
	case "amount":
		return fmt.Sprintf("%s must be a finite number up to %g", fe.Field(), float64(MaxAmount))
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q check", fe.Field(), fe.Tag())
	}
}
