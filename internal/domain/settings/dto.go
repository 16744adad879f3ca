package settings

import (
	"github.com/chafiq1992/attendance-app/internal/pkg/validator"
)

type SetRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r *SetRequest) Validate() error {
	var errs validator.ValidationErrors

	switch r.Key {
	case KeyWorkDayHours, KeyGraceMinutes:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "unknown setting key",
		})
	}

	if validator.IsEmpty(r.Value) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value is required",
		})
	} else if !validator.IsPositiveNumber(r.Value) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
