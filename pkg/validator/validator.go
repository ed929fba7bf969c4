package validator

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

var lock = &sync.Mutex{}
var validate *validator.Validate

func getValidator() *validator.Validate {
	lock.Lock()
	defer lock.Unlock()
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}
	return validate
}

func ValidateStruct(s interface{}) error {
	return getValidator().Struct(s)
}

// TranslateError flattens validation errors into field -> message.
// Errors that are not validation errors are reported under the empty key.
func TranslateError(err error) map[string]string {
	errs := make(map[string]string)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs[""] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = fe.Error()
	}
	return errs
}
