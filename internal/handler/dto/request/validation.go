package request

import (
	"encoding/json"
	"errors"
	"io"
	"sync"

	"bookit/internal/domain/booking"
	"bookit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const MsgInvalidRequest = "Invalid request format"

var registerOnce sync.Once

// RegisterValidations installs the custom binding rules on gin's validator. It is safe to call
// more than once.
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
			return booking.IsEmailShape(fl.Field().String())
		})
	})
}

// messenger picks the public message for failed field rules and for values that
// could not be decoded at all.
type messenger interface {
	validationMessage(fes validator.ValidationErrors) error
	decodeMessage() error
}

// BindJSON decodes and validates the request body into obj. Any failure is returned as an
// *errs.ValidationError whose Message is safe to show to the caller.
func BindJSON(c *gin.Context, obj messenger) error {
	RegisterValidations()

	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var fes validator.ValidationErrors
	if errors.As(err, &fes) {
		return errs.Wrap(obj.validationMessage(fes), err.Error())
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF), errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return errs.Wrap(errs.NewValidationError("", MsgInvalidRequest), err.Error())
	default:
		// decimal.Decimal rejects non-numeric strings with a plain error
		return errs.Wrap(obj.decodeMessage(), err.Error())
	}
}

func hasField(fes validator.ValidationErrors, field string) (validator.FieldError, bool) {
	for _, fe := range fes {
		if fe.Field() == field {
			return fe, true
		}
	}
	return nil, false
}
