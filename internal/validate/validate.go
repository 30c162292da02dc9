// Package validate registers the custom binding rules used by the API.
// Financial figures are stored as DECIMAL(x,2); a payload carrying more
// precision would be silently rounded by MySQL, so the dp2 rule rejects
// it up front instead.
package validate

import (
	"math"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/arkline/marketdesk/internal/models"
)

// Register installs the models.Decimal type adapter and the dp2 rule on
// gin's binding validator. Call once at startup and in test setup.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	v.RegisterCustomTypeFunc(decimalValue, models.Decimal{})
	return v.RegisterValidation("dp2", twoDecimalPlaces)
}

// decimalValue exposes a Decimal to the validator as a plain float64, or
// nil when the value is NULL so that omitempty skips it.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(models.Decimal); ok {
		if !d.Valid {
			return nil
		}
		return d.Float64
	}
	return nil
}

// twoDecimalPlaces accepts numbers with at most two digits after the
// decimal point.
func twoDecimalPlaces(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	scaled := f * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

// Struct runs the registered binding rules against any struct. Used by
// handlers that decode payloads outside gin's automatic binding path.
func Struct(obj interface{}) error {
	return binding.Validator.ValidateStruct(obj)
}
