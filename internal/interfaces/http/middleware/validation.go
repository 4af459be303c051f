package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/shopadmin/backend/internal/domain/inventory"
)

// SetupValidator registers custom binding validators with gin's
// validator engine. Call once at startup before serving requests.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("adjustmode", func(fl validator.FieldLevel) bool {
		return inventory.AdjustmentMode(fl.Field().String()).IsValid()
	})
}
