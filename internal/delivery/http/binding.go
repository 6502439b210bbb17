package http

import (
	"fmt"
	"sync"

	"github.com/brandyemurray/compare-and-save/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// registerValidators adds the custom binding tags used by request types.
// It panics if gin's validator engine is not go-playground/validator.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("unexpected validator engine %T", binding.Validator.Engine()))
		}
		if err := v.RegisterValidation("carries", validateCarries); err != nil {
			panic(fmt.Sprintf("register carries validator: %v", err))
		}
	})
}

func validateCarries(fl validator.FieldLevel) bool {
	return domain.Carries(fl.Field().String()).Valid()
}
