package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/judyrop/restaurant-pos/models"
)

var registerOnce sync.Once

// registerValidations adds the custom binding tags used by the models.
func registerValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("tablestatus", func(fl validator.FieldLevel) bool {
			return models.ValidTableStatus(fl.Field().String())
		})
	})
}
