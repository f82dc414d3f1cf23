package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/prefeitura-rio/app-painel-pr/internal/models"
)

// RegisterValidators registra no validator do gin as regras do painel
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("dashboard_view", func(fl validator.FieldLevel) bool {
		return models.View(fl.Field().String()).IsValid()
	})
}
