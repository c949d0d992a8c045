package router

import (
	"sync"

	"github.com/salon-next/internal/service"

	"github.com/gin-gonic/gin/binding"
	validator "github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators 在 gin 绑定引擎上注册自定义校验规则
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("hhmm", validateHHMM)
	})
}

// validateHHMM 校验 HH:MM 格式的时间字段
func validateHHMM(fl validator.FieldLevel) bool {
	_, err := service.ParseHHMM(fl.Field().String())
	return err == nil
}
