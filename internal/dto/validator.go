package dto

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"timesheet/backend/internal/timesheet"
)

// RegisterValidators 向 gin 的校验引擎注册自定义规则
//   - hhmm: 24 小时制 "HH:MM"
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("gin 校验引擎类型不是 validator.Validate")
	}
	return v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return timesheet.ValidTime(fl.Field().String())
	})
}
