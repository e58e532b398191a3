package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// 欄位的錯誤訊息寫在 msg tag, 透過 TagNameFunc 讓 FieldError.Field() 直接回傳訊息
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return fld.Tag.Get("msg")
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
			return model.PaymentMethod(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
			return model.OrderStatus(fl.Field().String()).IsValid()
		})
		validate = v
	})
	return validate
}

// Normalizer 驗證前整理輸入, 例如去除前後空白
type Normalizer interface {
	Normalize()
}

/*
Validate 驗證request struct

錯誤:
  - apperr.ValidationFailedCode 400: 只回傳第一個不合法欄位的訊息
*/
func Validate(req any) error {
	if n, ok := req.(Normalizer); ok {
		n.Normalize()
	}
	err := getValidator().Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return apperr.Wrap(apperr.ValidationFailedCode, apperr.ErrStrMap[apperr.ValidationFailedCode], err)
	}
	return apperr.New(apperr.ValidationFailedCode, fieldMessage(validationErrs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	// 沒有msg tag時 Field() 與 StructField() 相同
	if fe.Field() != fe.StructField() {
		return fe.Field()
	}
	return "Invalid value for " + fe.StructField()
}
