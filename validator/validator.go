package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct 使用 validator 校验结构体
// 非结构体、nil 指针直接跳过校验，避免调用方在可选配置上做防御性判断
func ValidateStruct(object interface{}) error {
	if object == nil {
		return nil
	}

	rv := reflect.ValueOf(object)
	if !rv.IsValid() {
		return nil
	}

	// 解引用指针，任意层级出现 nil 都视为无需校验
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil
	}

	return validate.Struct(rv.Interface())
}
