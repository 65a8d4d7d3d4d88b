package helper

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shopspring/decimal"

	"schooloffice_backend/internals/constants"
)

const (
	notBlankTag = "notblank"
	roleTag     = "role"
)

// Validator wraps validator.v10 with english messages keyed by json field name.
type Validator struct {
	engine *validator.Validate
	trans  ut.Translator
}

var (
	defaultValidator *Validator
	validatorOnce    sync.Once
)

// NewValidator returns the process-wide validator.
func NewValidator() *Validator {
	validatorOnce.Do(func() { defaultValidator = buildValidator() })
	return defaultValidator
}

func buildValidator() *Validator {
	v := validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// gt/gte/lte on amounts compare the numeric value
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		return f.Interface().(decimal.Decimal).InexactFloat64()
	}, decimal.Decimal{})

	_ = v.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		if s, ok := fl.Field().Interface().(string); ok {
			return strings.TrimSpace(s) != ""
		}
		return false
	})
	_ = v.RegisterValidation(roleTag, func(fl validator.FieldLevel) bool {
		return constants.IsValidRole(fl.Field().String())
	})

	noop := func(ut.Translator) error { return nil }
	_ = v.RegisterTranslation(notBlankTag, trans, noop, func(_ ut.Translator, fe validator.FieldError) string {
		return "this field cannot be blank"
	})
	_ = v.RegisterTranslation(roleTag, trans, noop, func(_ ut.Translator, fe validator.FieldError) string {
		return "invalid role"
	})

	return &Validator{engine: v, trans: trans}
}

func (x *Validator) Engine() *validator.Validate { return x.engine }

// Struct validates s and returns field messages, or nil when s is valid.
func (x *Validator) Struct(s any) map[string][]string {
	err := x.engine.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return map[string][]string{"__all__": {err.Error()}}
	}
	out := make(map[string][]string, len(ves))
	for _, fe := range ves {
		name := fe.Field()
		if name == "" {
			name = strings.ToLower(fe.StructField())
		}
		out[name] = append(out[name], fe.Translate(x.trans))
	}
	return out
}
