package catalog

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).Valid()
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register category validation: %w", err)
	}
	if err := validate.RegisterTranslation("category", trans, func(ut ut.Translator) error {
		return ut.Add("category", "{0} must be one of the seven oxidation categories", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("category", strings.TrimPrefix(fe.Namespace(), "Record."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register category translation: %w", err)
	}

	return validate, trans, nil
}
