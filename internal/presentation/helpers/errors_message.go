package helpers

import (
	"strings"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_br_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

func GetErrorMessages(validate *validator.Validate, errs error) string {
	pt := pt_BR.New()
	uni := ut.New(pt, pt)
	trans, _ := uni.GetTranslator("pt_BR")
	pt_br_translations.RegisterDefaultTranslations(validate, trans)

	var errorMessages []string
	for _, e := range errs.(validator.ValidationErrors) {
		errorMessages = append(errorMessages, e.Translate(trans))
	}
	return strings.Join(errorMessages, ", ")
}
