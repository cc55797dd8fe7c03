package Controllers

import (
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ptbr "github.com/go-playground/validator/v10/translations/pt_BR"
	"github.com/gofiber/fiber/v2"

	"Frota/Calculations"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("datebr", func(fl validator.FieldLevel) bool {
		_, err := Calculations.ParseDateBR(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	locale := pt_BR.New()
	uni := ut.New(locale, locale)
	translator, _ = uni.GetTranslator("pt_BR")
	if err := ptbr.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}
}

// validationMessage maps the first violation to the user-facing message the
// dialogs show. Field-specific rules keep their original wording; everything
// else falls back to the pt_BR translation of the tag.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Preencha todos os campos obrigatórios"
	}

	first := errs[0]
	switch {
	case first.Tag() == "required":
		return "Preencha todos os campos obrigatórios"
	case first.Tag() == "datebr":
		return "Data inválida, use o formato dd/mm/aaaa"
	case first.Field() == "Hours" && first.Tag() == "gt":
		return "O número de horas deve ser maior que zero"
	case first.Field() == "Quantity" && first.Tag() == "gt":
		return "A quantidade deve ser maior que zero"
	}
	return first.Translate(translator)
}

// validationError answers a failed submission. Nothing has been committed at
// this point; the client corrects the field and resubmits.
func validationError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Erro de validação",
		"message": validationMessage(err),
	})
}

// confirmRequired gates destructive deletes: without confirm=true the
// collection is not touched.
func confirmRequired(ctx *fiber.Ctx) bool {
	return ctx.Query("confirm") != "true"
}
