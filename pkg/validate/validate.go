package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO según sus tags `validate` y devuelve un error legible
// con los campos que fallaron, o nil si todo es válido.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: falla la regla '%s'", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
