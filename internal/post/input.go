package post

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// в ошибках используем имена полей из GraphQL, а не Go
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Input - поля поста для создания и обновления. nil означает, что поле не передано.
// Пустая строка допустима.
type Input struct {
	Post    *string `json:"post" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

// NewInput собирает Input из уже известных значений.
func NewInput(post, content string) Input {
	return Input{Post: &post, Content: &content}
}

func (in Input) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fe.Field(), Reason: reasonFor(fe.Tag())}
	}
	return &ValidationError{Reason: err.Error()}
}

func reasonFor(tag string) string {
	if tag == "required" {
		return "is required"
	}
	return "failed on " + tag
}
