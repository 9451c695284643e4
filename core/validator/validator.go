// Package validator wraps go-playground/validator with English messages.
package validator

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator validates structs using `validate` tags.
type Validator interface {
	// Struct validates s
	Struct(s any) error

	// StructCtx validates s with a context
	StructCtx(ctx context.Context, s any) error
}

// Validate is the shared validator instance.
var Validate = New()

type validatorImpl struct {
	validator *validator.Validate
	trans     ut.Translator
}

// New creates a validator with English translations registered.
func New() Validator {
	v := &validatorImpl{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	if trans, found := uni.GetTranslator("en"); found {
		v.trans = trans
		_ = en_translations.RegisterDefaultTranslations(v.validator, trans)
	}

	return v
}

// Struct validates s
func (v *validatorImpl) Struct(s any) error {
	return v.StructCtx(context.Background(), s)
}

// StructCtx validates s with a context
func (v *validatorImpl) StructCtx(ctx context.Context, s any) error {
	if s == nil {
		return errors.New("validation target cannot be nil")
	}
	return v.translate(v.validator.StructCtx(ctx, s))
}

func (v *validatorImpl) translate(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || v.trans == nil {
		return err
	}

	fields := make([]FieldError, 0, len(validationErrors))
	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msg := fe.Translate(v.trans)
		fields = append(fields, FieldError{
			Namespace: fe.Namespace(),
			Tag:       fe.Tag(),
			Message:   msg,
		})
		messages = append(messages, msg)
	}

	return &ValidationErrors{
		Fields:  fields,
		message: strings.Join(messages, "; "),
	}
}

// FieldError describes one failed field.
type FieldError struct {
	Namespace string
	Tag       string
	Message   string
}

// ValidationErrors is returned when one or more fields fail validation.
type ValidationErrors struct {
	Fields  []FieldError
	message string
}

// Error returns the joined field messages
func (e *ValidationErrors) Error() string {
	return e.message
}

// HasField reports whether the field at namespace failed validation.
func (e *ValidationErrors) HasField(namespace string) bool {
	for _, f := range e.Fields {
		if f.Namespace == namespace {
			return true
		}
	}
	return false
}
