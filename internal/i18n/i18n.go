// Package i18n provides the translator used for user facing messages and validation errors.
package i18n

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pl"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/rs/zerolog/log"
)

const (
	// LocaleEN is the English locale.
	LocaleEN = "en"
	// LocalePL is the Polish locale.
	LocalePL = "pl"
	// DefaultLocale is used when no locale is configured.
	DefaultLocale = LocaleEN
)

// ErrUnsupportedLocale is returned for a locale without messages.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// Translator translates message keys and validation errors for one locale.
type Translator struct {
	locale string
	trans  ut.Translator
}

// Supported reports whether messages exist for locale.
func Supported(locale string) bool {
	_, ok := messages[locale]
	return ok
}

// New creates a translator for the given locale. An empty locale selects DefaultLocale.
func New(locale string) (*Translator, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	msgs, ok := messages[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}

	english := en.New()
	uni := ut.New(english, english, pl.New())

	trans, found := uni.GetTranslator(locale)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}

	for key, text := range msgs {
		if err := trans.Add(key, text, false); err != nil {
			return nil, fmt.Errorf("failed to add translation %q: %w", key, err)
		}
	}

	return &Translator{locale: locale, trans: trans}, nil
}

// Locale returns the locale of the translator.
func (t *Translator) Locale() string {
	return t.locale
}

// T returns the translated message for key, or the key itself when it is unknown.
func (t *Translator) T(key string) string {
	msg, err := t.trans.T(key)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Str("locale", t.locale).Msg("missing translation")
		return key
	}

	return msg
}

// NewValidator returns a validator reporting field names from the form tag and
// translating its messages with t.
func (t *Translator) NewValidator() (*validator.Validate, error) {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	if t.locale == LocaleEN {
		if err := entranslations.RegisterDefaultTranslations(v, t.trans); err != nil {
			return nil, fmt.Errorf("failed to register validator translations: %w", err)
		}

		return v, nil
	}

	for tag, text := range polishValidation {
		if err := registerTranslation(v, t.trans, tag, text); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// ValidationErrors maps each failed field to its translated message.
// Errors that are not validation errors are returned under the empty key.
func (t *Translator) ValidationErrors(err error) map[string]string {
	out := map[string]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		out[""] = err.Error()
		return out
	}

	for _, fe := range validationErrors {
		out[fe.Field()] = fe.Translate(t.trans)
	}

	return out
}

func registerTranslation(v *validator.Validate, trans ut.Translator, tag, text string) error {
	err := v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, errT := ut.T(tag, fe.Field(), fe.Param())
			if errT != nil {
				return fe.Error()
			}

			return msg
		},
	)
	if err != nil {
		return fmt.Errorf("failed to register %q translation: %w", tag, err)
	}

	return nil
}
