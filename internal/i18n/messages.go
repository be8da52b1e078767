package i18n

// Message keys used by the handlers.
const (
	KeyRecordWithThisNameExist = "db.recordWithThisNameExist"
	KeyRecordUpdated           = "db.recordUpdated"
	KeyRecordNotFound          = "db.recordNotFound"
	KeyForeignKeyViolation     = "db.foreignKeyViolation"
	KeyFormSuccess             = "forms.general.success"
	KeyFormInvalid             = "forms.general.invalid"
	KeyInvalidID               = "forms.general.invalidId"
	KeyPropagationFailed       = "contacts.type.propagationFailed"
	KeyInternalError           = "general.internalError"
)

var messages = map[string]map[string]string{
	LocaleEN: {
		KeyRecordWithThisNameExist: "A record with this name already exists.",
		KeyRecordUpdated:           "The record has been updated.",
		KeyRecordNotFound:          "The record could not be found.",
		KeyForeignKeyViolation:     "This record is still in use and cannot be removed.",
		KeyFormSuccess:             "The form has been saved.",
		KeyFormInvalid:             "The form contains invalid values.",
		KeyInvalidID:               "The record id is missing or invalid.",
		KeyPropagationFailed:       "Could not update the contacts for the updated contact type.",
		KeyInternalError:           "Something went wrong, please try again later.",
	},
	LocalePL: {
		KeyRecordWithThisNameExist: "Rekord o tej nazwie już istnieje.",
		KeyRecordUpdated:           "Rekord został zaktualizowany.",
		KeyRecordNotFound:          "Nie znaleziono rekordu.",
		KeyForeignKeyViolation:     "Ten rekord jest nadal używany i nie może zostać usunięty.",
		KeyFormSuccess:             "Formularz został zapisany.",
		KeyFormInvalid:             "Formularz zawiera nieprawidłowe wartości.",
		KeyInvalidID:               "Brak identyfikatora rekordu lub jest on nieprawidłowy.",
		KeyPropagationFailed:       "Nie udało się zaktualizować kontaktów dla zmienionego typu kontaktu.",
		KeyInternalError:           "Coś poszło nie tak, spróbuj ponownie później.",
	},
}

// validation messages for locales without bundled validator translations
var polishValidation = map[string]string{
	"required": "{0} jest polem wymaganym",
	"max":      "{0} może mieć maksymalnie {1} znaków",
	"min":      "{0} musi mieć co najmniej {1} znaków",
}
