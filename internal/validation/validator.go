package validation

import (
	"errors"
	"reflect"
	"strings"

	"video-quiz/internal/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

const maxVideoIDLength = 256

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// TagNameFunc picks the name a struct field is reported under in messages.
type TagNameFunc func(fld reflect.StructField) string

// JSONTagName names fields after their json tag so messages match what the
// client sent.
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// NewValidator creates a validator that names fields by their json tags.
func NewValidator() *Validator {
	return New(JSONTagName)
}

// New creates a validator with English messages and the given field naming.
func New(tagName TagNameFunc) *Validator {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	// Registration only fails for malformed built-in translations.
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	if tagName != nil {
		validate.RegisterTagNameFunc(validator.TagNameFunc(tagName))
	}

	return &Validator{validate: validate, trans: trans}
}

// ValidateVideoID checks a user-supplied video identifier.
func (v *Validator) ValidateVideoID(videoID string) error {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return domain.NewValidationError("video_id", "Please choose a video first.")
	}
	if len(videoID) > maxVideoIDLength {
		return domain.NewValidationError("video_id", "video_id is too long")
	}
	if strings.ContainsAny(videoID, "\r\n\t") {
		return domain.NewValidationError("video_id", "video_id contains invalid characters")
	}
	return nil
}

// ValidateStruct validates s using its `validate` tags and reports the first
// failing field as a domain validation error.
func (v *Validator) ValidateStruct(s interface{}) error {
	field, messages, err := v.FieldMessages(s)
	if err != nil {
		return domain.NewValidationError("", err.Error())
	}
	if len(messages) == 0 {
		return nil
	}
	return domain.NewValidationError(field, strings.Join(messages, "; "))
}

// FieldMessages validates s and returns one translated message per failing
// field along with the name of the first one. err is set only when s cannot
// be validated at all.
func (v *Validator) FieldMessages(s interface{}) (string, []string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return "", nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "", nil, err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Translate(v.trans))
	}
	return fieldErrs[0].Field(), messages, nil
}
