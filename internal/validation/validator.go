package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"claims-insights/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("data_source", validateDataSource)
	_ = v.RegisterValidation("claim_type", validateClaimType)
	_ = v.RegisterValidation("report_date", validateReportDate)
	_ = v.RegisterValidation("report_format", validateReportFormat)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// FormatErrors flattens validator failures into a field-to-message map keyed
// by the json names registered above. Non-validator errors come back under a
// generic "request" key.
func (v *Validator) FormatErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		fieldErrors["request"] = err.Error()
		return fieldErrors
	}

	for _, fe := range validationErrs {
		fieldErrors[fe.Field()] = messageForTag(fe)
	}
	return fieldErrors
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "data_source":
		return "must be a known claims data source"
	case "claim_type":
		return "must be institutional or professional"
	case "report_date":
		return "must use format YYYY-MM-DD"
	case "report_format":
		return "must be 'json' or 'csv'"
	default:
		return "is invalid"
	}
}

// Custom validation functions

// validateDataSource checks that the value names a known claims source table
func validateDataSource(fl validator.FieldLevel) bool {
	return models.IsValidDataSource(fl.Field().String())
}

// validateClaimType checks that the value is institutional or professional
func validateClaimType(fl validator.FieldLevel) bool {
	return models.IsValidClaimType(fl.Field().String())
}

// validateReportDate checks the YYYY-MM-DD date format used by report windows
func validateReportDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// validateReportFormat checks that the requested output format is supported
func validateReportFormat(fl validator.FieldLevel) bool {
	format := strings.ToLower(fl.Field().String())
	return format == "json" || format == "csv"
}
