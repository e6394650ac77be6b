package util

import (
	"github.com/civitrack/civitrack/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("department", validateDepartment)
	validate.RegisterValidation("report_status", validateReportStatus)
}

func validateDepartment(fl validator.FieldLevel) bool {
	return model.ValidDepartment(fl.Field().String())
}

func validateReportStatus(fl validator.FieldLevel) bool {
	return model.ValidStatus(fl.Field().String())
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
