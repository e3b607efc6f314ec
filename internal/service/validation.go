// internal/service/validation.go
package service

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "candidate-tracker/internal/common/errors"
	"candidate-tracker/internal/models"
)

// registrationSchema enforces the four required non-empty fields. Resume and
// cover letter stay optional and nullable.
var registrationSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"name", "email", "phone", "position"},
	"properties": map[string]interface{}{
		"name":        map[string]interface{}{"type": "string", "minLength": 1},
		"email":       map[string]interface{}{"type": "string", "minLength": 1},
		"phone":       map[string]interface{}{"type": "string", "minLength": 1},
		"position":    map[string]interface{}{"type": "string", "minLength": 1},
		"resume":      map[string]interface{}{"type": []string{"string", "null"}},
		"coverLetter": map[string]interface{}{"type": []string{"string", "null"}},
	},
}

func validateRegistration(input models.RegistrationInput) error {
	doc := map[string]interface{}{
		"name":     input.Name,
		"email":    input.Email,
		"phone":    input.Phone,
		"position": input.Position,
	}
	if input.Resume != nil {
		doc["resume"] = *input.Resume
	}
	if input.CoverLetter != nil {
		doc["coverLetter"] = *input.CoverLetter
	}

	schemaLoader := gojsonschema.NewGoLoader(registrationSchema)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apperrors.NewInternalError("registration validation error", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return apperrors.NewValidationError(fmt.Sprintf("name, email, phone and position are required: %s", strings.Join(errs, "; ")))
	}

	return nil
}

func validateStatus(status string) error {
	if !models.IsValidStatus(status) {
		return apperrors.NewValidationError(fmt.Sprintf("invalid status %q: must be one of pending, approved, rejected", status))
	}
	return nil
}
