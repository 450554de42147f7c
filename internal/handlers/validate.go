package handlers

import (
	"github.com/go-playground/validator/v10"

	"weddingfolio/internal/models"
)

// validate is the shared validator instance. Struct rules live on the
// form types as `validate` tags.
var validate = validator.New(validator.WithRequiredStructEnabled())

// minPasswordLen is the minimum length for a new admin password.
const minPasswordLen = 6

// securityForm is the credentials-change form. The new password fields are
// optional, but when set they must agree and meet the minimum length.
type securityForm struct {
	OldPassword     string `validate:"required"`
	NewUsername     string `validate:"omitempty,min=3"`
	NewPassword     string `validate:"omitempty,min=6"`
	ConfirmPassword string
}

// validateSecurityForm returns the first problem with the form as a
// user-facing message, or "" when the form is valid.
func validateSecurityForm(f securityForm) string {
	if err := validate.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.StructField() {
			case "OldPassword":
				return "Please enter your current password."
			case "NewUsername":
				return "New username must be at least 3 characters."
			case "NewPassword":
				return "New password must be at least 6 characters."
			}
		}
		return "Invalid form input."
	}
	if f.NewPassword != "" && f.NewPassword != f.ConfirmPassword {
		return "New passwords do not match."
	}
	return ""
}

// validateInquiry checks the public contact form. Every field is required;
// an invalid form must never reach the backend.
func validateInquiry(inq models.ContactInquiryCreate) string {
	if err := validate.Struct(inq); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.StructField() {
			case "Name":
				return "Please enter your name."
			case "Email":
				return "Please enter a valid email address."
			case "Phone":
				return "Please enter your phone number."
			case "WeddingDate":
				return "Please enter your wedding date."
			case "Message":
				return "Please enter a message."
			}
		}
		return "Please fill in all required fields."
	}
	return ""
}

// clampLimit bounds the post/video counts accepted from the integration
// settings forms.
func clampLimit(n, min, max, fallback int) int {
	if n == 0 {
		return fallback
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
