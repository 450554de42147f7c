package handlers

import (
	"testing"

	"weddingfolio/internal/models"
)

func TestValidateSecurityForm(t *testing.T) {
	tests := []struct {
		name    string
		form    securityForm
		wantErr bool
	}{
		{"missing current password", securityForm{NewPassword: "hunter22", ConfirmPassword: "hunter22"}, true},
		{"short new password", securityForm{OldPassword: "old", NewPassword: "abc", ConfirmPassword: "abc"}, true},
		{"short new username", securityForm{OldPassword: "old", NewUsername: "ab"}, true},
		{"password mismatch", securityForm{OldPassword: "old", NewPassword: "hunter22", ConfirmPassword: "hunter23"}, true},
		{"password change ok", securityForm{OldPassword: "old", NewPassword: "hunter22", ConfirmPassword: "hunter22"}, false},
		{"username change only", securityForm{OldPassword: "old", NewUsername: "newadmin"}, false},
		{"nothing to change still ok", securityForm{OldPassword: "old"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateSecurityForm(tt.form)
			if tt.wantErr && msg == "" {
				t.Error("expected a validation message")
			}
			if !tt.wantErr && msg != "" {
				t.Errorf("unexpected message: %q", msg)
			}
		})
	}
}

func TestValidateInquiry(t *testing.T) {
	valid := models.ContactInquiryCreate{
		Name:        "Ana",
		Email:       "ana@example.com",
		Phone:       "+385 91 000 000",
		WeddingDate: "2026-09-12",
		Message:     "We'd love a quote.",
	}
	if msg := validateInquiry(valid); msg != "" {
		t.Errorf("valid inquiry rejected: %q", msg)
	}

	bad := valid
	bad.Email = "not-an-email"
	if msg := validateInquiry(bad); msg == "" {
		t.Error("invalid email accepted")
	}

	empty := models.ContactInquiryCreate{}
	if msg := validateInquiry(empty); msg == "" {
		t.Error("empty inquiry accepted")
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 6},   // unset falls back
		{-3, 1},  // below minimum
		{25, 25}, // in range
		{99, 50}, // above maximum
	}
	for _, tt := range tests {
		if got := clampLimit(tt.n, 1, 50, 6); got != tt.want {
			t.Errorf("clampLimit(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
