package validator

import (
	"net/mail"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateRegister(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(username) == "" {
		errs.Add("username", "Username is required")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateLogin(username, password string) ValidationErrors {
	return ValidateRegister(username, password)
}

func ValidateCreatePost(title, content string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(title) == "" {
		errs.Add("title", "Title is required")
	}
	if strings.TrimSpace(content) == "" {
		errs.Add("content", "Content is required")
	}

	return errs
}

// ValidateUpdateUser checks the optional profile fields. A supplied email
// must parse as an address.
func ValidateUpdateUser(username, email *string) ValidationErrors {
	errs := make(ValidationErrors)

	if username != nil && strings.TrimSpace(*username) == "" {
		errs.Add("username", "Username cannot be empty")
	}
	if email != nil {
		if _, err := mail.ParseAddress(*email); err != nil {
			errs.Add("email", "Invalid email address")
		}
	}

	return errs
}
