package handlers

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SignupInput struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type SigninInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validateSignup applies the signup rules in order; the first failing rule
// decides the message.
func validateSignup(in SignupInput) string {
	if in.Email == "" || in.FullName == "" || in.Password == "" {
		return "All fields are required"
	}
	if !emailRegex.MatchString(in.Email) {
		return "Invalid email format"
	}
	if len(strings.TrimSpace(in.FullName)) < 2 {
		return "Full name must be at least 2 characters"
	}
	if len(in.Password) < 6 {
		return "Password must be at least 6 characters"
	}
	return ""
}

// validateSignin checks shape only; the password rule is not re-applied at
// signin.
func validateSignin(in SigninInput) string {
	if in.Email == "" || in.Password == "" {
		return "Email and password are required"
	}
	if !emailRegex.MatchString(in.Email) {
		return "Invalid email format"
	}
	return ""
}
