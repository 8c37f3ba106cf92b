// Package validate holds the field-level rules for user registration.
// Each check returns every message for the rules it found violated so the
// caller can aggregate them into a single response.
package validate

import "net/mail"

const (
	MinUsernameLength = 5
	MaxUsernameLength = 255
	MinPasswordLength = 6
	MaxPasswordLength = 255
)

const (
	MsgUsernameEmpty  = "Username cannot be empty."
	MsgUsernameLength = "Username must be between 5 and 255 characters."
	MsgEmailEmpty     = "Email cannot be empty."
	MsgEmailFormat    = "Must provide a valid email address."
	MsgPasswordLength = "Password is required and must be at least 6 characters."
	MsgUsernameTaken  = "Username already exists."
	MsgEmailTaken     = "Email already exists."
)

func Username(username string) []string {
	if username == "" {
		return []string{MsgUsernameEmpty}
	}
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return []string{MsgUsernameLength}
	}
	return nil
}

func Email(email string) []string {
	if email == "" {
		return []string{MsgEmailEmpty}
	}
	// mail.ParseAddress accepts "Name <a@b>" forms; requiring the parsed
	// address to round-trip keeps only plain addresses.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []string{MsgEmailFormat}
	}
	return nil
}

func Password(password string) []string {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return []string{MsgPasswordLength}
	}
	return nil
}
