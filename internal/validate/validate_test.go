package validate_test

import (
	"strings"
	"testing"

	"github.com/mrivera/user-auth-service/internal/validate"
	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     []string
	}{
		{
			name:     "valid username",
			username: "validuser",
			want:     nil,
		},
		{
			name:     "minimum length",
			username: "abcde",
			want:     nil,
		},
		{
			name:     "empty",
			username: "",
			want:     []string{validate.MsgUsernameEmpty},
		},
		{
			name:     "too short",
			username: "abcd",
			want:     []string{validate.MsgUsernameLength},
		},
		{
			name:     "too long",
			username: strings.Repeat("a", 256),
			want:     []string{validate.MsgUsernameLength},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Username(tt.username))
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  []string
	}{
		{
			name:  "valid email",
			email: "user@example.com",
			want:  nil,
		},
		{
			name:  "empty",
			email: "",
			want:  []string{validate.MsgEmailEmpty},
		},
		{
			name:  "no at sign",
			email: "userexample.com",
			want:  []string{validate.MsgEmailFormat},
		},
		{
			name:  "spaces",
			email: "user @example.com",
			want:  []string{validate.MsgEmailFormat},
		},
		{
			name:  "display name form rejected",
			email: "User <user@example.com>",
			want:  []string{validate.MsgEmailFormat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Email(tt.email))
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{
			name:     "valid password",
			password: "secret123",
			want:     nil,
		},
		{
			name:     "minimum length",
			password: "123456",
			want:     nil,
		},
		{
			name:     "empty",
			password: "",
			want:     []string{validate.MsgPasswordLength},
		},
		{
			name:     "too short",
			password: "12345",
			want:     []string{validate.MsgPasswordLength},
		},
		{
			name:     "too long",
			password: strings.Repeat("a", 256),
			want:     []string{validate.MsgPasswordLength},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Password(tt.password))
		})
	}
}
