package validate

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func messages(errs *multierror.Error) []string {
	if errs == nil {
		return nil
	}
	out := make([]string, 0, len(errs.Errors))
	for _, err := range errs.Errors {
		out = append(out, err.Error())
	}
	return out
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{
			name:     "valid password",
			password: "Abcd1!",
			want:     nil,
		},
		{
			name:     "too short and missing classes",
			password: "abc",
			want: []string{
				"Password must be at least 6 characters long",
				"Password must contain at least one number",
				"Password must contain at least one special character",
			},
		},
		{
			name:     "too long",
			password: strings.Repeat("a1!", 50),
			want:     []string{"Password must be no more than 128 characters long"},
		},
		{
			name:     "missing number",
			password: "Abcdef!!",
			want:     []string{"Password must contain at least one number"},
		},
		{
			name:     "missing letter and special",
			password: "12345678",
			want: []string{
				"Password must contain at least one letter",
				"Password must contain at least one special character",
			},
		},
		{
			name:     "whitespace rejected",
			password: "Abcd 1!x",
			want:     []string{"Password cannot contain whitespace"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := messages(ValidatePassword(tt.password))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     []string
	}{
		{
			name:     "valid username",
			username: "maria.lopez",
			want:     nil,
		},
		{
			name:     "too short",
			username: "ab",
			want:     []string{"Username must be at least 3 characters long"},
		},
		{
			name:     "too long",
			username: strings.Repeat("a", 31),
			want:     []string{"Username must be no more than 30 characters long"},
		},
		{
			name:     "space rejected",
			username: "a b",
			want: []string{
				"Username can only contain letters, numbers, dots, and underscores",
				"Username cannot contain spaces",
			},
		},
		{
			name:     "bad characters",
			username: "user@name",
			want:     []string{"Username can only contain letters, numbers, dots, and underscores"},
		},
		{
			name:     "only dots",
			username: "...",
			want:     []string{"Username cannot consist only of dots"},
		},
		{
			name:     "only underscores",
			username: "___",
			want:     []string{"Username cannot consist only of underscores"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := messages(ValidateUsername(tt.username))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateUsername(%q) = %v, want %v", tt.username, got, tt.want)
			}
		})
	}
}
