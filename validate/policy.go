package validate

import (
	"errors"
	"regexp"

	"github.com/hashicorp/go-multierror"
)

var (
	letterPattern     = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern      = regexp.MustCompile(`\d`)
	specialPattern    = regexp.MustCompile("[!@#$%^&*(),.?\":{}|<>_+\\-=\\[\\]\\\\;'/~`]")
	whitespacePattern = regexp.MustCompile(`\s`)

	usernamePattern        = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)
	onlyDotsPattern        = regexp.MustCompile(`^\.+$`)
	onlyUnderscoresPattern = regexp.MustCompile(`^_+$`)
)

// ValidatePassword checks the account password policy. Nil means every
// rule passed.
func ValidatePassword(password string) *multierror.Error {
	var errs *multierror.Error

	if len(password) < 6 {
		errs = multierror.Append(errs, errors.New("Password must be at least 6 characters long"))
	}
	if len(password) > 128 {
		errs = multierror.Append(errs, errors.New("Password must be no more than 128 characters long"))
	}
	if !letterPattern.MatchString(password) {
		errs = multierror.Append(errs, errors.New("Password must contain at least one letter"))
	}
	if !digitPattern.MatchString(password) {
		errs = multierror.Append(errs, errors.New("Password must contain at least one number"))
	}
	if !specialPattern.MatchString(password) {
		errs = multierror.Append(errs, errors.New("Password must contain at least one special character"))
	}
	if whitespacePattern.MatchString(password) {
		errs = multierror.Append(errs, errors.New("Password cannot contain whitespace"))
	}

	return errs
}

// ValidateUsername checks length and the letters/numbers/dots/underscores
// charset.
func ValidateUsername(username string) *multierror.Error {
	var errs *multierror.Error

	if len(username) < 3 {
		errs = multierror.Append(errs, errors.New("Username must be at least 3 characters long"))
	}
	if len(username) > 30 {
		errs = multierror.Append(errs, errors.New("Username must be no more than 30 characters long"))
	}
	if !usernamePattern.MatchString(username) {
		errs = multierror.Append(errs, errors.New("Username can only contain letters, numbers, dots, and underscores"))
	}
	if whitespacePattern.MatchString(username) {
		errs = multierror.Append(errs, errors.New("Username cannot contain spaces"))
	}
	if onlyDotsPattern.MatchString(username) {
		errs = multierror.Append(errs, errors.New("Username cannot consist only of dots"))
	}
	if onlyUnderscoresPattern.MatchString(username) {
		errs = multierror.Append(errs, errors.New("Username cannot consist only of underscores"))
	}

	return errs
}
