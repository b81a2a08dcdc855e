package usecase

import "errors"

// MaxContentBytes caps note content and doubt descriptions/answers, measured
// in UTF-8 bytes, not characters.
const MaxContentBytes = 100000

var (
	// ErrPayloadTooLarge maps to HTTP 413, distinct from field validation.
	ErrPayloadTooLarge = errors.New("content exceeds maximum size")
	// ErrForbidden maps to HTTP 403: the record exists but is not the caller's.
	ErrForbidden = errors.New("operation not permitted")
	// ErrEmailTaken and ErrUsernameTaken map to HTTP 409.
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials maps to HTTP 401 without telling which field failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrTwoFactorRequired signals that login needs a TOTP or recovery code.
	ErrTwoFactorRequired = errors.New("two-factor code required")
	// ErrTwoFactorInvalid signals a wrong TOTP or recovery code.
	ErrTwoFactorInvalid = errors.New("invalid two-factor code")
)

// ValidationError marks client-fixable input problems (HTTP 400).
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
