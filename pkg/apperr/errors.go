// Package apperr defines the typed failures returned by the marketplace core.
//
// Every domain failure carries a Kind. The HTTP adaptor turns the Kind (or a
// per-error override) into a status code; anything that is not an *Error is a
// system failure and is reported as 500.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure.
type Kind int

const (
	KindSystem Kind = iota
	KindInvalidInput
	KindNotFound
	KindBadCredentials
	KindUnauthenticated
	KindForbidden
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindBadCredentials:
		return "bad_credentials"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	default:
		return "system"
	}
}

// Status returns the default HTTP status of the kind.
func (k Kind) Status() int {
	switch k {
	case KindInvalidInput, KindBadCredentials:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain failure.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	status  int
}

// New creates an error of the given kind using the kind's default status.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// NewWithStatus creates an error whose HTTP status differs from its kind's default.
func NewWithStatus(kind Kind, code, message string, status int) *Error {
	return &Error{Kind: kind, Code: code, Message: message, status: status}
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the HTTP status for this error.
func (e *Error) Status() int {
	if e.status != 0 {
		return e.status
	}
	return e.Kind.Status()
}

// WithMessage returns a copy carrying a different message. The copy still
// matches the original with errors.Is.
func (e *Error) WithMessage(message string) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: message, status: e.status}
}

// Is reports whether target is the same error, or the bare class sentinel of
// the same kind (for example ErrForbidden matches ErrSellerNotAllowed).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code == e.Code && t.Kind == e.Kind {
		return true
	}
	return t.Code == t.Kind.String() && t.Kind == e.Kind
}

// KindOf returns the kind of err, or KindSystem when err is not a domain failure.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindSystem
}

// Class sentinels. Their Code equals the kind name, which makes them match
// every error of the same kind.
var (
	ErrInvalidInput    = New(KindInvalidInput, KindInvalidInput.String(), "invalid input")
	ErrNotFound        = New(KindNotFound, KindNotFound.String(), "not found")
	ErrBadCredentials  = New(KindBadCredentials, KindBadCredentials.String(), "Wrong password or username!")
	ErrUnauthenticated = New(KindUnauthenticated, KindUnauthenticated.String(), "You are not authenticated!")
	ErrForbidden       = New(KindForbidden, KindForbidden.String(), "forbidden")
	ErrConflict        = New(KindConflict, KindConflict.String(), "conflict")
)

// Specific failures.
var (
	ErrUserNotFound     = New(KindNotFound, "user_not_found", "User not found!")
	ErrProductNotFound  = New(KindNotFound, "product_not_found", "Add not found!")
	ErrReviewNotFound   = New(KindNotFound, "review_not_found", "Review not found!")
	ErrNoProductReviews = New(KindNotFound, "no_product_reviews", "No reviews found for the product!")

	ErrCredentialsRequired = New(KindInvalidInput, "credentials_required", "Username and password are required.")

	ErrInvalidToken = New(KindForbidden, "invalid_token", "Token is not valid!")
	ErrTokenExpired = New(KindForbidden, "token_expired", "Token has expired!")

	ErrSellerOnly       = New(KindForbidden, "seller_only", "Only sellers can create an add!")
	ErrNotOwner         = New(KindForbidden, "not_owner", "You can modify only your own add!")
	ErrSellerNotAllowed = New(KindForbidden, "seller_not_allowed", "Sellers can't create a review!")
	ErrBuyerOnly        = New(KindForbidden, "buyer_only", "Sellers can't place an order!")

	ErrUsernameTaken   = New(KindConflict, "username_taken", "Username is already taken!")
	ErrDuplicateReview = NewWithStatus(KindConflict, "duplicate_review",
		"You have already created a review for this add!", http.StatusForbidden)
)
