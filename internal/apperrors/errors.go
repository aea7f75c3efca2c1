package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists,
// e.g. registering with an email that is already taken.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated user may not access the resource.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates that the stored refresh token has expired.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrUpstreamUnavailable indicates that the external extraction service could not be
// reached or did not answer in time.
var ErrUpstreamUnavailable = errors.New("extraction service unavailable")

// ErrMalformedResponse indicates that the extraction service answered with something
// that could not be parsed as the requested JSON shape. Callers wrap this error with
// a snippet of the raw response for diagnostics.
var ErrMalformedResponse = errors.New("malformed extraction response")
