package domain

import "errors"

// ErrValidation is returned when the request body lacks a required top-level field.
// Handlers map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrRender is wrapped by every failure raised while laying out or finalizing a PDF.
// Handlers map this to HTTP 500 and pass the message through.
var ErrRender = errors.New("render error")

// ErrNotFound is returned for routes the API does not serve.
// Handlers map this to HTTP 404 with the error text as the message.
var ErrNotFound = errors.New("API endpoint not found")
