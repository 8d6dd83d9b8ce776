package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	RequestIDLength   = 21
	requestIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// NewRequestID is an alphanumeric id, safe to copy from logs and headers.
func NewRequestID() (string, error) {
	return gonanoid.Generate(requestIDAlphabet, RequestIDLength)
}
