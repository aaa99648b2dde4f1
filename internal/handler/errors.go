package handler

import "errors"

var (
	errNotAuthorized   = errors.New("producer is not authorized")
	errTooManyRequests = errors.New("too many requests")
)
