package service

import "errors"

// ErrBadField marks a malformed guest-supplied field value. Handlers map it to
// a 400 response.
var ErrBadField = errors.New("bad field")
