package services

import "errors"

// ErrInvalidSettings marks a settings blob that does not match the variant
// for its campaign type. Handlers translate it into a 400.
var ErrInvalidSettings = errors.New("invalid campaign settings")
