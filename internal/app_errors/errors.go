package app_errors

import "errors"

var ErrModuleNotFound = errors.New("module not found")
var ErrLessonNotFound = errors.New("lesson not found")
var ErrUnknownTier = errors.New("unknown tier")
var ErrCheckoutLinkMissing = errors.New("payment link is not configured for tier")
