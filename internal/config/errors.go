package config

import "errors"

// ErrInvalidSetting is returned when a setting has a value outside its domain.
var ErrInvalidSetting = errors.New("invalid setting")
