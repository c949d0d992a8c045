package service

import (
	"unicode"

	"github.com/salon-next/internal/config"
)

// weakPasswordError 携带 i18n key 与参数，handler 据此渲染提示
type weakPasswordError struct {
	key  string
	args []interface{}
}

func (e *weakPasswordError) Error() string       { return e.key }
func (e *weakPasswordError) Unwrap() error       { return ErrWeakPassword }
func (e *weakPasswordError) Key() string         { return e.key }
func (e *weakPasswordError) Args() []interface{} { return e.args }

type charRule struct {
	enabled bool
	match   func(rune) bool
	key     string
}

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if n := len([]rune(password)); policy.MinLength > 0 && n < policy.MinLength {
		return &weakPasswordError{key: "error.password_min_length", args: []interface{}{policy.MinLength}}
	}
	rules := []charRule{
		{policy.RequireUpper, unicode.IsUpper, "error.password_require_upper"},
		{policy.RequireLower, unicode.IsLower, "error.password_require_lower"},
		{policy.RequireNumber, unicode.IsDigit, "error.password_require_number"},
	}
	for _, rule := range rules {
		if !rule.enabled {
			continue
		}
		found := false
		for _, r := range password {
			if rule.match(r) {
				found = true
				break
			}
		}
		if !found {
			return &weakPasswordError{key: rule.key}
		}
	}
	return nil
}
