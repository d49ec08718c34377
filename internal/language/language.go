// Package language defines the display languages and the localized UI strings.
package language

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLanguage is returned when a language tag is not supported.
var ErrUnknownLanguage = errors.New("unknown language")

// Language is a display language of the application.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// All lists the supported languages in display order.
var All = []Language{English, Arabic}

// Parse parses a language tag such as "en" or "AR".
func Parse(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return English, nil
	case "ar", "arabic":
		return Arabic, nil
	default:
		return "", fmt.Errorf("%w: %q (expected en or ar)", ErrUnknownLanguage, s)
	}
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Direction returns the HTML text direction.
func (l Language) Direction() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// SwitchLabel is the label of the control that switches away from l.
func (l Language) SwitchLabel() string {
	if l == Arabic {
		return "EN"
	}
	return "عربي"
}

func (l Language) String() string {
	return string(l)
}
