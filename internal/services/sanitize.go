package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicy  = bluemonday.UGCPolicy()
	plainTextPolicy = bluemonday.StrictPolicy()
)

// sanitizeRich keeps safe formatting markup in long free text.
func sanitizeRich(s string) string {
	return strings.TrimSpace(richTextPolicy.Sanitize(s))
}

// sanitizePlain strips every tag.
func sanitizePlain(s string) string {
	return strings.TrimSpace(plainTextPolicy.Sanitize(s))
}

func sanitizeOptional(s *string, rich bool) *string {
	if s == nil {
		return nil
	}
	var out string
	if rich {
		out = sanitizeRich(*s)
	} else {
		out = sanitizePlain(*s)
	}
	return &out
}
