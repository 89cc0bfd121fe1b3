package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := map[string]string{
		"plain text":                   "plain text",
		"  padded  ":                   "padded",
		"<b>bold</b> move":             "bold move",
		"<script>alert(1)</script>":    "",
		"Smith & Sons":                 "Smith & Sons",
		`<a href="javascript:x">x</a>`: "x",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, SanitizeText(in))
		})
	}
}
