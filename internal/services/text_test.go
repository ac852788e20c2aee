package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\n\r ", ""},
		{"already normal", "Hello World", "Hello World"},
		{"page join newline", "Hello\nWorld", "Hello World"},
		{"mixed runs", "  Senior\t\tGo   Engineer\n\n\nBerlin  ", "Senior Go Engineer Berlin"},
		{"non breaking space", "Go\u00A0\u00A0Developer", "Go Developer"},
		{"vertical tab and form feed", "a\v\fb", "a b"},
		{"unicode line separator", "one\u2028two", "one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeTextIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"Hello \n\n World",
		"\tTabs\tand\u00A0nbsp\u3000ideographic ",
		"résumé — naïve café",
	}

	for _, in := range inputs {
		once := NormalizeText(in)
		assert.Equal(t, once, NormalizeText(once), "input %q", in)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "resume.pdf", "resume.pdf"},
		{"spaces", "My Resume 2024.docx", "My_Resume_2024.docx"},
		{"path traversal", "../../etc/passwd", "etc_passwd"},
		{"windows path", `C:\Users\me\cv.pdf`, "C_Users_me_cv.pdf"},
		{"accents folded", "résumé.pdf", "resume.pdf"},
		{"unsafe characters", "cv<script>.pdf", "cvscript.pdf"},
		{"leading dots", "...hidden.pdf", "hidden.pdf"},
		{"reserved device name", "con.pdf", "_con.pdf"},
		{"nothing left", "../", ""},
		{"non latin only", "简历.pdf", "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}
