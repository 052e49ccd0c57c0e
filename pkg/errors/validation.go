package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// maxPathLength bounds file arguments accepted by the CLI.
const maxPathLength = 4096

// ValidatePath validates a file path argument before it is opened or created.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not name a directory (no trailing separator)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory: %q", path)
	}

	return nil
}

// ValidateFormat checks that format is one of valid (case-sensitive).
func ValidateFormat(format string, valid []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(valid, format) {
		return New(ErrCodeInvalidFormat, "unknown format %q (valid: %s)", format, strings.Join(valid, ", "))
	}
	return nil
}
