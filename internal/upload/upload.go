// Package upload handles transient storage of uploaded files. Each upload
// gets an isolated temp path and is removed when the request finishes.
package upload

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// Sanitize strips directory components and unsafe characters from a
// client-supplied filename so it is safe to use on the local filesystem.
func Sanitize(filename string) string {
	// Browsers on Windows may send backslash-separated paths.
	filename = strings.ReplaceAll(filename, `\`, "/")
	filename = path.Base(filename)
	filename = unsafeChars.ReplaceAllString(filename, "_")
	filename = strings.Trim(filename, "._")
	if filename == "" {
		return "upload"
	}
	return filename
}

// SaveTemp writes r to an isolated temporary file named after the sanitized
// filename. The returned cleanup removes the file and must be called once the
// content has been extracted.
func SaveTemp(r io.Reader, filename string) (string, func(), error) {
	name := uuid.NewString() + "_" + Sanitize(filename)
	dst := filepath.Join(os.TempDir(), name)

	f, err := os.Create(dst)
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", nil, fmt.Errorf("close temp file: %w", err)
	}
	cleanup := func() { _ = os.Remove(dst) }
	return dst, cleanup, nil
}
