package utils

import (
	"crypto/rand"
	"strings"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	Capitalize(s string) string
	DisplayName(stored string) string
	StorageName(display string) string
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// Capitalize uppercases the first rune and lowercases the rest, matching the
// casing rule product candidates are stored with.
func (u *utils) Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// DisplayName converts a stored product name to its display form.
// Catalog rows store names with underscores in place of spaces.
func (u *utils) DisplayName(stored string) string {
	return strings.ReplaceAll(stored, "_", " ")
}

// StorageName is the inverse: spaces become underscores for lookups.
func (u *utils) StorageName(display string) string {
	return strings.ReplaceAll(display, " ", "_")
}
