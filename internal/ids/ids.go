// AngelaMos | 2026
// ids.go

// Package ids generates the opaque "icfc_" identifiers used for every entity.
package ids

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const (
	Prefix = "icfc_"

	DefaultLength          = 16
	DefaultModelLength     = 12
	DefaultTimestampLength = 8
)

// New returns "icfc_" followed by length random hex characters.
func New(length int) string {
	if length <= 0 {
		length = DefaultLength
	}
	return Prefix + randomHex(length)
}

// NewWithModel returns "icfc_<model>_<hex>" with the model name lowercased.
func NewWithModel(model string, length int) string {
	if length <= 0 {
		length = DefaultModelLength
	}
	return Prefix + strings.ToLower(model) + "_" + randomHex(length)
}

// NewWithTimestamp returns "icfc_<epoch millis>_<hex>".
func NewWithTimestamp(length int) string {
	if length <= 0 {
		length = DefaultTimestampLength
	}
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return Prefix + millis + "_" + randomHex(length)
}

// For is shorthand for NewWithModel with the default length.
func For(model string) string {
	return NewWithModel(model, DefaultModelLength)
}

func IsValid(id string) bool {
	return id != "" && strings.HasPrefix(id, Prefix)
}

// ExtractModel returns the second underscore-delimited segment of id.
// Timestamp ids yield their timestamp segment: both id styles share one
// delimiter scheme and the segment is returned as-is.
func ExtractModel(id string) (string, bool) {
	if !IsValid(id) {
		return "", false
	}

	parts := strings.Split(id, "_")
	if len(parts) < 3 {
		return "", false
	}

	return parts[1], true
}

func randomHex(length int) string {
	buf := make([]byte, (length+1)/2)
	//nolint:errcheck // crypto/rand.Read never returns an error on supported platforms
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)[:length]
}
