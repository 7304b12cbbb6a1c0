// Package drafts keeps in-progress submission forms per browsing session.
//
// An Autosaver coalesces rapid edits into one debounced write, serializes writes
// to the underlying Persistence, and never lets a persistence failure reach the
// caller: editing continues in memory and LastSaved simply stops advancing.
package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
)

// ErrNotFound is returned by a Persistence when no draft exists for a key.
var ErrNotFound = errors.New("draft not found")

// Draft is a snapshot of a multi-step form. FormData holds JSON-typed values:
// numbers are float64, lists are []any and objects are map[string]any.
type Draft struct {
	FormData      map[string]any        `json:"formData"`
	UploadedFiles []models.UploadedFile `json:"uploadedFiles"`
	CurrentStep   int                   `json:"currentStep"`
	SavedAt       time.Time             `json:"savedAt"`
}

// Persistence stores one JSON draft per opaque session key.
type Persistence interface {
	Load(ctx context.Context, key string) (Draft, error)
	Save(ctx context.Context, key string, d Draft) error
	Delete(ctx context.Context, key string) error
}

// Encode serializes a draft for blob storage.
func Encode(d Draft) ([]byte, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}
	return b, nil
}

// Decode parses a draft written by Encode.
func Decode(b []byte) (Draft, error) {
	var d Draft
	if err := json.Unmarshal(b, &d); err != nil {
		return Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	return d, nil
}

// NormalizeFormData returns a deep copy of formData with every value converted
// to the type it has after a JSON round trip.
func NormalizeFormData(formData map[string]any) (map[string]any, error) {
	if formData == nil {
		return nil, nil
	}
	b, err := json.Marshal(formData)
	if err != nil {
		return nil, fmt.Errorf("normalize form data: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("normalize form data: %w", err)
	}
	return out, nil
}

// DefaultStartedFields are the form fields that mark a draft worth persisting.
var DefaultStartedFields = []string{"title", "description", "contact_name", "contact_email"}

func hasStarted(formData map[string]any, fields []string) bool {
	for _, f := range fields {
		if !isEmptyValue(formData[f]) {
			return true
		}
	}
	return false
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case bool:
		return !val
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}
