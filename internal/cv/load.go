package cv

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/statick88/statick88.github.io/internal/schemas"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates a CV document from disk. The document is checked
// against the embedded JSON Schema first, then decoded and struct-validated
// (email/url formats, ISO dates). Any failure here is fatal for the run.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV document %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates and decodes raw CV document bytes.
func Parse(data []byte) (*Record, error) {
	if err := schemas.ValidateCV(data); err != nil {
		return nil, fmt.Errorf("CV document rejected by schema: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode CV document: %w", err)
	}

	if err := validate.Struct(&rec); err != nil {
		return nil, fmt.Errorf("CV document failed field validation: %w", err)
	}

	return &rec, nil
}
