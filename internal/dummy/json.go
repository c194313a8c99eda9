package dummy

import (
	"encoding/json"
	"fmt"
)

// jsonIndent is the per-level indentation of encoded documents.
const jsonIndent = "  "

// ToJSON encodes a generated document as indented JSON, keeping node keys in
// insertion order.
func ToJSON(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return out, nil
}
