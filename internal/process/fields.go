package process

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cutdata/internal/cutting"
)

// textFields are the input fields that hold strings; every other field is
// numeric.
var textFields = map[string]bool{
	"material":      true,
	"tool_material": true,
	"mode":          true,
	"geometry":      true,
	"length_class":  true,
}

// ignoredFields are row bookkeeping columns that are not inputs.
var ignoredFields = map[string]bool{
	"process": true,
	"id":      true,
	"note":    true,
}

// ParseFields builds the input for k from flat name/value pairs, as found in
// a spreadsheet row or on a command line. Names are the JSON field names of
// the input type. Empty values are treated as unset.
func ParseFields(k Kind, fields map[string]string) (Input, error) {
	in, err := NewInput(k)
	if err != nil {
		return nil, err
	}

	doc := make(map[string]any, len(fields))
	for name, raw := range fields {
		name = strings.ToLower(strings.TrimSpace(name))
		raw = strings.TrimSpace(raw)
		if name == "" || raw == "" || ignoredFields[name] {
			continue
		}
		if textFields[name] {
			doc[name] = raw
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			return nil, &cutting.InputError{Field: name, Reason: fmt.Sprintf("%q is not a number", raw)}
		}
		doc[name] = v
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding fields: %w", err)
	}
	if err := json.Unmarshal(data, in); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &cutting.InputError{Field: typeErr.Field, Reason: "has the wrong type"}
		}
		return nil, fmt.Errorf("%w: %v", cutting.ErrInvalidInput, err)
	}
	return in, nil
}

// ErrorField names the input field err rejects, or "" when err does not point
// at one field.
func ErrorField(err error) string {
	var inErr *cutting.InputError
	switch {
	case errors.As(err, &inErr):
		return inErr.Field
	case errors.Is(err, cutting.ErrUnknownMaterial):
		return "material"
	default:
		return ""
	}
}
