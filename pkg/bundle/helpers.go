package bundle

import (
	"github.com/mitchellh/mapstructure"
)

// decodeMap decodes a JSON-derived map into a tagged struct. Weak
// typing tolerates the float64 numbers JSON unmarshaling produces.
func decodeMap(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// getStringValue reads a string field from a metadata map, returning ""
// for missing keys and non-string values.
func getStringValue(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
