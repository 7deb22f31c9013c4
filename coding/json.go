package coding

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes v without HTML escaping and without a trailing newline, matching the
// byte layout contracts expect.
func MarshalJSON(v any) ([]byte, error) {
	var buffer bytes.Buffer

	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}
