package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aura-nw/smart-account-sample/log"
	"gopkg.in/yaml.v2"
)

// WriteYamlWithComments renders value with MarshalYamlWithComments and writes it to a new file.
func WriteYamlWithComments(value interface{}, header string, filename string, logger *log.Logger) error {
	fileData, err := MarshalYamlWithComments(value, header)
	if err != nil {
		return err
	}

	return SafeWrite(filename, fileData, logger)
}

// MarshalYamlWithComments renders a flat struct as YAML in field order. A field's `comment` tag is
// written above it, and header (which may span lines) goes at the top.
func MarshalYamlWithComments(value interface{}, header string) ([]byte, error) {
	v := reflect.Indirect(reflect.ValueOf(value))
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected a struct, got %s", v.Kind())
	}

	var result strings.Builder
	if header != "" {
		for _, line := range strings.Split(header, "\n") {
			result.WriteString("# " + line + "\n")
		}
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		key := strings.Split(field.Tag.Get("yaml"), ",")[0]
		if key == "-" {
			continue
		}
		if key == "" {
			key = strings.ToLower(field.Name)
		}

		encoded, err := yaml.Marshal(yaml.MapSlice{{Key: key, Value: v.Field(i).Interface()}})
		if err != nil {
			return nil, err
		}

		if comment := field.Tag.Get("comment"); comment != "" {
			if result.Len() > 0 {
				result.WriteString("\n")
			}
			result.WriteString("# " + comment + "\n")
		}
		result.Write(encoded)
	}

	return []byte(result.String()), nil
}
