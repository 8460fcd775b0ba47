package output

import (
	"context"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() Formatter {
	return &yamlFormatter{}
}

func (f *yamlFormatter) Format(ctx context.Context, records []Record, w io.Writer) error {
	if records == nil {
		records = []Record{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return err
	}
	return encoder.Close()
}

func (f *yamlFormatter) Name() string {
	return "yaml"
}

func (f *yamlFormatter) Description() string {
	return "YAML format for configuration and fixtures"
}
