package provider

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smmpanel/panel/internal/application/provider/dto"
	"github.com/smmpanel/panel/internal/application/provider/usecases"
)

// ImportFile is the YAML document accepted by `panel provider import`.
type ImportFile struct {
	Providers []ImportEntry `yaml:"providers"`
}

// ImportEntry describes one provider of an import file.
type ImportEntry struct {
	Name       string            `yaml:"name"`
	APIKey     string            `yaml:"api_key"`
	APIURL     string            `yaml:"api_url"`
	HTTPMethod string            `yaml:"http_method"`
	Activate   bool              `yaml:"activate"`
	APIConfig  *dto.APIConfigDTO `yaml:"api_config"`
}

// ParseImportFile decodes an import file. Unknown keys are rejected so typos in
// field names do not silently drop configuration.
func ParseImportFile(r io.Reader) ([]usecases.ImportProviderEntry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file ImportFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("import file is empty")
		}
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}
	if len(file.Providers) == 0 {
		return nil, fmt.Errorf("import file lists no providers")
	}

	entries := make([]usecases.ImportProviderEntry, 0, len(file.Providers))
	for i, p := range file.Providers {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("provider #%d: name is required", i+1)
		}

		cmd := usecases.CreateProviderCommand{
			Name:       p.Name,
			APIKey:     p.APIKey,
			APIURL:     p.APIURL,
			HTTPMethod: p.HTTPMethod,
		}
		if p.APIConfig != nil {
			cmd.APIConfig = p.APIConfig.ToDomain()
		}
		entries = append(entries, usecases.ImportProviderEntry{Create: cmd, Activate: p.Activate})
	}
	return entries, nil
}
