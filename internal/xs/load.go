package xs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadLibrary reads a material library from a YAML file and validates it.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lib := Fast8()
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("xs: parse %s: %w", path, err)
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// SaveLibrary writes a material library to a YAML file.
func SaveLibrary(path string, lib Library) error {
	data, err := yaml.Marshal(lib)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
