package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, err
	}
	loaded.Dir = filepath.Dir(path)
	return loaded, nil
}

func Parse(data []byte) (*LoadedSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Documents) == 0 {
		return nil, fmt.Errorf("suite has no documents")
	}

	for i, d := range s.Documents {
		if d.File == "" {
			return nil, fmt.Errorf("document at index %d has no file", i)
		}
		if d.Expect == "" {
			return nil, fmt.Errorf("document %q has no expected outcome", d.File)
		}
	}

	return &LoadedSuite{Suite: &s}, nil
}

// Resolve returns the path of file relative to the suite directory.
func (ls *LoadedSuite) Resolve(file string) string {
	if filepath.IsAbs(file) || ls.Dir == "" {
		return file
	}
	return filepath.Join(ls.Dir, file)
}
