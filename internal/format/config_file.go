package format

import (
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// rawDescriptor is the on-disk schema for one user-defined format. Patterns
// are regular expression sources compiled at load time.
type rawDescriptor struct {
	ChunkBegin string `yaml:"chunkBegin"`
	ChunkEnd   string `yaml:"chunkEnd"`
	InlineCode string `yaml:"inlineCode"`
}

type rawTable struct {
	Formats map[string]rawDescriptor `yaml:"formats"`
}

// Load reads user-defined format descriptors from a YAML file and merges
// them over the builtin table, overriding builtin entries of the same name.
// An unparseable file or an invalid pattern is a configuration error.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("format config: %w", err)
	}
	var raw rawTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("format config %s: %w", path, err)
	}
	extra := make(map[string]Descriptor, len(raw.Formats))
	for name, rd := range raw.Formats {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return nil, fmt.Errorf("format config %s: empty format name", path)
		}
		d, err := compile(name, rd)
		if err != nil {
			return nil, fmt.Errorf("format config %s: %w", path, err)
		}
		extra[name] = d
	}
	return Builtin().merge(extra), nil
}
