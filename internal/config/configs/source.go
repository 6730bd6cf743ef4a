package configs

import (
	"fmt"
	"strings"
)

// Supported campaign sources.
const (
	SourceMemory   = "memory"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Source selects where campaigns are read from. "memory" serves the
// embedded sample dataset, "file" reads the YAML dataset at File and
// "postgres" reads the campaigns table.
type Source struct {
	Kind string `env:"KIND" envDefault:"memory"`
	File string `env:"FILE"`
}

// Validate checks that Kind is known and that a file source names a file.
func (c Source) Validate() error {
	switch strings.ToLower(c.Kind) {
	case SourceMemory, SourcePostgres:
		return nil
	case SourceFile:
		if c.File == "" {
			return fmt.Errorf("source kind %q requires SOURCE_FILE", c.Kind)
		}
		return nil
	default:
		return fmt.Errorf("unknown source kind %q", c.Kind)
	}
}
