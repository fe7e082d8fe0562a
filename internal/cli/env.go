package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the defaults of the render flags
// read from environment variables.
// A zero Limit leaves the page size to the column configuration.
type Env struct {
	Format   string `env:"DATAGRID_FORMAT"   envDefault:"term"`
	Limit    int    `env:"DATAGRID_LIMIT"`
	Dark     bool   `env:"DATAGRID_DARK"`
	Encoding string `env:"DATAGRID_ENCODING"`
}

// LoadEnv parses the environment variables of Env.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{Format: "term"}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
