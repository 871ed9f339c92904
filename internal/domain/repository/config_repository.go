package repository

import (
	"github.com/diillson/shipping-report/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadEnv() (*types.Config, error)
	Validate(cfg *types.Config) error
}
