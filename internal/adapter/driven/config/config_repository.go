package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/shipping-report/internal/domain/repository"
	"github.com/diillson/shipping-report/internal/shared/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixa todas as variáveis de ambiente lidas pela aplicação.
const EnvPrefix = "SHIPPING_REPORT"

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	dotEnvPath string
	validate   *validator.Validate
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
// dotEnvPath aponta para um arquivo .env opcional.
func NewConfigRepository(dotEnvPath string) repository.ConfigRepository {
	return &ConfigRepositoryImpl{
		dotEnvPath: dotEnvPath,
		validate:   validator.New(),
	}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: config file %s", types.ErrUnsupportedFormat, fileExtension)
	}

	return &config, nil
}

// LoadEnv lê as variáveis SHIPPING_REPORT_*. Um arquivo .env, se existir, é
// carregado antes sem sobrescrever variáveis já definidas.
func (r *ConfigRepositoryImpl) LoadEnv() (*types.Config, error) {
	if r.dotEnvPath != "" {
		if err := godotenv.Load(r.dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", r.dotEnvPath, err)
		}
	}

	var config types.Config
	if err := envconfig.Process(EnvPrefix, &config); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	return &config, nil
}

// Validate checks a merged configuration before any file is opened.
func (r *ConfigRepositoryImpl) Validate(cfg *types.Config) error {
	if len(cfg.Departures) == 0 {
		return types.ErrNoDepartureSources
	}
	if err := r.validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "len":
		if fe.Field() == "Delimiter" {
			return types.ErrInvalidDelimiter.Error()
		}
	case "oneof":
		return fmt.Sprintf("%s: %q is not one of %s", fe.Namespace(), fe.Value(), fe.Param())
	case "required":
		return fmt.Sprintf("%s must not be empty", fe.Namespace())
	}
	return fmt.Sprintf("%s failed %q validation", fe.Namespace(), fe.Tag())
}
