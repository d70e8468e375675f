package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every application environment variable
const EnvPrefix = "TONETINT_"

// envAliases maps well-known credential variables onto config paths.
// TONETINT_ prefixed variables win over them.
var envAliases = map[string]string{
	"HF_TOKEN":            "classifier.huggingface_token",
	"HUGGINGFACE_API_KEY": "classifier.huggingface_token",
	"OPENAI_API_KEY":      "classifier.openai_key",
}

// sections lists the top-level keys so env names can be split unambiguously
var sections = []string{"classifier", "render", "output", "web", "log"}

// Loader builds a Config from defaults, a .env file and the environment
type Loader struct {
	// Environ returns KEY=VALUE pairs, os.Environ when nil
	Environ func() []string
	// DotEnv files loaded into the process environment before reading it.
	// Missing files are skipped.
	DotEnv []string

	validate *validator.Validate
}

// NewLoader creates a loader reading .env and the process environment
func NewLoader() *Loader {
	return &Loader{DotEnv: []string{".env"}}
}

// Load returns the validated configuration
func (l *Loader) Load() (*Config, error) {
	if err := loadDotEnv(l.DotEnv); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}

	// Aliases first so prefixed variables override them
	if err := k.Load(env.Provider(".", env.Opt{
		EnvironFunc:   environ,
		TransformFunc: transformAlias,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		EnvironFunc:   environ,
		TransformFunc: transformEnvKey,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := l.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks struct constraints of cfg
func (l *Loader) Validate(cfg *Config) error {
	if l.validate == nil {
		l.validate = validator.New()
	}
	return l.validate.Struct(cfg)
}

func loadDotEnv(files []string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

func transformAlias(key, value string) (string, any) {
	if path, ok := envAliases[key]; ok {
		return path, value
	}
	return "", nil
}

// transformEnvKey converts TONETINT_RENDER_CHUNK_SIZE to render.chunk_size.
// Unknown sections are dropped.
func transformEnvKey(key, value string) (string, any) {
	s := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(s, section+"_"); ok && rest != "" {
			return section + "." + rest, value
		}
	}
	return "", nil
}
