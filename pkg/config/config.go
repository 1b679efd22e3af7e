package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/codec/pkg/errors"
	"github.com/arthur-debert/codec/pkg/logging"
	"github.com/arthur-debert/codec/pkg/paths"
)

// Environment variables read by Load
const (
	// EnvPrefix prefixes every configuration environment variable
	EnvPrefix = "CODEC_"

	// EnvConfigFile names an explicit configuration file
	EnvConfigFile = "CODEC_CONFIG"

	// EnvVariablePrefix prefixes variables: CODEC_VAR_AUTHOR sets "author"
	EnvVariablePrefix = "CODEC_VAR_"
)

// Config is codec's resolved configuration.
type Config struct {
	// TemplatesPath is the directory holding templates, already expanded.
	TemplatesPath string `koanf:"templates_path"`

	// Variables are bound in every template before command line values.
	Variables map[string]string `koanf:"variables"`

	// Sources lists the configuration files that were loaded, in order.
	Sources []string `koanf:"-"`
}

// Options controls where Load looks for configuration.
type Options struct {
	// SearchDirs are searched for .codecrc.toml in order. Missing files are
	// skipped.
	SearchDirs []string

	// File is an explicit configuration file loaded after the search
	// directories. It must exist. When empty, CODEC_CONFIG is used.
	File string

	// Overrides are dotted keys applied after the environment, such as
	// "templates_path" from --templates.
	Overrides map[string]interface{}
}

// TemplatePath returns the path of the named template.
func (c *Config) TemplatePath(name string) string {
	return filepath.Join(c.TemplatesPath, name)
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	var sources, searched []string
	for _, dir := range opts.SearchDirs {
		path := filepath.Join(dir, paths.ConfigFileName)
		searched = append(searched, path)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
		sources = append(sources, path)
	}

	explicit := opts.File
	if explicit == "" {
		explicit = os.Getenv(EnvConfigFile)
	}
	if explicit != "" {
		path := paths.ExpandHome(explicit)
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigNotFound, "config file %s not found", path).
				WithDetail(errors.DetailPath, path)
		}
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Msg("Loaded explicit config file")
		sources = append(sources, path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load environment variables")
	}
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to apply overrides")
		}
	}

	if len(sources) == 0 && !k.Exists("templates_path") {
		return nil, errors.Newf(errors.ErrConfigNotFound, "%s not found in: %s",
			paths.ConfigFileName, strings.Join(searched, ", ")).
			WithDetail("searched", searched)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to decode configuration")
	}
	cfg.Sources = sources

	if strings.TrimSpace(cfg.TemplatesPath) == "" {
		return nil, errors.New(errors.ErrConfigInvalid, "missing field templates_path").
			WithDetail("sources", sources)
	}

	expanded, err := paths.Expand(cfg.TemplatesPath)
	if err != nil {
		return nil, err
	}
	cfg.TemplatesPath = expanded
	if cfg.Variables == nil {
		cfg.Variables = map[string]string{}
	}

	log.Info().
		Str("templates_path", cfg.TemplatesPath).
		Int("variables", len(cfg.Variables)).
		Strs("sources", sources).
		Msg("Configuration loaded")
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return nil
}

// envKey maps CODEC_TEMPLATES_PATH and CODEC_VAR_<NAME> to config keys and
// drops every other CODEC_ variable.
func envKey(s string) string {
	switch {
	case strings.HasPrefix(s, EnvVariablePrefix):
		name := strings.ToLower(strings.TrimPrefix(s, EnvVariablePrefix))
		if name == "" {
			return ""
		}
		return "variables." + name
	case s == EnvPrefix+"TEMPLATES_PATH":
		return "templates_path"
	}
	return ""
}
