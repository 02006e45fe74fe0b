package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/viper"

	"github.com/goliatone/go-formbuilder/pkg/persist"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

// EnvPrefix namespaces environment overrides, e.g. FORMBUILDER_STORAGE_DIR.
const EnvPrefix = "FORMBUILDER"

// FileName is the config file looked up in the working and home directories
// when no explicit path is given.
const FileName = ".formbuilder.yaml"

const (
	KeyStorageDir     = "storage.dir"
	KeyStorageSlot    = "storage.slot"
	KeyStorageFormat  = "storage.format"
	KeyExportFilename = "export.filename"
	KeyExportTitle    = "export.title"
	KeyExportTheme    = "export.theme"
	KeyExportVariant  = "export.variant"
	KeyServeAddr      = "serve.addr"
)

// Config is the resolved CLI configuration.
type Config struct {
	Storage StorageConfig          `mapstructure:"storage"`
	Export  ExportConfig           `mapstructure:"export"`
	Themes  map[string]ThemeConfig `mapstructure:"themes"`
	Serve   ServeConfig            `mapstructure:"serve"`
}

// StorageConfig locates the persisted field collection.
type StorageConfig struct {
	Dir    string `mapstructure:"dir"`
	Slot   string `mapstructure:"slot"`
	Format string `mapstructure:"format"`
}

// ExportConfig drives the standalone document export.
type ExportConfig struct {
	Filename string `mapstructure:"filename"`
	Title    string `mapstructure:"title"`
	Theme    string `mapstructure:"theme"`
	Variant  string `mapstructure:"variant"`
}

// ThemeConfig declares design tokens for one theme. Variants override a
// subset of the base tokens.
type ThemeConfig struct {
	Tokens   map[string]string            `mapstructure:"tokens"`
	Variants map[string]map[string]string `mapstructure:"variants"`
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyStorageDir, ".formbuilder")
	v.SetDefault(KeyStorageSlot, persist.DefaultSlot)
	v.SetDefault(KeyStorageFormat, string(persist.FormatJSON))
	v.SetDefault(KeyExportFilename, "generated-form.html")
	v.SetDefault(KeyExportTitle, "")
	v.SetDefault(KeyExportTheme, "")
	v.SetDefault(KeyExportVariant, "")
	v.SetDefault(KeyServeAddr, "127.0.0.1:8383")
}

// Load resolves configuration into v from defaults, the config file and the
// environment. An explicit path must exist; the implicit lookup tolerates a
// missing file. Flags should be bound on v before calling Load.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read %s: %w", FileName, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration values that cannot be used.
func (c Config) Validate() error {
	if _, err := persist.ParseFormat(c.Storage.Format); err != nil {
		return fmt.Errorf("config: %s: %w", KeyStorageFormat, err)
	}
	if strings.TrimSpace(c.Storage.Slot) == "" {
		return fmt.Errorf("config: %s must not be empty", KeyStorageSlot)
	}
	if name := strings.TrimSpace(c.Export.Theme); name != "" {
		if _, ok := c.Themes[name]; !ok {
			return fmt.Errorf("config: %s references unknown theme %q", KeyExportTheme, name)
		}
	}
	return nil
}

// Format returns the parsed storage format.
func (c Config) Format() persist.Format {
	format, err := persist.ParseFormat(c.Storage.Format)
	if err != nil {
		return persist.FormatJSON
	}
	return format
}

// Codec builds the persistence codec for the configured format.
func (c Config) Codec() persist.Codec {
	return persist.NewCodec(persist.WithFormat(c.Format()), persist.WithIndent(true))
}

// Store opens the file store backing the configured slot.
func (c Config) Store() (*persist.FileStore, error) {
	return persist.NewFileStore(c.Storage.Dir, persist.WithExtension(c.Format().Extension()))
}

// Theme resolves the configured export theme. It returns nil when no theme is
// selected.
func (c Config) Theme() (*theme.RendererConfig, error) {
	name := strings.TrimSpace(c.Export.Theme)
	if name == "" {
		return nil, nil
	}
	manifests := make([]*theme.Manifest, 0, len(c.Themes))
	for themeName, tc := range c.Themes {
		manifests = append(manifests, vanilla.Manifest(themeName, tc.Tokens, tc.Variants))
	}
	cfg, err := vanilla.ResolveTheme(vanilla.NewThemeSelector(manifests...), name, strings.TrimSpace(c.Export.Variant))
	if err != nil {
		return nil, fmt.Errorf("config: theme %q: %w", name, err)
	}
	return cfg, nil
}
