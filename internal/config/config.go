package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Post sources understood by posts.source.
const (
	SourceStatic = "static"
	SourceSQLite = "sqlite"
)

// Sources lists every valid posts.source value.
var Sources = []string{SourceStatic, SourceSQLite}

// ErrInvalid is returned (wrapped) by Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Posts    PostsConfig    `mapstructure:"posts"`
	LLM      LLMConfig      `mapstructure:"llm"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// PostsConfig selects where the viewer gets its posts.
type PostsConfig struct {
	Source string `mapstructure:"source" validate:"required"`
}

// LLMConfig holds generator settings for `blogview generate`.
type LLMConfig struct {
	Provider  string `mapstructure:"provider"`
	APIKeyEnv string `mapstructure:"api_key_env"`
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	Author    string `mapstructure:"author"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title        string        `mapstructure:"title" validate:"required"`
	LoadDelay    time.Duration `mapstructure:"load_delay" validate:"gte=0"`
	Columns      int           `mapstructure:"columns" validate:"gte=0,lte=6"` // 0 = fit to width
	GlamourStyle string        `mapstructure:"glamour_style"`
}

// LogConfig controls the diagnostics log file. An empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Load reads configuration from file and env. path overrides BLOGVIEW_CONFIG;
// env var overrides use prefix BLOGVIEW_.
func Load(path string) (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	// default values
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "blogview", "blogview.db"))
	v.SetDefault("posts.source", SourceStatic)
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.api_key_env", "GEMINI_API_KEY")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("llm.author", "Blogview Writer")
	v.SetDefault("ui.title", "The Terminal Journal")
	v.SetDefault("ui.load_delay", 500*time.Millisecond)
	v.SetDefault("ui.columns", 0)
	v.SetDefault("ui.glamour_style", "auto")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "blogview", "blogview.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("BLOGVIEW_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "blogview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BLOGVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// a missing file means defaults
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Posts.Source = strings.ToLower(strings.TrimSpace(c.Posts.Source))
	return c, nil
}

// Path resolves the config file location: explicit, then BLOGVIEW_CONFIG,
// then ~/.config/blogview/config.toml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("BLOGVIEW_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "blogview", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
// The API key is stored in plain text; prefer the env var or `generate --save-key`.
func Save(cfg Config, path string) error {
	path = Path(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("posts.source", cfg.Posts.Source)
	v.Set("llm.provider", cfg.LLM.Provider)
	v.Set("llm.api_key_env", cfg.LLM.APIKeyEnv)
	v.Set("llm.api_key", cfg.LLM.APIKey)
	v.Set("llm.model", cfg.LLM.Model)
	v.Set("llm.author", cfg.LLM.Author)
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.load_delay", cfg.UI.LoadDelay.String())
	v.Set("ui.columns", cfg.UI.Columns)
	v.Set("ui.glamour_style", cfg.UI.GlamourStyle)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and that posts.source names a known
// source, suggesting the closest one when it does not.
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for _, s := range Sources {
		if c.Posts.Source == s {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown posts.source %q (did you mean %q?)", ErrInvalid, c.Posts.Source, closest(c.Posts.Source, Sources))
}

func closest(in string, options []string) string {
	best, bestDist := "", -1
	for _, o := range options {
		d := levenshtein.ComputeDistance(in, o)
		if bestDist < 0 || d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}
