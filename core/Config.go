package core

import (
	"errors"
	"fmt"
	"runtime"

	"pong/logger"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

const DefaultConfigName = "pong"

var ErrInvalidValue = errors.New("invalid value")

// ConfigError names the configuration field that could not be used.
type ConfigError struct {
	Field string
	Value interface{}
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

type Config struct {
	Bindings     Bindings
	FontPath     string
	FontSize     float64
	PaddleSprite string
	Frontend     string
	Log          logger.Settings

	// Source is the file the values were read from, empty when only
	// defaults apply.
	Source string
}

func defaultFontPath() string {
	switch runtime.GOOS {
	case "darwin":
		return "/System/Library/Fonts/Supplemental/Arial.ttf"
	case "windows":
		return `C:\Windows\Fonts\arial.ttf`
	default:
		return "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	}
}

func setDefaults(v *viper.Viper) {
	logDefaults := logger.DefaultSettings()

	v.SetDefault("key.up", DefaultBindings().Up.String())
	v.SetDefault("key.down", DefaultBindings().Down.String())
	v.SetDefault("font.path", defaultFontPath())
	v.SetDefault("font.size", 24)
	v.SetDefault("asset.paddle", "assets/red_rectangle.png")
	v.SetDefault("render.frontend", FrontendWindow)
	v.SetDefault("log.filename", logDefaults.Filename)
	v.SetDefault("log.max_size", logDefaults.MaxSize)
	v.SetDefault("log.max_backups", logDefaults.MaxBackups)
	v.SetDefault("log.max_age", logDefaults.MaxAge)
	v.SetDefault("log.compress", logDefaults.Compress)
	v.SetDefault("log.level", logDefaults.Level)
}

// LoadConfig reads the TOML configuration. An explicit file must exist;
// without one, a file named pong.toml is looked up in searchPaths (the
// working directory by default) and defaults are used when none is found.
// A "frontend" flag in flags overrides render.frontend.
func LoadConfig(file string, flags *pflag.FlagSet, searchPaths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if flags != nil {
		if f := flags.Lookup("frontend"); f != nil {
			if err := v.BindPFlag("render.frontend", f); err != nil {
				return nil, fmt.Errorf("bind frontend flag: %w", err)
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(DefaultConfigName)
		if len(searchPaths) == 0 {
			searchPaths = []string{"./"}
		}
		for _, p := range searchPaths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := decodeConfig(v)
	if err != nil {
		return nil, err
	}
	cfg.Source = v.ConfigFileUsed()
	return cfg, nil
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	up, err := readKey(v, "key.up")
	if err != nil {
		return nil, err
	}
	down, err := readKey(v, "key.down")
	if err != nil {
		return nil, err
	}

	fontSize, err := cast.ToFloat64E(v.Get("font.size"))
	if err != nil {
		return nil, &ConfigError{Field: "font.size", Value: v.Get("font.size"), Err: err}
	}
	if fontSize <= 0 {
		return nil, &ConfigError{Field: "font.size", Value: fontSize, Err: ErrInvalidValue}
	}

	frontend := cast.ToString(v.Get("render.frontend"))
	if frontend != FrontendWindow && frontend != FrontendTerminal {
		return nil, &ConfigError{Field: "render.frontend", Value: frontend, Err: ErrInvalidValue}
	}

	logSettings, err := readLogSettings(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		Bindings:     Bindings{Up: up, Down: down},
		FontPath:     cast.ToString(v.Get("font.path")),
		FontSize:     fontSize,
		PaddleSprite: cast.ToString(v.Get("asset.paddle")),
		Frontend:     frontend,
		Log:          logSettings,
	}, nil
}

func readKey(v *viper.Viper, field string) (Key, error) {
	name, err := cast.ToStringE(v.Get(field))
	if err != nil {
		return KeyUnknown, &ConfigError{Field: field, Value: v.Get(field), Err: err}
	}
	k, err := ParseKey(name)
	if err != nil {
		return KeyUnknown, &ConfigError{Field: field, Value: name, Err: ErrUnknownKey}
	}
	return k, nil
}

func readLogSettings(v *viper.Viper) (logger.Settings, error) {
	s := logger.DefaultSettings()
	s.Filename = cast.ToString(v.Get("log.filename"))
	s.Level = cast.ToString(v.Get("log.level"))

	ints := []struct {
		field string
		dst   *int
	}{
		{"log.max_size", &s.MaxSize},
		{"log.max_backups", &s.MaxBackups},
		{"log.max_age", &s.MaxAge},
	}
	for _, i := range ints {
		n, err := cast.ToIntE(v.Get(i.field))
		if err != nil {
			return s, &ConfigError{Field: i.field, Value: v.Get(i.field), Err: err}
		}
		*i.dst = n
	}

	compress, err := cast.ToBoolE(v.Get("log.compress"))
	if err != nil {
		return s, &ConfigError{Field: "log.compress", Value: v.Get("log.compress"), Err: err}
	}
	s.Compress = compress
	return s, nil
}
