package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds demo application configuration.
type Config struct {
	Gallery GalleryConfig
	UI      UIConfig
	LogFile string `mapstructure:"log_file"`
}

// GalleryConfig holds the widget settings exposed to the demo user.
type GalleryConfig struct {
	Slides            []string
	TransitionSpeedMs int    `mapstructure:"transition_speed_ms"`
	AdvanceSpeedMs    int    `mapstructure:"advance_speed_ms"`
	SwipeOffset       int    `mapstructure:"swipe_offset"`
	EnableDrag        bool   `mapstructure:"enable_drag"`
	InitialSlide      int    `mapstructure:"initial_slide"`
	WrapStrategy      string `mapstructure:"wrap_strategy"` // "transition-end" or "advance"
}

// UIConfig holds presentation settings.
type UIConfig struct {
	SlideWidth  int `mapstructure:"slide_width"`
	SlideHeight int `mapstructure:"slide_height"`
}

// TransitionSpeed returns the configured speed as a duration.
func (g GalleryConfig) TransitionSpeed() time.Duration {
	return time.Duration(g.TransitionSpeedMs) * time.Millisecond
}

// AdvanceSpeed returns the Next/Previous override speed as a duration.
func (g GalleryConfig) AdvanceSpeed() time.Duration {
	return time.Duration(g.AdvanceSpeedMs) * time.Millisecond
}

// Load reads configuration from file and env. Env var overrides use prefix GALLERY_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("gallery.slides", []string{
		"Weekender Bag", "Slim Wallet", "Tech Kit", "Passport Holder", "Tote",
	})
	v.SetDefault("gallery.transition_speed_ms", 300)
	v.SetDefault("gallery.advance_speed_ms", 0)
	v.SetDefault("gallery.swipe_offset", 4)
	v.SetDefault("gallery.enable_drag", true)
	v.SetDefault("gallery.initial_slide", 0)
	v.SetDefault("gallery.wrap_strategy", "transition-end")
	v.SetDefault("ui.slide_width", 36)
	v.SetDefault("ui.slide_height", 9)
	v.SetDefault("log_file", filepath.Join(os.TempDir(), "gallery-demo.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GALLERY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gallery-demo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GALLERY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Gallery.Slides) == 0 {
		return Config{}, fmt.Errorf("config: gallery.slides must not be empty")
	}
	if c.Gallery.InitialSlide < 0 || c.Gallery.InitialSlide >= len(c.Gallery.Slides) {
		return Config{}, fmt.Errorf("config: gallery.initial_slide %d out of range [0, %d)",
			c.Gallery.InitialSlide, len(c.Gallery.Slides))
	}
	switch c.Gallery.WrapStrategy {
	case "transition-end", "advance":
	default:
		return Config{}, fmt.Errorf("config: unknown gallery.wrap_strategy %q", c.Gallery.WrapStrategy)
	}
	return c, nil
}
