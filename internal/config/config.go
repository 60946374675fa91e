// Package config loads build options and the site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/Bitlatte/splash/internal/model"
)

// Config holds the build options.
type Config struct {
	OutputDir  string   `mapstructure:"outputDir"`
	ContentDir string   `mapstructure:"contentDir"`
	StaticDir  string   `mapstructure:"staticDir"`
	SiteConfig string   `mapstructure:"siteConfig"`
	Languages  []string `mapstructure:"languages"`
}

// Load reads build options from cfgFile, or ./config.yaml when cfgFile is
// empty. A missing default file is not an error; defaults and SPLASH_*
// environment variables apply instead.
func Load(cfgFile string, logger *zap.Logger) (Config, error) {
	v := viper.New()

	v.SetDefault("outputDir", "public")
	v.SetDefault("contentDir", "content")
	v.SetDefault("staticDir", "static")
	v.SetDefault("siteConfig", "siteConfig.yaml")
	v.SetDefault("languages", []string{})

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SPLASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		logger.Info("no config file found, using defaults and environment")
	} else {
		logger.Info("using config file", zap.String("path", v.ConfigFileUsed()))
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return cfg, nil
}

// Validate checks the options that would otherwise fail halfway through a
// build.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("outputDir must not be empty")
	}
	// The output directory is wiped on every build.
	out := filepath.Clean(c.OutputDir)
	if out == "." || out == string(filepath.Separator) {
		return fmt.Errorf("refusing to use '%s' as outputDir", c.OutputDir)
	}
	for _, dir := range []string{c.ContentDir, c.StaticDir} {
		if dir != "" && (Within(dir, out) || Within(out, dir)) {
			return fmt.Errorf("outputDir '%s' must not overlap the source directory '%s'", c.OutputDir, dir)
		}
	}
	if c.SiteConfig != "" && Within(c.SiteConfig, out) {
		return fmt.Errorf("site config '%s' must not be inside outputDir '%s'", c.SiteConfig, c.OutputDir)
	}
	seen := make(map[string]bool, len(c.Languages))
	for _, lang := range c.Languages {
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("invalid language %q: %w", lang, err)
		}
		if seen[lang] {
			return fmt.Errorf("language %q listed twice", lang)
		}
		seen[lang] = true
	}
	return nil
}

// Within reports whether path is dir or lies below it. Relative paths are
// resolved against the working directory first.
func Within(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// LoadSite reads the site configuration file.
func LoadSite(filename string) (*model.SiteConfig, error) {
	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading site config %s: %w", filename, err)
	}

	var site model.SiteConfig
	if err := yaml.Unmarshal(yamlFile, &site); err != nil {
		return nil, fmt.Errorf("error unmarshalling site config %s: %w", filename, err)
	}
	return &site, nil
}
