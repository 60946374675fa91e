// Package build generates the site into the output directory.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Bitlatte/splash/internal/config"
	"github.com/Bitlatte/splash/internal/content"
	"github.com/Bitlatte/splash/internal/model"
	"github.com/Bitlatte/splash/internal/page"
)

// Builder renders the landing page and users page for every language.
type Builder struct {
	cfg      config.Config
	logger   *zap.Logger
	renderer *page.Renderer
}

// New validates cfg and prepares the page templates.
func New(cfg config.Config, logger *zap.Logger) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	renderer, err := page.NewRenderer(page.NewMarkdown())
	if err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg, logger: logger, renderer: renderer}, nil
}

// Build reads the site configuration and content and writes the site from
// scratch. The output directory is removed first.
func (b *Builder) Build(ctx context.Context) error {
	b.logger.Info("starting build",
		zap.String("outputDir", b.cfg.OutputDir),
		zap.String("siteConfig", b.cfg.SiteConfig),
		zap.Strings("languages", b.cfg.Languages))

	site, err := config.LoadSite(b.cfg.SiteConfig)
	if err != nil {
		return err
	}

	sections, err := content.Load(b.cfg.ContentDir, site.BaseURL, b.logger)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	outputDir := b.cfg.OutputDir
	b.logger.Debug("cleaning output directory", zap.String("dir", outputDir))
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	if _, err := os.Stat(b.cfg.StaticDir); err == nil {
		if err := copyDirContents(b.cfg.StaticDir, outputDir); err != nil {
			return fmt.Errorf("failed to copy static assets: %w", err)
		}
		b.logger.Debug("static assets copied", zap.String("from", b.cfg.StaticDir))
	} else if errors.Is(err, fs.ErrNotExist) {
		b.logger.Debug("static directory not found, skipping copy", zap.String("dir", b.cfg.StaticDir))
	} else {
		return fmt.Errorf("failed to stat static directory '%s': %w", b.cfg.StaticDir, err)
	}

	languages := append([]string{""}, b.cfg.Languages...)
	for _, lang := range languages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.renderLanguage(site, sections, lang); err != nil {
			return err
		}
	}

	b.logger.Info("build completed", zap.Int("languages", len(languages)))
	return nil
}

func (b *Builder) renderLanguage(site *model.SiteConfig, sections content.Sections, lang string) error {
	dir := filepath.Join(b.cfg.OutputDir, lang)

	index := page.NewIndex(site, lang, sections)
	if err := b.writePage(filepath.Join(dir, "index.html"), func(w io.Writer) error {
		return b.renderer.Index(w, index)
	}); err != nil {
		return err
	}

	return b.writePage(filepath.Join(dir, "users.html"), func(w io.Writer) error {
		return b.renderer.Users(w, site, lang)
	})
}

// writePage renders into memory first so a failed render leaves no partial
// file behind.
func (b *Builder) writePage(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("failed to render '%s': %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	b.logger.Debug("generated page", zap.String("path", path))
	return nil
}
