package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/adrg/frontmatter"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Bitlatte/splash/internal/model"
)

// blockMatter is the frontmatter of a block file. Title is a pointer so that
// an explicit empty title can be told apart from a missing one.
type blockMatter struct {
	Title      *string `yaml:"title"`
	Image      string  `yaml:"image"`
	ImageAlign string  `yaml:"imageAlign"`
	ImageAlt   string  `yaml:"imageAlt"`
	ImageLink  string  `yaml:"imageLink"`
}

// Load returns the default sections with every section found under dir
// replaced by the blocks read from its files. A missing dir is not an error.
func Load(dir, baseURL string, logger *zap.Logger) (Sections, error) {
	sections := Defaults(baseURL)

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		logger.Debug("content directory not found, using built-in content", zap.String("dir", dir))
		return sections, nil
	}

	for _, name := range SectionNames {
		sectionDir := filepath.Join(dir, name)
		info, err := os.Stat(sectionDir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return sections, fmt.Errorf("failed to stat section directory '%s': %w", sectionDir, err)
		}
		if !info.IsDir() {
			return sections, fmt.Errorf("section path '%s' is not a directory", sectionDir)
		}

		blocks, err := loadSection(sectionDir, baseURL)
		if err != nil {
			return sections, err
		}
		if len(blocks) == 0 {
			logger.Warn("section directory has no markdown files, keeping built-in content",
				zap.String("section", name), zap.String("dir", sectionDir))
			continue
		}
		logger.Debug("loaded section", zap.String("section", name), zap.Int("blocks", len(blocks)))
		sections.set(name, blocks)
	}
	return sections, nil
}

func loadSection(dir, baseURL string) ([]model.ContentBlock, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read section directory '%s': %w", dir, err)
	}

	// os.ReadDir returns entries sorted by file name.
	var blocks []model.ContentBlock
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		block, err := ParseBlock(path, baseURL)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// ParseBlock reads a single block file.
func ParseBlock(path, baseURL string) (model.ContentBlock, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return model.ContentBlock{}, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	var fm blockMatter
	body, err := frontmatter.Parse(bytes.NewReader(fileBytes), &fm)
	if err != nil {
		return model.ContentBlock{}, fmt.Errorf("failed to parse frontmatter of '%s': %w", path, err)
	}

	title := TitleFromFilename(filepath.Base(path))
	if fm.Title != nil {
		title = *fm.Title
	}

	return model.ContentBlock{
		Title:      title,
		Content:    strings.TrimSpace(string(body)),
		Image:      resolveImage(fm.Image, baseURL),
		ImageAlign: fm.ImageAlign,
		ImageAlt:   fm.ImageAlt,
		ImageLink:  fm.ImageLink,
	}, nil
}

// TitleFromFilename turns "02-develop_with-confidence.md" into
// "Develop With Confidence". A leading numeric ordering prefix is dropped.
func TitleFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if trimmed := strings.TrimLeftFunc(base, unicode.IsDigit); trimmed != base &&
		(strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "_")) {
		base = trimmed[1:]
	}
	base = strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
	return cases.Title(language.English).String(strings.TrimSpace(base))
}

// resolveImage prefixes relative image paths with baseURL, the way assets
// copied from the static directory are addressed.
func resolveImage(image, baseURL string) string {
	if image == "" || strings.HasPrefix(image, "/") {
		return image
	}
	if u, err := url.Parse(image); err == nil && u.IsAbs() {
		return image
	}
	return baseURL + image
}
