package page

import (
	"slices"
	"strings"

	"github.com/Bitlatte/splash/internal/model"
)

// Block is a padded container holding a grid of content blocks.
type Block struct {
	ID         string
	Background string
	Padding    []string
	Align      string
	Layout     string
	Contents   []model.ContentBlock
}

// NewBlock returns a centred block padded top and bottom.
func NewBlock(contents []model.ContentBlock) Block {
	return Block{
		Padding:  []string{"bottom", "top"},
		Align:    "center",
		Contents: contents,
	}
}

// ContainerClass is the class list of the outer container.
func (b Block) ContainerClass() string {
	return containerClass("", b.Background, b.Padding)
}

// Items returns the grid cells with their classes resolved.
func (b Block) Items() []GridItem {
	items := make([]GridItem, 0, len(b.Contents))
	for _, c := range b.Contents {
		items = append(items, newGridItem(c, b.Align, b.Layout))
	}
	return items
}

// GridItem is one rendered cell of a grid block.
type GridItem struct {
	model.ContentBlock
	Class string
}

// ImageBefore reports whether the image goes ahead of the text.
func (g GridItem) ImageBefore() bool {
	return g.Image != "" && (g.ImageAlign == "top" || g.ImageAlign == "left")
}

// ImageAfter reports whether the image goes after the text.
func (g GridItem) ImageAfter() bool {
	return g.Image != "" && (g.ImageAlign == "bottom" || g.ImageAlign == "right")
}

func newGridItem(c model.ContentBlock, align, layout string) GridItem {
	if c.ImageAlign == "" {
		c.ImageAlign = "left"
	}
	hasImage := c.Image != ""

	classes := []string{"blockElement"}
	add := func(cond bool, class string) {
		if cond {
			classes = append(classes, class)
		}
	}
	add(align == "center", "alignCenter")
	add(align == "right", "alignRight")
	add(layout == "fourColumn", "fourByGridBlock")
	add(hasImage && (c.ImageAlign == "left" || c.ImageAlign == "right"), "imageAlignSide")
	add(hasImage && c.ImageAlign == "top", "imageAlignTop")
	add(hasImage && c.ImageAlign == "right", "imageAlignRight")
	add(hasImage && c.ImageAlign == "bottom", "imageAlignBottom")
	add(hasImage && c.ImageAlign == "left", "imageAlignLeft")
	add(layout == "threeColumn", "threeByGridBlock")
	add(layout == "twoColumn", "twoByGridBlock")

	return GridItem{ContentBlock: c, Class: strings.Join(classes, " ")}
}

func containerClass(extra, background string, padding []string) string {
	classes := []string{"container"}
	if extra != "" {
		classes = append(classes, extra)
	}
	switch background {
	case "dark":
		classes = append(classes, "darkBackground")
	case "highlight":
		classes = append(classes, "highlightBackground")
	case "light":
		classes = append(classes, "lightBackground")
	}
	for _, side := range []string{"all", "bottom", "left", "right", "top"} {
		if slices.Contains(padding, side) {
			classes = append(classes, "padding"+strings.ToUpper(side[:1])+side[1:])
		}
	}
	return strings.Join(classes, " ")
}
