package page

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bitlatte/splash/internal/model"
)

func TestBlockContainerClass(t *testing.T) {
	b := NewBlock(nil)
	assert.Equal(t, "container paddingBottom paddingTop", b.ContainerClass())

	b.Background = "light"
	assert.Equal(t, "container lightBackground paddingBottom paddingTop", b.ContainerClass())

	b.Background = "dark"
	b.Padding = []string{"all"}
	assert.Equal(t, "container darkBackground paddingAll", b.ContainerClass())
}

func TestGridItemClass(t *testing.T) {
	tests := []struct {
		name   string
		block  model.ContentBlock
		align  string
		layout string
		want   string
		before bool
		after  bool
	}{
		{
			name:   "top image in two columns",
			block:  model.ContentBlock{Image: "a.png", ImageAlign: "top"},
			align:  "center",
			layout: "twoColumn",
			want:   "blockElement alignCenter imageAlignTop twoByGridBlock",
			before: true,
		},
		{
			name:  "right image left aligned",
			block: model.ContentBlock{Image: "a.png", ImageAlign: "right"},
			align: "left",
			want:  "blockElement imageAlignSide imageAlignRight",
			after: true,
		},
		{
			name:   "image defaults to left",
			block:  model.ContentBlock{Image: "a.png"},
			align:  "left",
			want:   "blockElement imageAlignSide imageAlignLeft",
			before: true,
		},
		{
			name:   "no image",
			block:  model.ContentBlock{ImageAlign: "top"},
			align:  "right",
			layout: "threeColumn",
			want:   "blockElement alignRight threeByGridBlock",
		},
		{
			name:   "bottom image in four columns",
			block:  model.ContentBlock{Image: "a.png", ImageAlign: "bottom"},
			align:  "center",
			layout: "fourColumn",
			want:   "blockElement alignCenter fourByGridBlock imageAlignBottom",
			after:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := newGridItem(tt.block, tt.align, tt.layout)
			assert.Equal(t, tt.want, item.Class)
			assert.Equal(t, tt.before, item.ImageBefore())
			assert.Equal(t, tt.after, item.ImageAfter())
		})
	}
}

func TestBlockItemsKeepOrder(t *testing.T) {
	b := NewBlock([]model.ContentBlock{{Title: "a"}, {Title: "b"}, {Title: "c"}})

	items := b.Items()

	assert.Len(t, items, 3)
	for i, title := range []string{"a", "b", "c"} {
		assert.Equal(t, title, items[i].Title)
	}
}
