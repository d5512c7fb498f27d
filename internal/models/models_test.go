package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByOrder_AscendingWithIDTieBreak(t *testing.T) {
	items := []Project{
		{Meta: Meta{ID: "c", Order: 3}, Title: "third"},
		{Meta: Meta{ID: "b", Order: 1}, Title: "first-b"},
		{Meta: Meta{ID: "a", Order: 1}, Title: "first-a"},
		{Meta: Meta{ID: "d", Order: 2}, Title: "second"},
	}

	SortByOrder(items)

	titles := make([]string, len(items))
	for i, p := range items {
		titles[i] = p.Title
	}
	assert.Equal(t, []string{"first-a", "first-b", "second", "third"}, titles)
}

func TestContentBlock_NormalizeDefaults(t *testing.T) {
	b := ContentBlock{Title: "About"}
	b.Normalize()

	assert.Equal(t, BlockText, b.Type)
	assert.True(t, b.IsVisible())
	assert.NotNil(t, b.Visible)
}

func TestContentBlock_HiddenStaysHidden(t *testing.T) {
	hidden := false
	b := ContentBlock{Title: "Draft", Type: BlockLinks, Visible: &hidden}
	b.Normalize()

	assert.False(t, b.IsVisible())
	assert.NotNil(t, b.Links)
}

func TestContent_VisibleBlocks(t *testing.T) {
	hidden := false
	c := &Content{ContentBlocks: []ContentBlock{
		{Title: "shown"},
		{Title: "hidden", Visible: &hidden},
	}}

	blocks := c.VisibleBlocks()
	assert.Len(t, blocks, 1)
	assert.Equal(t, "shown", blocks[0].Title)
}

func TestContent_CloneIsIndependent(t *testing.T) {
	c := &Content{Stats: []Stat{{Label: "Apps", Value: "10+"}}}
	clone := c.Clone()
	clone.Stats[0].Value = "20+"

	assert.Equal(t, "10+", c.Stats[0].Value)
}

func TestNavLink_NormalizeDerivesHref(t *testing.T) {
	n := NavLink{Label: "About", SectionID: "about"}
	n.Normalize()
	assert.Equal(t, "#about", n.Href)

	n = NavLink{Label: "Blog", Href: "https://blog.example.com"}
	n.Normalize()
	assert.Equal(t, "https://blog.example.com", n.Href)
}

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		expected string
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0&modestbranding=1"},
		{"youtube short", "https://youtu.be/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0&modestbranding=1"},
		{"youtube embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0&modestbranding=1"},
		{"vimeo", "https://vimeo.com/76979871", "https://player.vimeo.com/video/76979871"},
		{"vimeo player", "https://player.vimeo.com/video/76979871", "https://player.vimeo.com/video/76979871"},
		{"unknown", "https://example.com/clip.mp4", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EmbedURL(tt.link))
		})
	}
}
