package models

type BlockType string

const (
	BlockText  BlockType = "text"
	BlockImage BlockType = "image"
	BlockVideo BlockType = "video"
	BlockLinks BlockType = "links"
)

var BlockTypes = []BlockType{BlockText, BlockImage, BlockVideo, BlockLinks}

type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// ContentBlock is a free-form section. Type selects which of the optional
// fields are meaningful.
type ContentBlock struct {
	Meta     `yaml:",inline"`
	Title    string    `json:"title" yaml:"title"`
	Type     BlockType `json:"type" yaml:"type"`
	Content  string    `json:"content,omitempty" yaml:"content,omitempty"`
	ImageURL string    `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	VideoURL string    `json:"videoUrl,omitempty" yaml:"videoUrl,omitempty"`
	Links    []Link    `json:"links,omitempty" yaml:"links,omitempty"`
	Visible  *bool     `json:"visible,omitempty" yaml:"visible,omitempty"`
}

func (b *ContentBlock) Normalize() {
	if b.Type == "" {
		b.Type = BlockText
	}
	if b.Visible == nil {
		visible := true
		b.Visible = &visible
	}
	if b.Type == BlockLinks {
		b.Links = emptyIfNil(b.Links)
	}
}

// IsVisible treats an absent flag as visible.
func (b ContentBlock) IsVisible() bool {
	return b.Visible == nil || *b.Visible
}
