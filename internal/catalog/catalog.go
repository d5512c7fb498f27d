package catalog

import (
	_ "embed"
	"fmt"
	"folio/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Catalog is the built-in content served when the store has nothing to
// offer. Every list is pre-sorted with order equal to its array position.
type Catalog struct {
	Version        int `yaml:"version"`
	models.Content `yaml:",inline"`
}

func New() (*Catalog, error) {
	return Parse(defaultsYAML)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode default catalog: %w", err)
	}
	if c.Version < 1 {
		return nil, fmt.Errorf("default catalog has no version")
	}
	c.normalize()
	return &c, nil
}

func (c *Catalog) normalize() {
	normalizeList(&c.Stats)
	normalizeList(&c.SkillCategories)
	normalizeList(&c.Projects)
	normalizeList(&c.BuiltProjects)
	normalizeList(&c.Experiences)
	normalizeList(&c.Education)
	normalizeList(&c.Certifications)
	normalizeList(&c.Testimonials)
	normalizeList(&c.NavLinks)
	normalizeList(&c.Videos)
	normalizeList(&c.ContentBlocks)
}

func normalizeList[T any, P models.RecordPtr[T]](items *[]T) {
	if *items == nil {
		*items = []T{}
	}
	for i := range *items {
		p := P(&(*items)[i])
		p.Normalize()
		p.SetOrder(int64(i))
	}
}

// Snapshot returns an independent copy of the defaults.
func (c *Catalog) Snapshot() *models.Content {
	return c.Content.Clone()
}
