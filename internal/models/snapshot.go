package models

import "slices"

// Content is the unified read model. A committed Content is never mutated;
// refreshes build a new value from Clone.
type Content struct {
	PersonalInfo    PersonalInfo    `json:"personalInfo" yaml:"personalInfo"`
	Stats           []Stat          `json:"stats" yaml:"stats"`
	SkillCategories []SkillCategory `json:"skillCategories" yaml:"skillCategories"`
	Projects        []Project       `json:"projects" yaml:"projects"`
	BuiltProjects   []BuiltProject  `json:"builtProjects" yaml:"builtProjects"`
	Experiences     []Experience    `json:"experiences" yaml:"experiences"`
	Education       []Education     `json:"education" yaml:"education"`
	Certifications  []Certification `json:"certifications" yaml:"certifications"`
	Testimonials    []Testimonial   `json:"testimonials" yaml:"testimonials"`
	NavLinks        []NavLink       `json:"navLinks" yaml:"navLinks"`
	Videos          []Video         `json:"videos" yaml:"videos"`
	ContentBlocks   []ContentBlock  `json:"contentBlocks" yaml:"contentBlocks"`
}

func (c *Content) Clone() *Content {
	return &Content{
		PersonalInfo:    c.PersonalInfo,
		Stats:           slices.Clone(c.Stats),
		SkillCategories: slices.Clone(c.SkillCategories),
		Projects:        slices.Clone(c.Projects),
		BuiltProjects:   slices.Clone(c.BuiltProjects),
		Experiences:     slices.Clone(c.Experiences),
		Education:       slices.Clone(c.Education),
		Certifications:  slices.Clone(c.Certifications),
		Testimonials:    slices.Clone(c.Testimonials),
		NavLinks:        slices.Clone(c.NavLinks),
		Videos:          slices.Clone(c.Videos),
		ContentBlocks:   slices.Clone(c.ContentBlocks),
	}
}

// Counts reports the number of records per list collection.
func (c *Content) Counts() map[string]int {
	return map[string]int{
		CollectionStats:           len(c.Stats),
		CollectionSkillCategories: len(c.SkillCategories),
		CollectionProjects:        len(c.Projects),
		CollectionBuiltProjects:   len(c.BuiltProjects),
		CollectionExperiences:     len(c.Experiences),
		CollectionEducation:       len(c.Education),
		CollectionCertifications:  len(c.Certifications),
		CollectionTestimonials:    len(c.Testimonials),
		CollectionNavLinks:        len(c.NavLinks),
		CollectionVideos:          len(c.Videos),
		CollectionContentBlocks:   len(c.ContentBlocks),
	}
}

// VisibleBlocks returns the content blocks not explicitly hidden.
func (c *Content) VisibleBlocks() []ContentBlock {
	out := make([]ContentBlock, 0, len(c.ContentBlocks))
	for _, b := range c.ContentBlocks {
		if b.IsVisible() {
			out = append(out, b)
		}
	}
	return out
}
