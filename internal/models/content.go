package models

type PersonalInfo struct {
	Name      string `json:"name" yaml:"name"`
	Role      string `json:"role" yaml:"role"`
	Tagline   string `json:"tagline" yaml:"tagline"`
	Bio       string `json:"bio" yaml:"bio"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
	Location  string `json:"location" yaml:"location"`
	Github    string `json:"github" yaml:"github"`
	Linkedin  string `json:"linkedin" yaml:"linkedin"`
	ResumeURL string `json:"resumeUrl" yaml:"resumeUrl"`
	PhotoURL  string `json:"photoUrl" yaml:"photoUrl"`
}

type Stat struct {
	Meta  `yaml:",inline"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

func (s *Stat) Normalize() {}

type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
}

type SkillCategory struct {
	Meta   `yaml:",inline"`
	Title  string  `json:"title" yaml:"title"`
	Skills []Skill `json:"skills" yaml:"skills"`
}

func (s *SkillCategory) Normalize() {
	s.Skills = emptyIfNil(s.Skills)
}

type Project struct {
	Meta        `yaml:",inline"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
	Tags        []string `json:"tags" yaml:"tags"`
	GithubURL   string   `json:"githubUrl,omitempty" yaml:"githubUrl,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty" yaml:"liveUrl,omitempty"`
	Color       string   `json:"color" yaml:"color"`
	Pillar      string   `json:"pillar" yaml:"pillar"`
}

func (p *Project) Normalize() {
	p.Tags = emptyIfNil(p.Tags)
}

type BuiltProject struct {
	Meta        `yaml:",inline"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	GithubURL   string   `json:"githubUrl,omitempty" yaml:"githubUrl,omitempty"`
	Color       string   `json:"color" yaml:"color"`
	Icon        string   `json:"icon" yaml:"icon"`
}

func (p *BuiltProject) Normalize() {
	p.Tags = emptyIfNil(p.Tags)
}

type Experience struct {
	Meta        `yaml:",inline"`
	Role        string   `json:"role" yaml:"role"`
	Company     string   `json:"company" yaml:"company"`
	Duration    string   `json:"duration" yaml:"duration"`
	Description []string `json:"description" yaml:"description"`
}

func (e *Experience) Normalize() {
	e.Description = emptyIfNil(e.Description)
}

type Education struct {
	Meta        `yaml:",inline"`
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Year        string `json:"year" yaml:"year"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (e *Education) Normalize() {}

type Certification struct {
	Meta      `yaml:",inline"`
	Title     string `json:"title" yaml:"title"`
	Issuer    string `json:"issuer" yaml:"issuer"`
	VerifyURL string `json:"verifyUrl" yaml:"verifyUrl"`
	Icon      string `json:"icon" yaml:"icon"`
}

func (c *Certification) Normalize() {}

type Testimonial struct {
	Meta    `yaml:",inline"`
	Quote   string `json:"quote" yaml:"quote"`
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role" yaml:"role"`
	Company string `json:"company" yaml:"company"`
}

func (t *Testimonial) Normalize() {}

type NavLink struct {
	Meta      `yaml:",inline"`
	Label     string `json:"label" yaml:"label"`
	SectionID string `json:"sectionId,omitempty" yaml:"sectionId,omitempty"`
	Href      string `json:"href,omitempty" yaml:"href,omitempty"`
}

// Normalize derives the in-page anchor when only a section id is known.
func (n *NavLink) Normalize() {
	if n.Href == "" && n.SectionID != "" {
		n.Href = "#" + n.SectionID
	}
}

type Video struct {
	Meta        `yaml:",inline"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url" yaml:"url"`
}

func (v *Video) Normalize() {}

type Message struct {
	Meta      `yaml:",inline"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

func (m *Message) Normalize() {}
