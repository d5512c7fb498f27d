package models

const (
	CollectionPersonalInfo    = "personalInfo"
	CollectionStats           = "stats"
	CollectionSkillCategories = "skillCategories"
	CollectionProjects        = "projects"
	CollectionBuiltProjects   = "builtProjects"
	CollectionExperiences     = "experiences"
	CollectionEducation       = "education"
	CollectionCertifications  = "certifications"
	CollectionTestimonials    = "testimonials"
	CollectionNavLinks        = "navLinks"
	CollectionVideos          = "videos"
	CollectionContentBlocks   = "contentBlocks"
	CollectionMessages        = "messages"
	CollectionThemeSettings   = "themeSettings"
	CollectionThemeHistory    = "themeHistory"

	PersonalInfoDocID  = "main"
	ThemeSettingsDocID = "main"
)

// ContentCollections are the list collections served by the public read model.
var ContentCollections = []string{
	CollectionStats,
	CollectionSkillCategories,
	CollectionProjects,
	CollectionBuiltProjects,
	CollectionExperiences,
	CollectionEducation,
	CollectionCertifications,
	CollectionTestimonials,
	CollectionNavLinks,
	CollectionVideos,
	CollectionContentBlocks,
}

// AllCollections is every collection the store may hold, in export order.
var AllCollections = append(append([]string{CollectionPersonalInfo}, ContentCollections...),
	CollectionMessages,
	CollectionThemeSettings,
	CollectionThemeHistory,
)
