package catalog

import (
	"context"
	"fmt"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/store"
)

// SeedReport counts the documents written per collection.
type SeedReport map[string]int

type Seeder struct {
	client  store.ClientInterface
	catalog *Catalog
	logger  providers.Logger
}

func NewSeeder(client store.ClientInterface, catalog *Catalog, logger providers.Logger) *Seeder {
	return &Seeder{client: client, catalog: catalog, logger: logger}
}

// SeedAll writes the whole catalog to the store: PersonalInfo is upserted,
// every list record is added as a new document with its array index as
// order. Running it twice duplicates the list records. The first failing
// write stops the run.
func (s *Seeder) SeedAll(ctx context.Context) (SeedReport, error) {
	report := SeedReport{}

	if err := s.client.SetDocument(ctx, models.CollectionPersonalInfo, models.PersonalInfoDocID, s.catalog.PersonalInfo); err != nil {
		return report, fmt.Errorf("seed personal info: %w", err)
	}
	report[models.CollectionPersonalInfo] = 1

	c := s.catalog
	steps := []struct {
		collection string
		records    []any
	}{
		{models.CollectionStats, asRecords(c.Stats)},
		{models.CollectionSkillCategories, asRecords(c.SkillCategories)},
		{models.CollectionProjects, asRecords(c.Projects)},
		{models.CollectionBuiltProjects, asRecords(c.BuiltProjects)},
		{models.CollectionExperiences, asRecords(c.Experiences)},
		{models.CollectionEducation, asRecords(c.Education)},
		{models.CollectionCertifications, asRecords(c.Certifications)},
		{models.CollectionTestimonials, asRecords(c.Testimonials)},
		{models.CollectionNavLinks, asRecords(c.NavLinks)},
		{models.CollectionVideos, asRecords(c.Videos)},
		{models.CollectionContentBlocks, asRecords(c.ContentBlocks)},
	}

	for _, step := range steps {
		for i, record := range step.records {
			if _, err := s.client.AddDocument(ctx, step.collection, record); err != nil {
				return report, fmt.Errorf("seed %s[%d]: %w", step.collection, i, err)
			}
			report[step.collection]++
		}
	}

	s.logger.Infof(providers.TypeApp, "Seeded default catalog: %v", map[string]int(report))
	return report, nil
}

// asRecords copies list records with order set to their array index.
func asRecords[T any, P models.RecordPtr[T]](items []T) []any {
	out := make([]any, 0, len(items))
	for i := range items {
		v := items[i]
		P(&v).SetID("")
		P(&v).SetOrder(int64(i))
		out = append(out, v)
	}
	return out
}
