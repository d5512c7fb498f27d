package admin

import (
	"context"
	"errors"
	"fmt"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/store"
)

var ErrStatsUnavailable = errors.New("current stats could not be read")

type PersonalInfoView struct {
	PersonalInfo models.PersonalInfo `json:"personalInfo"`
	Stats        []models.Stat       `json:"stats"`
}

// PersonalInfoEditor edits the singleton profile document together with
// the stats collection shown next to it.
type PersonalInfoEditor struct {
	client  store.ClientInterface
	refresh Refresher
	logger  providers.Logger
}

func NewPersonalInfoEditor(client store.ClientInterface, refresh Refresher, logger providers.Logger) *PersonalInfoEditor {
	return &PersonalInfoEditor{client: client, refresh: refresh, logger: logger}
}

// Load returns the stored profile and stats. ok is false when nothing
// has been stored yet or the store could not be read.
func (e *PersonalInfoEditor) Load(ctx context.Context) (*PersonalInfoView, bool) {
	doc, ok := e.client.GetDocument(ctx, models.CollectionPersonalInfo, models.PersonalInfoDocID)
	if !ok || doc == nil {
		return nil, false
	}
	view := &PersonalInfoView{Stats: []models.Stat{}}
	if err := store.Decode(*doc, &view.PersonalInfo); err != nil {
		e.logger.Warnf(providers.TypeAdmin, "Stored personal info unreadable: %s", err)
		return nil, false
	}
	if docs, ok := e.client.GetCollection(ctx, models.CollectionStats); ok {
		if stats, err := store.DecodeAll[models.Stat](docs); err == nil {
			models.SortByOrder(stats)
			view.Stats = stats
		}
	}
	return view, true
}

// Save upserts the profile and replaces all stats, re-adding them with
// order equal to their position.
func (e *PersonalInfoEditor) Save(ctx context.Context, info models.PersonalInfo, stats []models.Stat) error {
	if err := e.client.SetDocument(ctx, models.CollectionPersonalInfo, models.PersonalInfoDocID, info); err != nil {
		return fmt.Errorf("save personal info: %w", err)
	}

	existing, ok := e.client.GetCollection(ctx, models.CollectionStats)
	if !ok {
		return ErrStatsUnavailable
	}
	for _, doc := range existing {
		if err := e.client.DeleteDocument(ctx, models.CollectionStats, doc.ID); err != nil {
			return fmt.Errorf("replace stats: %w", err)
		}
	}
	for i, stat := range stats {
		stat.ID = ""
		stat.Order = int64(i)
		if _, err := e.client.AddDocument(ctx, models.CollectionStats, stat); err != nil {
			return fmt.Errorf("replace stats: %w", err)
		}
	}

	e.logger.Infof(providers.TypeAdmin, "Saved personal info with %d stats", len(stats))
	e.refresh.Refetch(ctx)
	return nil
}
