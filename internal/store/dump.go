package store

import (
	"context"
	"fmt"
	"folio/internal/models"
	"time"

	json "github.com/goccy/go-json"
)

const dumpVersion = 1

type DumpDocument struct {
	ID    string          `json:"id"`
	Order int64           `json:"order"`
	Data  json.RawMessage `json:"data"`
}

// Dump is a full copy of one project's documents.
type Dump struct {
	Version     int                       `json:"version"`
	Project     string                    `json:"project"`
	CreatedAt   time.Time                 `json:"createdAt"`
	Collections map[string][]DumpDocument `json:"collections"`
}

// Len counts the documents across all collections.
func (d *Dump) Len() int {
	n := 0
	for _, docs := range d.Collections {
		n += len(docs)
	}
	return n
}

// Dump reads every known collection. Unlike the public read path a failed
// read aborts the dump, so an export is never silently partial.
func (c *Client) Dump(ctx context.Context) (*Dump, error) {
	if c.backend == nil {
		return nil, ErrNotConfigured
	}
	defer c.observe("dump", time.Now())

	dump := &Dump{
		Version:     dumpVersion,
		Project:     c.project,
		CreatedAt:   time.Now().UTC(),
		Collections: make(map[string][]DumpDocument, len(models.AllCollections)),
	}
	for _, name := range models.AllCollections {
		readCtx, cancel := c.withTimeout(ctx)
		docs, err := c.backend.List(readCtx, name)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("dump %s: %w", name, err)
		}
		out := make([]DumpDocument, 0, len(docs))
		for _, d := range docs {
			out = append(out, DumpDocument{ID: d.ID, Order: d.Order, Data: json.RawMessage(d.Data)})
		}
		dump.Collections[name] = out
	}
	return dump, nil
}

// Restore upserts every document of a dump, keeping the original ids.
func (c *Client) Restore(ctx context.Context, dump *Dump) error {
	if c.backend == nil {
		return ErrNotConfigured
	}
	if dump.Version != dumpVersion {
		return fmt.Errorf("unsupported dump version %d", dump.Version)
	}
	defer c.observe("restore", time.Now())

	for _, name := range models.AllCollections {
		for _, d := range dump.Collections[name] {
			writeCtx, cancel := c.withTimeout(ctx)
			err := c.backend.Set(writeCtx, name, d.ID, d.Data)
			cancel()
			if err != nil {
				return fmt.Errorf("restore %s/%s: %w", name, d.ID, err)
			}
		}
	}
	return nil
}
