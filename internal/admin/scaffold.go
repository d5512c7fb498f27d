package admin

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"folio/internal/providers"
	"folio/internal/store"
	"slices"

	"github.com/spf13/cast"
)

var (
	ErrConfirmationRequired = errors.New("deletion must be confirmed")
	ErrNoOpenForm           = errors.New("no form is open")
	ErrRecordNotFound       = errors.New("record not found")
)

// Refresher is notified after every successful write.
type Refresher interface {
	Refetch(ctx context.Context)
}

type Row struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle,omitempty"`
	Order    int64          `json:"order"`
	Record   map[string]any `json:"record"`
}

// Form is the open create or edit form. EditingID is empty when creating.
type Form struct {
	Open      bool
	EditingID string
	Values    map[string]Value
	Order     int64
	Err       string
}

// Scaffold drives the list and form workflow of one collection.
type Scaffold struct {
	schema  *Schema
	client  store.ClientInterface
	refresh Refresher
	logger  providers.Logger

	rows []Row
	form Form
}

func NewScaffold(schema *Schema, client store.ClientInterface, refresh Refresher, logger providers.Logger) *Scaffold {
	return &Scaffold{schema: schema, client: client, refresh: refresh, logger: logger}
}

func (s *Scaffold) Schema() *Schema {
	return s.schema
}

// List reloads the collection sorted by order. A failed read yields an
// empty list.
func (s *Scaffold) List(ctx context.Context) []Row {
	docs, _ := s.client.GetCollection(ctx, s.schema.Collection)

	rows := make([]Row, 0, len(docs))
	for _, doc := range docs {
		fields, err := doc.Fields()
		if err != nil {
			s.logger.Warnf(providers.TypeAdmin, "Skipping unreadable %s/%s: %s", s.schema.Collection, doc.ID, err)
			continue
		}
		rows = append(rows, Row{
			ID:       doc.ID,
			Title:    rowLabel(fields, s.schema.TitleField, "Untitled"),
			Subtitle: rowLabel(fields, s.schema.SubtitleField, ""),
			Order:    doc.Order,
			Record:   fields,
		})
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	s.rows = rows
	return rows
}

func (s *Scaffold) Rows() []Row {
	return s.rows
}

// Find returns the loaded row with id.
func (s *Scaffold) Find(id string) (Row, error) {
	for _, r := range s.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return Row{}, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, s.schema.Collection, id)
}

// OpenCreate opens a blank form placed after the existing records.
func (s *Scaffold) OpenCreate() *Form {
	values := make(map[string]Value, len(s.schema.Fields))
	for _, f := range s.schema.Fields {
		values[f.Key] = f.Empty()
	}
	s.form = Form{Open: true, Values: values, Order: int64(len(s.rows))}
	return &s.form
}

// OpenEdit opens a form over an existing record. Missing or malformed
// fields start empty.
func (s *Scaffold) OpenEdit(row Row) *Form {
	values := make(map[string]Value, len(s.schema.Fields))
	for _, f := range s.schema.Fields {
		v, err := f.Coerce(row.Record[f.Key])
		if err != nil {
			v = f.Empty()
		}
		values[f.Key] = v
	}
	s.form = Form{Open: true, EditingID: row.ID, Values: values, Order: row.Order}
	return &s.form
}

func (s *Scaffold) Form() *Form {
	return &s.form
}

// SetValue assigns one field of the open form.
func (s *Scaffold) SetValue(key string, raw any) error {
	if !s.form.Open {
		return ErrNoOpenForm
	}
	if key == "order" {
		n, err := cast.ToInt64E(raw)
		if err != nil {
			return fmt.Errorf("order: %w", err)
		}
		s.form.Order = n
		return nil
	}
	f, ok := s.schema.Field(key)
	if !ok {
		return fmt.Errorf("unknown field %q", key)
	}
	v, err := f.Coerce(raw)
	if err != nil {
		return err
	}
	s.form.Values[key] = v
	return nil
}

// SetValues assigns every known key of input. Unknown keys are ignored.
func (s *Scaffold) SetValues(input map[string]any) error {
	if !s.form.Open {
		return ErrNoOpenForm
	}
	for key, raw := range input {
		if _, ok := s.schema.Field(key); !ok && key != "order" {
			continue
		}
		if err := s.SetValue(key, raw); err != nil {
			s.form.Err = err.Error()
			return err
		}
	}
	return nil
}

// Payload is the document body written for the open form.
func (s *Scaffold) Payload() map[string]any {
	out := make(map[string]any, len(s.form.Values)+1)
	for key, v := range s.form.Values {
		out[key] = v.Raw()
	}
	out["order"] = s.form.Order
	return out
}

// Save writes the open form: an update of the edited document or a new
// document. On failure the form stays open with its values and the error
// recorded.
func (s *Scaffold) Save(ctx context.Context) (string, error) {
	if !s.form.Open {
		return "", ErrNoOpenForm
	}

	id := s.form.EditingID
	var err error
	if id != "" {
		err = s.client.UpdateDocument(ctx, s.schema.Collection, id, s.Payload())
	} else {
		id, err = s.client.AddDocument(ctx, s.schema.Collection, s.Payload())
	}
	if err != nil {
		s.form.Err = err.Error()
		s.logger.Errorf(providers.TypeAdmin, "Saving %s failed: %s", s.schema.Collection, err)
		return "", err
	}

	s.logger.Infof(providers.TypeAdmin, "Saved %s/%s", s.schema.Collection, id)
	s.Close()
	s.List(ctx)
	s.refresh.Refetch(ctx)
	return id, nil
}

func (s *Scaffold) Close() {
	s.form = Form{}
}

// Delete removes a record once the caller has confirmed.
func (s *Scaffold) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.client.DeleteDocument(ctx, s.schema.Collection, id); err != nil {
		s.logger.Errorf(providers.TypeAdmin, "Deleting %s/%s failed: %s", s.schema.Collection, id, err)
		return err
	}

	s.logger.Infof(providers.TypeAdmin, "Deleted %s/%s", s.schema.Collection, id)
	s.List(ctx)
	s.refresh.Refetch(ctx)
	return nil
}

func rowLabel(fields map[string]any, key, fallback string) string {
	if key == "" {
		return fallback
	}
	if s := cast.ToString(fields[key]); s != "" {
		return s
	}
	return fallback
}
