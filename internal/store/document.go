package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"folio/internal/models"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

var (
	ErrNotConfigured = errors.New("document store is not configured")
	ErrNotFound      = errors.New("document not found")
)

// Document is a stored JSON object with its store-assigned id.
type Document struct {
	ID    string
	Order int64
	Data  []byte
}

// DocumentStoreInterface is the raw backend. List returns documents
// ascending by order, ties broken by id.
type DocumentStoreInterface interface {
	List(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (*Document, error)
	Add(ctx context.Context, collection string, data []byte) (string, error)
	Update(ctx context.Context, collection, id string, fields []byte) error
	Set(ctx context.Context, collection, id string, data []byte) error
	Delete(ctx context.Context, collection, id string) error
	Close() error
}

// Fields decodes the document body into a generic map.
func (d Document) Fields() (map[string]any, error) {
	return decodeObject(d.Data)
}

// Decode unmarshals a document body into v.
func Decode(doc Document, v any) error {
	if err := json.Unmarshal(doc.Data, v); err != nil {
		return fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	return nil
}

// DecodeAll decodes list records, assigning ids and filling defaults.
func DecodeAll[T any, P models.RecordPtr[T]](docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := Decode(doc, &v); err != nil {
			return nil, err
		}
		P(&v).SetID(doc.ID)
		P(&v).Normalize()
		out = append(out, v)
	}
	return out, nil
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	if m == nil {
		return nil, errors.New("document body must be a JSON object")
	}
	return m, nil
}

// prepare strips the id field from a body and extracts its order.
func prepare(m map[string]any) ([]byte, int64, error) {
	delete(m, "id")
	ord := cast.ToInt64(m["order"])
	data, err := json.Marshal(m)
	if err != nil {
		return nil, 0, fmt.Errorf("encode object: %w", err)
	}
	return data, ord, nil
}
