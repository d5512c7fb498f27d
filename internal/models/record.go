package models

import (
	"cmp"
	"slices"
)

// Meta is embedded by every stored list record. ID is assigned by the
// document store and never written back into the document body.
type Meta struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Order int64  `json:"order" yaml:"order"`
}

func (m *Meta) SetID(id string) {
	m.ID = id
}

func (m *Meta) SetOrder(order int64) {
	m.Order = order
}

func (m Meta) SortKey() (int64, string) {
	return m.Order, m.ID
}

type Ordered interface {
	SortKey() (int64, string)
}

// RecordPtr is satisfied by pointers to list records that can receive
// their store id and position and fill their own defaults.
type RecordPtr[T any] interface {
	*T
	SetID(id string)
	SetOrder(order int64)
	Normalize()
}

// SortByOrder sorts ascending by order, breaking ties by id.
func SortByOrder[T Ordered](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		ao, aid := a.SortKey()
		bo, bid := b.SortKey()
		if c := cmp.Compare(ao, bo); c != 0 {
			return c
		}
		return cmp.Compare(aid, bid)
	})
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
