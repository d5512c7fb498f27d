package testutil

import (
	"context"
	"errors"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/store"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockMetrics implements providers.MetricsProviderInterface and counts
// refetch outcomes.
type MockMetrics struct {
	mu       sync.Mutex
	Refetch  map[string]int
	Records  map[string]int
	StoreOps int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Refetch: map[string]int{}, Records: map[string]int{}}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}
func (m *MockMetrics) ObserveStoreDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoreOps++
}
func (m *MockMetrics) IncRefetch(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Refetch[outcome]++
}
func (m *MockMetrics) SetRecordsTotal(collection string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records[collection] = count
}

func (m *MockMetrics) RefetchCount(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Refetch[outcome]
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

var ErrInjected = errors.New("injected failure")

// FlakyBackend wraps a document backend and fails or panics on demand.
type FlakyBackend struct {
	store.DocumentStoreInterface

	mu         sync.Mutex
	FailList   map[string]bool
	PanicList  map[string]bool
	FailWrites bool
	Calls      int
}

func NewFlakyBackend(inner store.DocumentStoreInterface) *FlakyBackend {
	return &FlakyBackend{
		DocumentStoreInterface: inner,
		FailList:               map[string]bool{},
		PanicList:              map[string]bool{},
	}
}

func (f *FlakyBackend) hit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
}

func (f *FlakyBackend) SetFailWrites(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FailWrites = v
}

func (f *FlakyBackend) failingWrites() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.FailWrites
}

func (f *FlakyBackend) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls
}

func (f *FlakyBackend) List(ctx context.Context, collection string) ([]store.Document, error) {
	f.hit()
	f.mu.Lock()
	fail, panics := f.FailList[collection], f.PanicList[collection]
	f.mu.Unlock()
	if panics {
		panic("backend exploded reading " + collection)
	}
	if fail {
		return nil, ErrInjected
	}
	return f.DocumentStoreInterface.List(ctx, collection)
}

func (f *FlakyBackend) Get(ctx context.Context, collection, id string) (*store.Document, error) {
	f.hit()
	f.mu.Lock()
	fail := f.FailList[collection]
	f.mu.Unlock()
	if fail {
		return nil, ErrInjected
	}
	return f.DocumentStoreInterface.Get(ctx, collection, id)
}

func (f *FlakyBackend) Add(ctx context.Context, collection string, data []byte) (string, error) {
	f.hit()
	if f.failingWrites() {
		return "", ErrInjected
	}
	return f.DocumentStoreInterface.Add(ctx, collection, data)
}

func (f *FlakyBackend) Update(ctx context.Context, collection, id string, data []byte) error {
	f.hit()
	if f.failingWrites() {
		return ErrInjected
	}
	return f.DocumentStoreInterface.Update(ctx, collection, id, data)
}

func (f *FlakyBackend) Set(ctx context.Context, collection, id string, data []byte) error {
	f.hit()
	if f.failingWrites() {
		return ErrInjected
	}
	return f.DocumentStoreInterface.Set(ctx, collection, id, data)
}

func (f *FlakyBackend) Delete(ctx context.Context, collection, id string) error {
	f.hit()
	if f.failingWrites() {
		return ErrInjected
	}
	return f.DocumentStoreInterface.Delete(ctx, collection, id)
}

// NewSQLiteBackend opens a throwaway SQLite document store.
func NewSQLiteBackend(t *testing.T) *store.SQLiteStore {
	t.Helper()
	backend, err := store.OpenSQLite(filepath.Join(t.TempDir(), "folio.db"), "test")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

// NewStoreClient wires a configured client around backend with a file
// object store in a temp dir.
func NewStoreClient(t *testing.T, backend store.DocumentStoreInterface) *store.Client {
	t.Helper()
	objects, err := store.NewFileObjectStore(filepath.Join(t.TempDir(), "files"), "/files")
	if err != nil {
		t.Fatalf("open object store: %v", err)
	}
	return store.NewClientWithBackend(backend, objects, time.Second, &MockLogger{}, NewMockMetrics())
}

// NewUnconfiguredClient returns a client with no backends.
func NewUnconfiguredClient() *store.Client {
	return store.NewClientWithBackend(nil, nil, time.Second, &MockLogger{}, NewMockMetrics())
}

// MemoryPreferences implements store.PreferencesInterface in memory.
type MemoryPreferences struct {
	mu      sync.Mutex
	Values  map[string]string
	FailSet bool
}

func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{Values: map[string]string{}}
}

func (p *MemoryPreferences) Get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.Values[key]
	return v, ok
}

func (p *MemoryPreferences) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Values[key] = value
	if p.FailSet {
		return ErrInjected
	}
	return nil
}

// MockContentService covers the read and refresh half of
// services.ContentServiceInterface. Tests that need State embed it.
type MockContentService struct {
	mu           sync.Mutex
	Content      *models.Content
	RefetchCalls int
	IsLoading    bool
	Gen          uint64
}

func (m *MockContentService) Fetch(ctx context.Context) { m.Refetch(ctx) }

func (m *MockContentService) Refetch(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefetchCalls++
}

func (m *MockContentService) Snapshot() *models.Content {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Content == nil {
		return &models.Content{}
	}
	return m.Content
}

func (m *MockContentService) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.IsLoading
}

func (m *MockContentService) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Gen
}

func (m *MockContentService) Refetches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.RefetchCalls
}
