package services

import (
	"context"
	"folio/internal/catalog"
	"folio/internal/models"
	"folio/internal/store"
	"folio/internal/testutil"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New()
	require.NoError(t, err)
	return c
}

// verifyNoLeaks ignores the connection opener that database/sql keeps
// until the test store is closed in cleanup.
func verifyNoLeaks(t *testing.T) {
	goleak.VerifyNone(t, goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"))
}

// countingClient records every call and pretends the store is not configured.
type countingClient struct {
	store.ClientInterface
	mu    sync.Mutex
	calls int
}

func (c *countingClient) Configured() bool { return false }

func (c *countingClient) GetCollection(_ context.Context, _ string) ([]store.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return nil, false
}

func (c *countingClient) GetDocument(_ context.Context, _, _ string) (*store.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return nil, false
}

func TestContentService_NotConfiguredKeepsCatalog(t *testing.T) {
	defer verifyNoLeaks(t)

	defaults := loadCatalog(t)
	client := &countingClient{}
	metrics := testutil.NewMockMetrics()
	svc := NewContentService(client, defaults, &testutil.MockLogger{}, metrics)

	svc.Fetch(context.Background())

	snap := svc.Snapshot()
	assert.Equal(t, defaults.PersonalInfo, snap.PersonalInfo)
	assert.Equal(t, defaults.Projects, snap.Projects)
	assert.Equal(t, defaults.NavLinks, snap.NavLinks)
	assert.Equal(t, 0, client.calls)
	assert.Equal(t, 1, metrics.RefetchCount(RefetchSkipped))
	assert.False(t, svc.Loading())
	assert.Equal(t, StateReady, svc.State())
}

func TestContentService_EmptyCollectionReplacesDefault(t *testing.T) {
	defer verifyNoLeaks(t)

	client := testutil.NewStoreClient(t, testutil.NewSQLiteBackend(t))
	svc := NewContentService(client, loadCatalog(t), &testutil.MockLogger{}, testutil.NewMockMetrics())

	svc.Fetch(context.Background())

	snap := svc.Snapshot()
	assert.NotNil(t, snap.Projects)
	assert.Empty(t, snap.Projects)
	assert.Empty(t, snap.Stats)
	assert.Equal(t, uint64(1), svc.Generation())
}

func TestContentService_MissingPersonalInfoKeepsDefault(t *testing.T) {
	defaults := loadCatalog(t)
	client := testutil.NewStoreClient(t, testutil.NewSQLiteBackend(t))
	svc := NewContentService(client, defaults, &testutil.MockLogger{}, testutil.NewMockMetrics())

	svc.Fetch(context.Background())

	assert.Equal(t, defaults.PersonalInfo, svc.Snapshot().PersonalInfo)
}

func TestContentService_StoredPersonalInfoWins(t *testing.T) {
	client := testutil.NewStoreClient(t, testutil.NewSQLiteBackend(t))
	ctx := context.Background()
	require.NoError(t, client.SetDocument(ctx, models.CollectionPersonalInfo, models.PersonalInfoDocID,
		models.PersonalInfo{Name: "Stored Name", Email: "stored@example.com"}))

	svc := NewContentService(client, loadCatalog(t), &testutil.MockLogger{}, testutil.NewMockMetrics())
	svc.Fetch(ctx)

	assert.Equal(t, "Stored Name", svc.Snapshot().PersonalInfo.Name)
}

func TestContentService_OrdersByOrderField(t *testing.T) {
	client := testutil.NewStoreClient(t, testutil.NewSQLiteBackend(t))
	ctx := context.Background()
	for _, p := range []models.Project{
		{Meta: models.Meta{Order: 3}, Title: "three"},
		{Meta: models.Meta{Order: 1}, Title: "one"},
		{Meta: models.Meta{Order: 2}, Title: "two"},
	} {
		_, err := client.AddDocument(ctx, models.CollectionProjects, p)
		require.NoError(t, err)
	}

	svc := NewContentService(client, loadCatalog(t), &testutil.MockLogger{}, testutil.NewMockMetrics())
	svc.Fetch(ctx)

	projects := svc.Snapshot().Projects
	require.Len(t, projects, 3)
	assert.Equal(t, "one", projects[0].Title)
	assert.Equal(t, "two", projects[1].Title)
	assert.Equal(t, "three", projects[2].Title)
	for _, p := range projects {
		assert.NotEmpty(t, p.ID)
		assert.NotNil(t, p.Tags)
	}
}

func TestContentService_FailedReadKeepsHeldValue(t *testing.T) {
	defaults := loadCatalog(t)
	backend := testutil.NewFlakyBackend(testutil.NewSQLiteBackend(t))
	backend.FailList[models.CollectionProjects] = true
	client := testutil.NewStoreClient(t, backend)

	svc := NewContentService(client, defaults, &testutil.MockLogger{}, testutil.NewMockMetrics())
	svc.Fetch(context.Background())

	snap := svc.Snapshot()
	assert.Equal(t, defaults.Projects, snap.Projects, "failed read retains the default")
	assert.Empty(t, snap.Stats, "successful empty read replaces the default")
}

func TestContentService_PanicDiscardsWholeRefresh(t *testing.T) {
	defer verifyNoLeaks(t)

	defaults := loadCatalog(t)
	backend := testutil.NewFlakyBackend(testutil.NewSQLiteBackend(t))
	backend.PanicList[models.CollectionVideos] = true
	client := testutil.NewStoreClient(t, backend)
	metrics := testutil.NewMockMetrics()
	logger := &testutil.MockLogger{}

	svc := NewContentService(client, defaults, logger, metrics)
	svc.Fetch(context.Background())

	snap := svc.Snapshot()
	assert.Equal(t, defaults.Stats, snap.Stats)
	assert.Equal(t, uint64(0), svc.Generation())
	assert.False(t, svc.Loading())
	assert.Equal(t, 1, metrics.RefetchCount(RefetchAborted))
	assert.Equal(t, 1, logger.Count("error"))
}

func TestContentService_DecodeFailureDiscardsRefresh(t *testing.T) {
	defaults := loadCatalog(t)
	client := testutil.NewStoreClient(t, testutil.NewSQLiteBackend(t))
	ctx := context.Background()
	_, err := client.AddDocument(ctx, models.CollectionStats, map[string]any{"label": []int{1, 2}})
	require.NoError(t, err)

	svc := NewContentService(client, defaults, &testutil.MockLogger{}, testutil.NewMockMetrics())
	svc.Fetch(ctx)

	assert.Equal(t, defaults.Stats, svc.Snapshot().Stats)
}

func TestContentService_LoadingUntilFirstFetch(t *testing.T) {
	svc := NewContentService(testutil.NewUnconfiguredClient(), loadCatalog(t), &testutil.MockLogger{}, testutil.NewMockMetrics())

	assert.True(t, svc.Loading())
	assert.Equal(t, StateUninitialized, svc.State())

	svc.Fetch(context.Background())

	assert.False(t, svc.Loading())
	assert.Equal(t, StateReady, svc.State())
}

func TestContentService_SupersededRequestDoesNotCommit(t *testing.T) {
	client := testutil.NewStoreClient(t, testutil.NewSQLiteBackend(t))
	metrics := testutil.NewMockMetrics()
	svc := NewContentService(client, loadCatalog(t), &testutil.MockLogger{}, metrics).(*ContentService)

	id := svc.requests.Inc()
	svc.requests.Inc()

	assert.False(t, svc.commit(id, &models.Content{}))
	assert.Equal(t, uint64(0), svc.Generation())
}

func TestContentService_ConcurrentRefetches(t *testing.T) {
	defer verifyNoLeaks(t)

	client := testutil.NewStoreClient(t, testutil.NewSQLiteBackend(t))
	ctx := context.Background()
	_, err := client.AddDocument(ctx, models.CollectionStats, models.Stat{Label: "Apps", Value: "3"})
	require.NoError(t, err)

	metrics := testutil.NewMockMetrics()
	svc := NewContentService(client, loadCatalog(t), &testutil.MockLogger{}, metrics)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Refetch(ctx)
		}()
	}
	wg.Wait()

	assert.False(t, svc.Loading())
	assert.Len(t, svc.Snapshot().Stats, 1)
	assert.GreaterOrEqual(t, metrics.RefetchCount(RefetchCommitted), 1)
	assert.Equal(t, 8, metrics.RefetchCount(RefetchCommitted)+metrics.RefetchCount(RefetchSuperseded))
}

func TestContentService_SeedThenFetchMatchesCatalog(t *testing.T) {
	defaults := loadCatalog(t)
	client := testutil.NewStoreClient(t, testutil.NewSQLiteBackend(t))
	ctx := context.Background()

	_, err := catalog.NewSeeder(client, defaults, &testutil.MockLogger{}).SeedAll(ctx)
	require.NoError(t, err)

	svc := NewContentService(client, defaults, &testutil.MockLogger{}, testutil.NewMockMetrics())
	svc.Fetch(ctx)
	snap := svc.Snapshot()

	assert.Equal(t, defaults.Counts(), snap.Counts())
	assert.Equal(t, defaults.PersonalInfo, snap.PersonalInfo)
	for i, e := range snap.Experiences {
		assert.Equal(t, int64(i), e.Order)
		assert.Equal(t, defaults.Experiences[i].Role, e.Role)
	}
	for i, n := range snap.NavLinks {
		assert.Equal(t, int64(i), n.Order)
		assert.Equal(t, defaults.NavLinks[i].Label, n.Label)
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "ready", StateReady.String())
}
