package services

import (
	"context"
	"fmt"
	"folio/internal/catalog"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/store"
	"sync"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

type State int32

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

const (
	RefetchCommitted  = "committed"
	RefetchSuperseded = "superseded"
	RefetchAborted    = "aborted"
	RefetchSkipped    = "skipped"
)

type ContentServiceInterface interface {
	Fetch(ctx context.Context)
	Refetch(ctx context.Context)
	Snapshot() *models.Content
	Loading() bool
	State() State
	Generation() uint64
}

// ContentService holds the unified read model. It starts from the default
// catalog and reconciles every collection against the store on each fetch.
type ContentService struct {
	client  store.ClientInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface

	mu      sync.RWMutex
	current *models.Content

	requests   atomic.Uint64
	generation atomic.Uint64
	inflight   atomic.Int32
	settled    atomic.Bool
}

func NewContentService(client store.ClientInterface, defaults *catalog.Catalog, logger providers.Logger, metrics providers.MetricsProviderInterface) ContentServiceInterface {
	return &ContentService{
		client:  client,
		logger:  logger,
		metrics: metrics,
		current: defaults.Snapshot(),
	}
}

func (s *ContentService) Fetch(ctx context.Context) {
	s.Refetch(ctx)
}

// Refetch runs one batch of reads. Overlapping calls are allowed; only the
// most recently started one may commit its result.
func (s *ContentService) Refetch(ctx context.Context) {
	id := s.requests.Inc()
	s.inflight.Inc()
	defer func() {
		s.inflight.Dec()
		s.settled.Store(true)
	}()

	if !s.client.Configured() {
		s.metrics.IncRefetch(RefetchSkipped)
		return
	}

	next, err := s.load(ctx, s.Snapshot())
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Content refresh discarded, keeping previous state: %s", err)
		s.metrics.IncRefetch(RefetchAborted)
		return
	}

	if !s.commit(id, next) {
		s.logger.Debugf(providers.TypeApp, "Content refresh %d superseded", id)
		s.metrics.IncRefetch(RefetchSuperseded)
		return
	}

	for collection, count := range next.Counts() {
		s.metrics.SetRecordsTotal(collection, count)
	}
	s.metrics.IncRefetch(RefetchCommitted)
}

func (s *ContentService) commit(id uint64, next *models.Content) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.requests.Load() {
		return false
	}
	s.current = next
	s.generation.Inc()
	return true
}

// load reads everything concurrently on top of a copy of base. Each read
// that fails inside the store client leaves its field untouched; anything
// that escapes a read (decode error, panic) fails the whole batch.
func (s *ContentService) load(ctx context.Context, base *models.Content) (*models.Content, error) {
	next := base.Clone()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(guard(models.CollectionPersonalInfo, func() error {
		doc, ok := s.client.GetDocument(gctx, models.CollectionPersonalInfo, models.PersonalInfoDocID)
		if !ok || doc == nil {
			return nil
		}
		var info models.PersonalInfo
		if err := store.Decode(*doc, &info); err != nil {
			return err
		}
		next.PersonalInfo = info
		return nil
	}))

	g.Go(guard(models.CollectionStats, func() error {
		return readCollection(gctx, s.client, models.CollectionStats, &next.Stats)
	}))
	g.Go(guard(models.CollectionSkillCategories, func() error {
		return readCollection(gctx, s.client, models.CollectionSkillCategories, &next.SkillCategories)
	}))
	g.Go(guard(models.CollectionProjects, func() error {
		return readCollection(gctx, s.client, models.CollectionProjects, &next.Projects)
	}))
	g.Go(guard(models.CollectionBuiltProjects, func() error {
		return readCollection(gctx, s.client, models.CollectionBuiltProjects, &next.BuiltProjects)
	}))
	g.Go(guard(models.CollectionExperiences, func() error {
		return readCollection(gctx, s.client, models.CollectionExperiences, &next.Experiences)
	}))
	g.Go(guard(models.CollectionEducation, func() error {
		return readCollection(gctx, s.client, models.CollectionEducation, &next.Education)
	}))
	g.Go(guard(models.CollectionCertifications, func() error {
		return readCollection(gctx, s.client, models.CollectionCertifications, &next.Certifications)
	}))
	g.Go(guard(models.CollectionTestimonials, func() error {
		return readCollection(gctx, s.client, models.CollectionTestimonials, &next.Testimonials)
	}))
	g.Go(guard(models.CollectionNavLinks, func() error {
		return readCollection(gctx, s.client, models.CollectionNavLinks, &next.NavLinks)
	}))
	g.Go(guard(models.CollectionVideos, func() error {
		return readCollection(gctx, s.client, models.CollectionVideos, &next.Videos)
	}))
	g.Go(guard(models.CollectionContentBlocks, func() error {
		return readCollection(gctx, s.client, models.CollectionContentBlocks, &next.ContentBlocks)
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}

// readCollection replaces *dst with the stored records when the read
// succeeded, even if there are none.
func readCollection[T models.Ordered, P models.RecordPtr[T]](ctx context.Context, client store.ClientInterface, collection string, dst *[]T) error {
	docs, ok := client.GetCollection(ctx, collection)
	if !ok {
		return nil
	}
	items, err := store.DecodeAll[T, P](docs)
	if err != nil {
		return fmt.Errorf("%s: %w", collection, err)
	}
	models.SortByOrder(items)
	*dst = items
	return nil
}

func guard(name string, read func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("read %s panicked: %v", name, r)
			}
		}()
		return read()
	}
}

// Snapshot returns the committed read model. Callers must not modify it.
func (s *ContentService) Snapshot() *models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Loading is true until the first fetch settles and while any fetch runs.
func (s *ContentService) Loading() bool {
	return !s.settled.Load() || s.inflight.Load() > 0
}

func (s *ContentService) State() State {
	switch {
	case s.inflight.Load() > 0:
		return StateLoading
	case !s.settled.Load():
		return StateUninitialized
	default:
		return StateReady
	}
}

func (s *ContentService) Generation() uint64 {
	return s.generation.Load()
}
