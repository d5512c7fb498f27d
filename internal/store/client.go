package store

import (
	"context"
	"errors"
	"fmt"
	"folio/internal/providers"
	"folio/internal/structures"
	"io"
	"time"

	json "github.com/goccy/go-json"
)

// ClientInterface is the typed gateway used by every component that talks
// to the document or object store. Reads never fail: a failed read logs
// and reports ok=false so callers can keep what they already hold.
type ClientInterface interface {
	Configured() bool
	GetCollection(ctx context.Context, collection string) ([]Document, bool)
	GetDocument(ctx context.Context, collection, id string) (*Document, bool)
	AddDocument(ctx context.Context, collection string, v any) (string, error)
	UpdateDocument(ctx context.Context, collection, id string, fields any) error
	SetDocument(ctx context.Context, collection, id string, v any) error
	DeleteDocument(ctx context.Context, collection, id string) error
	UploadFile(ctx context.Context, objectPath string, r io.Reader) (string, error)
	DeleteFile(ctx context.Context, objectPath string) error
	Dump(ctx context.Context) (*Dump, error)
	Restore(ctx context.Context, dump *Dump) error
}

type Client struct {
	backend DocumentStoreInterface
	objects ObjectStoreInterface
	timeout time.Duration
	project string
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

// NewClient opens the SQLite backend and the file object store when the
// store is configured. Otherwise the client is inert: reads report
// failure without touching anything and writes return ErrNotConfigured.
func NewClient(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) (*Client, error) {
	if !conf.Store.Configured() {
		logger.Infof(providers.TypeApp, "Document store not configured, serving default content only")
		return NewClientWithBackend(nil, nil, conf.Store.Timeout, logger, metrics), nil
	}

	backend, err := OpenSQLite(conf.Store.DSN, conf.Store.ProjectID)
	if err != nil {
		return nil, err
	}
	objects, err := NewFileObjectStore(conf.Files.Dir, conf.Files.PublicURL)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	logger.Infof(providers.TypeApp, "Document store opened: project=%s dsn=%s", conf.Store.ProjectID, conf.Store.DSN)
	c := NewClientWithBackend(backend, objects, conf.Store.Timeout, logger, metrics)
	c.project = conf.Store.ProjectID
	return c, nil
}

// NewClientWithBackend wires a client around explicit backends. A nil
// document backend means not configured.
func NewClientWithBackend(backend DocumentStoreInterface, objects ObjectStoreInterface, timeout time.Duration, logger providers.Logger, metrics providers.MetricsProviderInterface) *Client {
	return &Client{
		backend: backend,
		objects: objects,
		timeout: timeout,
		logger:  logger,
		metrics: metrics,
	}
}

func (c *Client) Configured() bool {
	return c.backend != nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) observe(operation string, start time.Time) {
	c.metrics.ObserveStoreDuration(operation, time.Since(start))
}

func (c *Client) GetCollection(ctx context.Context, collection string) ([]Document, bool) {
	if c.backend == nil {
		return []Document{}, false
	}
	defer c.observe("list", time.Now())

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	docs, err := c.backend.List(ctx, collection)
	if err != nil {
		c.logger.Warnf(providers.TypeStore, "Reading collection %s failed: %s", collection, err)
		return []Document{}, false
	}
	return docs, true
}

// GetDocument returns (nil, true) when the document does not exist.
func (c *Client) GetDocument(ctx context.Context, collection, id string) (*Document, bool) {
	if c.backend == nil {
		return nil, false
	}
	defer c.observe("get", time.Now())

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	doc, err := c.backend.Get(ctx, collection, id)
	if errors.Is(err, ErrNotFound) {
		return nil, true
	}
	if err != nil {
		c.logger.Warnf(providers.TypeStore, "Reading document %s/%s failed: %s", collection, id, err)
		return nil, false
	}
	return doc, true
}

func (c *Client) AddDocument(ctx context.Context, collection string, v any) (string, error) {
	if c.backend == nil {
		return "", ErrNotConfigured
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}
	defer c.observe("add", time.Now())

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	id, err := c.backend.Add(ctx, collection, data)
	if err != nil {
		return "", fmt.Errorf("add to %s: %w", collection, err)
	}
	return id, nil
}

func (c *Client) UpdateDocument(ctx context.Context, collection, id string, fields any) error {
	if c.backend == nil {
		return ErrNotConfigured
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode %s fields: %w", collection, err)
	}
	defer c.observe("update", time.Now())

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.backend.Update(ctx, collection, id, data); err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (c *Client) SetDocument(ctx context.Context, collection, id string, v any) error {
	if c.backend == nil {
		return ErrNotConfigured
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}
	defer c.observe("set", time.Now())

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.backend.Set(ctx, collection, id, data); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (c *Client) DeleteDocument(ctx context.Context, collection, id string) error {
	if c.backend == nil {
		return ErrNotConfigured
	}
	defer c.observe("delete", time.Now())

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.backend.Delete(ctx, collection, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (c *Client) UploadFile(ctx context.Context, objectPath string, r io.Reader) (string, error) {
	if c.objects == nil {
		return "", ErrNotConfigured
	}
	defer c.observe("upload", time.Now())

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	url, err := c.objects.Put(ctx, objectPath, r)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	return url, nil
}

func (c *Client) DeleteFile(ctx context.Context, objectPath string) error {
	if c.objects == nil {
		return ErrNotConfigured
	}
	defer c.observe("remove", time.Now())

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.objects.Remove(ctx, objectPath); err != nil {
		return fmt.Errorf("remove %s: %w", objectPath, err)
	}
	return nil
}

func (c *Client) Close() error {
	if c.backend == nil {
		return nil
	}
	return c.backend.Close()
}

var _ ClientInterface = (*Client)(nil)
