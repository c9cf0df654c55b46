package jsonstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	deliverycontext "moosage/internal/delivery/context"
	domainerrors "moosage/internal/domain/errors"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// document guards one JSON object stored under key. Every access reads the whole
// object, and every mutation rewrites it, while holding mu.
type document[T any] struct {
	mu       sync.Mutex
	bucket   *blob.Bucket
	key      string
	newEmpty func() *T
	logger   *slog.Logger
}

func newDocument[T any](bucket *blob.Bucket, key string, newEmpty func() *T, logger *slog.Logger) *document[T] {
	return &document[T]{
		bucket:   bucket,
		key:      key,
		newEmpty: newEmpty,
		logger:   logger,
	}
}

func (d *document[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger).With(slog.String("document", d.key))
}

// view runs fn against a freshly read copy of the document.
func (d *document[T]) view(ctx context.Context, fn func(doc *T) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, err := d.load(ctx)
	if err != nil {
		return err
	}

	return fn(doc)
}

// update runs fn against a freshly read copy and writes the result back when fn
// returns changed=true and no error.
func (d *document[T]) update(ctx context.Context, fn func(doc *T) (changed bool, err error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, err := d.load(ctx)
	if err != nil {
		return err
	}

	changed, err := fn(doc)
	if err != nil || !changed {
		return err
	}

	return d.store(ctx, doc)
}

// load must be called with mu held. An absent or empty object is initialised first.
func (d *document[T]) load(ctx context.Context) (*T, error) {
	data, err := d.bucket.ReadAll(ctx, d.key)
	if gcerrors.Code(err) == gcerrors.NotFound || (err == nil && len(data) == 0) {
		doc := d.newEmpty()
		if err := d.store(ctx, doc); err != nil {
			return nil, err
		}
		d.log(ctx).Info("Initialized empty document")

		return doc, nil
	}
	if err != nil {
		d.log(ctx).Error("Failed to read document", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailure.WithDetails(err.Error()), "read "+d.key)
	}

	doc := d.newEmpty()
	if err := json.Unmarshal(data, doc); err != nil {
		d.log(ctx).Error("Failed to decode document", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailure.WithDetails(err.Error()), "decode "+d.key)
	}

	return doc, nil
}

// store must be called with mu held.
func (d *document[T]) store(ctx context.Context, doc *T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		d.log(ctx).Error("Failed to encode document", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrStorageFailure.WithDetails(err.Error()), "encode "+d.key)
	}

	if err := d.bucket.WriteAll(ctx, d.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		d.log(ctx).Error("Failed to write document", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrStorageFailure.WithDetails(err.Error()), "write "+d.key)
	}

	return nil
}
