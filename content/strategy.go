package content

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rpupo63/sleeklegal-backend/errs"
)

// Gateway is the backend table a remote provider talks to.
// *database.Table satisfies it.
type Gateway[R any] interface {
	IsAvailable() bool
	ListAll(ctx context.Context, orderBy string) ([]R, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, row R) (R, error)
	InsertMany(ctx context.Context, rows []R) ([]R, error)
	Update(ctx context.Context, id string, columns map[string]any) (R, error)
	Delete(ctx context.Context, id string) error
}

// Wire converts between the application shape T and the backend row R
type Wire[T any, P any, R any] struct {
	ToRow   func(T) R
	FromRow func(R) T
	Columns func(P) map[string]any
	OrderBy string
}

// Strategy performs the I/O side of each operation
type Strategy[T any, P any] interface {
	Remote() bool
	List(ctx context.Context) ([]T, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, item T) (T, error)
	InsertMany(ctx context.Context, items []T) (int, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
}

type remoteStrategy[T any, P any, R any] struct {
	gateway Gateway[R]
	wire    Wire[T, P, R]
}

// RemoteStrategy sends every operation to gateway
func RemoteStrategy[T any, P any, R any](gateway Gateway[R], wire Wire[T, P, R]) Strategy[T, P] {
	return &remoteStrategy[T, P, R]{gateway: gateway, wire: wire}
}

func (s *remoteStrategy[T, P, R]) Remote() bool { return true }

func (s *remoteStrategy[T, P, R]) List(ctx context.Context) ([]T, error) {
	rows, err := s.gateway.ListAll(ctx, s.wire.OrderBy)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(rows))
	for _, r := range rows {
		items = append(items, s.wire.FromRow(r))
	}
	return items, nil
}

func (s *remoteStrategy[T, P, R]) Count(ctx context.Context) (int64, error) {
	return s.gateway.Count(ctx)
}

func (s *remoteStrategy[T, P, R]) Insert(ctx context.Context, item T) (T, error) {
	row, err := s.gateway.Insert(ctx, s.wire.ToRow(item))
	if err != nil {
		var zero T
		return zero, err
	}
	return s.wire.FromRow(row), nil
}

func (s *remoteStrategy[T, P, R]) InsertMany(ctx context.Context, items []T) (int, error) {
	rows := make([]R, 0, len(items))
	for _, it := range items {
		rows = append(rows, s.wire.ToRow(it))
	}
	stored, err := s.gateway.InsertMany(ctx, rows)
	if err != nil {
		return 0, err
	}
	return len(stored), nil
}

func (s *remoteStrategy[T, P, R]) Update(ctx context.Context, id string, patch P) (T, error) {
	row, err := s.gateway.Update(ctx, id, s.wire.Columns(patch))
	if err != nil {
		var zero T
		return zero, err
	}
	return s.wire.FromRow(row), nil
}

func (s *remoteStrategy[T, P, R]) Delete(ctx context.Context, id string) error {
	return s.gateway.Delete(ctx, id)
}

// localStrategy keeps changes in memory only. lookup reads the provider's
// current list.
type localStrategy[T any, P any] struct {
	coll   Collection[T, P]
	lookup func(id string) (T, bool)
	now    func() time.Time
}

func (s *localStrategy[T, P]) Remote() bool { return false }

func (s *localStrategy[T, P]) List(context.Context) ([]T, error) {
	return s.coll.Seed(), nil
}

func (s *localStrategy[T, P]) Count(context.Context) (int64, error) {
	return 0, errs.NewConfigMissingError("database")
}

func (s *localStrategy[T, P]) Insert(_ context.Context, item T) (T, error) {
	return s.coll.Stamp(item, uuid.NewString(), s.now()), nil
}

func (s *localStrategy[T, P]) InsertMany(context.Context, []T) (int, error) {
	return 0, errs.NewConfigMissingError("database")
}

func (s *localStrategy[T, P]) Update(_ context.Context, id string, patch P) (T, error) {
	current, ok := s.lookup(id)
	if !ok {
		var zero T
		return zero, errs.NewNotFound(s.coll.Entity)
	}
	return s.coll.Apply(current, patch), nil
}

func (s *localStrategy[T, P]) Delete(_ context.Context, id string) error {
	if _, ok := s.lookup(id); !ok {
		return errs.NewNotFound(s.coll.Entity)
	}
	return nil
}
