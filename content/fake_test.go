package content

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rpupo63/sleeklegal-backend/errs"
	"github.com/rpupo63/sleeklegal-backend/models"
)

// fakeGateway is an in-memory Gateway. Hooks run outside the lock so a
// test can park a call mid-flight.
type fakeGateway[R any] struct {
	mu        sync.Mutex
	available bool
	rows      []R
	idOf      func(R) string
	stamp     func(R, string) R
	patch     func(R, map[string]any) R

	listErr   error
	insertErr error
	updateErr error
	deleteErr error

	listHook   func()
	insertHook func()
	calls      map[string]int
}

func (f *fakeGateway[R]) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[op]++
}

func (f *fakeGateway[R]) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeGateway[R]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func (f *fakeGateway[R]) IsAvailable() bool {
	return f.available
}

func (f *fakeGateway[R]) ListAll(ctx context.Context, orderBy string) ([]R, error) {
	f.record("list")
	if f.listHook != nil {
		f.listHook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]R{}, f.rows...), nil
}

func (f *fakeGateway[R]) Count(ctx context.Context) (int64, error) {
	f.record("count")
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows)), nil
}

func (f *fakeGateway[R]) Insert(ctx context.Context, row R) (R, error) {
	f.record("insert")
	if f.insertHook != nil {
		f.insertHook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		var zero R
		return zero, f.insertErr
	}
	row = f.stamp(row, uuid.NewString())
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeGateway[R]) InsertMany(ctx context.Context, rows []R) ([]R, error) {
	f.record("insertMany")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	stored := make([]R, 0, len(rows))
	for _, r := range rows {
		stored = append(stored, f.stamp(r, uuid.NewString()))
	}
	f.rows = append(f.rows, stored...)
	return stored, nil
}

func (f *fakeGateway[R]) Update(ctx context.Context, id string, columns map[string]any) (R, error) {
	f.record("update")
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero R
	if f.updateErr != nil {
		return zero, f.updateErr
	}
	for i, r := range f.rows {
		if f.idOf(r) == id {
			f.rows[i] = f.patch(r, columns)
			return f.rows[i], nil
		}
	}
	return zero, errs.NewNotFound("row")
}

func (f *fakeGateway[R]) Delete(ctx context.Context, id string) error {
	f.record("delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.rows {
		if f.idOf(r) == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return errs.NewNotFound("row")
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newAttorneyGateway(rows ...models.AttorneyRow) *fakeGateway[models.AttorneyRow] {
	return &fakeGateway[models.AttorneyRow]{
		available: true,
		rows:      rows,
		idOf:      func(r models.AttorneyRow) string { return r.ID },
		stamp: func(r models.AttorneyRow, id string) models.AttorneyRow {
			return r.WithIdentity(id, fixedNow)
		},
		patch: func(r models.AttorneyRow, cols map[string]any) models.AttorneyRow {
			if v, ok := cols["name"].(string); ok {
				r.Name = v
			}
			if v, ok := cols["specialty"].(string); ok {
				r.Specialty = v
			}
			if v, ok := cols["image_url"].(string); ok {
				r.ImageURL = v
			}
			return r
		},
	}
}

func newBlogPostGateway(rows ...models.BlogPostRow) *fakeGateway[models.BlogPostRow] {
	return &fakeGateway[models.BlogPostRow]{
		available: true,
		rows:      rows,
		idOf:      func(r models.BlogPostRow) string { return r.ID },
		stamp: func(r models.BlogPostRow, id string) models.BlogPostRow {
			return r.WithIdentity(id, fixedNow)
		},
		patch: func(r models.BlogPostRow, cols map[string]any) models.BlogPostRow {
			if v, ok := cols["title"].(string); ok {
				r.Title = v
			}
			return r
		},
	}
}

func attorneyRow(id, name string) models.AttorneyRow {
	created := fixedNow
	return models.AttorneyRow{
		ID:        id,
		Name:      name,
		Position:  "Partner",
		Specialty: "Tax Law",
		Email:     "a@example.com",
		ImageURL:  "https://img.example.com/" + id,
		CreatedAt: &created,
	}
}

func newAttorney(name string) models.Attorney {
	return models.Attorney{
		Name:      name,
		Position:  "Associate",
		Specialty: "Family Law",
		Email:     "new@example.com",
	}
}

// recorder collects notifications
type recorder struct {
	mu  sync.Mutex
	got []Notification
}

func (r *recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *recorder) last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.got) == 0 {
		return Notification{}
	}
	return r.got[len(r.got)-1]
}
