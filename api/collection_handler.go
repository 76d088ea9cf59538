package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/sleeklegal-backend/content"
	"github.com/rpupo63/sleeklegal-backend/errs"
)

// collectionHandler serves one content provider. Reads are answered from
// the provider's current list; writes go through the provider so the list
// and the backend stay in step.
type collectionHandler[T any, P any] struct {
	responder Responder
	logger    zerolog.Logger
	provider  *content.Provider[T, P]
	idParam   string
	timeout   time.Duration
	filter    func(r *http.Request, items []T) []T
}

func newCollectionHandler[T any, P any](name string, provider *content.Provider[T, P], idParam string, timeout time.Duration) collectionHandler[T, P] {
	logger := log.With().Str("handlerName", name).Logger()
	return collectionHandler[T, P]{
		responder: NewResponder(logger),
		logger:    logger,
		provider:  provider,
		idParam:   idParam,
		timeout:   timeout,
	}
}

func (h collectionHandler[T, P]) withFilter(filter func(r *http.Request, items []T) []T) collectionHandler[T, P] {
	h.filter = filter
	return h
}

func (h collectionHandler[T, P]) opContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return r.Context(), func() {}
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

func (h collectionHandler[T, P]) source() string {
	if h.provider.Remote() {
		return "backend"
	}
	return "local"
}

func (h collectionHandler[T, P]) id(r *http.Request) (string, error) {
	id := chi.URLParam(r, h.idParam)
	if id == "" {
		return "", errs.NewBadRequestError("missing " + h.idParam)
	}
	return id, nil
}

func (h collectionHandler[T, P]) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := h.provider.List()
		if h.filter != nil {
			items = h.filter(r, items)
		}
		h.responder.WriteJSON(w, CollectionResponse[T]{
			Items:  items,
			Total:  len(items),
			Source: h.source(),
		})
	}
}

func (h collectionHandler[T, P]) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.id(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item, ok := h.provider.Get(id)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError(h.provider.Name()+" entry "+id))
			return
		}
		h.responder.WriteJSON(w, item)
	}
}

func (h collectionHandler[T, P]) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item T
		if err := decodeJSON(w, r, &item); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		ctx, cancel := h.opContext(r)
		defer cancel()

		created, err := h.provider.Add(ctx, item)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

func (h collectionHandler[T, P]) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.id(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch P
		if err := decodeJSON(w, r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		ctx, cancel := h.opContext(r)
		defer cancel()

		updated, err := h.provider.Update(ctx, id, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

func (h collectionHandler[T, P]) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.id(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		ctx, cancel := h.opContext(r)
		defer cancel()

		if err := h.provider.Delete(ctx, id); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, MessageResponse{
			Status:  "success",
			Message: h.provider.Name() + " entry deleted successfully",
		})
	}
}

func (h collectionHandler[T, P]) seed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := h.opContext(r)
		defer cancel()

		result, err := h.provider.Seed(ctx)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		status := http.StatusCreated
		if result.Skipped {
			status = http.StatusOK
		}
		h.responder.WriteJSONStatus(w, status, result)
	}
}

// refresh reloads from the backend. A failed reload still answers 200
// with the degraded state, since the site keeps serving bundled data.
func (h collectionHandler[T, P]) refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := h.opContext(r)
		defer cancel()

		if err := h.provider.Refresh(ctx); err != nil {
			h.logger.Warn().Err(err).Msg("refresh failed")
		}
		h.responder.WriteJSON(w, h.provider.State())
	}
}

func (h collectionHandler[T, P]) state() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.provider.State())
	}
}
