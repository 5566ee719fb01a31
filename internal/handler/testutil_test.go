package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tcprodojo/backend/internal/repository"
)

// newContext builds an echo context the way the server would see it, with
// the request validator installed.
func newContext(method, path string, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// fakeStore is an in-memory ContentStore mirroring the repository's
// semantics: Create assigns id and creation time, Update replaces in full
// and reports ErrNotFound for unknown ids.
type fakeStore[E any, PT repository.Ptr[E]] struct {
	items []PT
	less  func(a, b PT) bool // when set, List sorts like a configured sort field
	err   error              // when set, every call fails with it
}

func (s *fakeStore[E, PT]) List(ctx context.Context) ([]PT, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.less == nil {
		return s.items, nil
	}
	out := append([]PT(nil), s.items...)
	sort.Slice(out, func(i, j int) bool { return s.less(out[i], out[j]) })
	return out, nil
}

func (s *fakeStore[E, PT]) Create(ctx context.Context, e PT) error {
	if s.err != nil {
		return s.err
	}
	e.Init(uuid.NewString(), time.Now().UTC())
	s.items = append(s.items, e)
	return nil
}

func (s *fakeStore[E, PT]) Update(ctx context.Context, id string, e PT) error {
	if s.err != nil {
		return s.err
	}
	for i, it := range s.items {
		if it.EntityID() == id {
			e.Touch(id, time.Now().UTC())
			s.items[i] = e
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeStore[E, PT]) Delete(ctx context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	for i, it := range s.items {
		if it.EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// httpStatus extracts the status of a handler invocation regardless of
// whether the handler wrote the response itself or returned an HTTP error
// (as validation failures do).
func httpStatus(err error, rec *httptest.ResponseRecorder) int {
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he.Code
		}
		return http.StatusInternalServerError
	}
	return rec.Code
}
