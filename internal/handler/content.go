package handler // handler package exposes the HTTP surface over the repositories

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tcprodojo/backend/internal/repository"
)

// dbTimeout bounds every repository call made from a handler.
const dbTimeout = 5 * time.Second

// ContentStore is the repository contract the generic handler drives.  The
// real implementation is *repository.Content; tests substitute an in-memory
// fake.
type ContentStore[E any, PT repository.Ptr[E]] interface {
	List(ctx context.Context) ([]PT, error)
	Create(ctx context.Context, e PT) error
	Update(ctx context.Context, id string, e PT) error
	Delete(ctx context.Context, id string) error
}

// Content serves CRUD for one entity type.  The same handler backs the admin
// routes and the public read-only projections; the projection is identical
// on both.  name is the lower-case entity name used in messages ("event",
// "gallery item", ...).
type Content[E any, PT repository.Ptr[E]] struct {
	store ContentStore[E, PT]
	name  string
}

func NewContent[E any, PT repository.Ptr[E]](name string, store ContentStore[E, PT]) *Content[E, PT] {
	return &Content[E, PT]{store: store, name: name}
}

// List handles GET requests and returns every document in the collection,
// ordered by display order where the entity has one.
func (h *Content[E, PT]) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	items, err := h.store.List(ctx)
	if err != nil {
		c.Logger().Errorf("list %ss: %v", h.name, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST requests.  The repository assigns identifier and
// creation time; whatever the client sent for those fields is discarded.
func (h *Content[E, PT]) Create(c echo.Context) error {
	e := PT(new(E))
	if err := c.Bind(e); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(e); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.store.Create(ctx, e); err != nil {
		// Persistence failures are surfaced, not swallowed: a caller must
		// never be told a booking or message was recorded when it was not.
		c.Logger().Errorf("create %s: %v", h.name, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create " + h.name})
	}
	return c.JSON(http.StatusCreated, e)
}

// Update handles PUT requests.  The submitted document replaces the stored
// one in full; the response echoes the submission rather than re-reading
// storage.
func (h *Content[E, PT]) Update(c echo.Context) error {
	id := c.Param("id")
	e := PT(new(E))
	if err := c.Bind(e); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(e); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.store.Update(ctx, id, e); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": h.name + " not found"})
		}
		c.Logger().Errorf("update %s %s: %v", h.name, id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, e)
}

// Delete handles DELETE requests by identifier.
func (h *Content[E, PT]) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": h.name + " not found"})
		}
		c.Logger().Errorf("delete %s %s: %v", h.name, id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": h.name + " deleted successfully"})
}
