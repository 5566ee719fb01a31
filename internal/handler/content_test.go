package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tcprodojo/backend/internal/model"
)

func newTestimonialHandler() (*Content[model.Testimonial, *model.Testimonial], *fakeStore[model.Testimonial, *model.Testimonial]) {
	store := &fakeStore[model.Testimonial, *model.Testimonial]{}
	return NewContent[model.Testimonial]("testimonial", store), store
}

func TestContentCreateAssignsIdentity(t *testing.T) {
	h, store := newTestimonialHandler()

	body := []byte(`{
		"name": "Test Student",
		"role": "Professional Wrestler",
		"text": "Trained here for two years.",
		"photoUrl": "https://cdn.example/photo.jpg",
		"videoUrl": "https://cdn.example/clip.mp4"
	}`)
	c, rec := newContext(http.MethodPost, "/api/admin/testimonials", body)

	err := h.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got model.Testimonial
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Nil(t, got.UpdatedAt)
	assert.Equal(t, "Test Student", got.Name)
	assert.Equal(t, "https://cdn.example/photo.jpg", got.PhotoURL)
	assert.Equal(t, "https://cdn.example/clip.mp4", got.VideoURL)

	// A client-supplied id must not survive creation.
	body = []byte(`{"id":"attacker-chosen","name":"A","role":"B","text":"C"}`)
	c, rec = newContext(http.MethodPost, "/api/admin/testimonials", body)
	assert.NoError(t, h.Create(c))
	var second model.Testimonial
	_ = json.Unmarshal(rec.Body.Bytes(), &second)
	assert.NotEqual(t, "attacker-chosen", second.ID)
	assert.NotEqual(t, got.ID, second.ID)
	assert.Len(t, store.items, 2)
}

func TestContentCreateValidation(t *testing.T) {
	h, store := newTestimonialHandler()

	// Missing required fields fail schema validation.
	c, rec := newContext(http.MethodPost, "/api/admin/testimonials", []byte(`{"name":"No Role"}`))
	err := h.Create(c)
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(err, rec))
	assert.Empty(t, store.items)

	// A body that is not JSON at all is a bind failure.
	c, rec = newContext(http.MethodPost, "/api/admin/testimonials", []byte(`{not json`))
	err = h.Create(c)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err, rec))
}

func TestContentCreateStoreFailureSurfaces(t *testing.T) {
	h, store := newTestimonialHandler()
	store.err = errors.New("connection reset")

	body := []byte(`{"name":"A","role":"B","text":"C"}`)
	c, rec := newContext(http.MethodPost, "/api/admin/testimonials", body)
	assert.NoError(t, h.Create(c))
	// Write failures are reported to the caller, never masked as success.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestContentListReflectsCreates(t *testing.T) {
	h, _ := newTestimonialHandler()

	body := []byte(`{"name":"A","role":"B","text":"C"}`)
	c, rec := newContext(http.MethodPost, "/api/admin/testimonials", body)
	assert.NoError(t, h.Create(c))
	var created model.Testimonial
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	c, rec = newContext(http.MethodGet, "/api/admin/testimonials", nil)
	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var listed []model.Testimonial
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decoding list failed: %v", err)
	}
	assert.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, "A", listed[0].Name)
}

// Gallery items (and coaches, success stories, endorsements) list in
// ascending displayOrder regardless of insertion order.
func TestContentListDisplayOrderAscending(t *testing.T) {
	store := &fakeStore[model.GalleryItem, *model.GalleryItem]{
		less: func(a, b *model.GalleryItem) bool { return a.DisplayOrder < b.DisplayOrder },
	}
	h := NewContent[model.GalleryItem]("gallery item", store)

	for _, order := range []int{3, 1, 2} {
		body := fmt.Sprintf(`{"title":"photo %d","section":"training","type":"image","url":"https://cdn.example/%d.jpg","displayOrder":%d}`,
			order, order, order)
		c, rec := newContext(http.MethodPost, "/api/admin/gallery", []byte(body))
		assert.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	c, rec := newContext(http.MethodGet, "/api/gallery", nil)
	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var listed []model.GalleryItem
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decoding list failed: %v", err)
	}
	assert.Len(t, listed, 3)
	for i := 1; i < len(listed); i++ {
		assert.LessOrEqual(t, listed[i-1].DisplayOrder, listed[i].DisplayOrder)
	}
}

func TestContentUpdateReplacesInFull(t *testing.T) {
	h, store := newTestimonialHandler()

	body := []byte(`{"name":"A","role":"B","text":"C","photoUrl":"https://cdn.example/a.jpg"}`)
	c, rec := newContext(http.MethodPost, "/api/admin/testimonials", body)
	assert.NoError(t, h.Create(c))
	var created model.Testimonial
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	// The replacement omits photoUrl; after the update it must be gone.
	body = []byte(`{"name":"A2","role":"B2","text":"C2"}`)
	c, rec = newContext(http.MethodPut, "/api/admin/testimonials/"+created.ID, body)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated model.Testimonial
	_ = json.Unmarshal(rec.Body.Bytes(), &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "A2", updated.Name)
	assert.Empty(t, updated.PhotoURL)
	assert.NotNil(t, updated.UpdatedAt)

	assert.Len(t, store.items, 1)
	assert.Equal(t, "A2", store.items[0].Name)
	assert.Empty(t, store.items[0].PhotoURL)
}

func TestContentUpdateUnknownID(t *testing.T) {
	h, _ := newTestimonialHandler()

	body := []byte(`{"name":"A","role":"B","text":"C"}`)
	c, rec := newContext(http.MethodPut, "/api/admin/testimonials/nope", body)
	c.SetParamNames("id")
	c.SetParamValues("nope")
	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "testimonial not found")
}

func TestContentDelete(t *testing.T) {
	h, store := newTestimonialHandler()

	body := []byte(`{"name":"A","role":"B","text":"C"}`)
	c, rec := newContext(http.MethodPost, "/api/admin/testimonials", body)
	assert.NoError(t, h.Create(c))
	var created model.Testimonial
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	c, rec = newContext(http.MethodDelete, "/api/admin/testimonials/"+created.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.items)

	// Deleting it again is a 404.
	c, rec = newContext(http.MethodDelete, "/api/admin/testimonials/"+created.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingCreatePublic(t *testing.T) {
	store := &fakeStore[model.Booking, *model.Booking]{}
	h := NewContent[model.Booking]("booking", store)

	body := []byte(`{"class_id":3,"name":"New Student","email":"new@student.example","date":"2025-09-02"}`)
	c, rec := newContext(http.MethodPost, "/api/bookings", body)
	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got model.Booking
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, 3, got.ClassID)

	// class_id is required; zero fails validation.
	body = []byte(`{"name":"New Student","email":"new@student.example","date":"2025-09-02"}`)
	c, rec = newContext(http.MethodPost, "/api/bookings", body)
	err := h.Create(c)
	assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(err, rec))
}
