// Package crud implements the Create/Read/Update/Delete request lifecycle
// shared by the carousel, post and team endpoints. Each endpoint supplies a
// Resource descriptor; the handler owns the flow: validate the form, move
// the image through the media relay, then touch the store.
package crud

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vanshika704/gdg/internal/domain"
	"github.com/vanshika704/gdg/internal/media"
	"github.com/vanshika704/gdg/internal/store"
)

// Resource describes one managed entity type.
type Resource[T any] struct {
	// Singular and Plural key the JSON response bodies ("carousel",
	// "carousels").
	Singular string
	Plural   string

	// Folder is the media-host folder uploads for this resource land in.
	Folder string

	// FromForm builds a new record from the multipart form, without the
	// image. An error means a required field is missing or invalid.
	FromForm func(c *gin.Context) (*T, error)

	// ApplyForm overwrites only the fields present in the form.
	ApplyForm func(c *gin.Context, rec *T)

	// Image points at the record's image URL field.
	Image func(rec *T) *string
}

type Handler[T any] struct {
	store store.Store[T]
	media media.Uploader
	res   Resource[T]
}

func NewHandler[T any](s store.Store[T], m media.Uploader, res Resource[T]) *Handler[T] {
	return &Handler[T]{store: s, media: m, res: res}
}

// Create handles POST /api/<resource>. The image upload must succeed before
// anything is persisted.
func (h *Handler[T]) Create(c *gin.Context) {
	rec, err := h.res.FromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	url, err := h.upload(c, file)
	if err != nil {
		slog.Error("image upload failed", "resource", h.res.Singular, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image"})
		return
	}
	*h.res.Image(rec) = url

	if err := h.store.Create(c.Request.Context(), rec); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{h.res.Singular: rec})
}

// List handles GET /api/<resource>: every record, newest first.
func (h *Handler[T]) List(c *gin.Context) {
	recs, err := h.store.List(c.Request.Context())
	if err != nil {
		slog.Error("list failed", "resource", h.res.Singular, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching " + h.res.Plural})
		return
	}
	c.JSON(http.StatusOK, gin.H{h.res.Plural: recs})
}

// Update handles PUT /api/<resource>?id=. Fields absent from the form keep
// their stored value. A new image is uploaded before the old asset is
// removed, so a failed upload never leaves the record pointing at nothing;
// the old-asset delete is best effort.
func (h *Handler[T]) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.res.Singular + " ID is required"})
		return
	}

	rec, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": h.res.Singular + " not found"})
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.res.ApplyForm(c, rec)

	var oldImage string
	if file, ferr := c.FormFile("image"); ferr == nil {
		url, uerr := h.upload(c, file)
		if uerr != nil {
			slog.Error("image upload failed", "resource", h.res.Singular, "error", uerr)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image"})
			return
		}
		oldImage = *h.res.Image(rec)
		*h.res.Image(rec) = url
	}

	if err := h.store.Save(c.Request.Context(), rec); err != nil {
		h.storeError(c, err)
		return
	}

	if oldImage != "" {
		h.cleanupAsset(c, oldImage)
	}

	c.JSON(http.StatusOK, gin.H{h.res.Singular: rec})
}

// Delete handles DELETE /api/<resource>?id=. The database record goes first;
// a remote asset that refuses to die is logged and left orphaned.
func (h *Handler[T]) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.res.Singular + " ID is required"})
		return
	}

	rec, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": h.res.Singular + " not found"})
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.storeError(c, err)
		return
	}

	if img := *h.res.Image(rec); img != "" {
		h.cleanupAsset(c, img)
	}

	c.JSON(http.StatusOK, gin.H{"message": h.res.Singular + " deleted successfully"})
}

func (h *Handler[T]) upload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return h.media.Upload(c.Request.Context(), h.res.Folder, file.Filename, f, file.Size, file.Header.Get("Content-Type"))
}

func (h *Handler[T]) cleanupAsset(c *gin.Context, url string) {
	if err := h.media.Delete(c.Request.Context(), url); err != nil {
		slog.Error("failed to delete media asset", "resource", h.res.Singular, "url", url, "error", err)
	}
}

func (h *Handler[T]) storeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
		return
	}
	slog.Error("store operation failed", "resource", h.res.Singular, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing " + h.res.Singular})
}
