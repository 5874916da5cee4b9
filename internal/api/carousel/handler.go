package carousel

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/vanshika704/gdg/internal/api/crud"
	"github.com/vanshika704/gdg/internal/domain/carousel"
	"github.com/vanshika704/gdg/internal/media"
	"github.com/vanshika704/gdg/internal/store"
)

// NewHandler wires the CRUD lifecycle for home-page carousel items.
func NewHandler(s store.Store[carousel.Item], m media.Uploader) *crud.Handler[carousel.Item] {
	return crud.NewHandler(s, m, crud.Resource[carousel.Item]{
		Singular:  "carousel",
		Plural:    "carousels",
		Folder:    "carousel-images",
		FromForm:  fromForm,
		ApplyForm: applyForm,
		Image:     func(it *carousel.Item) *string { return &it.Image },
	})
}

func fromForm(c *gin.Context) (*carousel.Item, error) {
	title := c.PostForm("title")
	if title == "" {
		return nil, errors.New("Missing required fields")
	}
	return &carousel.Item{
		Title: title,
		Black: c.PostForm("black") == "true",
	}, nil
}

func applyForm(c *gin.Context, it *carousel.Item) {
	if v, ok := c.GetPostForm("title"); ok && v != "" {
		it.Title = v
	}
	if v, ok := c.GetPostForm("black"); ok {
		it.Black = v == "true"
	}
}
