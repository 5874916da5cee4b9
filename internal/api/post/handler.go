package post

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/vanshika704/gdg/internal/api/crud"
	"github.com/vanshika704/gdg/internal/domain/post"
	"github.com/vanshika704/gdg/internal/media"
	"github.com/vanshika704/gdg/internal/store"
)

// NewHandler wires the CRUD lifecycle for Instagram-style posts.
func NewHandler(s store.Store[post.Post], m media.Uploader) *crud.Handler[post.Post] {
	return crud.NewHandler(s, m, crud.Resource[post.Post]{
		Singular:  "post",
		Plural:    "posts",
		Folder:    "posts",
		FromForm:  fromForm,
		ApplyForm: applyForm,
		Image:     func(p *post.Post) *string { return &p.Image },
	})
}

// SplitTags turns the single form field into the stored list. Plain split on
// commas, matching what the admin form produces; no trimming or dedup.
func SplitTags(s string) []string {
	return strings.Split(s, ",")
}

func fromForm(c *gin.Context) (*post.Post, error) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	tags := c.PostForm("tags")
	if title == "" || description == "" || tags == "" {
		return nil, errors.New("Missing required fields")
	}
	return &post.Post{
		Title:       title,
		Description: description,
		Tags:        datatypes.JSONSlice[string](SplitTags(tags)),
	}, nil
}

func applyForm(c *gin.Context, p *post.Post) {
	if v, ok := c.GetPostForm("title"); ok && v != "" {
		p.Title = v
	}
	if v, ok := c.GetPostForm("description"); ok && v != "" {
		p.Description = v
	}
	if v, ok := c.GetPostForm("tags"); ok && v != "" {
		p.Tags = datatypes.JSONSlice[string](SplitTags(v))
	}
}
