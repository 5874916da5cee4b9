package team

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vanshika704/gdg/internal/api/crud"
	"github.com/vanshika704/gdg/internal/domain/team"
	"github.com/vanshika704/gdg/internal/media"
	"github.com/vanshika704/gdg/internal/store"
)

// NewHandler wires the CRUD lifecycle for core-team members.
func NewHandler(s store.Store[team.Member], m media.Uploader) *crud.Handler[team.Member] {
	return crud.NewHandler(s, m, crud.Resource[team.Member]{
		Singular:  "team",
		Plural:    "teams",
		Folder:    "team-members",
		FromForm:  fromForm,
		ApplyForm: applyForm,
		Image:     func(mem *team.Member) *string { return &mem.Image },
	})
}

func fromForm(c *gin.Context) (*team.Member, error) {
	name := c.PostForm("name")
	position := c.PostForm("position")
	batch := c.PostForm("batch")
	quote := c.PostForm("quote")
	if name == "" || position == "" || batch == "" || quote == "" {
		return nil, errors.New("Missing required fields")
	}
	if !team.ValidBatch(batch) {
		return nil, fmt.Errorf("batch must be one of: %s", strings.Join(team.Batches, ", "))
	}
	return &team.Member{
		Name:     name,
		Position: position,
		Batch:    batch,
		Quote:    quote,
	}, nil
}

func applyForm(c *gin.Context, mem *team.Member) {
	if v, ok := c.GetPostForm("name"); ok && v != "" {
		mem.Name = v
	}
	if v, ok := c.GetPostForm("position"); ok && v != "" {
		mem.Position = v
	}
	if v, ok := c.GetPostForm("batch"); ok && v != "" {
		mem.Batch = v
	}
	if v, ok := c.GetPostForm("quote"); ok && v != "" {
		mem.Quote = v
	}
}
