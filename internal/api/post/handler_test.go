package post

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/vanshika704/gdg/internal/domain/post"
	"github.com/vanshika704/gdg/internal/store"
)

type fakeUploader struct {
	uploads int
}

func (f *fakeUploader) Upload(_ context.Context, folder, _ string, _ io.Reader, _ int64, _ string) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://media.test/assets/%s/upload-%d.png", folder, f.uploads), nil
}

func (f *fakeUploader) Delete(_ context.Context, _ string) error { return nil }

func newMemStore() *store.Memory[post.Post] {
	return store.NewMemory(
		func(p *post.Post) *string { return &p.ID },
		func(p *post.Post) *time.Time { return &p.CreatedAt },
	)
}

func newRouter(s store.Store[post.Post], up *fakeUploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, up)
	r := gin.New()
	r.POST("/api/post", h.Create)
	r.GET("/api/post", h.List)
	r.PUT("/api/post", h.Update)
	r.DELETE("/api/post", h.Delete)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withImage {
		fw, err := w.CreateFormFile("image", "photo.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("not really a png"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"go", "web", "gdg"}, SplitTags("go,web,gdg"))
	// no trimming or dedup: the stored list mirrors the raw input
	assert.Equal(t, []string{" go", " go"}, SplitTags(" go, go"))
	assert.Equal(t, []string{"solo"}, SplitTags("solo"))
}

func TestCreateSplitsTags(t *testing.T) {
	mem := newMemStore()
	r := newRouter(mem, &fakeUploader{})

	body, ct := multipartBody(t, map[string]string{
		"title":       "DevFest recap",
		"description": "What a weekend",
		"tags":        "devfest,community,2025",
	}, true)
	req := httptest.NewRequest(http.MethodPost, "/api/post", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	recs, _ := mem.List(context.Background())
	require.Len(t, recs, 1)
	assert.Equal(t, datatypes.JSONSlice[string]{"devfest", "community", "2025"}, recs[0].Tags)
}

func TestCreateMissingTags(t *testing.T) {
	mem := newMemStore()
	r := newRouter(mem, &fakeUploader{})

	body, ct := multipartBody(t, map[string]string{"title": "t", "description": "d"}, true)
	req := httptest.NewRequest(http.MethodPost, "/api/post", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	recs, _ := mem.List(context.Background())
	assert.Empty(t, recs)
}

func TestUpdateTagsOnlyPreservesRest(t *testing.T) {
	mem := newMemStore()
	r := newRouter(mem, &fakeUploader{})

	p := post.Post{
		Title:       "original title",
		Description: "original description",
		Image:       "https://media.test/assets/posts/orig.png",
		Tags:        datatypes.JSONSlice[string]{"old"},
	}
	require.NoError(t, mem.Create(context.Background(), &p))

	body, ct := multipartBody(t, map[string]string{"tags": "a,b,c"}, false)
	req := httptest.NewRequest(http.MethodPut, "/api/post?id="+p.ID, body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	got, err := mem.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, datatypes.JSONSlice[string]{"a", "b", "c"}, got.Tags)
	assert.Equal(t, "original title", got.Title)
	assert.Equal(t, "original description", got.Description)
	assert.Equal(t, "https://media.test/assets/posts/orig.png", got.Image)
}

func TestListNewestFirst(t *testing.T) {
	mem := newMemStore()
	r := newRouter(mem, &fakeUploader{})

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		p := post.Post{Title: title, Description: "d", Image: "x", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, mem.Create(context.Background(), &p))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/post", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Posts []post.Post `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Posts, 3)
	assert.Equal(t, "third", resp.Posts[0].Title)
	assert.Equal(t, "first", resp.Posts[2].Title)
}
