package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika704/gdg/config"
	"github.com/vanshika704/gdg/internal/domain/contact"
	"github.com/vanshika704/gdg/internal/store"
)

func newMemStore() *store.Memory[contact.Message] {
	return store.NewMemory(
		func(m *contact.Message) *string { return &m.ID },
		func(m *contact.Message) *time.Time { return &m.CreatedAt },
	)
}

func newRouter(s store.Store[contact.Message]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, config.SMTPConfig{}) // notifications off in tests
	r := gin.New()
	r.POST("/api/contact", h.Create)
	r.GET("/api/contact", h.List)
	r.PUT("/api/contact", h.Update)
	r.DELETE("/api/contact", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method, target string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRequiresAllFields(t *testing.T) {
	mem := newMemStore()
	r := newRouter(mem)

	for _, payload := range []map[string]string{
		{"email": "a@b.c", "message": "hi"},
		{"name": "A", "message": "hi"},
		{"name": "A", "email": "a@b.c"},
		{},
	} {
		w := doJSON(r, http.MethodPost, "/api/contact", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	recs, _ := mem.List(context.Background())
	assert.Empty(t, recs)
}

func TestCreatePersistsMessage(t *testing.T) {
	mem := newMemStore()
	r := newRouter(mem)

	w := doJSON(r, http.MethodPost, "/api/contact", map[string]string{
		"name": "Asha", "email": "asha@example.com", "message": "When is the next DevFest?",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	recs, _ := mem.List(context.Background())
	require.Len(t, recs, 1)
	assert.Equal(t, "Asha", recs[0].Name)
}

func TestListNewestFirst(t *testing.T) {
	mem := newMemStore()
	r := newRouter(mem)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		m := contact.Message{Name: name, Email: "e@x.y", Message: "m", CreatedAt: base.Add(time.Duration(i) * time.Second)}
		require.NoError(t, mem.Create(context.Background(), &m))
	}

	w := doJSON(r, http.MethodGet, "/api/contact", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Contacts []contact.Message `json:"contacts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Contacts, 3)
	assert.Equal(t, "third", resp.Contacts[0].Name)
	assert.Equal(t, "first", resp.Contacts[2].Name)
}

func TestUpdatePartialFields(t *testing.T) {
	mem := newMemStore()
	r := newRouter(mem)

	m := contact.Message{Name: "Asha", Email: "asha@example.com", Message: "original"}
	require.NoError(t, mem.Create(context.Background(), &m))

	w := doJSON(r, http.MethodPut, "/api/contact?id="+m.ID, map[string]string{"message": "edited"})
	require.Equal(t, http.StatusOK, w.Code)

	got, err := mem.Get(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Message)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, "asha@example.com", got.Email)
}

func TestDeleteNonexistentID(t *testing.T) {
	mem := newMemStore()
	r := newRouter(mem)

	m := contact.Message{Name: "keep", Email: "k@x.y", Message: "m"}
	require.NoError(t, mem.Create(context.Background(), &m))

	w := doJSON(r, http.MethodDelete, "/api/contact?id=does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	recs, _ := mem.List(context.Background())
	assert.Len(t, recs, 1, "no records may be affected by a failed delete")
}

func TestDeleteRequiresID(t *testing.T) {
	r := newRouter(newMemStore())
	w := doJSON(r, http.MethodDelete, "/api/contact", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
