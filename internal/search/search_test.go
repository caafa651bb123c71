package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/product_catalog/internal/models"
)

type recorded struct {
	Method string
	Path   string
	Body   string
}

type fakeES struct {
	mu       sync.Mutex
	requests []recorded
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recorded{Method: r.Method, Path: r.URL.Path, Body: string(body)})
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/products/_search":
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":1},"hits":[{"_source":{"id":3,"title":"Phone","price":500,"quantity":10,"category_id":1,"category_name":"Electronics"}}]}}`)
	case r.URL.Path == "/products/_doc/404":
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"result":"not_found"}`)
	case r.Method == http.MethodDelete:
		_, _ = io.WriteString(w, `{"result":"deleted"}`)
	default:
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	}
}

func (f *fakeES) last() recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func newTestIndex(t *testing.T) (*Index, *fakeES) {
	t.Helper()
	fake := &fakeES{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewIndex(client, "products"), fake
}

func TestIndex_IndexProduct(t *testing.T) {
	idx, fake := newTestIndex(t)

	p := &models.Product{
		Base:       models.Base{ID: 3},
		Title:      "Phone",
		Price:      500,
		Quantity:   10,
		CategoryID: 1,
		Category:   models.Category{Base: models.Base{ID: 1}, CategoryName: "Electronics"},
	}
	require.NoError(t, idx.IndexProduct(context.Background(), p))

	req := fake.last()
	assert.Equal(t, "/products/_doc/3", req.Path)

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(req.Body), &doc))
	assert.Equal(t, "Phone", doc.Title)
	assert.Equal(t, "Electronics", doc.CategoryName)
}

func TestIndex_DeleteMissingIsNotAnError(t *testing.T) {
	idx, fake := newTestIndex(t)

	require.NoError(t, idx.DeleteProduct(context.Background(), 404))
	assert.Equal(t, http.MethodDelete, fake.last().Method)
}

func TestIndex_Search(t *testing.T) {
	idx, fake := newTestIndex(t)

	total, items, err := idx.Search(context.Background(), "phon", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.EqualValues(t, 3, items[0].ID)
	assert.Equal(t, "Electronics", items[0].Category.CategoryName)

	var q map[string]any
	require.NoError(t, json.Unmarshal([]byte(fake.last().Body), &q))
	assert.EqualValues(t, 10, q["size"])
}
