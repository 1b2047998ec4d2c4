package panel

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreEvictsOldest(t *testing.T) {
	s := NewStore(3)
	for _, title := range []string{"a", "b", "c", "d"} {
		s.Add(New(TypeDetail, title, nil))
	}

	list := s.List()
	require.Len(t, list, 3)
	// Newest first; "a" was evicted.
	assert.Equal(t, "d", list[0].Title)
	assert.Equal(t, "b", list[2].Title)
}

func TestStoreGet(t *testing.T) {
	s := NewStore(0)
	p := s.Add(New(TypeChart, "sales", ChartPayload{Geometry: "bar"}))

	got, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, TypeChart, got.Type)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestHostRoutes(t *testing.T) {
	s := NewStore(0)
	stored := s.Add(New(TypeLineage, "orders lineage", LineagePayload{NodeCount: 3, EdgeCount: 2}))
	srv := httptest.NewServer(NewHost(s).Router())
	defer srv.Close()

	t.Run("List", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/panels")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var panels []Panel
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&panels))
		require.Len(t, panels, 1)
		assert.Equal(t, TypeLineage, panels[0].Type)
	})

	t.Run("GetByID", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/panels/" + stored.ID)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("GetMissing", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/panels/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Healthz", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestPanelJSONDiscriminant(t *testing.T) {
	p := New(TypeChart, "t", ChartPayload{Geometry: "line"})
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "chart", decoded["panelType"])
}
