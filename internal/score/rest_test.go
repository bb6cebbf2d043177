package score

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTStoreUpsert(t *testing.T) {
	var got Record
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/game_scores", r.URL.Path)
		assert.Equal(t, "user_id,game_type", r.URL.Query().Get("on_conflict"))
		assert.Contains(t, r.Header.Get("Prefer"), "resolution=merge-duplicates")
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewRESTStore(srv.URL+"/", "secret", srv.Client())
	err := s.Upsert(context.Background(), Record{UserID: "u1", GameType: "zombie", Score: 70, Level: 3, Coins: 12})
	require.NoError(t, err)

	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, 70, got.Score)
	assert.Equal(t, 3, got.Level)
	assert.False(t, got.At.IsZero())
}

func TestRESTStoreErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewRESTStore(srv.URL, "", srv.Client()).Upsert(context.Background(), Record{UserID: "u1", GameType: "zombie"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestRESTStoreBest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		if r.URL.Query().Get("user_id") == "eq.nobody" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		assert.Equal(t, "eq.zombie", r.URL.Query().Get("game_type"))
		_, _ = w.Write([]byte(`[{"user_id":"u1","game_type":"zombie","score":90}]`))
	}))
	defer srv.Close()

	s := NewRESTStore(srv.URL, "k", srv.Client())
	rec, found, err := s.Best(context.Background(), Key{UserID: "u1", GameType: "zombie"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 90, rec.Score)

	_, found, err = s.Best(context.Background(), Key{UserID: "nobody", GameType: "zombie"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRESTStoreUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewRESTStore(url, "", nil).Upsert(context.Background(), Record{UserID: "u1", GameType: "zombie"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
