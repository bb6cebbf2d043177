// internal/score/rest.go
package score

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTable — таблица, которую использует NewRESTStore.
const DefaultTable = "game_scores"

// RESTStore upserts rows through a PostgREST-style HTTP API: a POST with
// on_conflict=user_id,game_type and a merge-duplicates preference.
type RESTStore struct {
	baseURL string
	key     string
	table   string
	client  *http.Client
}

// NewRESTStore talks to baseURL (e.g. https://project.example.co). key is sent both as
// apikey and as a bearer token. A nil client gets a 10 second timeout.
func NewRESTStore(baseURL, key string, client *http.Client) *RESTStore {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RESTStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		table:   DefaultTable,
		client:  client,
	}
}

func (s *RESTStore) endpoint() string {
	return s.baseURL + "/rest/v1/" + s.table
}

func (s *RESTStore) authorize(req *http.Request) {
	if s.key == "" {
		return
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
}

func (s *RESTStore) Upsert(ctx context.Context, rec Record) error {
	if rec.At.IsZero() {
		rec.At = time.Now().UTC()
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	q := url.Values{}
	q.Set("on_conflict", "user_id,game_type")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint()+"?"+q.Encode(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: upsert status %d: %s", ErrStoreUnavailable, resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}

func (s *RESTStore) Best(ctx context.Context, key Key) (Record, bool, error) {
	q := url.Values{}
	q.Set("user_id", "eq."+key.UserID)
	q.Set("game_type", "eq."+key.GameType)
	q.Set("limit", "1")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint()+"?"+q.Encode(), nil)
	if err != nil {
		return Record{}, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return Record{}, false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return Record{}, false, fmt.Errorf("%w: select status %d", ErrStoreUnavailable, resp.StatusCode)
	}

	var rows []Record
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return Record{}, false, fmt.Errorf("decode rows: %w", err)
	}
	if len(rows) == 0 {
		return Record{}, false, nil
	}
	return rows[0], true, nil
}
