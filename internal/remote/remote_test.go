package remote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoCaesar/internal/lexicon"
	"GoCaesar/internal/ranker"
)

func localBreaker() *ranker.Ranker {
	return ranker.New(lexicon.NewScorer(lexicon.NewRegistry()))
}

func TestClient_UsesRemote(t *testing.T) {
	local := localBreaker()
	want := local.Analyze("Khoor, Zruog!", "en")

	var gotReq analyzeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, local, nil)
	got := c.Analyze("Khoor, Zruog!", "en")

	assert.Equal(t, "Khoor, Zruog!", gotReq.CipherText)
	assert.Equal(t, "en", gotReq.Lang)
	assert.Equal(t, want, got)
}

func TestClient_FallsBackWhenUnreachable(t *testing.T) {
	local := localBreaker()
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := NewClient(srv.URL, 200*time.Millisecond, local, nil)
	got := c.Analyze("Khoor, Zruog!", "en")

	assert.Equal(t, local.Analyze("Khoor, Zruog!", "en"), got)
	require.NotNil(t, got.Key)
	assert.Equal(t, 3, *got.Key)
}

func TestClient_FallsBackOnServerError(t *testing.T) {
	local := localBreaker()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, local, nil)
	got := c.Analyze("Khoor, Zruog!", "en")
	assert.Equal(t, local.Analyze("Khoor, Zruog!", "en"), got)
}

func TestClient_FallsBackOnMalformedBody(t *testing.T) {
	local := localBreaker()

	bodies := []string{
		`not json at all`,
		`{"score": "0.9"}`,
		`{"score": 7.5}`,
		`{"score": 0.5, "candidates": [{"key": 99, "plaintext": "x", "score": 0.5}]}`,
		`{"score": 0.5, "candidates": [{"key": 1, "score": 0.1}, {"key": 2, "score": 0.9}]}`,
	}
	for _, body := range bodies {
		body := body
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}))

		c := NewClient(srv.URL, time.Second, local, nil)
		got := c.Analyze("Khoor, Zruog!", "en")
		assert.Equal(t, local.Analyze("Khoor, Zruog!", "en"), got, "body %s", body)

		srv.Close()
	}
}

func TestClient_FallbackMatchesLocalContract(t *testing.T) {
	// Whether the remote answers or not, the caller sees the same ranking
	// contract for the same input.
	local := localBreaker()
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(local.Analyze(req.CipherText, req.Lang))
	}))
	defer up.Close()

	down := NewClient("http://127.0.0.1:1", 200*time.Millisecond, local, nil)
	viaRemote := NewClient(up.URL, time.Second, local, nil)

	for _, input := range []string{"Khoor, Zruog!", "12345!!!", "Frperg zrffntr"} {
		assert.Equal(t, down.Analyze(input, "en"), viaRemote.Analyze(input, "en"), "input %q", input)
	}
}
