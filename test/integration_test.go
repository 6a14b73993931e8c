package test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"member-qa/ai"
	"member-qa/domain/qa"
	"member-qa/feed"
	qahttp "member-qa/infrastructure/http"
	"member-qa/observability"
	"member-qa/repositories"
	"member-qa/services"
)

const feedPayload = `{
	"items": [
		{"id": "m1", "user_name": "Layla", "message": "I'm flying to London this Friday.", "timestamp": "2025-03-10T09:00:00Z"},
		{"id": "m2", "user_name": "Vikram", "message": "The weather has been lovely lately.", "timestamp": "2025-03-10T10:00:00Z"},
		{"id": "m3", "user_name": "", "message": "ghost record", "timestamp": "2025-03-10T11:00:00Z"}
	]
}`

// fakeBackend is an OpenAI-compatible chat completion endpoint whose reply
// is computed from the user message it receives.
func fakeBackend(t *testing.T, reply func(userContent string) string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		var body struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 2)

		answer := reply(body.Messages[1].Content)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": %q}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
		}`, answer)
	}))
	t.Cleanup(server.Close)
	return server
}

// newPipeline assembles the whole service in-process: real cache, real
// ranking, real generator, only the two upstreams are fakes.
func newPipeline(t *testing.T, feedURL, backendURL string) http.Handler {
	t.Helper()
	log := slog.Default()

	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	stats := &observability.PipelineStats{}
	cache := repositories.NewSnapshotCache(db, time.Minute, log)
	client := feed.NewClient(feedURL, 5*time.Second, log)
	provider := feed.NewSnapshotProvider(client, cache, stats, log)

	generator := ai.NewGenerator(ai.GeneratorOptions{
		APIKey:      "test-key",
		BaseURL:     backendURL + "/v1",
		Model:       "gpt-3.5-turbo",
		Temperature: 0.3,
		MaxTokens:   300,
	}, log)

	validator, err := services.NewGroundingValidator()
	require.NoError(t, err)

	service := services.NewQAService(
		provider,
		services.NewContextBuilder(6000, log),
		generator,
		validator,
		stats,
		log,
		5*time.Second,
	)
	return qahttp.NewRouter(service, stats, log)
}

func ask(router http.Handler, question string) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"question": %q}`, question)
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPipeline_GroundedAnswer(t *testing.T) {
	req := require.New(t)

	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedPayload))
	}))
	t.Cleanup(feedServer.Close)

	backend := fakeBackend(t, func(userContent string) string {
		// The dropped record must never reach the prompt; Layla's must.
		require.Contains(t, userContent, "- Layla (on 2025-03-10T09:00:00Z): I'm flying to London this Friday.")
		require.NotContains(t, userContent, "ghost record")
		return "Layla is flying to London this Friday."
	})

	router := newPipeline(t, feedServer.URL, backend.URL)
	rec := ask(router, "When is Layla planning her trip to London?")
	req.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Answer   string `json:"answer"`
		Grounded bool   `json:"grounded"`
	}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	req.True(resp.Grounded)
	req.Equal("Layla is flying to London this Friday.", resp.Answer)
}

func TestPipeline_UnsupportedQuestionFallsBack(t *testing.T) {
	req := require.New(t)

	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedPayload))
	}))
	t.Cleanup(feedServer.Close)

	backend := fakeBackend(t, func(string) string {
		return "I don't have enough information to answer that question about Vikram's cars."
	})

	router := newPipeline(t, feedServer.URL, backend.URL)
	rec := ask(router, "How many cars does Vikram have?")
	req.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Answer   string `json:"answer"`
		Grounded bool   `json:"grounded"`
	}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	req.False(resp.Grounded)
	req.Equal(qa.FallbackSentence, resp.Answer)
}

func TestPipeline_FeedDownIsBadGateway(t *testing.T) {
	req := require.New(t)

	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(feedServer.Close)

	backend := fakeBackend(t, func(string) string {
		t.Error("backend must not be reached when the feed is down")
		return ""
	})

	router := newPipeline(t, feedServer.URL, backend.URL)
	rec := ask(router, "When is Layla planning her trip to London?")
	req.Equal(http.StatusBadGateway, rec.Code)
	req.NotContains(rec.Body.String(), qa.FallbackSentence)
}

func TestPipeline_EmptyFeed(t *testing.T) {
	req := require.New(t)

	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	t.Cleanup(feedServer.Close)

	backend := fakeBackend(t, func(userContent string) string {
		require.Contains(t, userContent, "No member messages are available.")
		return qa.FallbackSentence
	})

	router := newPipeline(t, feedServer.URL, backend.URL)
	rec := ask(router, "Anyone planning a trip?")
	req.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Answer   string `json:"answer"`
		Grounded bool   `json:"grounded"`
	}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	req.False(resp.Grounded)
	req.Equal(qa.FallbackSentence, resp.Answer)
}

func TestPipeline_SecondQuestionHitsCache(t *testing.T) {
	req := require.New(t)

	var fetches int
	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fetches++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedPayload))
	}))
	t.Cleanup(feedServer.Close)

	backend := fakeBackend(t, func(string) string {
		return "This Friday."
	})

	router := newPipeline(t, feedServer.URL, backend.URL)
	req.Equal(http.StatusOK, ask(router, "When is Layla leaving?").Code)
	req.Equal(http.StatusOK, ask(router, "When is Layla leaving?").Code)
	req.Equal(1, fetches)
}
