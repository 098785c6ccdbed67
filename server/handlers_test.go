package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasival14/blog/pkg/db"
	"github.com/pasival14/blog/server/mocks"
)

type feedStub struct{ out string }

func (f *feedStub) GenerateRSS(posts []db.Post) (string, error) { return f.out, nil }

func setupTestServer(t *testing.T, database *mocks.DatabaseMock, sched *mocks.SchedulerMock) *httptest.Server {
	t.Helper()

	srv := New(Config{Listen: ":0", Timeout: 5 * time.Second, Version: "test"},
		database, sched, &feedStub{out: "<rss/>"})

	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_CreatePost(t *testing.T) {
	database := &mocks.DatabaseMock{
		CreatePostFunc: func(ctx context.Context, post *db.Post) error { return nil },
	}
	ts := setupTestServer(t, database, nil)

	t.Run("valid post", func(t *testing.T) {
		body := `{"author_id":"a1","title":"Hello","description":"first post","content_url":"https://example.com/hello"}`
		resp, err := http.Post(ts.URL+"/api/v1/posts", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		calls := database.CreatePostCalls()
		require.Len(t, calls, 1)
		assert.NotEmpty(t, calls[0].Post.ID, "server assigns the ID")
		assert.Equal(t, "Hello", calls[0].Post.Title)
	})

	t.Run("html stripped from title", func(t *testing.T) {
		body := `{"author_id":"a1","title":"<script>alert(1)</script>Hi","content_url":"https://example.com/x"}`
		resp, err := http.Post(ts.URL+"/api/v1/posts", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		calls := database.CreatePostCalls()
		last := calls[len(calls)-1]
		assert.Equal(t, "Hi", last.Post.Title)
	})

	t.Run("missing required fields", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/posts", "application/json", strings.NewReader(`{"title":"x"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/posts", "application/json", strings.NewReader("{broken"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_UpdatePost(t *testing.T) {
	existing := &db.Post{ID: "p1", AuthorID: "a1", Title: "Old", ContentURL: "https://example.com/v1"}
	database := &mocks.DatabaseMock{
		GetPostFunc: func(ctx context.Context, id string) (*db.Post, error) {
			if id != "p1" {
				return nil, fmt.Errorf("post not found")
			}
			p := *existing
			return &p, nil
		},
		UpdatePostFunc: func(ctx context.Context, post *db.Post, contentChanged bool) error { return nil },
	}
	ts := setupTestServer(t, database, nil)

	doPut := func(t *testing.T, id, body string) *http.Response {
		t.Helper()
		req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/v1/posts/"+id, strings.NewReader(body))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("same content url does not retrigger extraction", func(t *testing.T) {
		resp := doPut(t, "p1", `{"title":"New","content_url":"https://example.com/v1"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := database.UpdatePostCalls()
		require.Len(t, calls, 1)
		assert.False(t, calls[0].ContentChanged)
		assert.Equal(t, "New", calls[0].Post.Title)
	})

	t.Run("changed content url retriggers extraction", func(t *testing.T) {
		resp := doPut(t, "p1", `{"content_url":"https://example.com/v2"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := database.UpdatePostCalls()
		assert.True(t, calls[len(calls)-1].ContentChanged)
	})

	t.Run("unknown post", func(t *testing.T) {
		resp := doPut(t, "nope", `{"title":"x"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_GetAndListPosts(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetPostFunc: func(ctx context.Context, id string) (*db.Post, error) {
			if id == "p1" {
				return &db.Post{ID: "p1", Title: "Hello", Keywords: []string{"golang"}}, nil
			}
			return nil, fmt.Errorf("post not found")
		},
		GetRecentPostsFunc: func(ctx context.Context, limit int) ([]db.Post, error) {
			return []db.Post{{ID: "p2"}, {ID: "p1"}}, nil
		},
	}
	ts := setupTestServer(t, database, nil)

	t.Run("get one", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/posts/p1")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("get missing", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/posts/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("list default limit", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/posts")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := database.GetRecentPostsCalls()
		assert.Equal(t, 50, calls[len(calls)-1].Limit)
	})

	t.Run("list custom limit", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/posts?limit=5")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		calls := database.GetRecentPostsCalls()
		assert.Equal(t, 5, calls[len(calls)-1].Limit)
	})

	t.Run("list invalid limit", func(t *testing.T) {
		for _, bad := range []string{"0", "-1", "999", "abc"} {
			resp, err := http.Get(ts.URL + "/api/v1/posts?limit=" + bad)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "limit=%s", bad)
		}
	})
}

func TestServer_AddInteraction(t *testing.T) {
	database := &mocks.DatabaseMock{
		AddInteractionFunc: func(ctx context.Context, interaction *db.Interaction) error { return nil },
	}
	ts := setupTestServer(t, database, nil)

	t.Run("valid interaction", func(t *testing.T) {
		body := `{"user_id":"u1","post_id":"p1","type":"LIKE"}`
		resp, err := http.Post(ts.URL+"/api/v1/interactions", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		calls := database.AddInteractionCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, db.InteractionLike, calls[0].Interaction.InteractionType, "type normalized to lowercase")
		assert.False(t, calls[0].Interaction.CreatedAt.IsZero(), "timestamp assigned at ingest")
	})

	t.Run("unknown type", func(t *testing.T) {
		body := `{"user_id":"u1","post_id":"p1","type":"share"}`
		resp, err := http.Post(ts.URL+"/api/v1/interactions", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/interactions", "application/json", strings.NewReader(`{"type":"view"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_TrendingAndRecommendations(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetTrendingKeywordsFunc: func(ctx context.Context) (*db.TrendingKeywords, error) {
			return &db.TrendingKeywords{Keywords: db.Strings{"golang", "sqlite"}, WindowHours: 24, ComputedAt: time.Now().UTC()}, nil
		},
		GetRecommendationsFunc: func(ctx context.Context, userID string) (*db.Recommendation, error) {
			if userID == "u1" {
				return &db.Recommendation{UserID: "u1", PostIDs: db.Strings{"p1", "p2"}, Mode: db.ModePersonalized}, nil
			}
			return nil, nil
		},
	}
	ts := setupTestServer(t, database, nil)

	t.Run("trending", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/trending")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Keywords    []string `json:"keywords"`
			WindowHours int      `json:"window_hours"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, []string{"golang", "sqlite"}, body.Keywords)
		assert.Equal(t, 24, body.WindowHours)
	})

	t.Run("recommendations found", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/recommendations/u1")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			UserID  string   `json:"user_id"`
			PostIDs []string `json:"post_ids"`
			Mode    string   `json:"mode"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "u1", body.UserID)
		assert.Equal(t, []string{"p1", "p2"}, body.PostIDs)
		assert.Equal(t, db.ModePersonalized, body.Mode)
	})

	t.Run("recommendations missing", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/recommendations/nobody")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_TrendingNotComputed(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetTrendingKeywordsFunc: func(ctx context.Context) (*db.TrendingKeywords, error) { return nil, nil },
	}
	ts := setupTestServer(t, database, nil)

	resp, err := http.Get(ts.URL + "/api/v1/trending")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_RunJob(t *testing.T) {
	sched := &mocks.SchedulerMock{
		TrendingNowFunc:        func(ctx context.Context) error { return nil },
		RecommendationsNowFunc: func(ctx context.Context) error { return fmt.Errorf("recommendation generation already running") },
		ExtractNowFunc:         func(ctx context.Context) error { return fmt.Errorf("db locked") },
	}
	ts := setupTestServer(t, &mocks.DatabaseMock{}, sched)

	post := func(t *testing.T, job string) *http.Response {
		t.Helper()
		resp, err := http.Post(ts.URL+"/api/v1/jobs/"+job, "application/json", http.NoBody)
		require.NoError(t, err)
		return resp
	}

	t.Run("trending succeeds", func(t *testing.T) {
		resp := post(t, "trending")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, sched.TrendingNowCalls(), 1)
	})

	t.Run("in-flight job conflicts", func(t *testing.T) {
		resp := post(t, "recommendations")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("job failure", func(t *testing.T) {
		resp := post(t, "extraction")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("unknown job", func(t *testing.T) {
		resp := post(t, "compaction")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_RSS(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetRecentPostsFunc: func(ctx context.Context, limit int) ([]db.Post, error) {
			return []db.Post{{ID: "p1"}}, nil
		},
		GetKeywordsForPostsFunc: func(ctx context.Context, postIDs []string) map[string][]string {
			return map[string][]string{"p1": {"golang"}}
		},
	}
	ts := setupTestServer(t, database, nil)

	resp, err := http.Get(ts.URL + "/rss")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/rss+xml")
	assert.Len(t, database.GetKeywordsForPostsCalls(), 1, "keywords resolved for feed categories")
}

func TestServer_Status(t *testing.T) {
	ts := setupTestServer(t, &mocks.DatabaseMock{}, nil)

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestServer_Ping(t *testing.T) {
	ts := setupTestServer(t, &mocks.DatabaseMock{}, nil)

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
