package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Understanding Goroutine Scheduling</title></head>
<body>
<article>
<h1>Understanding Goroutine Scheduling</h1>
<p>The Go runtime multiplexes goroutines onto a small number of operating system
threads. Each processor owns a local run queue, and the scheduler steals work
from other queues when its own runs dry. This design keeps context switches
cheap and makes it practical to run hundreds of thousands of goroutines in a
single process without exhausting memory.</p>
<p>Blocking system calls hand the thread back to the runtime, which parks the
goroutine and resumes it once the call completes. Network pollers integrate
with the scheduler directly, so a goroutine waiting on a socket costs almost
nothing while idle. Understanding these mechanics helps explain why naive
thread-per-connection designs translate so well to Go.</p>
<p>Preemption arrived late to the runtime. Early versions only switched
goroutines at function call boundaries, which meant a tight loop could starve
every other goroutine on the same thread. Asynchronous preemption fixed this
by interrupting long-running goroutines at safe points.</p>
</article>
</body>
</html>`

func TestHTTPExtractor_Extract(t *testing.T) {
	e := NewHTTPExtractor(5*time.Second, "test-agent/1.0")

	t.Run("extracts article text", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(articleHTML))
		}))
		defer ts.Close()

		text, err := e.Extract(context.Background(), ts.URL)
		require.NoError(t, err)
		assert.Contains(t, text, "goroutines")
		assert.Contains(t, text, "Preemption")
		assert.NotContains(t, text, "<p>", "markup stripped")
	})

	t.Run("non-200 response", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer ts.Close()

		_, err := e.Extract(context.Background(), ts.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("empty page", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html><body></body></html>"))
		}))
		defer ts.Close()

		_, err := e.Extract(context.Background(), ts.URL)
		require.Error(t, err)
	})

	t.Run("invalid URL", func(t *testing.T) {
		_, err := e.Extract(context.Background(), "not-a-url")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid URL")
	})

	t.Run("unreachable host", func(t *testing.T) {
		_, err := e.Extract(context.Background(), "http://127.0.0.1:1")
		require.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := e.Extract(ctx, ts.URL)
		require.Error(t, err)
	})
}

func TestNewHTTPExtractor_DefaultUserAgent(t *testing.T) {
	e := NewHTTPExtractor(time.Second, "")
	assert.True(t, strings.HasPrefix(e.userAgent, "Mozilla/5.0"))
}
