package web

import (
	"context"
	"encoding/json"
	"html/template"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/iiroan/folio/internal/content"
	"github.com/iiroan/folio/internal/prefs"
	"github.com/iiroan/folio/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T) (*Server, *prefs.Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	logger := log.New(io.Discard)
	store := prefs.Open(kv, prefs.WithLogger(logger))
	profile, err := content.Default()
	require.NoError(t, err)

	srv, err := New(store, profile, WithLogger(logger), WithAddr("127.0.0.1:0"))
	require.NoError(t, err)
	return srv, store, kv
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeSnapshot(t *testing.T, rr *httptest.ResponseRecorder) snapshotResponse {
	t.Helper()
	var got snapshotResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	return got
}

func TestNew_RequiresStoreAndProfile(t *testing.T) {
	_, err := New(nil, &content.Profile{})
	assert.Error(t, err)

	store := prefs.Open(nil, prefs.WithLogger(log.New(io.Discard)))
	_, err = New(store, nil)
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv, _, _ := newTestServer(t)
	rr := do(t, srv.Handler(), http.MethodGet, "/healthz", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestIndex_RootCarriesTags(t *testing.T) {
	srv, store, _ := newTestServer(t)

	rr := do(t, srv.Handler(), http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `<html lang="en" class="light business">`)
	assert.Equal(t, HintColorScheme, rr.Header().Get("Accept-CH"))

	require.NoError(t, store.SetDisplayMode(prefs.Party))
	rr = do(t, srv.Handler(), http.MethodGet, "/", nil, map[string]string{HintColorScheme: `"dark"`})
	assert.Contains(t, rr.Body.String(), `class="dark party"`)
}

func TestIndex_ExplicitAppearanceIgnoresHint(t *testing.T) {
	srv, store, _ := newTestServer(t)
	require.NoError(t, store.SetAppearanceMode(prefs.Light))

	rr := do(t, srv.Handler(), http.MethodGet, "/", nil, map[string]string{HintColorScheme: "dark"})
	assert.Contains(t, rr.Body.String(), `class="light business"`)
}

func TestIndex_ShowsCopyForMode(t *testing.T) {
	srv, store, _ := newTestServer(t)
	profile, err := content.Default()
	require.NoError(t, err)

	require.NoError(t, store.SetDisplayMode(prefs.Party))
	rr := do(t, srv.Handler(), http.MethodGet, "/", nil, nil)
	body := rr.Body.String()
	assert.Contains(t, body, profile.Name)
	assert.Contains(t, body, `value="party" aria-pressed="true"`)
	assert.Contains(t, body, `value="business" aria-pressed="false"`)
}

func TestIndex_RendersBioMarkdown(t *testing.T) {
	srv, store, _ := newTestServer(t)

	body := do(t, srv.Handler(), http.MethodGet, "/", nil, nil).Body.String()
	assert.Contains(t, body, "<h2>About</h2>")
	assert.Contains(t, body, "<strong>web applications</strong>")
	assert.Contains(t, body, "<li>Frontend: TypeScript, React</li>")
	assert.Contains(t, body, "<li>Backend: Go, Node.js, PostgreSQL</li>")
	assert.NotContains(t, body, "## About")
	assert.NotContains(t, body, "**web applications**")

	require.NoError(t, store.SetDisplayMode(prefs.Party))
	body = do(t, srv.Handler(), http.MethodGet, "/", nil, nil).Body.String()
	assert.Contains(t, body, "<em>background sparkle</em>")
	assert.Contains(t, body, "<code>fix typo (for real this time)</code>")
	assert.NotContains(t, body, ":tada:")
}

func TestMarkdown(t *testing.T) {
	assert.Equal(t, template.HTML(""), markdown("  \n"))

	out := string(markdown("Hello <script>alert(1)</script> **there**"))
	assert.Contains(t, out, "<strong>there</strong>")
	assert.NotContains(t, out, "<script>")

	out = string(markdown("- one\n- two"))
	assert.Contains(t, out, "<ul>")
	assert.Contains(t, out, "<li>one</li>")
	assert.Contains(t, out, "<li>two</li>")
}

func TestGetPreferences(t *testing.T) {
	srv, _, _ := newTestServer(t)

	got := decodeSnapshot(t, do(t, srv.Handler(), http.MethodGet, "/api/preferences", nil,
		map[string]string{HintColorScheme: `"dark"`}))
	assert.Equal(t, prefs.System, got.Appearance)
	assert.Equal(t, prefs.Dark, got.Resolved)
	assert.Equal(t, prefs.Business, got.Display)
	assert.Equal(t, []string{"dark", "business"}, got.Tags)
}

func TestPutPreferences(t *testing.T) {
	srv, store, kv := newTestServer(t)

	rr := do(t, srv.Handler(), http.MethodPut, "/api/preferences",
		strings.NewReader(`{"appearance":"dark"}`), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeSnapshot(t, rr)
	assert.Equal(t, prefs.Dark, got.Appearance)
	assert.Equal(t, prefs.Business, got.Display)

	rr = do(t, srv.Handler(), http.MethodPut, "/api/preferences",
		strings.NewReader(`{"display":" Party "}`), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, prefs.Preferences{Appearance: prefs.Dark, Display: prefs.Party}, store.Preferences())

	v, ok, err := kv.Get("fun-mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "party", v)
}

func TestPutPreferences_InvalidChangesNothing(t *testing.T) {
	srv, store, kv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"unknown appearance", `{"appearance":"sepia","display":"party"}`},
		{"unknown display", `{"appearance":"dark","display":"rave"}`},
		{"malformed", `{"appearance":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, srv.Handler(), http.MethodPut, "/api/preferences", strings.NewReader(tt.body), nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body map[string]map[string]any
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.NotEmpty(t, body["error"]["message"])

			assert.Equal(t, prefs.DefaultPreferences(), store.Preferences())
			_, ok, _ := kv.Get("vite-ui-theme")
			assert.False(t, ok)
		})
	}
}

func TestFormPost_Redirects(t *testing.T) {
	srv, store, _ := newTestServer(t)

	form := url.Values{"appearance": {"light"}}
	rr := do(t, srv.Handler(), http.MethodPost, "/preferences", strings.NewReader(form.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Equal(t, prefs.Light, store.Preferences().Appearance)

	form = url.Values{"display": {"neon"}}
	rr = do(t, srv.Handler(), http.MethodPost, "/preferences", strings.NewReader(form.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, prefs.Business, store.Preferences().Display)
}

func TestPartialUpdates_Concurrent(t *testing.T) {
	srv, store, _ := newTestServer(t)
	h := srv.Handler()
	start := prefs.Preferences{Appearance: prefs.Light, Display: prefs.Business}
	jsonHeader := map[string]string{"Content-Type": "application/json"}

	for round := 0; round < 200; round++ {
		require.NoError(t, store.Set(start))

		var wg sync.WaitGroup
		codes := make([]int, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			codes[0] = do(t, h, http.MethodPut, "/api/preferences", strings.NewReader(`{"appearance":"dark"}`), jsonHeader).Code
		}()
		go func() {
			defer wg.Done()
			form := url.Values{"display": {"party"}}
			codes[1] = do(t, h, http.MethodPost, "/preferences", strings.NewReader(form.Encode()),
				map[string]string{"Content-Type": "application/x-www-form-urlencoded"}).Code
		}()
		wg.Wait()

		require.Equal(t, []int{http.StatusOK, http.StatusSeeOther}, codes)
		require.Equal(t, prefs.Preferences{Appearance: prefs.Dark, Display: prefs.Party}, store.Preferences(), "round %d", round)
	}
}

func TestRequestAmbient(t *testing.T) {
	tests := []struct {
		hint string
		dark bool
	}{
		{"", false},
		{`"dark"`, true},
		{"dark", true},
		{`"light"`, false},
		{"no-preference", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.hint != "" {
			req.Header.Set(HintColorScheme, tt.hint)
		}
		assert.Equal(t, tt.dark, RequestAmbient(req).PrefersDark(), "hint %q", tt.hint)
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	srv, _, _ := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	client := &http.Client{Timeout: 2 * time.Second}
	require.Eventually(t, func() bool {
		resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	client.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
