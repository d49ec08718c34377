package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/metaboschema/internal/catalog"
	"github.com/at-ishikawa/metaboschema/internal/clipboard"
	"github.com/at-ishikawa/metaboschema/internal/diagram"
	"github.com/at-ishikawa/metaboschema/internal/language"
	"github.com/at-ishikawa/metaboschema/internal/metrics"
	mock_shell "github.com/at-ishikawa/metaboschema/internal/mocks/shell"
	"github.com/at-ishikawa/metaboschema/internal/shell"
)

func testDependencies() Dependencies {
	return Dependencies{
		Catalog:  catalog.MustLoadDefault(),
		Scene:    diagram.DefaultScene(),
		Messages: language.MustNewMessages(),
		Metrics:  metrics.New(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newTestServer(t *testing.T, cfg Config, deps Dependencies) *httptest.Server {
	t.Helper()
	s, err := New(cfg, deps)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func get(t *testing.T, client *http.Client, target string) (int, string) {
	t.Helper()
	resp, err := client.Get(target)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func post(t *testing.T, client *http.Client, target string, values url.Values) (int, string) {
	t.Helper()
	resp, err := client.PostForm(target, values)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func getState(t *testing.T, client *http.Client, base string) stateResponse {
	t.Helper()
	status, body := get(t, client, base+"/api/state")
	require.Equal(t, http.StatusOK, status)
	var state stateResponse
	require.NoError(t, json.Unmarshal([]byte(body), &state))
	return state
}

func TestNew(t *testing.T) {
	t.Run("missing dependencies", func(t *testing.T) {
		_, err := New(Config{}, Dependencies{})
		assert.Error(t, err)
	})

	t.Run("catalog without a record for every region", func(t *testing.T) {
		deps := testDependencies()
		cat, err := catalog.New(deps.Catalog.Records()[:3])
		require.NoError(t, err)
		deps.Catalog = cat

		_, err = New(Config{}, deps)
		assert.ErrorIs(t, err, shell.ErrOrphanRegion)
	})
}

func TestServer_SulfurScenario(t *testing.T) {
	ts := newTestServer(t, Config{}, testDependencies())
	client := newClient(t)

	status, body := get(t, client, ts.URL+"/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `dir="ltr"`)
	assert.Contains(t, body, "Select a functional group to view details")
	assert.Contains(t, body, `<form method="post" action="/regions/sulfur_ox"><button type="submit">Sulfur Oxidation</button></form>`)
	assert.Contains(t, body, `<form class="diagram-form" method="post" action="/click">`)
	assert.Contains(t, body, `<a class="button" href="/print">Print Reference</a>`)

	status, body = post(t, client, ts.URL+"/regions/sulfur_ox", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `<span class="badge">Sulfur Oxidation</span>`)
	assert.Contains(t, body, "<h2>Sulfur Oxidation</h2>")
	assert.Contains(t, body, "Sulfide -&gt; Sulfoxide -&gt; Sulfone.")
	assert.NotContains(t, body, "Select a functional group to view details")
	assert.Contains(t, body, `<button type="submit" class="selected" aria-pressed="true">Sulfur Oxidation</button>`)
	assert.Contains(t, body, `src="/diagram.svg?selected=sulfur_ox"`)

	status, body = post(t, client, ts.URL+"/language", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `dir="rtl"`)
	assert.Contains(t, body, "<h2>أكسدة الكبريت</h2>")
	assert.Contains(t, body, `<span class="badge">Sulfur Oxidation</span>`)

	status, body = post(t, client, ts.URL+"/regions/sulfur_ox", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "اختر مجموعة وظيفية لعرض التفاصيل")

	assert.Equal(t, stateResponse{
		Language:    "ar",
		Direction:   "rtl",
		Title:       "مسارات الأكسدة الأيضية",
		Placeholder: "اختر مجموعة وظيفية لعرض التفاصيل",
	}, getState(t, client, ts.URL))
}

func TestServer_Region_GetDoesNotSelect(t *testing.T) {
	ts := newTestServer(t, Config{}, testDependencies())
	client := newClient(t)

	status, _ := get(t, client, ts.URL+"/regions/sulfur_ox")
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "", getState(t, client, ts.URL).Selected)
}

func TestServer_Region_Unknown(t *testing.T) {
	ts := newTestServer(t, Config{}, testDependencies())
	client := newClient(t)

	post(t, client, ts.URL+"/regions/dealk_o", nil)
	status, _ := post(t, client, ts.URL+"/regions/nitro_reduction", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "dealk_o", getState(t, client, ts.URL).Selected)
}

func TestServer_Click(t *testing.T) {
	tests := []struct {
		name         string
		x            string
		y            string
		wantStatus   int
		wantSelected string
	}{
		{name: "hit", x: "240", y: "260", wantStatus: http.StatusOK, wantSelected: "sulfur_ox"},
		{name: "top-most region wins", x: "250", y: "200", wantStatus: http.StatusOK, wantSelected: "aromatic_ox"},
		{name: "empty space", x: "5", y: "5", wantStatus: http.StatusOK, wantSelected: ""},
		{name: "invalid coordinate", x: "left", y: "5", wantStatus: http.StatusBadRequest, wantSelected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, Config{}, testDependencies())
			client := newClient(t)

			status, _ := post(t, client, ts.URL+"/click", url.Values{"x": {tt.x}, "y": {tt.y}})
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantSelected, getState(t, client, ts.URL).Selected)
		})
	}
}

func TestServer_Copy(t *testing.T) {
	t.Run("success is shown once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		deps := testDependencies()
		deps.Clipboard = func() shell.Clipboard {
			m := mock_shell.NewMockClipboard(ctrl)
			m.EXPECT().WriteText(gomock.Any(), shell.Notation).Return(nil).AnyTimes()
			return m
		}
		ts := newTestServer(t, Config{}, deps)
		client := newClient(t)

		status, body := post(t, client, ts.URL+"/copy", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `<p class="notice ok" role="status">SMILES string copied!`)

		_, body = get(t, client, ts.URL+"/")
		assert.NotContains(t, body, "SMILES string copied!")
	})

	t.Run("manual mode shows the notation to copy", func(t *testing.T) {
		deps := testDependencies()
		deps.Clipboard = func() shell.Clipboard { return clipboard.Manual{} }
		ts := newTestServer(t, Config{}, deps)
		client := newClient(t)

		status, body := post(t, client, ts.URL+"/copy", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `<p class="notice manual" role="status">Select and copy the SMILES string: `+shell.Notation+`</p>`)
		assert.NotContains(t, body, "SMILES string copied!")
	})

	t.Run("failure is shown distinctly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		deps := testDependencies()
		deps.Clipboard = func() shell.Clipboard {
			m := mock_shell.NewMockClipboard(ctrl)
			m.EXPECT().WriteText(gomock.Any(), shell.Notation).Return(errors.New("no display")).AnyTimes()
			return m
		}
		ts := newTestServer(t, Config{}, deps)
		client := newClient(t)

		_, body := post(t, client, ts.URL+"/copy", nil)
		assert.Contains(t, body, `<p class="notice failed" role="status">Could not copy the SMILES string. Copy it manually: `+shell.Notation)
	})
}

func TestServer_Export(t *testing.T) {
	t.Run("streams the pdf", func(t *testing.T) {
		pdfPath := filepath.Join(t.TempDir(), "metaboschema-reference-en.pdf")
		require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4 test"), 0644))

		ctrl := gomock.NewController(t)
		deps := testDependencies()
		deps.Exporter = func(sessionID string) shell.Exporter {
			assert.NotEmpty(t, sessionID)
			m := mock_shell.NewMockExporter(ctrl)
			m.EXPECT().Export(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, v shell.View) (string, error) {
					assert.Equal(t, shell.ModePrint, v.Mode)
					return pdfPath, nil
				})
			return m
		}
		ts := newTestServer(t, Config{}, deps)
		client := newClient(t)

		resp, err := client.Get(ts.URL + "/export.pdf")
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Equal(t, `attachment; filename="metaboschema-reference-en.pdf"`, resp.Header.Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.4 test", string(body))
	})

	t.Run("failure redirects with a notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		deps := testDependencies()
		deps.Exporter = func(string) shell.Exporter {
			m := mock_shell.NewMockExporter(ctrl)
			m.EXPECT().Export(gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))
			return m
		}
		ts := newTestServer(t, Config{}, deps)
		client := newClient(t)

		status, body := get(t, client, ts.URL+"/export.pdf")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `<p class="notice failed" role="status">Could not export the reference document.</p>`)
	})
}

func TestServer_Print(t *testing.T) {
	ts := newTestServer(t, Config{}, testDependencies())
	client := newClient(t)

	status, body := get(t, client, ts.URL+"/print")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<h1>Complete Metabolic Reference</h1>")
	assert.Contains(t, body, "<h2>Aromatic Hydroxylation</h2>")
	assert.Contains(t, body, "<h2>Sulfur Oxidation</h2>")
	assert.Contains(t, body, "Generated by MetaboSchema")
	assert.Less(t, strings.Index(body, "<h2>Aromatic Hydroxylation</h2>"), strings.Index(body, "<h2>Sulfur Oxidation</h2>"))

	post(t, client, ts.URL+"/language", nil)
	_, body = get(t, client, ts.URL+"/print")
	assert.Contains(t, body, `dir="rtl"`)
	assert.Contains(t, body, "<h1>المرجع الكامل للأكسدة الأيضية</h1>")
	assert.Contains(t, body, "<h2>أكسدة الكبريت</h2>")
}

func TestServer_Diagram(t *testing.T) {
	ts := newTestServer(t, Config{}, testDependencies())
	client := newClient(t)

	resp, err := client.Get(ts.URL + "/diagram.svg")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(string(body), "<svg "))
	assert.NotContains(t, string(body), `opacity="0.3"`)
	assert.NotContains(t, string(body), "<a href=")

	post(t, client, ts.URL+"/regions/alkene_ox", nil)
	_, svg := get(t, client, ts.URL+"/diagram.svg")
	assert.Equal(t, 1, strings.Count(svg, `opacity="0.3"`))
}

func TestServer_State(t *testing.T) {
	ts := newTestServer(t, Config{}, testDependencies())
	client := newClient(t)

	post(t, client, ts.URL+"/regions/dealk_n", nil)
	got := getState(t, client, ts.URL)

	require.NotNil(t, got.Detail)
	assert.Equal(t, "dealk_n", got.Selected)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "Oxidative Dealkylation (N/O/S)", got.Detail.Category)
	assert.NotNil(t, got.Detail.Mechanism)
	assert.Empty(t, got.Placeholder)

	post(t, client, ts.URL+"/language", nil)
	got = getState(t, client, ts.URL)
	require.NotNil(t, got.Detail)
	assert.Nil(t, got.Detail.Mechanism)
}

func TestServer_Sessions(t *testing.T) {
	t.Run("browsers are independent", func(t *testing.T) {
		ts := newTestServer(t, Config{}, testDependencies())
		alice := newClient(t)
		bob := newClient(t)

		post(t, alice, ts.URL+"/regions/alcohol_ox", nil)
		post(t, bob, ts.URL+"/language", nil)

		assert.Equal(t, "alcohol_ox", getState(t, alice, ts.URL).Selected)
		assert.Equal(t, "en", getState(t, alice, ts.URL).Language)
		assert.Equal(t, "", getState(t, bob, ts.URL).Selected)
		assert.Equal(t, "ar", getState(t, bob, ts.URL).Language)
	})

	t.Run("least recently used session is evicted and released", func(t *testing.T) {
		released := make(chan string, 4)
		deps := testDependencies()
		deps.Release = func(id string) { released <- id }
		ts := newTestServer(t, Config{MaxSessions: 1}, deps)
		alice := newClient(t)
		bob := newClient(t)

		post(t, alice, ts.URL+"/regions/alcohol_ox", nil)
		aliceURL, err := url.Parse(ts.URL)
		require.NoError(t, err)
		aliceCookies := alice.Jar.Cookies(aliceURL)
		require.Len(t, aliceCookies, 1)

		get(t, bob, ts.URL+"/")
		select {
		case id := <-released:
			assert.Equal(t, aliceCookies[0].Value, id)
		case <-time.After(5 * time.Second):
			t.Fatal("the evicted session was not released")
		}

		assert.Equal(t, "", getState(t, alice, ts.URL).Selected)
	})

	t.Run("malformed cookie starts a new session", func(t *testing.T) {
		ts := newTestServer(t, Config{}, testDependencies())

		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/state", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "not-a-uuid"})
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())

		var cookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == sessionCookieName {
				cookie = c
			}
		}
		require.NotNil(t, cookie)
		assert.NotEqual(t, "not-a-uuid", cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})
}

func TestServer_HealthzAndMetrics(t *testing.T) {
	deps := testDependencies()
	ts := newTestServer(t, Config{}, deps)
	client := newClient(t)

	status, body := get(t, client, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `{"status":"ok"}`, body)

	post(t, client, ts.URL+"/regions/sulfur_ox", nil)
	post(t, client, ts.URL+"/language", nil)
	post(t, client, ts.URL+"/copy", nil)

	status, body = get(t, client, ts.URL+"/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `metaboschema_region_clicks_total{region="sulfur_ox"} 1`)
	assert.Contains(t, body, `metaboschema_language_toggles_total{language="ar"} 1`)
	assert.Contains(t, body, `metaboschema_notation_copies_total{result="failed"} 1`)
	assert.Contains(t, body, "metaboschema_sessions 1")
}
