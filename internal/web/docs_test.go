package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOverview_ListsCategories(t *testing.T) {
	b := newBrowser(t, mustServer(t))
	resp, body := b.get("/docs")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, want := range []string{"Core", "IO", `href="/docs/Functions"`, "Sockets (coming soon)"} {
		if !strings.Contains(body, want) {
			t.Errorf("overview missing %q", want)
		}
	}
}

func TestOverview_SearchAndEmptyState(t *testing.T) {
	b := newBrowser(t, mustServer(t))
	_, body := b.get("/docs?q=fun")
	if !strings.Contains(body, "<mark>Functions</mark>") {
		t.Errorf("match not highlighted:\n%s", body)
	}
	if strings.Contains(body, "Read File") {
		t.Error("non-matching topic shown")
	}

	_, body = b.get("/docs?q=xyz")
	if !strings.Contains(body, "No results found") {
		t.Error("empty state missing")
	}

	// The query is remembered by the session until cleared.
	_, body = b.get("/docs")
	if !strings.Contains(body, "No results found") {
		t.Error("query not kept in session")
	}
	_, body = b.get("/docs?q=")
	if !strings.Contains(body, "Read File") {
		t.Error("clear search did not restore the full listing")
	}
}

func TestTopic_RendersMarkdown(t *testing.T) {
	b := newBrowser(t, mustServer(t))
	resp, body := b.get("/docs/Functions")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, want := range []string{"<strong>func</strong>", `class="language-proxpl"`, `rel="next" href="/docs/Functions/next"`} {
		if !strings.Contains(body, want) {
			t.Errorf("topic page missing %q", want)
		}
	}
	if strings.Contains(body, `rel="prev"`) {
		t.Error("first topic should have no prev link")
	}
}

func TestTopic_UnknownRedirectsToOverview(t *testing.T) {
	srv := mustServer(t)
	for _, path := range []string{"/docs/Nope", "/docs/Sockets"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/docs" {
			t.Errorf("%s: got %d -> %q", path, rec.Code, rec.Header().Get("Location"))
		}
	}
}

func TestTopic_EscapedName(t *testing.T) {
	b := newBrowser(t, mustServer(t))
	resp, body := b.get("/docs/Async%2FAwait")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Async &amp; Await") {
		t.Errorf("title missing:\n%s", body)
	}
}

func TestStep_NextAndPrev(t *testing.T) {
	b := newBrowser(t, mustServer(t))
	resp, _ := b.get("/docs/Functions/next")
	if resp.Request.URL.EscapedPath() != "/docs/Async%2FAwait" {
		t.Fatalf("next landed on %q", resp.Request.URL.EscapedPath())
	}
	resp, _ = b.get("/docs/Async%2FAwait/prev")
	if resp.Request.URL.Path != "/docs/Functions" {
		t.Fatalf("prev landed on %q", resp.Request.URL.Path)
	}
}

func TestStep_NextIntoMissingEntryStays(t *testing.T) {
	b := newBrowser(t, mustServer(t))
	resp, _ := b.get("/docs/Read%20File/next")
	if resp.Request.URL.Path != "/docs/Read File" {
		t.Fatalf("landed on %q", resp.Request.URL.Path)
	}
}

func TestBack(t *testing.T) {
	b := newBrowser(t, mustServer(t))
	b.get("/docs?q=core")
	b.get("/docs/Functions")
	resp, body := b.get("/docs/back")
	if resp.Request.URL.Path != "/docs" {
		t.Fatalf("landed on %q", resp.Request.URL.Path)
	}
	// Selecting a topic cleared the query, so the full listing shows.
	if !strings.Contains(body, "Read File") {
		t.Error("overview after back should be unfiltered")
	}
}

func TestAPI_Overview(t *testing.T) {
	srv := mustServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs?q=xyz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		Query  string            `json:"query"`
		Groups []json.RawMessage `json:"groups"`
		Empty  bool              `json:"empty"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if !got.Empty || got.Groups == nil || len(got.Groups) != 0 || got.Query != "xyz" {
		t.Fatalf("got %+v", got)
	}
}

func TestAPI_Topic(t *testing.T) {
	srv := mustServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/Functions", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["title"] != "Functions" || got["next"] != "Async/Await" {
		t.Fatalf("got %v", got)
	}
	if md, _ := got["markdown"].(string); !strings.Contains(md, "```proxpl") {
		t.Errorf("markdown = %q", md)
	}
}

func TestAPI_TopicNotFound(t *testing.T) {
	srv := mustServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/Nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "topic not found") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func mustServer(t *testing.T) *Server {
	t.Helper()
	srv, _ := newTestServer(t, nil)
	return srv
}
