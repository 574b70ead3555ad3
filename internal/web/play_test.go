package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/proxpl/proxsite/internal/llm"
	"github.com/proxpl/proxsite/internal/playground"
	"github.com/proxpl/proxsite/internal/session"
)

func TestPlayground_FreshSession(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	b := newBrowser(t, srv)
	resp, body := b.get("/playground")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, want := range []string{"Hello, World!", "// Output will appear here...", "Async Await", "ready"} {
		if !strings.Contains(body, want) {
			t.Errorf("playground missing %q", want)
		}
	}
	if !strings.Contains(body, "disabled") {
		t.Error("generation controls should be disabled without a generator")
	}
}

func TestPlayground_SetsSessionCookie(t *testing.T) {
	srv, store := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/playground", nil))
	var id string
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			id = c.Value
			if !c.HttpOnly {
				t.Error("session cookie should be HttpOnly")
			}
		}
	}
	if id == "" {
		t.Fatal("no session cookie set")
	}
	if _, ok := store.Get(id); !ok {
		t.Fatal("session not stored")
	}
}

func TestSaveSession_RefreshesCookie(t *testing.T) {
	srv, store := newTestServer(t, nil)
	id := session.NewID()
	if err := store.Put(session.Record{ID: id, Code: "let x = 1;"}); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: id})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name != cookieName {
			continue
		}
		found = true
		if c.Value != id {
			t.Errorf("cookie value = %q, want existing session %q", c.Value, id)
		}
		if c.MaxAge != int(time.Hour.Seconds()) {
			t.Errorf("MaxAge = %d, want %d", c.MaxAge, int(time.Hour.Seconds()))
		}
	}
	if !found {
		t.Fatal("existing session's cookie was not refreshed")
	}
}

func TestPlayground_Preset(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	b := newBrowser(t, srv)
	_, body := b.get("/playground?preset=modules")
	if !strings.Contains(body, "use std.math;") {
		t.Fatal("preset not loaded into editor")
	}
}

func TestPlayground_RunSuccess(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	b := newBrowser(t, srv)
	resp, body := b.post("/playground/run", url.Values{"code": {`print("from the form");`}})
	if resp.Request.URL.Path != "/playground" {
		t.Fatalf("landed on %q", resp.Request.URL.Path)
	}
	if !strings.Contains(body, "from the form") || !strings.Contains(body, "&gt; Compiling proxpl v0.1.0-alpha") {
		t.Errorf("output missing:\n%s", body)
	}
	if !strings.Contains(body, "status-success") {
		t.Error("status not success")
	}
}

func TestPlayground_RunError(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	b := newBrowser(t, srv)
	_, body := b.post("/playground/run", url.Values{"code": {`panic("x");`}})
	if !strings.Contains(body, "Error: Compilation failed.") || !strings.Contains(body, "status-error") {
		t.Errorf("error output missing:\n%s", body)
	}

	_, body = b.post("/playground/clear", nil)
	if !strings.Contains(body, "// Output will appear here...") {
		t.Error("clear did not reset output")
	}
}

func TestPlayground_GenerateCode(t *testing.T) {
	srv, _ := newTestServer(t, &fakeGen{out: "```proxpl\nprint(\"generated\");\n```"})
	b := newBrowser(t, srv)
	_, body := b.post("/playground/generate", url.Values{"mode": {"code"}, "prompt": {"say generated"}})
	if !strings.Contains(body, "print(&#34;generated&#34;);") {
		t.Errorf("generated code not in editor:\n%s", body)
	}
	if strings.Contains(body, "```") {
		t.Error("fences not cleaned")
	}
}

func TestApplyGenerated(t *testing.T) {
	tests := []struct {
		name       string
		mode       playground.Mode
		out        string
		wantCode   string
		wantOutput string
		wantStatus playground.Status
	}{
		{"code", playground.ModeCode, "let x = 1;", "let x = 1;", "old output", playground.StatusReady},
		{"explain", playground.ModeExplain, "It adds.", "old code", "It adds.", playground.StatusReady},
		{"not configured", playground.ModeCode, llm.MsgNotConfigured, "old code", llm.MsgNotConfigured, playground.StatusError},
		{"blank", playground.ModeCode, "", "old code", "old output", playground.StatusSuccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := session.Record{Code: "old code", Output: "old output", Status: playground.StatusSuccess}
			applyGenerated(&rec, tt.mode, tt.out)
			if rec.Code != tt.wantCode || rec.Output != tt.wantOutput || rec.Status != tt.wantStatus {
				t.Fatalf("got %+v", rec)
			}
		})
	}
}

func TestAPI_Run(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/playground/run", strings.NewReader(`{"code":"match status { }"}`))
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got playground.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Status != playground.StatusSuccess || !strings.HasSuffix(got.Output, "\n\nOK") {
		t.Fatalf("got %+v", got)
	}
}

func TestAPI_RunBadJSON(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/playground/run", strings.NewReader(`{`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAPI_Generate(t *testing.T) {
	srv, _ := newTestServer(t, &fakeGen{err: errors.New("boom")})
	body, _ := json.Marshal(generateRequest{Mode: playground.ModeExplain, Input: "let x = 1;"})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/playground/generate", bytes.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got generateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if !got.Failed || !strings.Contains(got.Output, "Details: boom") {
		t.Fatalf("got %+v", got)
	}
}

func TestAPI_GenerateUnknownMode(t *testing.T) {
	srv, _ := newTestServer(t, &fakeGen{out: "x"})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/playground/generate",
		strings.NewReader(`{"mode":"poem","input":"roses"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAPI_Presets(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/playground/presets", nil))
	var got []playground.Preset
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 || got[0].Key != "helloWorld" {
		t.Fatalf("got %+v", got)
	}
}
