package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/miya9209-prog/ms-blog-maker-V1/generator"
	"github.com/miya9209-prog/ms-blog-maker-V1/product"
	"github.com/miya9209-prog/ms-blog-maker-V1/publisher"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	agent, err := generator.NewAgent(generator.OfflineLLM{})
	if err != nil {
		t.Fatal(err)
	}
	srv, err := New(agent, nil)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeSession(t *testing.T, resp *http.Response) sessionResp {
	t.Helper()
	defer resp.Body.Close()
	var out sessionResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func createSession(t *testing.T, ts *httptest.Server) sessionResp {
	t.Helper()
	resp := postJSON(t, ts.URL+"/api/sessions", generator.Request{
		Platform: generator.PlatformNaver,
		PostType: generator.PostTypeItem,
		Topic:    "베이직 니트",
		Keywords: "가을니트",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	return decodeSession(t, resp)
}

func TestSessionCreate(t *testing.T) {
	ts := newTestServer(t)
	out := createSession(t, ts)

	if out.SessionID == "" {
		t.Fatal("empty session id")
	}
	if len(out.Post.Hashtags) != generator.MaxHashtags {
		t.Errorf("got %d hashtags, want %d", len(out.Post.Hashtags), generator.MaxHashtags)
	}
	if out.Post.Title == "" {
		t.Error("empty title")
	}
	if !strings.Contains(out.Post.Text, "#미샵") {
		t.Error("tag line missing from text")
	}
}

func TestSessionCreateRequiresTopic(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/sessions", generator.Request{Platform: generator.PlatformNaver})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "주제/상품명") {
		t.Errorf("body = %q", body)
	}
}

func TestSessionGetAndRegenerate(t *testing.T) {
	ts := newTestServer(t)
	out := createSession(t, ts)
	base := ts.URL + "/api/sessions/" + out.SessionID

	resp, err := http.Get(base)
	if err != nil {
		t.Fatal(err)
	}
	got := decodeSession(t, resp)
	if got.SessionID != out.SessionID || got.Post.Title != out.Post.Title {
		t.Errorf("GET returned a different session: %+v", got)
	}

	resp = postJSON(t, base, generator.Request{
		Platform: generator.PlatformTistory,
		PostType: generator.PostTypeGeneral,
		Topic:    "환절기 코디",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("regenerate status = %d", resp.StatusCode)
	}
	regen := decodeSession(t, resp)
	if regen.SessionID != out.SessionID {
		t.Error("regenerate should keep the session id")
	}
	if regen.Post.Hashtags[0] == "#미샵" {
		t.Error("general regenerate should not lead with item tags")
	}
}

func TestSessionNotFound(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/sessions/no-such-id")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestDownloadText(t *testing.T) {
	ts := newTestServer(t)
	out := createSession(t, ts)

	resp, err := http.Get(ts.URL + "/api/sessions/" + out.SessionID + "/download/txt")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment") {
		t.Errorf("content disposition = %q", cd)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.HasSuffix(string(body), publisher.CopyrightEN) {
		t.Error("copyright block missing from txt download")
	}
}

func TestDownloadHTMLAndMarkdown(t *testing.T) {
	ts := newTestServer(t)
	out := createSession(t, ts)
	base := ts.URL + "/api/sessions/" + out.SessionID + "/download/"

	resp, err := http.Get(base + "html")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), `<html lang="ko">`) {
		t.Error("html download is not a standalone document")
	}

	resp, err = http.Get(base + "md")
	if err != nil {
		t.Fatal(err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), out.Post.Title) && !strings.Contains(string(body), "#미샵") {
		t.Error("md download lost the text")
	}
}

func TestDownloadUnknownFormat(t *testing.T) {
	ts := newTestServer(t)
	out := createSession(t, ts)

	resp, err := http.Get(ts.URL + "/api/sessions/" + out.SessionID + "/download/pdf")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPreview(t *testing.T) {
	ts := newTestServer(t)
	out := createSession(t, ts)

	resp, err := http.Get(ts.URL + "/api/sessions/" + out.SessionID + "/preview")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "미샵") {
		t.Error("preview fragment lost the content")
	}
}

func TestProductFetchEndpoint(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, `<html><head><meta property="og:title" content="와이드 슬랙스"/></head>`+
			`<body>판매가 59,000원</body></html>`)
	}))
	t.Cleanup(page.Close)

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/product", map[string]string{"url": page.URL})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var info product.Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatal(err)
	}
	if info.Name != "와이드 슬랙스" || info.Price != "59,000원" {
		t.Errorf("info = %+v", info)
	}
}

func TestStaticIndex(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "미샵 블로그 글 생성기") {
		t.Error("index page not served at /")
	}
}

func TestMethodGuards(t *testing.T) {
	ts := newTestServer(t)
	out := createSession(t, ts)

	resp, err := http.Get(ts.URL + "/api/sessions")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET collection status = %d, want 405", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/sessions/"+out.SessionID+"/preview", map[string]string{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST preview status = %d, want 405", resp.StatusCode)
	}
}
