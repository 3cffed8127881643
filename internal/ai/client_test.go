package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"
)

func chatServer(t *testing.T, status int, content string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		body, _ := json.Marshal(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   DefaultModel,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestClient(srv *httptest.Server, key string) *Client {
	return New(Config{APIKey: key, BaseURL: srv.URL + "/"}, zap.NewNop())
}

func TestDecomposeTitleParsesArray(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "plain", content: `["Outline", "Write", "Edit"]`, want: []string{"Outline", "Write", "Edit"}},
		{name: "fenced", content: "```json\n[\"Book venue\", \" Send invites \"]\n```", want: []string{"Book venue", "Send invites"}},
		{name: "empty array", content: `[]`, want: []string{}},
	}
	for _, tc := range cases {
		srv, hits := chatServer(t, http.StatusOK, tc.content)
		got := newTestClient(srv, "test-key").DecomposeTitle(context.Background(), "Plan party")
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
		if hits.Load() != 1 {
			t.Fatalf("%s: expected one request, got %d", tc.name, hits.Load())
		}
	}
}

func TestDecomposeTitleFallsBack(t *testing.T) {
	srv, hits := chatServer(t, http.StatusInternalServerError, "")
	got := newTestClient(srv, "test-key").DecomposeTitle(context.Background(), "Plan party")
	if !reflect.DeepEqual(got, FallbackSubtasks()) {
		t.Fatalf("expected fallback subtasks on error, got %v", got)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected a single attempt without retries, got %d", hits.Load())
	}

	srv, _ = chatServer(t, http.StatusOK, "sure, here you go")
	got = newTestClient(srv, "test-key").DecomposeTitle(context.Background(), "Plan party")
	if !reflect.DeepEqual(got, FallbackSubtasks()) {
		t.Fatalf("expected fallback subtasks on unparsable reply, got %v", got)
	}
}

func TestMissingKeyMakesNoRequest(t *testing.T) {
	srv, hits := chatServer(t, http.StatusOK, `["x"]`)
	c := newTestClient(srv, "  ")
	ctx := context.Background()

	if c.Enabled() {
		t.Fatal("expected client to be disabled without a key")
	}
	if got := c.DecomposeTitle(ctx, "Plan"); !reflect.DeepEqual(got, FallbackSubtasks()) {
		t.Fatalf("unexpected subtasks: %v", got)
	}
	if got := c.Motivation(ctx, 3, 1); got != MotivationNoKey {
		t.Fatalf("unexpected motivation: %q", got)
	}
	if got := c.WeeklySummary(ctx, 3, 1); got != SummaryNoKey {
		t.Fatalf("unexpected summary: %q", got)
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no network attempts, got %d", hits.Load())
	}
}

func TestMotivationAndSummary(t *testing.T) {
	ctx := context.Background()

	srv, _ := chatServer(t, http.StatusOK, "You have got this.")
	c := newTestClient(srv, "test-key")
	if got := c.Motivation(ctx, 2, 5); got != "You have got this." {
		t.Fatalf("expected verbatim motivation, got %q", got)
	}
	if got := c.WeeklySummary(ctx, 2, 5); got != "You have got this." {
		t.Fatalf("expected verbatim summary, got %q", got)
	}

	srv, _ = chatServer(t, http.StatusOK, "   ")
	c = newTestClient(srv, "test-key")
	if got := c.Motivation(ctx, 2, 5); got != MotivationEmpty {
		t.Fatalf("expected empty-reply motivation, got %q", got)
	}
	if got := c.WeeklySummary(ctx, 2, 5); got != SummaryEmpty {
		t.Fatalf("expected empty-reply summary, got %q", got)
	}

	srv, _ = chatServer(t, http.StatusBadGateway, "")
	c = newTestClient(srv, "test-key")
	if got := c.Motivation(ctx, 2, 5); got != MotivationFailed {
		t.Fatalf("expected failure motivation, got %q", got)
	}
	if got := c.WeeklySummary(ctx, 2, 5); got != SummaryFailed {
		t.Fatalf("expected failure summary, got %q", got)
	}
}

func TestOfflineAssistant(t *testing.T) {
	var a Assistant = Offline{}
	if got := a.DecomposeTitle(context.Background(), "x"); len(got) != 3 {
		t.Fatalf("expected three fallback subtasks, got %v", got)
	}
}

func TestPreviewTruncates(t *testing.T) {
	long := strings.Repeat("a", maxPreviewLength+10)
	if got := preview(long); len(got) != maxPreviewLength+3 {
		t.Fatalf("unexpected preview length %d", len(got))
	}
	if got := preview("a\nb"); got != "a b" {
		t.Fatalf("expected newlines flattened, got %q", got)
	}
}

func TestPreviewKeepsMultibyteRunesWhole(t *testing.T) {
	long := strings.Repeat("é", maxPreviewLength+5)
	got := preview(long)
	if !utf8.ValidString(got) {
		t.Fatalf("preview produced invalid utf-8: %q", got)
	}
	want := strings.Repeat("é", maxPreviewLength) + "..."
	if got != want {
		t.Fatalf("unexpected preview %q", got)
	}
	short := strings.Repeat("é", maxPreviewLength)
	if got := preview(short); got != short {
		t.Fatalf("expected short multibyte text untouched, got %q", got)
	}
}
