package ws_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	router "pointcast/internal/adapters/http"
	"pointcast/internal/config"
	"pointcast/internal/core"
)

type wireView struct {
	Players []struct {
		Card *uint64 `json:"card"`
		Name string  `json:"name"`
	} `json:"players"`
	Cards     []uint64 `json:"cards"`
	SelfState struct {
		Card *uint64 `json:"card"`
		Name string  `json:"name"`
	} `json:"self_state"`
	Hidden bool `json:"hidden"`
}

func newTestServer(t *testing.T) (*httptest.Server, *core.Registry) {
	t.Helper()
	cfg := &config.Config{
		Mode:          "release",
		Secret:        "test-secret",
		SessionMaxAge: time.Hour,
		SendBuffer:    8,
		WriteTimeout:  time.Second,
	}
	reg := core.NewRegistry()
	srv := httptest.NewServer(router.SetupRouter(context.Background(), cfg, reg))
	t.Cleanup(srv.Close)
	return srv, reg
}

// subscribe performs first contact for a fresh identity, then opens the
// snapshot stream for the room. Returns the socket, the cookie-carrying
// HTTP client for commands, and the raw first frame.
func subscribe(t *testing.T, srv *httptest.Server, room string) (*websocket.Conn, *http.Client, []byte) {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}
	resp, err := client.Get(srv.URL + "/api/me")
	if err != nil {
		t.Fatalf("GET /api/me: %v", err)
	}
	resp.Body.Close()

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	header := http.Header{}
	for _, ck := range jar.Cookies(u) {
		header.Add("Cookie", ck.Name+"="+ck.Value)
	}

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/room/" + room
	sock, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	t.Cleanup(func() { sock.Close() })

	return sock, client, readFrame(t, sock)
}

func readFrame(t *testing.T, sock *websocket.Conn) []byte {
	t.Helper()
	if err := sock.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	_, data, err := sock.ReadMessage()
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	return data
}

func readView(t *testing.T, sock *websocket.Conn) wireView {
	t.Helper()
	var v wireView
	if err := json.Unmarshal(readFrame(t, sock), &v); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return v
}

func postJSON(t *testing.T, client *http.Client, url, body string) {
	t.Helper()
	resp, err := client.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("POST %s status = %d", url, resp.StatusCode)
	}
}

func TestSnapshotWireShape(t *testing.T) {
	srv, _ := newTestServer(t)
	_, _, raw := subscribe(t, srv, "42")

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	for _, key := range []string{"players", "cards", "self_state", "hidden"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("snapshot missing %q: %s", key, raw)
		}
	}

	var v wireView
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if len(v.Players) != 0 || !v.Hidden || v.SelfState.Card != nil {
		t.Fatalf("unexpected first snapshot: %s", raw)
	}
	want := []uint64{50, 100, 200, 300, 500, 800, 1300, 2100}
	if len(v.Cards) != len(want) {
		t.Fatalf("cards = %v, want %v", v.Cards, want)
	}
	for i := range want {
		if v.Cards[i] != want[i] {
			t.Fatalf("cards = %v, want %v", v.Cards, want)
		}
	}
}

func TestTwoSubscribersSeeEachOther(t *testing.T) {
	srv, reg := newTestServer(t)
	sockA, clientA, _ := subscribe(t, srv, "42")
	sockB, _, firstB := subscribe(t, srv, "42")

	var vB wireView
	if err := json.Unmarshal(firstB, &vB); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(vB.Players) != 1 || vB.Players[0].Card != nil {
		t.Fatalf("B's first snapshot = %s, want one bet-less other", firstB)
	}
	if vA := readView(t, sockA); len(vA.Players) != 1 || vA.Players[0].Card != nil {
		t.Fatalf("A should see B join with no bet")
	}

	// A bets while hidden: B sees the marker, A sees the value.
	postJSON(t, clientA, srv.URL+"/api/room/42/bet", `{"card":300}`)
	if vA := readView(t, sockA); vA.SelfState.Card == nil || *vA.SelfState.Card != 300 {
		t.Fatalf("A's own bet not visible to A")
	}
	if vB := readView(t, sockB); vB.Players[0].Card == nil || *vB.Players[0].Card != 0 {
		t.Fatalf("hidden bet must reach B as marker 0")
	}

	// Reveal over the websocket command channel.
	if err := sockB.WriteJSON(map[string]string{"type": "reveal"}); err != nil {
		t.Fatalf("write reveal: %v", err)
	}
	if vB := readView(t, sockB); vB.Hidden || vB.Players[0].Card == nil || *vB.Players[0].Card != 300 {
		t.Fatalf("B must see the real value after reveal")
	}
	readView(t, sockA)

	// B drops; A's next snapshot no longer lists it, and the room
	// stays registered while A remains.
	sockB.Close()
	if vA := readView(t, sockA); len(vA.Players) != 0 {
		t.Fatalf("A still sees %d others after B left", len(vA.Players))
	}
	if _, ok := reg.Get(42); !ok {
		t.Fatalf("room removed while a player is still connected")
	}
}

func TestEmptyRoomRemovedFromRegistry(t *testing.T) {
	srv, reg := newTestServer(t)
	sock, _, _ := subscribe(t, srv, "77")
	if _, ok := reg.Get(77); !ok {
		t.Fatalf("room not created on subscribe")
	}

	sock.Close()

	// The read pump notices the drop asynchronously; the empty room
	// must vanish from the registry shortly after.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, ok := reg.Get(77); !ok {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("empty room still registered after last player left")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
