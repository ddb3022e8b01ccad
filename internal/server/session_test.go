package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	gerrors "github.com/matzehuels/galaxy/pkg/errors"
	"github.com/matzehuels/galaxy/pkg/galaxy"
	"github.com/matzehuels/galaxy/pkg/profile"
)

type pushed struct {
	galaxy.Event
	Code    gerrors.Code `json:"code"`
	Message string       `json:"message"`
}

func dial(t *testing.T) (*Server, *websocket.Conn) {
	t.Helper()
	opts := galaxy.DefaultOptions()
	opts.Debounce = 5 * time.Millisecond
	opts.Spotlight.InitialDelay = 20 * time.Millisecond
	opts.Spotlight.Interval = time.Hour

	store := profile.NewMemoryStore(profile.Synthetic(40, 3, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))...)
	s := New(store, Options{View: opts, Logger: log.New(io.Discard)})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		s.Close()
		ts.Close()
	})

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return s, conn
}

// await reads pushed messages until one matches.
func await(t *testing.T, conn *websocket.Conn, match func(pushed) bool) pushed {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		_ = conn.SetReadDeadline(deadline)
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var p pushed
		if err := json.Unmarshal(data, &p); err != nil {
			t.Fatalf("decode %s: %v", data, err)
		}
		if match(p) {
			return p
		}
	}
}

func TestSessionPushesLayoutAndSpotlight(t *testing.T) {
	s, conn := dial(t)

	if err := conn.WriteJSON(clientMessage{Type: msgResize, Width: 640, Height: 480}); err != nil {
		t.Fatal(err)
	}
	p := await(t, conn, func(p pushed) bool {
		return p.Type == galaxy.EventLayout && p.Layout.Container.W == 640
	})
	if p.Layout.Items != 40 || p.Layout.Columns == 0 {
		t.Errorf("layout = %+v", p.Layout)
	}

	p = await(t, conn, func(p pushed) bool { return p.Type == galaxy.EventSpotlight })
	if !p.Spotlight.Active() || p.Spotlight.Detail == nil || p.Spotlight.Tooltip == nil {
		t.Errorf("spotlight = %+v", p.Spotlight)
	}
	if n := s.SessionCount(); n != 1 {
		t.Errorf("SessionCount() = %d, want 1", n)
	}
}

func TestSessionRejectsBadMessages(t *testing.T) {
	_, conn := dial(t)

	tests := []struct {
		name string
		msg  string
	}{
		{"malformed", `{"type":`},
		{"unknown type", `{"type":"zoom"}`},
		{"negative size", `{"type":"resize","width":-1,"height":10}`},
		{"negative offset", `{"type":"scroll","offset":-5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(tt.msg)); err != nil {
				t.Fatal(err)
			}
			p := await(t, conn, func(p pushed) bool { return p.Type == "error" })
			if p.Code == "" || p.Message == "" {
				t.Errorf("error frame = %+v", p)
			}
		})
	}
}

func TestServerCloseEndsSessions(t *testing.T) {
	s, conn := dial(t)
	if err := conn.WriteJSON(clientMessage{Type: msgResize, Width: 300, Height: 200}); err != nil {
		t.Fatal(err)
	}
	await(t, conn, func(p pushed) bool { return p.Type == galaxy.EventLayout })

	s.Close()
	if n := s.SessionCount(); n != 0 {
		t.Errorf("SessionCount() = %d after Close", n)
	}

	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
