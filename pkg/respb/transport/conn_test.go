package transport

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yourusername/respb/pkg/respb/protocol"
)

func TestConnRoundTripsGetFrame(t *testing.T) {
	srv := NewServer(func(c *Conn) {
		pc, err := c.ReceiveOne()
		if err != nil {
			t.Errorf("server ReceiveOne: %v", err)
			return
		}
		if pc.Opcode != protocol.OpGet {
			t.Errorf("server saw opcode 0x%04X, want GET", pc.Opcode)
		}

		w := protocol.NewWriter()
		resp := make([]byte, 64)
		n, err := w.WriteOne(resp, pc)
		if err != nil {
			t.Errorf("server WriteOne: %v", err)
			return
		}
		if err := c.Send(resp[:n]); err != nil {
			t.Errorf("server Send: %v", err)
		}
	})

	ts := httptest.NewServer(srv)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	client := NewConn(ws, protocol.ReaderOptions{})
	defer client.Close()

	frame := []byte{0x00, 0x00, 0x00, 0x2A, 0x00, 0x05, 'm', 'y', 'k', 'e', 'y'}
	if err := client.Send(frame); err != nil {
		t.Fatalf("client Send: %v", err)
	}

	pc, err := client.ReceiveOne()
	if err != nil {
		t.Fatalf("client ReceiveOne: %v", err)
	}
	if pc.MuxID != 0x2A {
		t.Errorf("echoed mux_id = %d, want 42", pc.MuxID)
	}
	if string(pc.Arg(0)) != "mykey" {
		t.Errorf("echoed arg = %q, want mykey", pc.Arg(0))
	}
}

func TestConnDispatchRoutesByMuxID(t *testing.T) {
	srv := NewServer(func(c *Conn) {
		for {
			pc, err := c.ReceiveOne()
			if err != nil {
				return
			}
			w := protocol.NewWriter()
			resp := make([]byte, 64)
			n, err := w.WriteOne(resp, pc)
			if err != nil {
				return
			}
			if err := c.Send(resp[:n]); err != nil {
				return
			}
		}
	})

	ts := httptest.NewServer(srv)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	client := NewConn(ws, protocol.ReaderOptions{})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client.Dispatch(ctx)

	mux := client.AllocateMuxID()
	frame := []byte{0x00, 0x00, byte(mux >> 8), byte(mux), 0x00, 0x03, 'f', 'o', 'o'}

	pc, err := client.Call(ctx, mux, frame)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if pc.MuxID != mux {
		t.Errorf("response mux_id = %d, want %d", pc.MuxID, mux)
	}
}
