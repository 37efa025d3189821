// Package transport carries RESPB frames over a WebSocket connection,
// giving the core's mux_id field (spec §5: "the reader itself ascribes no
// semantics to mux_id") a real multiplexed caller — outstanding requests
// tagged by mux_id so responses can be matched up out of order.
package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yourusername/respb/pkg/respb/protocol"
)

// Conn wraps a *websocket.Conn, sending and receiving RESPB frames as
// binary WebSocket messages. Each message is exactly one RESPB frame;
// the transport does not coalesce or split frames across messages.
type Conn struct {
	ws *websocket.Conn

	mu      sync.Mutex
	reader  *protocol.Reader
	pending map[uint16]chan *protocol.ParsedCommand
	nextMux uint16
}

// NewConn wraps an established WebSocket connection for RESPB framing.
func NewConn(ws *websocket.Conn, opts protocol.ReaderOptions) *Conn {
	return &Conn{
		ws:      ws,
		reader:  protocol.NewReader(opts),
		pending: make(map[uint16]chan *protocol.ParsedCommand),
	}
}

// Send writes one already-encoded RESPB frame as a binary WebSocket
// message.
func (c *Conn) Send(frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteMessage(websocket.BinaryMessage, frame)
}

// ReceiveOne reads the next WebSocket message and parses exactly one
// RESPB frame from it. A message containing a partial or multi-frame
// payload is an error: the transport's contract is one frame per message.
func (c *Conn) ReceiveOne() (*protocol.ParsedCommand, error) {
	_, data, err := c.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("transport: read message: %w", err)
	}
	res := c.reader.ParseOne(data, 0)
	switch res.Outcome {
	case protocol.OutcomeComplete:
		if res.NewOffset != len(data) {
			return nil, fmt.Errorf("transport: message carried %d trailing bytes past one frame", len(data)-res.NewOffset)
		}
		return res.Command, nil
	case protocol.OutcomeIncomplete:
		return nil, fmt.Errorf("transport: message too short for a complete frame")
	default:
		return nil, fmt.Errorf("transport: %w", res.Err)
	}
}

// nextMuxID allocates a mux_id for a new outstanding request. It wraps
// around uint16, matching the wire field's width; a transport with more
// than 65536 simultaneously outstanding requests is misusing the
// protocol's multiplexing slot, not something this layer tries to
// detect.
func (c *Conn) nextMuxID() uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextMux++
	return c.nextMux
}

// Dispatch starts a background goroutine that reads frames off the
// connection, routing each to the waiter Call registered for its mux_id.
// Frames with no registered waiter are
// dropped — a caller that wants every incoming frame should not use
// Dispatch and should call ReceiveOne directly instead.
func (c *Conn) Dispatch(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			pc, err := c.ReceiveOne()
			if err != nil {
				return
			}
			c.mu.Lock()
			ch, ok := c.pending[pc.MuxID]
			if ok {
				delete(c.pending, pc.MuxID)
			}
			c.mu.Unlock()
			if ok {
				ch <- pc
			}
		}
	}()
}

// Call sends frame (whose mux_id the caller is expected to have already
// set via nextMuxID/AllocateMuxID) and blocks until a response with the
// matching mux_id arrives via Dispatch, or ctx is done.
func (c *Conn) Call(ctx context.Context, muxID uint16, frame []byte) (*protocol.ParsedCommand, error) {
	ch := make(chan *protocol.ParsedCommand, 1)
	c.mu.Lock()
	c.pending[muxID] = ch
	c.mu.Unlock()

	if err := c.Send(frame); err != nil {
		c.mu.Lock()
		delete(c.pending, muxID)
		c.mu.Unlock()
		return nil, err
	}

	select {
	case pc := <-ch:
		return pc, nil
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, muxID)
		c.mu.Unlock()
		return nil, ctx.Err()
	}
}

// AllocateMuxID reserves the next mux_id a caller should stamp into a
// frame before passing it to Call.
func (c *Conn) AllocateMuxID() uint16 {
	return c.nextMuxID()
}

// Close closes the underlying WebSocket connection.
func (c *Conn) Close() error {
	return c.ws.Close()
}
