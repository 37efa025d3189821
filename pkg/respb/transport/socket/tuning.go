// Package socket applies connection-level tuning to the transport's
// listener and accepted connections. Adapted from shockwave's own socket
// tuning package, ported from the raw "syscall" package to
// golang.org/x/sys/unix so option names stay consistent across the BSD
// and Linux socket constant tables x/sys maintains.
package socket

import (
	"net"

	"golang.org/x/sys/unix"
)

// Config represents socket tuning applied to RESPB transport connections.
// Zero values mean "use system defaults", following shockwave's
// socket.Config convention.
type Config struct {
	// NoDelay disables Nagle's algorithm. RESPB frames are typically much
	// smaller than the MTU and latency-sensitive, so the default is true.
	NoDelay bool

	// RecvBuffer is SO_RCVBUF in bytes. 0 uses the system default.
	RecvBuffer int

	// SendBuffer is SO_SNDBUF in bytes. 0 uses the system default.
	SendBuffer int

	// KeepAlive enables SO_KEEPALIVE for long-lived multiplexed
	// connections.
	KeepAlive bool
}

// DefaultConfig mirrors shockwave's HTTP default: low latency, generous
// buffers, keepalive on, since a RESPB transport connection is expected to
// carry many multiplexed frames over its lifetime rather than a single
// request/response.
func DefaultConfig() Config {
	return Config{
		NoDelay:    true,
		RecvBuffer: 256 * 1024,
		SendBuffer: 256 * 1024,
		KeepAlive:  true,
	}
}

// Apply tunes an accepted connection. Non-TCP connections are left
// untouched rather than erroring, since the transport may run over a
// non-TCP net.Conn in tests.
func Apply(conn net.Conn, cfg Config) error {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return nil
	}
	rawConn, err := tcpConn.SyscallConn()
	if err != nil {
		return err
	}

	var applyErr error
	err = rawConn.Control(func(fd uintptr) {
		if cfg.NoDelay {
			if e := unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_NODELAY, 1); e != nil {
				applyErr = e
				return
			}
		}
		if cfg.RecvBuffer > 0 {
			_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_RCVBUF, cfg.RecvBuffer)
		}
		if cfg.SendBuffer > 0 {
			_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_SNDBUF, cfg.SendBuffer)
		}
		if cfg.KeepAlive {
			_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_KEEPALIVE, 1)
		}
	})
	if err != nil {
		return err
	}
	return applyErr
}

// ApplyListener tunes a listening socket's receive buffer before any
// connections are accepted.
func ApplyListener(listener net.Listener, cfg Config) error {
	tcpListener, ok := listener.(*net.TCPListener)
	if !ok {
		return nil
	}
	file, err := tcpListener.File()
	if err != nil {
		return err
	}
	defer file.Close()

	fd := int(file.Fd())
	if cfg.RecvBuffer > 0 {
		_ = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_RCVBUF, cfg.RecvBuffer)
	}
	return nil
}
