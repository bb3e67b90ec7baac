// keyhost.go - raw-terminal keystroke source for interactive mode, following
// the same non-blocking-read-in-a-goroutine pattern as terminal_host.go.

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// keyHost reads raw stdin in a background goroutine and delivers bytes on a
// channel, translating CR to LF the way a real terminal line would.
type keyHost struct {
	keys         chan byte
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	nonblockSet  bool
	oldTermState *term.State
}

func newKeyHost() *keyHost {
	return &keyHost{
		keys:   make(chan byte, 256),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts stdin into raw, non-blocking mode and begins delivering
// keystrokes on h.keys; the channel is closed when the terminal reports EOF
// (Ctrl-D).
func (h *keyHost) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keyhost: failed to set raw mode: %v\n", err)
		close(h.keys)
		close(h.done)
		return
	}
	h.oldTermState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "keyhost: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
		close(h.keys)
		close(h.done)
		return
	}
	h.nonblockSet = true

	go func() {
		defer close(h.done)
		defer close(h.keys)
		buf := make([]byte, 1)

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := syscall.Read(h.fd, buf)
			if n > 0 {
				b := buf[0]
				if b == 0x04 { // raw mode delivers Ctrl-D as a byte, not as EOF
					return
				}
				if b == '\r' {
					b = '\n'
				}
				select {
				case h.keys <- b:
				case <-h.stopCh:
					return
				}
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil || n == 0 {
				return
			}
		}
	}()
}

// Stop terminates the read goroutine and restores stdin.
func (h *keyHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
