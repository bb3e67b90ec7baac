package cts256

import "testing"

// Every Memory.Read the TMS7000 issues doubles as the hardware's IRQ1
// strobe, regardless of which address range it lands in.
func TestBoardReadAssertsIRQ1(t *testing.T) {
	b := NewDefaultBoard()
	b.cpu.irqLatch = 0

	b.Read(0xF000)

	if b.cpu.irqLatch&0x02 == 0 {
		t.Fatalf("irqLatch = %#02x after a Read, want bit 0x02 (IRQ1) set", b.cpu.irqLatch)
	}
}

// Once initctr has run out, a Read also asserts IRQ3 whenever the B-port's
// low bit (set by a prior Out) is set.
func TestBoardReadAssertsIRQ3AfterInit(t *testing.T) {
	b := NewDefaultBoard()
	b.initctr = 0
	b.bport = 0x01
	b.cpu.irqLatch = 0

	b.Read(0xF000)

	if b.cpu.irqLatch&0x08 == 0 {
		t.Fatalf("irqLatch = %#02x after Read with bport=0x01 and initctr=0, want bit 0x08 (IRQ3) set", b.cpu.irqLatch)
	}
}

// Reading a real queued input byte resets the stall watchdog to full even
// though the same Read call just decremented it.
func TestBoardReadResetsDebugCounterOnInputByte(t *testing.T) {
	b := NewDefaultBoard()
	b.Feed([]byte("A"))
	b.debugctr = 5

	got := b.Read(0x0000)

	if got != 'A' {
		t.Fatalf("Read(0x0000) = %#02x, want 'A'", got)
	}
	if b.debugctr != debugCtrReload {
		t.Fatalf("debugctr = %d after consuming a real input byte, want %d", b.debugctr, debugCtrReload)
	}
}

// The stall watchdog reaching zero stops the board (StepExited by default,
// since -debug is off), without needing to wait for the real reload count.
func TestBoardDebugCounterExhaustionStopsBoard(t *testing.T) {
	b := NewDefaultBoard()
	b.debugctr = 1

	b.Read(0xF000)

	if b.result != StepExited {
		t.Fatalf("result = %v after the debug counter hit zero, want StepExited", b.result)
	}
	if b.debugctr != debugCtrReload {
		t.Fatalf("debugctr = %d after reload, want %d", b.debugctr, debugCtrReload)
	}
}

// With -debug on, the same watchdog stall stops the board for inspection
// instead of exiting it outright.
func TestBoardDebugModeStopsInsteadOfExiting(t *testing.T) {
	b := NewDefaultBoard()
	b.SetOption('D', true)
	b.debugctr = 1

	b.Read(0xF000)

	if b.result != StepStopped {
		t.Fatalf("result = %v with -debug on, want StepStopped", b.result)
	}
}

// Once the input stream is closed and drained, every further low-range read
// delivers 0x0D, as the hardware does when the host stops driving the
// parallel port.
func TestBoardDeliversEOFMarkerAfterInputDrained(t *testing.T) {
	b := NewDefaultBoard()
	b.Feed([]byte("HI"))
	b.EndOfInput()

	for i, want := range []byte{'H', 'I', 0x0D, 0x0D, 0x0D} {
		got := b.Read(0x0000)
		if got != want {
			t.Fatalf("Read %d = %#02x, want %#02x", i, got, want)
		}
	}
}

// Reading past a fed-but-not-yet-closed input stream (the -interactive and
// -script streaming case, where the firmware polls far faster than the host
// supplies bytes) must stall rather than index past the input buffer.
func TestBoardReadPastOpenInputStalls(t *testing.T) {
	b := NewDefaultBoard()
	b.Feed([]byte("A"))

	if got := b.Read(0x0000); got != 'A' {
		t.Fatalf("Read(0x0000) = %#02x, want 'A'", got)
	}

	// Input is now exhausted but the stream is still open: further reads
	// must not panic, and must not report EOF or advance past the buffer.
	for i := 0; i < 3; i++ {
		got := b.Read(0x0000)
		if got != 0xFF {
			t.Fatalf("Read past open-but-empty input = %#02x, want 0xFF (stall)", got)
		}
	}
	if b.eof {
		t.Fatalf("eof = true on an input stream that was never closed")
	}
	if b.inputPos != 1 {
		t.Fatalf("inputPos = %d after stalling reads, want 1 (unchanged)", b.inputPos)
	}

	// Feeding more input resumes normal delivery from where it left off.
	b.Feed([]byte("B"))
	if got := b.Read(0x0000); got != 'B' {
		t.Fatalf("Read(0x0000) after feeding more input = %#02x, want 'B'", got)
	}
}

// Feed is a no-op once the stream has been closed.
func TestBoardFeedAfterEndOfInputIsDiscarded(t *testing.T) {
	b := NewDefaultBoard()
	b.EndOfInput()
	b.Feed([]byte("ignored"))

	if len(b.input) != 0 {
		t.Fatalf("input = %q after Feed post-EndOfInput, want empty", b.input)
	}
}

// Writes in the SP0256 command port's address range queue the low 6 bits of
// the value for the voice chip and make it available via TakeSp0256Code.
func TestBoardWriteQueuesSp0256Code(t *testing.T) {
	b := NewDefaultBoard()
	b.SetOption('N', true) // suppress the OK-banner emit so the test stays quiet

	b.Write(0x2500, 0x5B) // 0x5B & 0x3F == 0x1B

	code, ok := b.TakeSp0256Code()
	if !ok {
		t.Fatalf("TakeSp0256Code: ok = false, want true")
	}
	if code != 0x1B {
		t.Fatalf("code = %#02x, want 0x1B", code)
	}

	if _, ok := b.TakeSp0256Code(); ok {
		t.Fatalf("TakeSp0256Code on an empty queue: ok = true, want false")
	}
}

// RAM in the board's 0x3000-0x37FF window round-trips exactly as written.
func TestBoardRAMRoundTrips(t *testing.T) {
	b := NewDefaultBoard()
	b.Write(0x3100, 0x42)
	if got := b.Read(0x3100); got != 0x42 {
		t.Fatalf("Read(0x3100) = %#02x, want 0x42", got)
	}
}

// Out on the B-port latches bport; the A-port read returns the fixed status
// byte the firmware polls at startup.
func TestBoardPortIO(t *testing.T) {
	b := NewDefaultBoard()
	b.Out(0x06, 0x01)
	if b.bport != 0x01 {
		t.Fatalf("bport = %#02x after Out, want 0x01", b.bport)
	}
	if got := b.In(0x04); got != 0x90 {
		t.Fatalf("In(0x04) = %#02x, want 0x90", got)
	}
}
