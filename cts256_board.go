// cts256_board.go - the CTS256A-AL2 board: the TMS7000's memory-mapped I/O
// view of its mask ROM, 2KB RAM, parallel ASCII input stream, and the
// SP0256 command port, plus the stall/EOF watchdogs that pace the emulation.

package cts256

import (
	"fmt"
	"io"
	"os"
)

const (
	debugCtrReload = 999999
	eofCtrReload   = 199999
	initctrReload  = 6
)

// StepResult reports what a single Board.Step call did.
type StepResult int

const (
	StepContinue StepResult = iota
	StepStopped
	StepExited
)

// Board ties a Tms7000 running the CTS256A-AL2 firmware to an Sp0256Chip
// through the mask ROM's memory-mapped SP0256 command port, the parallel
// ASCII input stream, and the two pacing watchdogs the firmware depends on
// to detect a stuck host or an exhausted input stream.
type Board struct {
	cpu   *Tms7000
	voice *Sp0256Chip

	rom [4096]byte
	ram [0x800]byte

	input    []byte
	inputPos int
	closed   bool
	eof      bool

	bport    byte
	initctr  int
	debugctr int
	eofctr   int

	echo    bool
	debug   bool
	verbose bool
	noOK    bool
	mode    byte

	out io.Writer

	pendingCodes []byte

	result StepResult
}

// NewBoard creates a board with the given SP0256 allophone ROM table and
// CTS256A-AL2 controller mask ROM, and resets it to its post-power-on
// state.
func NewBoard(romTable [16][]byte, rom [4096]byte) *Board {
	b := &Board{
		voice: NewSp0256(romTable),
		rom:   rom,
		mode:  'B',
		out:   os.Stdout,
	}
	// b.Reset resets the CPU; its reset-vector reads go through b.Read,
	// which raises IRQs on b.cpu, so the CPU must be assigned first.
	b.cpu = &Tms7000{mem: b, io: b}
	b.Reset()
	return b
}

// Reset returns the board, its CPU, and its SP0256 voice chip to their
// post-power-on state; previously fed input is discarded.
func (b *Board) Reset() {
	b.ram = [0x800]byte{}
	b.bport = 0
	b.initctr = initctrReload
	b.debugctr = debugCtrReload
	b.eofctr = eofCtrReload
	b.input = nil
	b.inputPos = 0
	b.closed = false
	b.eof = false
	b.pendingCodes = b.pendingCodes[:0]
	b.result = StepContinue
	b.voice.Reset()
	b.cpu.Reset()
}

// SetOption configures an ASCII-keyed board option: 'E' echo, 'D' debug,
// 'V' verbose, 'N' suppress-OK-banner. Other option bytes are ignored; the
// 'M' output mode is set with SetOutputMode.
func (b *Board) SetOption(option byte, value bool) {
	switch option {
	case 'E':
		b.echo = value
	case 'D':
		b.debug = value
	case 'V':
		b.verbose = value
	case 'N':
		b.noOK = value
	}
}

// SetOutputMode sets the 'M' option directly, since it takes a byte value
// rather than a boolean ('T' for text labels, any other byte for raw mode).
func (b *Board) SetOutputMode(mode byte) { b.mode = mode }

// SetOutput redirects the board's echo/verbose/SP0256-label trace output,
// which defaults to os.Stdout.
func (b *Board) SetOutput(w io.Writer) { b.out = w }

// Feed appends bytes to the board's parallel ASCII input stream. Feeding
// after EndOfInput is a no-op, matching a closed stream.
func (b *Board) Feed(data []byte) {
	if b.closed {
		return
	}
	b.input = append(b.input, data...)
}

// EndOfInput marks the input stream closed; once the board has consumed
// everything fed so far it will begin delivering 0x0D on every subsequent
// read, as hardware does when the host stops driving the parallel port.
func (b *Board) EndOfInput() {
	b.closed = true
}

// TakeSp0256Code pops the oldest allophone/word code the firmware has
// written to the SP0256 command port, if any. Step forwards codes from the
// same queue to the voice chip, so codes already sent there are not
// returned.
func (b *Board) TakeSp0256Code() (code byte, ok bool) {
	if len(b.pendingCodes) == 0 {
		return 0, false
	}
	code = b.pendingCodes[0]
	b.pendingCodes = b.pendingCodes[1:]
	return code, true
}

func (b *Board) emit(p []byte) {
	if b.out != nil {
		b.out.Write(p)
	}
}

func (b *Board) tracef(format string, args ...interface{}) {
	if b.out != nil {
		fmt.Fprintf(b.out, format, args...)
	}
}

// Step advances the CPU by one instruction, feeding generated SP0256 codes
// to the voice chip's ALD port and returning whether the board is still
// running.
func (b *Board) Step() StepResult {
	if b.result != StepContinue {
		return b.result
	}

	if !b.cpu.Step() {
		b.result = StepStopped
		return b.result
	}

	for len(b.pendingCodes) > 0 && b.voice.Ready() {
		b.voice.SendCommand(b.pendingCodes[0])
		b.pendingCodes = b.pendingCodes[1:]
	}

	return b.result
}

// Voice returns the board's SP0256 chip, so the host can pull PCM samples
// independently of the CPU stepping loop.
func (b *Board) Voice() *Sp0256Chip { return b.voice }

// Read implements Memory for the TMS7000's external data bus: the
// CTS256A-AL2's memory map over ROM, RAM, the parallel input stream, the
// UART-parameter stub, and the SP0256 write-only command port.
func (b *Board) Read(addr uint16) byte {
	b.cpu.TrigIRQ(0x02)

	if !b.eof {
		if b.initctr == 0 && b.bport&0x01 != 0 {
			b.cpu.TrigIRQ(0x08)
		}
		b.debugctr--
		if b.debugctr == 0 {
			b.debugctr = debugCtrReload
			b.result = b.stallResult()
		}
	} else {
		b.eofctr--
		if b.eofctr == 0 {
			b.result = b.stallResult()
		}
	}

	switch {
	case addr >= 0xF000:
		return b.rom[addr&0x0FFF]

	case addr < 0x1000:
		if b.eof || (b.closed && b.inputPos >= len(b.input)) {
			if !b.eof {
				b.eof = true
				b.eofctr = eofCtrReload
			}
			if b.verbose {
				b.tracef(" in: EOF\n")
			}
			return 0x0D
		}
		if b.inputPos >= len(b.input) {
			// The stream is still open but nothing has been fed yet: the
			// firmware polls the parallel port far faster than a human or
			// a script can supply bytes. Stall without indexing past the
			// buffer and let the debug watchdog above eventually fire.
			return 0xFF
		}
		ch := b.input[b.inputPos]
		b.inputPos++
		if b.verbose {
			b.tracef(" in: %c\n", ch)
		}
		if b.echo {
			b.emit([]byte{ch})
		}
		b.debugctr = debugCtrReload
		return ch

	case addr < 0x2000:
		return 0

	case addr < 0x3000:
		return 0xFF

	case addr < 0x3800:
		return b.ram[addr&0x07FF]

	default:
		return 0xFF
	}
}

// Write implements Memory for the TMS7000's external data bus.
func (b *Board) Write(addr uint16, value byte) {
	switch {
	case addr >= 0xF000:
		// mask ROM is read-only
	case addr < 0x2000:
		// parallel input / UART-parameter ranges are not writable
	case addr < 0x3000:
		if b.eof {
			b.eofctr = eofCtrReload
		}
		if b.verbose {
			label := "**"
			if value < 0x40 {
				label = sp0256Labels[value]
			}
			b.tracef(" SP0256: %02X=%s\n", value, label)
		}
		if !b.noOK || b.initctr == 0 {
			if b.mode == 'T' {
				b.emit([]byte(sp0256Labels[value&0x3F] + " "))
			} else {
				b.emit([]byte{(value & 0x3F) | 0x40})
			}
		}
		if b.initctr > 0 {
			b.initctr--
		}
		b.debugctr = debugCtrReload
		b.pendingCodes = append(b.pendingCodes, value&0x3F)
	case addr < 0x3800:
		b.ram[addr&0x07FF] = value
	}
}

// In implements IO for the TMS7000's A-port (0x04) and B-port (0x06).
func (b *Board) In(port uint16) byte {
	switch port {
	case 0x04:
		return 0x90
	case 0x06:
		return 0xFF
	default:
		return 0xFF
	}
}

// Out implements IO for the TMS7000's A-port and B-port; only the B-port
// write is observable, latching into bport (its low bit gates IRQ3).
func (b *Board) Out(port uint16, value byte) {
	if port == 0x06 {
		b.bport = value
	}
}

func (b *Board) stallResult() StepResult {
	if b.debug {
		return StepStopped
	}
	return StepExited
}
