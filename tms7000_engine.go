// tms7000_engine.go - TMS7000 microcontroller core: register file, status
// flags, peripheral I/O ports, interrupt latch/vector handling, and the
// fetch/decode/execute loop that drives the CTS256A-AL2 board.

package cts256

// Memory is the external data bus the TMS7000 reads and writes outside its
// own 256-byte register file (addresses 0x0200 and up; 0x0100-0x01FF reads
// as 0xFF and discards writes, matching the reference decoder).
type Memory interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// IO is the external peripheral bus for ports other than the CPU's own
// built-in IOCNT0/IOCNT1 registers (ports 0 and 1).
type IO interface {
	In(port uint16) byte
	Out(port uint16, value byte)
}

// Status register bits, in the TMS7000's native bit order.
const (
	stFlagC = 1 << 7
	stFlagN = 1 << 6
	stFlagZ = 1 << 5
	stFlagI = 1 << 4
)

// Tms7000 emulates the TMS7000 microcontroller at the heart of the
// CTS256A-AL2: a 256-byte unified register/RAM file, a packed status
// register, and peripheral ports reached through MOVP/ANDP/ORP/XORP and
// the bit-test-and-jump-peripheral family.
type Tms7000 struct {
	mem Memory
	io  IO

	data [256]byte
	sp   byte
	st   byte
	pc   uint16
	pc0  uint16

	opcode byte

	iocnt0 byte
	iocnt1 byte

	irqLatch byte
	halted   bool
}

// NewTms7000 creates a CPU wired to the given external data bus and
// peripheral bus, then resets it.
func NewTms7000(mem Memory, io IO) *Tms7000 {
	c := &Tms7000{mem: mem, io: io}
	c.Reset()
	return c
}

// Reset clears the status register and IOCNT registers, sets the stack
// pointer to 1, and loads the program counter from the reset vector at
// 0xFFFE/0xFFFF.
func (c *Tms7000) Reset() {
	c.st = 0
	c.iocnt0 = 0
	c.iocnt1 = 0
	c.data[0] = byte(c.pc >> 8)
	c.data[1] = byte(c.pc & 0xFF)
	c.sp = 1
	c.pc = uint16(c.read(0xFFFE))<<8 | uint16(c.read(0xFFFF))
	c.halted = false
}

// Halted reports whether the CPU hit an opcode it does not implement and
// stopped with the program counter backed up to the offending instruction.
func (c *Tms7000) Halted() bool { return c.halted }

// PC returns the current program counter, mainly for diagnostics.
func (c *Tms7000) PC() uint16 { return c.pc }

// TrigIRQ raises IRQ1 (0x02) or IRQ3 (0x08); the board calls this from its
// memory-mapped read handler exactly as the hardware's IRQ lines do.
func (c *Tms7000) TrigIRQ(mask byte) { c.irqLatch |= mask }

func (c *Tms7000) flagC() bool { return c.st&stFlagC != 0 }
func (c *Tms7000) flagN() bool { return c.st&stFlagN != 0 }
func (c *Tms7000) flagZ() bool { return c.st&stFlagZ != 0 }
func (c *Tms7000) flagI() bool { return c.st&stFlagI != 0 }

func (c *Tms7000) setFlag(mask byte, v bool) {
	if v {
		c.st |= mask
	} else {
		c.st &^= mask
	}
}

func (c *Tms7000) carryIn() uint16 {
	if c.flagC() {
		return 1
	}
	return 0
}

func (c *Tms7000) read(addr uint16) byte {
	if addr < 0x100 {
		return c.data[addr]
	}
	if addr >= 0x200 && c.mem != nil {
		return c.mem.Read(addr)
	}
	return 0xFF
}

func (c *Tms7000) write(addr uint16, value byte) {
	if addr < 0x100 {
		c.data[addr] = value
		return
	}
	if addr >= 0x200 && c.mem != nil {
		c.mem.Write(addr, value)
	}
}

func (c *Tms7000) fetch() byte {
	v := c.read(c.pc)
	c.pc++
	return v
}

func (c *Tms7000) laddr() uint16 {
	hi := uint16(c.fetch())
	lo := uint16(c.fetch())
	return hi<<8 | lo
}

func (c *Tms7000) saddr() uint16 {
	d := int8(c.fetch())
	return uint16(int32(c.pc) + int32(d))
}

func (c *Tms7000) indata(addr byte) byte {
	switch addr {
	case 0:
		return c.iocnt0
	case 1:
		return c.iocnt1
	default:
		if c.io != nil {
			return c.io.In(uint16(addr))
		}
		return 0xFF
	}
}

func (c *Tms7000) outdata(addr byte, value byte) {
	switch addr {
	case 0:
		c.iocnt0 = (value &^ 0x2A) | (c.iocnt0 & 0x2A &^ value)
	case 1:
		c.iocnt1 = (value &^ 0xFA) | (c.iocnt1 & 0x0A &^ value)
	default:
		if c.io != nil {
			c.io.Out(uint16(addr), value)
		}
	}
}

// stop backs the PC up to the instruction that triggered it and halts the
// CPU; it models the reference emulator's handling of opcodes it never
// implemented (several stock TMS7000 mnemonics, and any truly undefined
// opcode byte).
func (c *Tms7000) stop() {
	c.pc = c.pc0
	c.halted = true
}

type tmsOperand struct {
	target int // index into data[], or -1 if not writable back
	val    byte
	word   uint16
}

func (c *Tms7000) decodeOpn1(kind int) tmsOperand {
	switch kind {
	case opNone:
		return tmsOperand{target: -1}
	case opA:
		return tmsOperand{target: 0, val: c.data[0]}
	case opB:
		return tmsOperand{target: 1, val: c.data[1]}
	case opRN:
		idx := c.fetch()
		return tmsOperand{target: int(idx), val: c.data[idx]}
	case opPN, opByte:
		return tmsOperand{target: -1, val: c.fetch()}
	case opWord:
		return tmsOperand{target: -1, word: c.laddr()}
	case opWordB:
		return tmsOperand{target: -1, word: c.laddr() + uint16(c.data[1])}
	case opOfst:
		return tmsOperand{target: -1, word: c.saddr()}
	case opAddr:
		return tmsOperand{target: -1, word: c.laddr()}
	case opAddrB:
		return tmsOperand{target: -1, word: c.laddr() + uint16(c.data[1])}
	case opAtRN:
		idx := c.fetch()
		w := uint16(c.data[(idx-1)&0xFF])<<8 | uint16(c.data[idx])
		return tmsOperand{target: -1, word: w}
	case opST:
		return tmsOperand{target: -1, val: c.st}
	case opNTrap:
		addr := uint16(0xFFFE) - (uint16(0xFF-c.opcode) << 1)
		w := uint16(c.read(addr))<<8 | uint16(c.read(addr+1))
		return tmsOperand{target: -1, word: w}
	default: // opOpcode and anything else: undefined opcode
		c.stop()
		return tmsOperand{target: -1}
	}
}

func (c *Tms7000) decodeOpn2(kind int) tmsOperand {
	switch kind {
	case opNone:
		return tmsOperand{target: -1}
	case opA:
		return tmsOperand{target: 0, val: c.data[0]}
	case opB:
		return tmsOperand{target: 1, val: c.data[1]}
	case opRN:
		idx := c.fetch()
		return tmsOperand{target: int(idx), val: c.data[idx]}
	case opPN:
		return tmsOperand{target: -1, val: c.fetch()}
	case opST:
		return tmsOperand{target: -1, val: c.st}
	default:
		c.stop()
		return tmsOperand{target: -1}
	}
}

// Step fetches and executes one instruction, then services pending
// interrupts. It returns false once the CPU has halted on an unimplemented
// or undefined opcode; the caller (the board) decides what that means.
func (c *Tms7000) Step() bool {
	if c.halted {
		return false
	}

	c.pc0 = c.pc
	c.opcode = c.fetch()

	ok := c.execute(c.opcode)

	c.simIntDetect()
	c.simIntProcess()

	return ok
}

func (c *Tms7000) simIntDetect() {
	if c.irqLatch&0x02 != 0 {
		c.iocnt0 |= 0x02
		c.irqLatch &^= 0x02
	}
	if c.irqLatch&0x08 != 0 {
		c.iocnt0 |= 0x20
		c.irqLatch &^= 0x08
	}
}

func (c *Tms7000) simIntProcess() {
	if !c.flagI() {
		return
	}

	var itrap uint16
	switch {
	case c.iocnt0&0x03 == 0x03:
		itrap = 1
	case c.iocnt0&0x30 == 0x30:
		itrap = 3
	default:
		return
	}

	itrap = 0xFFFE - (itrap << 1)

	c.sp++
	c.data[c.sp] = c.st
	c.sp++
	c.data[c.sp] = byte(c.pc >> 8)
	c.sp++
	c.data[c.sp] = byte(c.pc & 0xFF)

	c.setFlag(stFlagI, false)
	c.pc = uint16(c.read(itrap))<<8 | uint16(c.read(itrap+1))
}

// execute dispatches on the instruction at opcode and returns false if it
// halted the CPU (stop() was called).
func (c *Tms7000) execute(opcode byte) bool {
	instr := tmsInstrTable[opcode]

	o1 := c.decodeOpn1(instr.opn1)
	if c.halted {
		return false
	}
	o2 := c.decodeOpn2(instr.opn2)
	if c.halted {
		return false
	}

	opn1 := o1.val
	opn2 := o2.val
	word := o1.word
	target1 := o1.target
	target2 := o2.target

	switch instr.mnemonic {
	case mnADC:
		res := uint16(opn2) + uint16(opn1) + c.carryIn()
		opn2 = byte(res)
		c.setFlag(stFlagC, res&0x100 != 0)
		c.setFlag(stFlagN, opn2&0x80 != 0)
		c.setFlag(stFlagZ, opn2 == 0)
		target1 = -1
	case mnADD:
		res := uint16(opn2) + uint16(opn1)
		opn2 = byte(res)
		c.setFlag(stFlagC, res&0x100 != 0)
		c.setFlag(stFlagN, opn2&0x80 != 0)
		c.setFlag(stFlagZ, opn2 == 0)
		target1 = -1
	case mnAND:
		opn2 = opn2 & opn1
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, opn2&0x80 != 0)
		c.setFlag(stFlagZ, opn2 == 0)
		target1 = -1
	case mnANDP:
		res := c.indata(opn2) & opn1
		c.outdata(opn2, res)
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, res&0x80 != 0)
		c.setFlag(stFlagZ, opn2 == 0)
		target1 = -1
	case mnBTJO:
		word = c.saddr()
		if opn1&opn2 != 0 {
			c.pc = word
		}
		target1, target2 = -1, -1
	case mnBTJZ:
		word = c.saddr()
		if opn1&^opn2 != 0 {
			c.pc = word
		}
		target1, target2 = -1, -1
	case mnBR:
		c.pc = word
	case mnCALL:
		c.sp++
		c.data[c.sp] = byte(c.pc >> 8)
		c.sp++
		c.data[c.sp] = byte(c.pc & 0xFF)
		c.pc = word
	case mnCLR:
		opn1 = 0
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, false)
		c.setFlag(stFlagZ, true)
	case mnCMP:
		res := uint16(opn2) - uint16(opn1)
		c.setFlag(stFlagC, (res>>8)&1 == 0)
		c.setFlag(stFlagN, res&0x80 != 0)
		c.setFlag(stFlagZ, res == 0)
		target1, target2 = -1, -1
	case mnCMPA:
		res := uint16(c.data[0]) - uint16(c.read(word))
		c.setFlag(stFlagC, (res>>8)&1 == 0)
		c.setFlag(stFlagN, res&0x80 != 0)
		c.setFlag(stFlagZ, res == 0)
		target1, target2 = -1, -1
	case mnDEC:
		opn1--
		c.setFlag(stFlagC, opn1 != 0xFF)
		c.setFlag(stFlagN, opn1&0x80 != 0)
		c.setFlag(stFlagZ, opn1 == 0)
	case mnDECD:
		opn1--
		hi := (target1 - 1) & 0xFF
		if opn1 == 0xFF {
			c.data[hi]--
			c.setFlag(stFlagC, c.data[hi] != 0xFF)
		}
		c.setFlag(stFlagN, c.data[hi]&0x80 != 0)
		c.setFlag(stFlagZ, c.data[hi] == 0)
	case mnEINT:
		c.st |= 0xF0
	case mnINC:
		opn1++
		c.setFlag(stFlagC, opn1 == 0)
		c.setFlag(stFlagZ, opn1 == 0)
		c.setFlag(stFlagN, opn1&0x80 != 0)
	case mnJMP:
		c.pc = word
	case mnJN:
		if c.flagN() {
			c.pc = word
		}
	case mnJZ:
		if c.flagZ() {
			c.pc = word
		}
	case mnJP:
		if !c.flagN() && !c.flagZ() {
			c.pc = word
		}
	case mnJPZ:
		if !c.flagN() {
			c.pc = word
		}
	case mnJNZ:
		if !c.flagZ() {
			c.pc = word
		}
	case mnJNC:
		if !c.flagC() {
			c.pc = word
		}
	case mnLDA:
		v := c.read(word)
		c.data[0] = v
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, v&0x80 != 0)
		c.setFlag(stFlagZ, v == 0)
	case mnLDSP:
		c.sp = c.data[1]
	case mnMOV:
		opn2 = opn1
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, opn2&0x80 != 0)
		c.setFlag(stFlagZ, opn2 == 0)
		target1 = -1
	case mnMOVD:
		if target1 >= 0 {
			word = uint16(c.data[(target1-1)&0xFF])<<8 | uint16(c.data[target1])
			target1 = -1
		}
		if target2 >= 0 {
			hi := byte(word >> 8)
			c.data[(target2-1)&0xFF] = hi
			c.data[target2] = byte(word)
			target2 = -1
			c.setFlag(stFlagC, false)
			c.setFlag(stFlagN, hi&0x80 != 0)
			c.setFlag(stFlagZ, hi == 0)
		} else {
			c.stop()
			return false
		}
	case mnMOVP:
		if instr.opn1 == opPN {
			opn1 = c.indata(opn1)
		}
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, opn1&0x80 != 0)
		c.setFlag(stFlagZ, opn1 == 0)
		if instr.opn2 == opPN {
			c.outdata(opn2, opn1)
			target2 = -1
		} else {
			opn2 = opn1
		}
		target1 = -1
	case mnMPY:
		res := uint16(opn1) * uint16(opn2)
		c.data[0] = byte(res >> 8)
		c.data[1] = byte(res)
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, c.data[0]&0x80 != 0)
		c.setFlag(stFlagZ, c.data[0] == 0)
		target1, target2 = -1, -1
	case mnOR:
		opn2 = opn2 | opn1
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, opn2&0x80 != 0)
		c.setFlag(stFlagZ, opn2 == 0)
		target1 = -1
	case mnORP:
		res := c.indata(opn2) | opn1
		c.outdata(opn2, res)
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, res&0x80 != 0)
		c.setFlag(stFlagZ, opn2 == 0)
		target1 = -1
	case mnPOP:
		opn1 = c.data[c.sp]
		c.sp--
	case mnPUSH:
		c.sp++
		c.data[c.sp] = opn1
		target1 = -1
	case mnRETI:
		opn := c.data[c.sp]
		c.sp--
		c.pc = uint16(opn)
		opn = c.data[c.sp]
		c.sp--
		c.pc |= uint16(opn) << 8
		c.st = c.data[c.sp]
		c.sp--
	case mnRETS:
		opn := c.data[c.sp]
		c.sp--
		c.pc = uint16(opn)
		opn = c.data[c.sp]
		c.sp--
		c.pc |= uint16(opn) << 8
	case mnRRC:
		res := (opn1 >> 1) | boolByte(c.flagC())<<7
		c.setFlag(stFlagC, opn1&1 != 0)
		opn1 = res
		c.setFlag(stFlagN, res&0x80 != 0)
		c.setFlag(stFlagZ, res == 0)
	case mnSBB:
		res := uint16(opn2) - uint16(opn1) - 1 + c.carryIn()
		opn2 = byte(res)
		c.setFlag(stFlagC, (res>>8)&1 == 0)
		c.setFlag(stFlagN, opn2&0x80 != 0)
		c.setFlag(stFlagZ, opn2 == 0)
		target1 = -1
	case mnSTA:
		v := c.data[0]
		c.write(word, v)
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, v&0x80 != 0)
		c.setFlag(stFlagZ, v == 0)
	case mnSUB:
		res := uint16(opn2) - uint16(opn1)
		opn2 = byte(res)
		c.setFlag(stFlagC, (res>>8)&1 == 0)
		c.setFlag(stFlagN, opn2&0x80 != 0)
		c.setFlag(stFlagZ, opn2 == 0)
		target1 = -1
	case mnSWAP:
		opn1 = (opn1 >> 4) | (opn1 << 4)
		c.setFlag(stFlagC, opn1&1 != 0)
		c.setFlag(stFlagN, opn1&0x80 != 0)
		c.setFlag(stFlagZ, opn1 == 0)
	case mnTSTA:
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, c.data[0]&0x80 != 0)
		c.setFlag(stFlagZ, c.data[0] == 0)
	case mnTSTB:
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, c.data[1]&0x80 != 0)
		c.setFlag(stFlagZ, c.data[1] == 0)
	case mnXOR:
		opn2 = opn2 ^ opn1
		c.setFlag(stFlagC, false)
		c.setFlag(stFlagN, opn2&0x80 != 0)
		c.setFlag(stFlagZ, opn2 == 0)
		target1 = -1
	default:
		// BTJOP, BTJZP, CLRC, DAC, DINT, DJNZ, DSB, IDLE, INV, JC, NOP,
		// RL, RLC, RR, SETC, STSP, TRAP, XCHB, XORP, DB: none of these
		// ever execute in the board's firmware image, so (as in the
		// reference) they just stop the CPU rather than run.
		c.stop()
		return false
	}

	if target1 >= 0 {
		c.data[target1] = opn1
	}
	if target2 >= 0 {
		c.data[target2] = opn2
	}

	return true
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
