// tms7000_constants.go - TMS7000 instruction mnemonics, operand kinds, and
// the 256-entry opcode dispatch table.

package cts256

// Mnemonics, one per TMS7000 instruction class. Several opcodes share a
// mnemonic with different operand shapes (e.g. ADD Rn,A and ADD %byte,B).
const (
	mnADC = iota
	mnADD
	mnAND
	mnANDP
	mnBTJO
	mnBTJOP
	mnBTJZ
	mnBTJZP
	mnBR
	mnCALL
	mnCLR
	mnCLRC
	mnCMP
	mnCMPA
	mnDAC
	mnDEC
	mnDECD
	mnDINT
	mnDJNZ
	mnDSB
	mnEINT
	mnIDLE
	mnINC
	mnINV
	mnJMP
	mnJN
	mnJZ
	mnJC
	mnJP
	mnJPZ
	mnJNZ
	mnJNC
	mnLDA
	mnLDSP
	mnMOV
	mnMOVD
	mnMOVP
	mnMPY
	mnNOP
	mnOR
	mnORP
	mnPOP
	mnPUSH
	mnRETI
	mnRETS
	mnRL
	mnRLC
	mnRR
	mnRRC
	mnSBB
	mnSETC
	mnSTA
	mnSTSP
	mnSUB
	mnSWAP
	mnTRAP
	mnTSTA
	mnTSTB
	mnXCHB
	mnXOR
	mnXORP
	mnDB // invalid opcode marker
)

// Operand kinds, one per addressing mode the decoder knows how to fetch.
const (
	opNone = iota
	opA      // register A (= R0)
	opB      // register B (= R1)
	opRN     // Rn, register index follows in the instruction stream
	opPN     // Pn, peripheral register index follows
	opByte   // %>byte, an immediate byte follows
	opWord   // %>word, an immediate 16-bit value follows
	opWordB  // %>word(B), immediate 16-bit value indexed by B
	opOfst   // PC-relative signed byte offset
	opAddr   // @>addr, a 16-bit memory address follows
	opAddrB  // @>addr(B), 16-bit memory address indexed by B
	opAtRN   // *Rn, memory address held in register pair (Rn-1,Rn)
	opST     // the status register
	opNTrap  // implicit trap vector address, derived from the opcode itself
	opOpcode // DB: not a real operand, marks an undefined opcode
)

type tmsInstr struct {
	mnemonic int
	opn1     int
	opn2     int
}

// tmsInstrTable is the full 256-entry TMS7000 opcode map.
var tmsInstrTable = [256]tmsInstr{
	// 00-0F
	{mnNOP, opNone, opNone},
	{mnIDLE, opNone, opNone},
	{mnDB, opOpcode, opNone},
	{mnDB, opOpcode, opNone},
	{mnDB, opOpcode, opNone},
	{mnEINT, opNone, opNone},
	{mnDINT, opNone, opNone},
	{mnSETC, opNone, opNone},
	{mnPOP, opST, opNone},
	{mnSTSP, opNone, opNone},
	{mnRETS, opNone, opNone},
	{mnRETI, opNone, opNone},
	{mnDB, opOpcode, opNone},
	{mnLDSP, opNone, opNone},
	{mnPUSH, opST, opNone},
	{mnDB, opOpcode, opNone},
	// 10-1F
	{mnDB, opOpcode, opNone},
	{mnDB, opOpcode, opNone},
	{mnMOV, opRN, opA},
	{mnAND, opRN, opA},
	{mnOR, opRN, opA},
	{mnXOR, opRN, opA},
	{mnBTJO, opRN, opA},
	{mnBTJZ, opRN, opA},
	{mnADD, opRN, opA},
	{mnADC, opRN, opA},
	{mnSUB, opRN, opA},
	{mnSBB, opRN, opA},
	{mnMPY, opRN, opA},
	{mnCMP, opRN, opA},
	{mnDAC, opRN, opA},
	{mnDSB, opRN, opA},
	// 20-2F
	{mnDB, opOpcode, opNone},
	{mnDB, opOpcode, opNone},
	{mnMOV, opByte, opA},
	{mnAND, opByte, opA},
	{mnOR, opByte, opA},
	{mnXOR, opByte, opA},
	{mnBTJO, opByte, opA},
	{mnBTJZ, opByte, opA},
	{mnADD, opByte, opA},
	{mnADC, opByte, opA},
	{mnSUB, opByte, opA},
	{mnSBB, opByte, opA},
	{mnMPY, opByte, opA},
	{mnCMP, opByte, opA},
	{mnDAC, opByte, opA},
	{mnDSB, opByte, opA},
	// 30-3F
	{mnDB, opOpcode, opNone},
	{mnDB, opOpcode, opNone},
	{mnMOV, opRN, opB},
	{mnAND, opRN, opB},
	{mnOR, opRN, opB},
	{mnXOR, opRN, opB},
	{mnBTJO, opRN, opB},
	{mnBTJZ, opRN, opB},
	{mnADD, opRN, opB},
	{mnADC, opRN, opB},
	{mnSUB, opRN, opB},
	{mnSBB, opRN, opB},
	{mnMPY, opRN, opB},
	{mnCMP, opRN, opB},
	{mnDAC, opRN, opB},
	{mnDSB, opRN, opB},
	// 40-4F
	{mnDB, opOpcode, opNone},
	{mnDB, opOpcode, opNone},
	{mnMOV, opRN, opRN},
	{mnAND, opRN, opRN},
	{mnOR, opRN, opRN},
	{mnXOR, opRN, opRN},
	{mnBTJO, opRN, opRN},
	{mnBTJZ, opRN, opRN},
	{mnADD, opRN, opRN},
	{mnADC, opRN, opRN},
	{mnSUB, opRN, opRN},
	{mnSBB, opRN, opRN},
	{mnMPY, opRN, opRN},
	{mnCMP, opRN, opRN},
	{mnDAC, opRN, opRN},
	{mnDSB, opRN, opRN},
	// 50-5F
	{mnDB, opOpcode, opNone},
	{mnDB, opOpcode, opNone},
	{mnMOV, opByte, opB},
	{mnAND, opByte, opB},
	{mnOR, opByte, opB},
	{mnXOR, opByte, opB},
	{mnBTJO, opByte, opB},
	{mnBTJZ, opByte, opB},
	{mnADD, opByte, opB},
	{mnADC, opByte, opB},
	{mnSUB, opByte, opB},
	{mnSBB, opByte, opB},
	{mnMPY, opByte, opB},
	{mnCMP, opByte, opB},
	{mnDAC, opByte, opB},
	{mnDSB, opByte, opB},
	// 60-6F
	{mnDB, opOpcode, opNone},
	{mnDB, opOpcode, opNone},
	{mnMOV, opB, opA},
	{mnAND, opB, opA},
	{mnOR, opB, opA},
	{mnXOR, opB, opA},
	{mnBTJO, opB, opA},
	{mnBTJZ, opB, opA},
	{mnADD, opB, opA},
	{mnADC, opB, opA},
	{mnSUB, opB, opA},
	{mnSBB, opB, opA},
	{mnMPY, opB, opA},
	{mnCMP, opB, opA},
	{mnDAC, opB, opA},
	{mnDSB, opB, opA},
	// 70-7F
	{mnDB, opOpcode, opNone},
	{mnDB, opOpcode, opNone},
	{mnMOV, opByte, opRN},
	{mnAND, opByte, opRN},
	{mnOR, opByte, opRN},
	{mnXOR, opByte, opRN},
	{mnBTJO, opByte, opRN},
	{mnBTJZ, opByte, opRN},
	{mnADD, opByte, opRN},
	{mnADC, opByte, opRN},
	{mnSUB, opByte, opRN},
	{mnSBB, opByte, opRN},
	{mnMPY, opByte, opRN},
	{mnCMP, opByte, opRN},
	{mnDAC, opByte, opRN},
	{mnDSB, opByte, opRN},
	// 80-8F
	{mnMOVP, opPN, opA},
	{mnDB, opOpcode, opNone},
	{mnMOVP, opA, opPN},
	{mnANDP, opA, opPN},
	{mnORP, opA, opPN},
	{mnXORP, opA, opPN},
	{mnBTJOP, opA, opPN},
	{mnBTJZP, opA, opPN},
	{mnMOVD, opWord, opRN},
	{mnDB, opOpcode, opNone},
	{mnLDA, opAddr, opNone},
	{mnSTA, opAddr, opNone},
	{mnBR, opAddr, opNone},
	{mnCMPA, opAddr, opNone},
	{mnCALL, opAddr, opNone},
	{mnDB, opOpcode, opNone},
	// 90-9F
	{mnDB, opOpcode, opNone},
	{mnMOVP, opPN, opB},
	{mnMOVP, opB, opPN},
	{mnANDP, opB, opPN},
	{mnORP, opB, opPN},
	{mnXORP, opB, opPN},
	{mnBTJOP, opB, opPN},
	{mnBTJZP, opB, opPN},
	{mnMOVD, opRN, opRN},
	{mnDB, opOpcode, opNone},
	{mnLDA, opAtRN, opNone},
	{mnSTA, opAtRN, opNone},
	{mnBR, opAtRN, opNone},
	{mnCMPA, opAtRN, opNone},
	{mnCALL, opAtRN, opNone},
	{mnDB, opOpcode, opNone},
	// A0-AF
	{mnDB, opOpcode, opNone},
	{mnDB, opOpcode, opNone},
	{mnMOVP, opByte, opPN},
	{mnANDP, opByte, opPN},
	{mnORP, opByte, opPN},
	{mnXORP, opByte, opPN},
	{mnBTJOP, opByte, opPN},
	{mnBTJZP, opByte, opPN},
	{mnMOVD, opWordB, opRN},
	{mnDB, opOpcode, opNone},
	{mnLDA, opAddrB, opNone},
	{mnSTA, opAddrB, opNone},
	{mnBR, opAddrB, opNone},
	{mnCMPA, opAddrB, opNone},
	{mnCALL, opAddrB, opNone},
	{mnDB, opOpcode, opNone},
	// B0-BF
	{mnTSTA, opNone, opNone},
	{mnDB, opOpcode, opNone},
	{mnDEC, opA, opNone},
	{mnINC, opA, opNone},
	{mnINV, opA, opNone},
	{mnCLR, opA, opNone},
	{mnXCHB, opA, opNone},
	{mnSWAP, opA, opNone},
	{mnPUSH, opA, opNone},
	{mnPOP, opA, opNone},
	{mnDJNZ, opA, opNone},
	{mnDECD, opA, opNone},
	{mnRR, opA, opNone},
	{mnRRC, opA, opNone},
	{mnRL, opA, opNone},
	{mnRLC, opA, opNone},
	// C0-CF
	{mnMOV, opA, opB},
	{mnTSTB, opNone, opNone},
	{mnDEC, opB, opNone},
	{mnINC, opB, opNone},
	{mnINV, opB, opNone},
	{mnCLR, opB, opNone},
	{mnXCHB, opB, opNone},
	{mnSWAP, opB, opNone},
	{mnPUSH, opB, opNone},
	{mnPOP, opB, opNone},
	{mnDJNZ, opB, opNone},
	{mnDECD, opB, opNone},
	{mnRR, opB, opNone},
	{mnRRC, opB, opNone},
	{mnRL, opB, opNone},
	{mnRLC, opB, opNone},
	// D0-DF
	{mnMOV, opA, opRN},
	{mnMOV, opB, opRN},
	{mnDEC, opRN, opNone},
	{mnINC, opRN, opNone},
	{mnINV, opRN, opNone},
	{mnCLR, opRN, opNone},
	{mnXCHB, opRN, opNone},
	{mnSWAP, opRN, opNone},
	{mnPUSH, opRN, opNone},
	{mnPOP, opRN, opNone},
	{mnDJNZ, opRN, opNone},
	{mnDECD, opRN, opNone},
	{mnRR, opRN, opNone},
	{mnRRC, opRN, opNone},
	{mnRL, opRN, opNone},
	{mnRLC, opRN, opNone},
	// E0-EF
	{mnJMP, opOfst, opNone},
	{mnJN, opOfst, opNone},
	{mnJZ, opOfst, opNone},
	{mnJC, opOfst, opNone},
	{mnJP, opOfst, opNone},
	{mnJPZ, opOfst, opNone},
	{mnJNZ, opOfst, opNone},
	{mnJNC, opOfst, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	// F0-FF
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
	{mnTRAP, opNTrap, opNone},
}
