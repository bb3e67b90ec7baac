// sp0256_constants.go - SP0256 microsequencer tables and bit-packed field layout.
//
// These literal tables (qtbl, the control-word array, and its index) are the
// reference source of truth for the LPC engine; they come from the SP0256
// data sheet and reverse-engineered firmware and are transcribed verbatim.

package cts256

// Excitation period (in samples) used for PAUSE and for noise-driven
// (per == 0) excitation respectively.
const (
	perPause = 64
	perNoise = 64
)

// fifoAddr is the bit-address that selects the SPB-640 FIFO instead of mask
// ROM as the microsequencer's instruction source.
const fifoAddr = 0x1800 << 3

// scbufMask is the sample-ring mask; NextSample produces one sample per call
// and keeps no ring, so nothing in this package reads it.
const scbufMask = 1

// Register indices into lpc12.r, matching the SP0256's packed register file.
const (
	regAM = iota
	regPR
	regB0
	regF0
	regB1
	regF1
	regB2
	regF2
	regB3
	regF3
	regB4
	regF4
	regB5
	regF5
	regIA
	regIP
)

// stageMap permutes decoded (B,F) coefficient pairs onto biquad cascade
// stages. Several alternatives exist historically; this one is documented
// as correct for the AL2 allophone set.
var stageMap = [6]int{3, 0, 4, 1, 5, 2}

// qtbl is the 128-entry coefficient quantization table (from the SP0250
// data sheet; carries over unchanged to the SP0256).
var qtbl = [128]int16{
	0, 9, 17, 25, 33, 41, 49, 57,
	65, 73, 81, 89, 97, 105, 113, 121,
	129, 137, 145, 153, 161, 169, 177, 185,
	193, 201, 209, 217, 225, 233, 241, 249,
	257, 265, 273, 281, 289, 297, 301, 305,
	309, 313, 317, 321, 325, 329, 333, 337,
	341, 345, 349, 353, 357, 361, 365, 369,
	373, 377, 381, 385, 389, 393, 397, 401,
	405, 409, 413, 417, 421, 425, 427, 429,
	431, 433, 435, 437, 439, 441, 443, 445,
	447, 449, 451, 453, 455, 457, 459, 461,
	463, 465, 467, 469, 471, 473, 475, 477,
	479, 481, 482, 483, 484, 485, 486, 487,
	488, 489, 490, 491, 492, 493, 494, 495,
	496, 497, 498, 499, 500, 501, 502, 503,
	504, 505, 506, 507, 508, 509, 510, 511,
}

// crWord packs a data-format control word: a length/shift/param triple plus
// four flag bits, matching the SP0256's own packed layout so the 191-entry
// table below can be transcribed straight from the reference source.
func crWord(length, shift, param int, delta, field, clr5, clrAll bool) uint16 {
	w := uint16(length&15) | uint16(shift&15)<<4 | uint16(param&15)<<8
	if delta {
		w |= crDelta
	}
	if field {
		w |= crField
	}
	if clr5 {
		w |= crClr5
	}
	if clrAll {
		w |= crClrAll
	}
	return w
}

const (
	crDelta  uint16 = 1 << 12
	crField  uint16 = 1 << 13
	crClr5   uint16 = 1 << 14
	crClrAll uint16 = 1 << 15
)

func crLen(w uint16) int  { return int(w & 15) }
func crShf(w uint16) int  { return int((w >> 4) & 15) }
func crPrm(w uint16) int  { return int((w >> 8) & 15) }

// sp0256Datafmt is the full 191-entry control-word table driving the
// microsequencer's per-opcode data block decode (spec §4.C step 9). Index
// ranges are selected per-opcode by sp0256DfIdx below.
var sp0256Datafmt = [191]uint16{
	// 0: PAUSE - clear all
	crWord(0, 0, 0, false, false, false, false),

	// 1-16: LOADALL, mode x1
	crWord(8, 0, regAM, false, false, false, false),
	crWord(8, 0, regPR, false, false, false, false),
	crWord(8, 0, regB0, false, false, false, false),
	crWord(8, 0, regF0, false, false, false, false),
	crWord(8, 0, regB1, false, false, false, false),
	crWord(8, 0, regF1, false, false, false, false),
	crWord(8, 0, regB2, false, false, false, false),
	crWord(8, 0, regF2, false, false, false, false),
	crWord(8, 0, regB3, false, false, false, false),
	crWord(8, 0, regF3, false, false, false, false),
	crWord(8, 0, regB4, false, false, false, false),
	crWord(8, 0, regF4, false, false, false, false),
	crWord(8, 0, regB5, false, false, false, false),
	crWord(8, 0, regF5, false, false, false, false),
	crWord(8, 0, regIA, false, false, false, false),
	crWord(8, 0, regIP, false, false, false, false),

	// 17-24: LOAD_4, modes 00/01
	crWord(6, 2, regAM, false, false, false, true),
	crWord(8, 0, regPR, false, false, false, false),
	crWord(4, 3, regB3, false, false, false, false),
	crWord(6, 2, regF3, false, false, false, false),
	crWord(7, 1, regB4, false, false, false, false),
	crWord(6, 2, regF4, false, false, false, false),
	crWord(8, 0, regB5, false, false, false, false),
	crWord(8, 0, regF5, false, false, false, false),

	// 25-32: LOAD_4, modes 10/11
	crWord(6, 2, regAM, false, false, false, true),
	crWord(8, 0, regPR, false, false, false, false),
	crWord(6, 1, regB3, false, false, false, false),
	crWord(7, 1, regF3, false, false, false, false),
	crWord(8, 0, regB4, false, false, false, false),
	crWord(8, 0, regF4, false, false, false, false),
	crWord(8, 0, regB5, false, false, false, false),
	crWord(8, 0, regF5, false, false, false, false),

	// 33-44: SETMSB_6
	crWord(0, 0, 0, false, false, false, false),
	crWord(6, 2, regAM, false, false, false, false),
	crWord(6, 2, regF3, false, true, false, false),
	crWord(6, 2, regF4, false, true, false, false),
	crWord(8, 0, regF5, false, true, false, false),
	crWord(0, 0, 0, false, false, false, false),
	crWord(6, 2, regAM, false, false, false, false),
	crWord(7, 1, regF3, false, true, false, false),
	crWord(8, 0, regF4, false, true, false, false),
	crWord(8, 0, regF5, false, true, false, false),
	0,
	0,

	// 45-58: DELTA_9, modes 00/01
	crWord(4, 2, regAM, true, false, false, false),
	crWord(5, 0, regPR, true, false, false, false),
	crWord(3, 4, regB0, true, false, false, false),
	crWord(3, 3, regF0, true, false, false, false),
	crWord(3, 4, regB1, true, false, false, false),
	crWord(3, 3, regF1, true, false, false, false),
	crWord(3, 4, regB2, true, false, false, false),
	crWord(3, 3, regF2, true, false, false, false),
	crWord(3, 3, regB3, true, false, false, false),
	crWord(4, 2, regF3, true, false, false, false),
	crWord(4, 1, regB4, true, false, false, false),
	crWord(4, 2, regF4, true, false, false, false),
	crWord(5, 0, regB5, true, false, false, false),
	crWord(5, 0, regF5, true, false, false, false),

	// 59-72: DELTA_9, modes 10/11
	crWord(4, 2, regAM, true, false, false, false),
	crWord(5, 0, regPR, true, false, false, false),
	crWord(4, 1, regB0, true, false, false, false),
	crWord(4, 2, regF0, true, false, false, false),
	crWord(4, 1, regB1, true, false, false, false),
	crWord(4, 2, regF1, true, false, false, false),
	crWord(4, 1, regB2, true, false, false, false),
	crWord(4, 2, regF2, true, false, false, false),
	crWord(4, 1, regB3, true, false, false, false),
	crWord(5, 1, regF3, true, false, false, false),
	crWord(5, 0, regB4, true, false, false, false),
	crWord(5, 0, regF4, true, false, false, false),
	crWord(5, 0, regB5, true, false, false, false),
	crWord(5, 0, regF5, true, false, false, false),

	// 73-82: SETMSB_A
	crWord(0, 0, 0, false, false, false, false),
	crWord(6, 2, regAM, false, false, false, false),
	crWord(5, 3, regF0, false, true, false, false),
	crWord(5, 3, regF1, false, true, false, false),
	crWord(5, 3, regF2, false, true, false, false),
	crWord(0, 0, 0, false, false, false, false),
	crWord(6, 2, regAM, false, false, false, false),
	crWord(6, 2, regF0, false, true, false, false),
	crWord(6, 2, regF1, false, true, false, false),
	crWord(6, 2, regF2, false, true, false, false),

	// 83-96: LOAD_2/LOAD_C, mode 00
	crWord(6, 2, regAM, false, false, false, false),
	crWord(8, 0, regPR, false, false, false, false),
	crWord(3, 4, regB0, false, false, false, false),
	crWord(5, 3, regF0, false, false, false, false),
	crWord(3, 4, regB1, false, false, false, false),
	crWord(5, 3, regF1, false, false, false, false),
	crWord(3, 4, regB2, false, false, false, false),
	crWord(5, 3, regF2, false, false, false, false),
	crWord(4, 3, regB3, false, false, false, false),
	crWord(6, 2, regF3, false, false, false, false),
	crWord(7, 1, regB4, false, false, false, false),
	crWord(6, 2, regF4, false, false, false, false),
	crWord(5, 0, regIA, false, false, false, false),
	crWord(5, 0, regIP, false, false, false, false),

	// 97-110: LOAD_2/LOAD_C, mode 10
	crWord(6, 2, regAM, false, false, false, false),
	crWord(8, 0, regPR, false, false, false, false),
	crWord(6, 1, regB0, false, false, false, false),
	crWord(6, 2, regF0, false, false, false, false),
	crWord(6, 1, regB1, false, false, false, false),
	crWord(6, 2, regF1, false, false, false, false),
	crWord(6, 1, regB2, false, false, false, false),
	crWord(6, 2, regF2, false, false, false, false),
	crWord(6, 1, regB3, false, false, false, false),
	crWord(7, 1, regF3, false, false, false, false),
	crWord(8, 0, regB4, false, false, false, false),
	crWord(8, 0, regF4, false, false, false, false),
	crWord(5, 0, regIA, false, false, false, false),
	crWord(5, 0, regIP, false, false, false, false),

	// 111-118: DELTA_D, modes 00/01
	crWord(4, 2, regAM, true, false, false, true),
	crWord(5, 0, regPR, true, false, false, false),
	crWord(3, 3, regB3, true, false, false, false),
	crWord(4, 2, regF3, true, false, false, false),
	crWord(4, 1, regB4, true, false, false, false),
	crWord(4, 2, regF4, true, false, false, false),
	crWord(5, 0, regB5, true, false, false, false),
	crWord(5, 0, regF5, true, false, false, false),

	// 119-126: DELTA_D, modes 10/11
	crWord(4, 2, regAM, true, false, false, false),
	crWord(5, 0, regPR, true, false, false, false),
	crWord(4, 1, regB3, true, false, false, false),
	crWord(5, 1, regF3, true, false, false, false),
	crWord(5, 0, regB4, true, false, false, false),
	crWord(5, 0, regF4, true, false, false, false),
	crWord(5, 0, regB5, true, false, false, false),
	crWord(5, 0, regF5, true, false, false, false),

	// 127-128: LOAD_E
	crWord(6, 2, regAM, false, false, false, false),
	crWord(8, 0, regPR, false, false, false, false),

	// 129-144: LOAD_2/LOAD_C, mode 01
	crWord(6, 2, regAM, false, false, false, false),
	crWord(8, 0, regPR, false, false, false, false),
	crWord(3, 4, regB0, false, false, false, false),
	crWord(5, 3, regF0, false, false, false, false),
	crWord(3, 4, regB1, false, false, false, false),
	crWord(5, 3, regF1, false, false, false, false),
	crWord(3, 4, regB2, false, false, false, false),
	crWord(5, 3, regF2, false, false, false, false),
	crWord(4, 3, regB3, false, false, false, false),
	crWord(6, 2, regF3, false, false, false, false),
	crWord(7, 1, regB4, false, false, false, false),
	crWord(6, 2, regF4, false, false, false, false),
	crWord(8, 0, regB5, false, false, false, false),
	crWord(8, 0, regF5, false, false, false, false),
	crWord(5, 0, regIA, false, false, false, false),
	crWord(5, 0, regIP, false, false, false, false),

	// 145-160: LOAD_2/LOAD_C, mode 11
	crWord(6, 2, regAM, false, false, false, false),
	crWord(8, 0, regPR, false, false, false, false),
	crWord(6, 1, regB0, false, false, false, false),
	crWord(6, 2, regF0, false, false, false, false),
	crWord(6, 1, regB1, false, false, false, false),
	crWord(6, 2, regF1, false, false, false, false),
	crWord(6, 1, regB2, false, false, false, false),
	crWord(6, 2, regF2, false, false, false, false),
	crWord(6, 1, regB3, false, false, false, false),
	crWord(7, 1, regF3, false, false, false, false),
	crWord(8, 0, regB4, false, false, false, false),
	crWord(8, 0, regF4, false, false, false, false),
	crWord(8, 0, regB5, false, false, false, false),
	crWord(8, 0, regF5, false, false, false, false),
	crWord(5, 0, regIA, false, false, false, false),
	crWord(5, 0, regIP, false, false, false, false),

	// 161-168: SETMSB_3/SETMSB_5, modes 00/01
	crWord(0, 0, 0, false, false, false, false),
	crWord(6, 2, regAM, false, false, false, false),
	crWord(8, 0, regPR, false, false, false, false),
	crWord(5, 3, regF0, false, true, false, false),
	crWord(5, 3, regF1, false, true, false, false),
	crWord(5, 3, regF2, false, true, false, false),
	crWord(5, 0, regIA, false, false, false, false),
	crWord(5, 0, regIP, false, false, false, false),

	// 169-176: SETMSB_3/SETMSB_5, modes 10/11
	crWord(0, 0, 0, false, false, false, false),
	crWord(6, 2, regAM, false, false, false, false),
	crWord(8, 0, regPR, false, false, false, false),
	crWord(6, 2, regF0, false, true, false, false),
	crWord(6, 2, regF1, false, true, false, false),
	crWord(6, 2, regF2, false, true, false, false),
	crWord(5, 0, regIA, false, false, false, false),
	crWord(5, 0, regIP, false, false, false, false),

	// 177-190: LOADALL, mode x0
	crWord(8, 0, regAM, false, false, false, false),
	crWord(8, 0, regPR, false, false, false, false),
	crWord(8, 0, regB0, false, false, false, false),
	crWord(8, 0, regF0, false, false, false, false),
	crWord(8, 0, regB1, false, false, false, false),
	crWord(8, 0, regF1, false, false, false, false),
	crWord(8, 0, regB2, false, false, false, false),
	crWord(8, 0, regF2, false, false, false, false),
	crWord(8, 0, regB3, false, false, false, false),
	crWord(8, 0, regF3, false, false, false, false),
	crWord(8, 0, regB4, false, false, false, false),
	crWord(8, 0, regF4, false, false, false, false),
	crWord(8, 0, regIA, false, false, false, false),
	crWord(8, 0, regIP, false, false, false, false),
}

// sp0256DfIdx maps (opcode<<3)|(mode&6) to a pair of adjacent entries
// {idx0, idx1} selecting the slice of sp0256Datafmt to apply. Entries of -1
// belong to opcodes that never reach data-block processing (RTS/SETPAGE,
// SETMODE, JMP, JSR) and must never be dereferenced.
var sp0256DfIdx = [128]int16{
	// opcode 0x0: RTS/SETPAGE - never reaches data-block processing
	-1, -1, -1, -1, -1, -1, -1, -1,
	// opcode 0x1: SETMODE - never reaches data-block processing
	-1, -1, -1, -1, -1, -1, -1, -1,
	// opcode 0x2, modes 00/01/10/11
	17, 22, 17, 24, 25, 30, 25, 32,
	// opcode 0x3, modes 00/01/10/11
	83, 94, 129, 142, 97, 108, 145, 158,
	// opcode 0x4, modes 00/01/10/11
	83, 96, 129, 144, 97, 110, 145, 160,
	// opcode 0x5, modes 00/01/10/11
	73, 77, 74, 77, 78, 82, 79, 82,
	// opcode 0x6, modes 00/01/10/11
	33, 36, 34, 37, 38, 41, 39, 42,
	// opcode 0x7, modes 00/01/10/11
	127, 128, 127, 128, 127, 128, 127, 128,
	// opcode 0x8, modes 00/01/10/11
	177, 190, 1, 16, 177, 190, 1, 16,
	// opcode 0x9, modes 00/01/10/11
	45, 56, 45, 58, 59, 70, 59, 72,
	// opcode 0xA, modes 00/01/10/11
	161, 166, 162, 166, 169, 174, 170, 174,
	// opcode 0xB, modes 00/01/10/11
	111, 116, 111, 118, 119, 124, 119, 126,
	// opcode 0xC, modes 00/01/10/11
	161, 168, 162, 168, 169, 176, 170, 176,
	// opcode 0xD: JSR - never reaches data-block processing
	-1, -1, -1, -1, -1, -1, -1, -1,
	// opcode 0xE: JMP - never reaches data-block processing
	-1, -1, -1, -1, -1, -1, -1, -1,
	// opcode 0xF: PAUSE - always the single clear-all sentinel entry
	0, 0, 0, 0, 0, 0, 0, 0,
}
