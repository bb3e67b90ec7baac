// sp0256_micro.go - the SP0256's bit-serial microsequencer: opcode fetch,
// branch/page handling, and data-block decode into the filter registers.

package cts256

// microStep runs the microsequencer until the filter bank has work queued
// (rpt > 0 or cnt > 0) or the chip halts waiting for a new command.
func (s *Sp0256Chip) microStep() {
	for s.filt.rpt <= 0 && s.filt.cnt <= 0 {
		if s.halted && s.lrq == 0 {
			s.pc = s.ald | (0x1000 << 3)
			s.fifoSel = false
			s.halted = false
			s.lrq = 0x8000
			s.ald = 0
		}

		if s.halted {
			s.filt.rpt = 1
			s.filt.cnt = 0
			s.lrq = 0x8000
			s.ald = 0
			return
		}

		immed4 := uint8(s.getb(4))
		opcode := uint8(s.getb(4))
		repeat := 0
		ctrlXfer := false

		switch opcode {
		case 0x0: // RTS / SETPAGE
			if immed4 != 0 {
				s.page = bitrev(uint32(immed4)) >> 13
			} else {
				target := s.stack
				s.stack = 0
				if target == 0 {
					s.halted = true
					s.pc = 0
				} else {
					s.pc = target
				}
				ctrlXfer = true
			}

		case 0xE, 0xD: // JMP, JSR
			byte8 := s.getb(8)
			target := s.page | (bitrev(uint32(immed4)) >> 17) | (bitrev(byte8) >> 21)
			ctrlXfer = true
			if opcode == 0xD {
				s.stack = (s.pc + 7) &^ 7
			}
			s.pc = target

		case 0x1: // SETMODE
			s.mode = ((immed4 & 8) >> 2) | (immed4 & 4) | ((immed4 & 3) << 4)

		default:
			repeat = int(immed4) | int(s.mode&0x30)
		}

		if opcode != 0x1 {
			s.mode &= 0xF
		}

		if ctrlXfer {
			s.fifoSel = s.pc == fifoAddr
			if s.fifoSel && s.fifoBitp != 0 {
				if s.fifoTail < s.fifoHead {
					s.fifoTail++
				}
				s.fifoBitp = 0
			}
			continue
		}

		if repeat == 0 {
			continue
		}

		s.filt.rpt = repeat
		for i := 0; i < 6; i++ {
			s.filt.zData[i][0] = 0
			s.filt.zData[i][1] = 0
		}

		i := (int(opcode) << 3) | int(s.mode&6)
		idx0 := sp0256DfIdx[i]
		idx1 := sp0256DfIdx[i+1]
		if idx0 < 0 || idx1 < 0 || idx1 < idx0 {
			panic("cts256: sp0256 data-format index out of range")
		}

		if s.mode&2 == 0 {
			s.filt.r[regF5] = 0
			s.filt.r[regB5] = 0
		}

		for j := idx0; j <= idx1; j++ {
			cr := sp0256Datafmt[j]
			length := crLen(cr)
			shf := crShf(cr)
			prm := crPrm(cr)
			clrL := cr&crClrAll != 0
			delta := cr&crDelta != 0
			field := cr&crField != 0

			if clrL {
				s.filt.r[regF0] = 0
				s.filt.r[regB0] = 0
				s.filt.r[regF1] = 0
				s.filt.r[regB1] = 0
				s.filt.r[regF2] = 0
				s.filt.r[regB2] = 0
			}

			if length == 0 {
				continue
			}

			value := int32(s.getb(length))
			if delta && value&(1<<uint(length-1)) != 0 {
				value |= -1 << uint(length)
			}
			if shf != 0 {
				if value < 0 {
					value = -(-value << uint(shf))
				} else {
					value = value << uint(shf)
				}
			}

			s.silent = false

			switch {
			case field:
				s.filt.r[prm] &^= uint8(^uint32(0) << uint(shf))
				s.filt.r[prm] |= uint8(value)
			case delta:
				s.filt.r[prm] += uint8(value)
			default:
				s.filt.r[prm] = uint8(value)
			}
		}

		if opcode != 0x1 && opcode != 0x2 && opcode != 0x3 {
			s.filt.r[regIA] = 0
			s.filt.r[regIP] = 0
		}

		if opcode == 0xF {
			s.silent = true
			s.filt.r[regAM] = 0
			s.filt.r[regPR] = perPause
		}

		s.filt.regdec()
		break
	}
}
