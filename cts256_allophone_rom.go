// cts256_allophone_rom.go - wires the generator-authored allophone ROM
// (internal/sprom) into an SP0256 chip instance, so callers who don't have
// a genuine mask-ROM dump can still exercise the full microsequencer.

package cts256

import "github.com/vox256/cts256voice/internal/sprom"

// NewDefaultSp0256 builds an Sp0256Chip backed by the supplemental
// allophone ROM assembled by internal/sprom, rather than a transcribed
// mask-ROM dump. SendCommand accepts any of the 64 standard SP0256-AL2
// codes and drives real microsequencer execution against it.
func NewDefaultSp0256() *Sp0256Chip {
	return NewSp0256(sprom.Build(sprom.DefaultEntries()))
}

// NewDefaultBoard builds a Board wired to the supplemental allophone ROM
// and the embedded CTS256A-AL2 controller ROM.
func NewDefaultBoard() *Board {
	return NewBoard(sprom.Build(sprom.DefaultEntries()), cts256AL2ROM)
}
