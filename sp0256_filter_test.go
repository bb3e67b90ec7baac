package cts256

import (
	"testing"

	"github.com/vox256/cts256voice/internal/sprom"
)

// TestLFSRGaloisRecurrence pins the noise generator's bit sequence: starting
// from rng=1, the Galois LFSR with mask 0x4001 must produce the same stream
// of low bits every run, since the unvoiced excitation sign depends on it.
func TestLFSRGaloisRecurrence(t *testing.T) {
	var bits [100]uint32
	f := newLPC12() // per == 0: noise-excited
	f.rpt = len(bits)
	var out [1]int16
	for i := range bits {
		bits[i] = f.rng & 1 // the bit update() consumes for this sample
		f.update(1, out[:])
	}

	// Reference vector worked out by hand from the Galois recurrence; this
	// pins the sequence so a future change to update()'s generator is caught.
	want := [15]uint32{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	for i, w := range want {
		if bits[i] != w {
			t.Fatalf("lfsr bit %d = %d, want %d (full run: %v)", i, bits[i], w, bits[:20])
		}
	}
	if bits[15] != 0 || bits[16] != 1 || bits[17] != 0 {
		t.Fatalf("lfsr bits[15:18] = %v, want [0 1 0] (first divergence from the all-ones run)", bits[15:18])
	}
}

func TestAmpDecodeMonotonicInMantissaTimesExponent(t *testing.T) {
	for exp := 0; exp < 8; exp++ {
		for mant := 0; mant < 32; mant++ {
			reg := byte(exp<<5) | byte(mant)
			got := ampDecode(reg)
			want := mant << exp
			if got != want {
				t.Fatalf("ampDecode(%#02x) = %d, want %d", reg, got, want)
			}
		}
	}
}

// After the repeat count is exhausted, update() must stop emitting samples
// until a new opcode installs a fresh rpt, rather than free-running.
func TestFilterStopsAfterRepeatExhausted(t *testing.T) {
	f := newLPC12()
	f.rpt = 2
	f.per = 10
	f.amp = 50

	out := make([]int16, 50)
	n := f.update(len(out), out)
	if n >= len(out) {
		t.Fatalf("update produced %d samples from a 2-period excitation, expected it to stop early", n)
	}
	if f.rpt != 0 {
		t.Fatalf("rpt = %d after exhaustion, want 0", f.rpt)
	}

	n2 := f.update(len(out), out)
	if n2 != 0 {
		t.Fatalf("update after exhaustion produced %d more samples, want 0", n2)
	}
}

// Submitting the last valid allophone code and pulling samples until the
// chip halts again must terminate well within the nominal sample budget,
// rather than running away or deadlocking the microsequencer.
func TestSendCommandHaltsWithinSampleBudget(t *testing.T) {
	s := NewSp0256(sprom.Build(sprom.DefaultEntries()))

	s.SendCommand(0x3F)

	const budget = 1_000_000
	n := 0
	for {
		s.NextSample()
		n++
		if s.Halted() || n >= budget {
			break
		}
	}

	if n >= budget {
		t.Fatalf("chip did not halt after %d samples", budget)
	}
	if !s.Halted() {
		t.Fatalf("Halted() = false after the loop exited")
	}
}
