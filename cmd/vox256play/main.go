// Command vox256play drives a CTS256A-AL2/SP0256 board from ASCII text and
// plays the resulting speech through the host's audio device. Input can come
// from a -text flag, stdin, a raw-terminal interactive session, a gopher-lua
// script, or the system clipboard.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.design/x/clipboard"
	lua "github.com/yuin/gopher-lua"

	"github.com/vox256/cts256voice"
)

func main() {
	text := flag.String("text", "", "text to speak, instead of reading stdin")
	mode := flag.String("mode", "text", "SP0256 output mode: text (allophone labels) or raw")
	echo := flag.Bool("echo", false, "echo each input character as it is consumed")
	verbose := flag.Bool("verbose", false, "trace board reads/writes to stderr")
	debug := flag.Bool("debug", false, "stop (rather than exit) on a watchdog stall")
	noOK := flag.Bool("no-ok", false, "suppress the firmware's startup OK banner")
	interactive := flag.Bool("interactive", false, "feed keystrokes from a raw terminal instead of a fixed string")
	scriptPath := flag.String("script", "", "run a Lua script that feeds the board via feed()/wait_samples()")
	useClipboard := flag.Bool("clipboard", false, "speak the current clipboard contents, then exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vox256play [options]\n\nFeeds ASCII text to an emulated CTS256A-AL2/SP0256 board and plays the\nresulting speech.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vox256play -text \"HELLO WORLD.\"\n")
		fmt.Fprintf(os.Stderr, "  echo \"TESTING.\" | vox256play\n")
		fmt.Fprintf(os.Stderr, "  vox256play -interactive\n")
		fmt.Fprintf(os.Stderr, "  vox256play -script demo.lua\n")
	}
	flag.Parse()

	if *mode != "text" && *mode != "raw" {
		fmt.Fprintf(os.Stderr, "error: -mode must be text or raw\n")
		os.Exit(1)
	}

	board := cts256.NewDefaultBoard()
	board.SetOption('E', *echo)
	board.SetOption('D', *debug)
	board.SetOption('V', *verbose)
	board.SetOption('N', *noOK)
	if *mode == "text" {
		board.SetOutputMode('T')
	} else {
		board.SetOutputMode('B')
	}
	if *verbose {
		board.SetOutput(os.Stderr)
	}

	player, err := NewVoicePlayer(board.Voice())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: opening audio output: %v\n", err)
		os.Exit(1)
	}
	defer player.Close()
	player.Start()

	switch {
	case *scriptPath != "":
		if err := runScript(*scriptPath, board, player); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case *useClipboard:
		runClipboard(board, player)
	case *interactive:
		runInteractive(board, player)
	case *text != "":
		board.Feed([]byte(*text))
		board.EndOfInput()
		runUntilDone(board, player)
	default:
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: reading stdin: %v\n", err)
			os.Exit(1)
		}
		board.Feed(data)
		board.EndOfInput()
		runUntilDone(board, player)
	}
}

// runUntilDone steps the board until the firmware stalls or halts.
func runUntilDone(board *cts256.Board, player *VoicePlayer) {
	for {
		switch player.StepBoard(board) {
		case cts256.StepContinue:
			continue
		case cts256.StepStopped:
			return
		case cts256.StepExited:
			return
		}
	}
}

// runClipboard speaks the current clipboard text once and exits.
func runClipboard(board *cts256.Board, player *VoicePlayer) {
	if err := clipboard.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: clipboard unavailable: %v\n", err)
		os.Exit(1)
	}
	data := clipboard.Read(clipboard.FmtText)
	board.Feed(data)
	board.EndOfInput()
	runUntilDone(board, player)
}

// runInteractive feeds raw keystrokes to the board as they arrive, letting
// the user type text live while the voice plays back what's already queued.
func runInteractive(board *cts256.Board, player *VoicePlayer) {
	host := newKeyHost()
	host.Start()
	defer host.Stop()

	fmt.Fprintln(os.Stderr, "-- interactive mode: type text, Ctrl-D to end --")

	for {
		select {
		case b, ok := <-host.keys:
			if !ok {
				board.EndOfInput()
			} else {
				board.Feed([]byte{b})
			}
		default:
		}

		result := player.StepBoard(board)
		if result != cts256.StepContinue {
			return
		}
	}
}

// runScript runs a Lua script exposing feed(str) and wait_samples(n) to
// drive the board under scripted control.
func runScript(path string, board *cts256.Board, player *VoicePlayer) error {
	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("feed", L.NewFunction(func(L *lua.LState) int {
		s := L.CheckString(1)
		board.Feed([]byte(s))
		return 0
	}))
	L.SetGlobal("end_input", L.NewFunction(func(L *lua.LState) int {
		board.EndOfInput()
		return 0
	}))
	L.SetGlobal("wait_samples", L.NewFunction(func(L *lua.LState) int {
		n := L.CheckInt64(1)
		waitSamples(board, player, n)
		return 0
	}))

	return L.DoFile(path)
}

// waitSamples drives the board for roughly n SP0256 output samples' worth of
// wall-clock time, giving the Lua script a way to pace feed() calls against
// speech that's already playing.
func waitSamples(board *cts256.Board, player *VoicePlayer, n int64) {
	const sampleRate = 8000
	deadline := time.Now().Add(time.Duration(n) * time.Second / sampleRate)
	for time.Now().Before(deadline) {
		if player.StepBoard(board) != cts256.StepContinue {
			return
		}
	}
}
