/*
 * chessgen - bitboard chess move-generation and perft engine
 *
 * MIT License
 *
 * Copyright (c) 2026 chessgen contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Command chessgen is an interactive REPL over the move generator: it
// loads the standard opening position by default and accepts perft,
// perftd, magic and help commands read line by line from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidae/chessgen/internal/applog"
	"github.com/corvidae/chessgen/internal/attacks"
	"github.com/corvidae/chessgen/internal/board"
	"github.com/corvidae/chessgen/internal/config"
	"github.com/corvidae/chessgen/internal/fen"
	"github.com/corvidae/chessgen/internal/movegen"
	"github.com/corvidae/chessgen/internal/perft"
	. "github.com/corvidae/chessgen/internal/types"
)

var out = message.NewPrinter(language.English)

var regexWhiteSpace = regexp.MustCompile(`\s+`)

func main() {
	configFile := flag.String("config", "./chessgen.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := applog.GetLog()
	log.Info("chessgen REPL starting")

	repl := &repl{in: bufio.NewScanner(os.Stdin), outw: os.Stdout}
	repl.loop()
}

type repl struct {
	in   *bufio.Scanner
	outw *os.File
}

func (r *repl) loop() {
	fmt.Fprintln(r.outw, "chessgen REPL. Type 'help' for commands.")
	for r.in.Scan() {
		if r.handle(r.in.Text()) {
			os.Exit(0)
		}
	}
}

// handle processes one line of input and returns true if the REPL should
// exit (the "quit" command).
func (r *repl) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	tokens := regexWhiteSpace.Split(line, -1)
	switch tokens[0] {
	case "help":
		r.helpCommand()
	case "magic":
		r.magicCommand()
	case "perft":
		r.perftCommand(tokens)
	case "perftd":
		r.perftdCommand(tokens)
	case "quit":
		return true
	default:
		fmt.Fprintf(r.outw, "Unknown command: %s\n", tokens[0])
	}
	return false
}

func (r *repl) helpCommand() {
	fmt.Fprintln(r.outw, "Commands:")
	fmt.Fprintln(r.outw, "  help                               print this command list")
	fmt.Fprintln(r.outw, "  magic                              regenerate and print rook/bishop magics")
	fmt.Fprintln(r.outw, "  perft D [fen FEN | moves M1 M2 ..] run perft depths 1..D")
	fmt.Fprintln(r.outw, "  perftd D [fen FEN | moves ..]      divided perft at depth D")
	fmt.Fprintln(r.outw, "  quit                               exit")
}

func (r *repl) magicCommand() {
	rook, bishop := attacks.RegenerateMagics()
	for sq := SqA1; sq < Square(SqLength); sq++ {
		out.Fprintf(r.outw, "rook   %-3s %#016x\n", sq, uint64(rook[sq]))
	}
	for sq := SqA1; sq < Square(SqLength); sq++ {
		out.Fprintf(r.outw, "bishop %-3s %#016x\n", sq, uint64(bishop[sq]))
	}
}

func (r *repl) perftCommand(tokens []string) {
	b, depth, err := r.parsePerftArgs(tokens)
	if err != nil {
		fmt.Fprintln(r.outw, err)
		return
	}
	for d := 1; d <= depth; d++ {
		fresh, _ := fen.ToBoard(fen.FromBoard(b))
		start := time.Now()
		nodes := perft.Count(fresh, d)
		elapsed := time.Since(start)
		ms := elapsed.Milliseconds()
		mnps := 0.0
		if elapsed > 0 {
			mnps = float64(nodes) / elapsed.Seconds() / 1_000_000
		}
		out.Fprintf(r.outw, "depth %d: %d nodes / %d ms / %.2f Mnps\n", d, nodes, ms, mnps)
	}
}

func (r *repl) perftdCommand(tokens []string) {
	b, depth, err := r.parsePerftArgs(tokens)
	if err != nil {
		fmt.Fprintln(r.outw, err)
		return
	}
	entries := perft.Divide(b, depth)
	var total uint64
	for _, e := range entries {
		out.Fprintf(r.outw, "%s %d\n", e.Move, e.Nodes)
		total += e.Nodes
	}
	out.Fprintf(r.outw, "total %d\n", total)
}

// parsePerftArgs parses "D [fen FEN | moves M1 M2 ...]" from the tokens
// following the command name, returning the resulting board and depth.
func (r *repl) parsePerftArgs(tokens []string) (*board.Board, int, error) {
	if len(tokens) < 2 {
		return nil, 0, fmt.Errorf("usage: %s D [fen FEN | moves M1 M2 ...]", tokens[0])
	}
	depth, err := strconv.Atoi(tokens[1])
	if err != nil || depth < 1 {
		return nil, 0, fmt.Errorf("invalid depth: %q", tokens[1])
	}

	if len(tokens) == 2 {
		b, _ := fen.ToBoard(fen.StartFEN)
		return b, depth, nil
	}

	switch tokens[2] {
	case "fen":
		fields := tokens[3:]
		if len(fields) != 6 {
			return nil, 0, fmt.Errorf("invalid FEN: too few fields")
		}
		b, err := fen.ToBoard(strings.Join(fields, " "))
		if err != nil {
			return nil, 0, err
		}
		return b, depth, nil
	case "moves":
		b, _ := fen.ToBoard(fen.StartFEN)
		for _, mv := range tokens[3:] {
			m, err := movegen.MoveByString(b, mv)
			if err != nil {
				return nil, 0, err
			}
			mover := b.SideToMove()
			resetClock := b.PieceAt(m.From()).TypeOf() == Pawn || m.Flag().IsCapture()
			b.MakeMove(m)
			b.Advance(mover, resetClock)
		}
		return b, depth, nil
	default:
		return nil, 0, fmt.Errorf("usage: %s D [fen FEN | moves M1 M2 ...]", tokens[0])
	}
}

