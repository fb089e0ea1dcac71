// Command einstein-move is the file-exchange entry point an external
// orchestrator invokes for a one-shot move computation (spec §6): read an
// input file, compute one move, write the post-move board, exit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leo-luoson/einstein-pmcts/board"
	"github.com/leo-luoson/einstein-pmcts/pkg/fileproto"
	"github.com/leo-luoson/einstein-pmcts/pkg/pmcts"
	"github.com/leo-luoson/einstein-pmcts/rules"
	"github.com/muesli/termenv"
)

func main() {
	in := flag.String("in", "", "input file path (difficulty/die header + 5 board rows)")
	out := flag.String("out", "", "output file path (5 board rows)")
	player := flag.String("player", "", "which side is moving: red or blue")
	seed := flag.Int64("seed", 1, "search RNG seed")
	verbose := flag.Bool("verbose", false, "print a status line to stderr")
	flag.Parse()

	if *in == "" || *out == "" || *player == "" {
		fmt.Fprintln(os.Stderr, "usage: einstein-move -in PATH -out PATH -player red|blue [-seed N] [-verbose]")
		os.Exit(2)
	}

	var side board.Player
	switch *player {
	case "red", "Red", "RED":
		side = board.Red
	case "blue", "Blue", "BLUE":
		side = board.Blue
	default:
		fmt.Fprintf(os.Stderr, "unknown -player %q\n", *player)
		os.Exit(2)
	}

	input, err := fileproto.ParseInputFile(*in)
	if err != nil {
		// No board could be parsed; there is nothing safe to write back.
		fmt.Fprintf(os.Stderr, "einstein-move: %v\n", err)
		os.Exit(1)
	}

	move, ok := run(input, side, *seed, *verbose)
	if !ok {
		// NoLegalMove / TerminalMisuse (spec §7): write the input board back
		// unchanged so the orchestrator keeps advancing.
		if werr := fileproto.WriteOutputFile(*out, input.Board); werr != nil {
			fmt.Fprintf(os.Stderr, "einstein-move: failed writing fallback output: %v\n", werr)
		}
		os.Exit(1)
	}

	result := rules.Apply(input.Board, move)
	if err := fileproto.WriteOutputFile(*out, result); err != nil {
		fmt.Fprintf(os.Stderr, "einstein-move: %v\n", err)
		if werr := fileproto.WriteOutputFile(*out, input.Board); werr != nil {
			fmt.Fprintf(os.Stderr, "einstein-move: failed writing fallback output: %v\n", werr)
		}
		os.Exit(1)
	}
}

// run performs TerminalMisuse/NoLegalMove handling (spec §7) and the
// actual search, returning ok=false whenever the input board calls for the
// input to be echoed back unchanged.
func run(input fileproto.Input, side board.Player, seed int64, verbose bool) (rules.Move, bool) {
	if rules.Terminal(input.Board) {
		return rules.Move{}, false
	}

	budget, err := input.Budget()
	if err != nil {
		return rules.Move{}, false
	}

	if verbose {
		out := termenv.NewOutput(os.Stderr)
		fmt.Fprintln(out, out.String(fmt.Sprintf(
			"searching: difficulty=%d die=%d player=%v budget=%d",
			input.Difficulty, input.Die, side, budget,
		)).Faint())
	}

	limits := pmcts.DefaultLimits().SetSimulations(budget)
	searcher := pmcts.NewSearcher(limits, seed)
	return searcher.Search(input.Board, input.Die, side)
}
