// Package fileproto is the thin file-exchange boundary an external
// orchestrator uses to invoke a one-shot move computation (spec §6). It
// never touches the search or rules engines directly — it only parses and
// emits the plain-text wire format and owns the difficulty→budget map.
// Deliberately thin per spec.md's scope: "None of these embodies the hard
// engineering of the project."
package fileproto

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/leo-luoson/einstein-pmcts/board"
)

// BudgetForDifficulty maps difficulty ∈ {3,4,5} to a PMCTS simulation
// budget (spec §6), grounded on original_source/core/config.py's
// difficulty table.
var BudgetForDifficulty = map[int]int{
	3: 1000,
	4: 10000,
	5: 50000,
}

// IllegalInputError reports a malformed input file (spec §7 IllegalInput):
// the boundary refuses to run rather than guess at recovery.
type IllegalInputError struct {
	Reason string
}

func (e *IllegalInputError) Error() string {
	return "illegal input: " + e.Reason
}

// Input is a parsed input file: difficulty, die, and the board it describes.
type Input struct {
	Difficulty int
	Die        int
	Board      board.Board
}

// Budget resolves in.Difficulty to a simulation budget, or an
// IllegalInputError if Difficulty is out of {3,4,5}.
func (in Input) Budget() (int, error) {
	budget, ok := BudgetForDifficulty[in.Difficulty]
	if !ok {
		return 0, &IllegalInputError{Reason: fmt.Sprintf("difficulty %d not in {3,4,5}", in.Difficulty)}
	}
	return budget, nil
}

// ParseInputFile reads the spec §6 wire format: a "<difficulty> <die>"
// header line followed by five space-separated integer rows.
func ParseInputFile(path string) (Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return Input{}, &IllegalInputError{Reason: err.Error()}
	}
	defer f.Close()

	lines := make([]string, 0, 6)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Input{}, &IllegalInputError{Reason: err.Error()}
	}
	if len(lines) < 6 {
		return Input{}, &IllegalInputError{Reason: fmt.Sprintf("expected 6 lines (header + 5 rows), got %d", len(lines))}
	}

	header := strings.Fields(lines[0])
	if len(header) != 2 {
		return Input{}, &IllegalInputError{Reason: "header must be \"<difficulty> <die>\""}
	}
	difficulty, err := strconv.Atoi(header[0])
	if err != nil {
		return Input{}, &IllegalInputError{Reason: "difficulty is not an integer"}
	}
	die, err := strconv.Atoi(header[1])
	if err != nil {
		return Input{}, &IllegalInputError{Reason: "die is not an integer"}
	}
	if die < 1 || die > 6 {
		return Input{}, &IllegalInputError{Reason: fmt.Sprintf("die %d out of range [1,6]", die)}
	}

	var rows [5][5]int
	seen := map[int]bool{}
	for r := 0; r < 5; r++ {
		fields := strings.Fields(lines[1+r])
		if len(fields) != 5 {
			return Input{}, &IllegalInputError{Reason: fmt.Sprintf("row %d has %d cells, want 5", r, len(fields))}
		}
		for c := 0; c < 5; c++ {
			v, err := strconv.Atoi(fields[c])
			if err != nil {
				return Input{}, &IllegalInputError{Reason: fmt.Sprintf("row %d col %d is not an integer", r, c)}
			}
			if v < 0 || v > 12 {
				return Input{}, &IllegalInputError{Reason: fmt.Sprintf("token %d out of range [0,12]", v)}
			}
			if v != 0 {
				if seen[v] {
					return Input{}, &IllegalInputError{Reason: fmt.Sprintf("token %d appears more than once", v)}
				}
				seen[v] = true
			}
			rows[r][c] = v
		}
	}

	return Input{Difficulty: difficulty, Die: die, Board: board.FromRows(rows)}, nil
}

// WriteOutputFile writes b as the spec §6 output format: five rows, no
// header, space-separated integers.
func WriteOutputFile(path string, b board.Board) error {
	var sb strings.Builder
	rows := b.Rows()
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(rows[r][c]))
		}
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
