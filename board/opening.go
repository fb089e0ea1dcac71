package board

import "math/rand"

// DefaultOpening returns the seeded starting layout from spec §6: Blue's
// fixed pieces 12/11/10/9/8 at (0,4), (1,3), (2,2), (2,3), (2,4), Red's
// fixed piece 1 in the (4,0) corner, Blue's piece 7 at (3,1) diagonally
// next to it, and the remaining tokens (2..6) shuffled uniformly into the
// leftover empty cells. Deterministic given rng.
func DefaultOpening(rng *rand.Rand) Board {
	b := New()
	b = b.Place(0, 4, Token(12))
	b = b.Place(1, 3, Token(11))
	b = b.Place(2, 2, Token(10))
	b = b.Place(2, 3, Token(9))
	b = b.Place(2, 4, Token(8))
	b = b.Place(3, 1, Token(7))
	b = b.Place(4, 0, Token(1))

	var empties []Cell
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.At(r, c) == Empty {
				empties = append(empties, Cell{r, c})
			}
		}
	}

	remaining := []Token{2, 3, 4, 5, 6}
	rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})
	rng.Shuffle(len(empties), func(i, j int) {
		empties[i], empties[j] = empties[j], empties[i]
	})

	for i, t := range remaining {
		cell := empties[i]
		b = b.Place(cell.Row, cell.Col, t)
	}

	return b
}
