// internal/puzzle/grid.go
package puzzle

// Size — сторона сетки, BoxSize — сторона одного блока.
const (
	Size    = 9
	BoxSize = 3
)

// Grid хранит значения 1..9; 0 — пустая клетка.
type Grid [Size][Size]int

// Board — головоломка в процессе: подсказки зафиксированы, остальное вводит игрок.
type Board struct {
	Cells Grid
	Given [Size][Size]bool
}

// NewBoard фиксирует каждую непустую клетку как подсказку.
func NewBoard(puzzle Grid) *Board {
	b := &Board{Cells: puzzle}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.Given[r][c] = puzzle[r][c] != 0
		}
	}
	return b
}

// Place writes v (0 clears) at (r, c). It returns false and leaves the board unchanged
// for a clue cell, coordinates or values out of range, or a value that repeats in the
// cell's row, column or box.
func (b *Board) Place(r, c, v int) bool {
	if r < 0 || r >= Size || c < 0 || c >= Size || v < 0 || v > Size {
		return false
	}
	if b.Given[r][c] {
		return false
	}
	if v != 0 && !b.Cells.canPlace(r, c, v) {
		return false
	}
	b.Cells[r][c] = v
	return true
}

// Solved — все клетки заполнены и сетка корректна.
func (b *Board) Solved() bool { return ValidSolution(b.Cells) }

// Empty считает пустые клетки.
func (g *Grid) Empty() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// canPlace проверяет, встаёт ли v в (r, c), не глядя на текущее значение клетки.
func (g *Grid) canPlace(r, c, v int) bool {
	for i := 0; i < Size; i++ {
		if i != c && g[r][i] == v {
			return false
		}
		if i != r && g[i][c] == v {
			return false
		}
	}
	br, bc := r/BoxSize*BoxSize, c/BoxSize*BoxSize
	for i := br; i < br+BoxSize; i++ {
		for j := bc; j < bc+BoxSize; j++ {
			if (i != r || j != c) && g[i][j] == v {
				return false
			}
		}
	}
	return true
}

// ValidSolution reports whether g is completely filled with 1..9 and no value repeats in
// any row, column or sub-box.
func ValidSolution(g Grid) bool {
	for i := 0; i < Size; i++ {
		var row, col, box [Size + 1]bool
		for j := 0; j < Size; j++ {
			rv, cv := g[i][j], g[j][i]
			bv := g[i/BoxSize*BoxSize+j/BoxSize][i%BoxSize*BoxSize+j%BoxSize]
			for _, v := range [3]int{rv, cv, bv} {
				if v < 1 || v > Size {
					return false
				}
			}
			if row[rv] || col[cv] || box[bv] {
				return false
			}
			row[rv], col[cv], box[bv] = true, true, true
		}
	}
	return true
}

// GenerateSolved заполняет пустую сетку случайным перебором с возвратом.
func GenerateSolved(rng Rand) Grid {
	var g Grid
	g.fill(rng, 0)
	return g
}

func (g *Grid) fill(rng Rand, cell int) bool {
	if cell == Size*Size {
		return true
	}
	r, c := cell/Size, cell%Size
	for _, v := range shuffledValues(rng) {
		if g.canPlace(r, c, v) {
			g[r][c] = v
			if g.fill(rng, cell+1) {
				return true
			}
			g[r][c] = 0
		}
	}
	return false
}

func shuffledValues(rng Rand) [Size]int {
	var vals [Size]int
	for i := range vals {
		vals[i] = i + 1
	}
	for i := Size - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		vals[i], vals[j] = vals[j], vals[i]
	}
	return vals
}

// countSolutions считает решения g, останавливаясь на limit.
func (g *Grid) countSolutions(limit int) int {
	for cell := 0; cell < Size*Size; cell++ {
		r, c := cell/Size, cell%Size
		if g[r][c] != 0 {
			continue
		}
		count := 0
		for v := 1; v <= Size; v++ {
			if g.canPlace(r, c, v) {
				g[r][c] = v
				count += g.countSolutions(limit - count)
				g[r][c] = 0
				if count >= limit {
					return count
				}
			}
		}
		return count
	}
	return 1
}

// GenerateGrid builds a solved grid, then clears cells in random order while the puzzle
// keeps a single solution, down to clues filled cells (never below 17). It returns the
// puzzle and its solution.
func GenerateGrid(rng Rand, clues int) (Grid, Grid) {
	clues = max(clues, 17)
	solution := GenerateSolved(rng)
	puzzle := solution

	order := make([]int, Size*Size)
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	filled := Size * Size
	for _, cell := range order {
		if filled <= clues {
			break
		}
		r, c := cell/Size, cell%Size
		v := puzzle[r][c]
		puzzle[r][c] = 0
		if puzzle.countSolutions(2) != 1 {
			puzzle[r][c] = v
			continue
		}
		filled--
	}
	return puzzle, solution
}
