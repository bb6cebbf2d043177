package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"go-recovery-arcade/internal/app"
	"go-recovery-arcade/internal/component"
	"go-recovery-arcade/internal/puzzle"
	"go-recovery-arcade/internal/score"
	"go-recovery-arcade/internal/utils"
)

// Режимы терминального хоста.
type mode int

const (
	modeArcade mode = iota
	modeCodeBreaker
	modeGrid
)

const (
	gridGame      = "grid"
	gridClues     = 30
	pointsPerCell = 10
)

var (
	styleGiven  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleFilled = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleCursor = tcell.StyleDefault.Reverse(true)
	styleHit    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleNear   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// codeBreaker набирает догадку и отдаёт её сессии.
type codeBreaker struct {
	session *app.PuzzleSession
	input   []int
}

func newCodeBreaker(opts app.PuzzleOptions) *codeBreaker {
	return &codeBreaker{session: app.NewPuzzleSession(opts)}
}

// handleKey возвращает leave=true, когда игрок возвращается к аркаде.
func (c *codeBreaker) handleKey(ev *tcell.EventKey) (leave bool, err error) {
	s := c.session
	switch s.Phase() {
	case component.PhaseMenu:
		switch {
		case ev.Rune() == 'a':
			return true, nil
		case ev.Key() == tcell.KeyEnter || ev.Rune() == ' ':
			c.input = c.input[:0]
			err = s.Start()
		}

	case component.PhasePlaying:
		view := s.View()
		switch {
		case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
			if len(c.input) > 0 {
				c.input = c.input[:len(c.input)-1]
			}
		case ev.Key() == tcell.KeyEnter:
			if _, ok := s.Guess(c.input); ok {
				c.input = c.input[:0]
			}
		case ev.Rune() == 'p':
			err = s.Pause()
		case ev.Rune() >= '0' && ev.Rune() <= '9':
			d := int(ev.Rune() - '0')
			if d < view.Digits && len(c.input) < view.Length {
				c.input = append(c.input, d)
			}
		}

	case component.PhasePaused:
		switch ev.Rune() {
		case 'p':
			err = s.Resume()
		case 'm':
			err = s.ReturnToMenu()
		}

	case component.PhaseGameOver:
		switch ev.Rune() {
		case 'r':
			c.input = c.input[:0]
			err = s.Retry()
		case 'm':
			err = s.ReturnToMenu()
		}
	}
	return false, err
}

func digits(v []int) string {
	var b strings.Builder
	for _, d := range v {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

func (c *codeBreaker) draw(s tcell.Screen) {
	s.Clear()
	view := c.session.View()
	drawText(s, 2, 1, styleStatus, fmt.Sprintf(" CODE BREAKER  %d symbols 0-%d ", view.Length, view.Digits-1))

	if view.Phase == component.PhaseMenu {
		drawText(s, 2, 3, styleDefault, "enter start  a arcade  q quit")
		s.Show()
		return
	}

	y := 3
	for _, a := range view.History {
		drawText(s, 2, y, styleDefault, digits(a.Guess))
		drawText(s, 4+view.Length, y, styleHit, fmt.Sprintf("%d in place", a.Feedback.Correct))
		drawText(s, 17+view.Length, y, styleNear, fmt.Sprintf("%d elsewhere", a.Feedback.WrongPosition))
		y++
	}
	y++

	switch view.Phase {
	case component.PhasePlaying:
		line := digits(c.input) + strings.Repeat("_", max(view.Length-len(c.input), 0))
		drawText(s, 2, y, styleCursor, line)
		left := "unlimited"
		if view.AttemptsLeft >= 0 {
			left = fmt.Sprintf("%d left", view.AttemptsLeft)
		}
		drawText(s, 4+view.Length, y, styleDefault, left)
		drawText(s, 2, y+2, styleDefault, "digits type  backspace erase  enter guess  p pause")
	case component.PhasePaused:
		drawText(s, 2, y, styleDefault, "PAUSED  p resume  m menu")
	case component.PhaseGameOver:
		result := "OUT OF ATTEMPTS"
		if view.Solved {
			result = "SOLVED"
		}
		drawText(s, 2, y, styleStatus, fmt.Sprintf(" %s  code %s  score %d ", result, digits(view.Secret), view.Score))
		drawText(s, 2, y+2, styleDefault, "r retry  m menu")
	}
	s.Show()
}

// gridPuzzle — сетка 9×9 с курсором. Решённая сетка отправляется в хранилище один раз.
type gridPuzzle struct {
	rng      *utils.PRNGService
	scores   app.ScoreSink
	userID   string
	board    *puzzle.Board
	solution puzzle.Grid
	blanks   int
	hints    int
	row, col int
	done     bool
}

func newGridPuzzle(seed int64, userID string, scores app.ScoreSink) *gridPuzzle {
	g := &gridPuzzle{rng: utils.NewPRNGService(seed), scores: scores, userID: userID}
	g.deal()
	return g
}

func (g *gridPuzzle) deal() {
	grid, solution := puzzle.GenerateGrid(g.rng, gridClues)
	g.board = puzzle.NewBoard(grid)
	g.solution = solution
	g.blanks = grid.Empty()
	g.row, g.col = 0, 0
	g.hints = 0
	g.done = false
}

// Score is pointsPerCell for every cell the player filled in, less one cell per hint.
func (g *gridPuzzle) Score() int { return max(g.blanks-g.hints, 0) * pointsPerCell }

// place ставит v под курсором и завершает сетку, если она решена.
func (g *gridPuzzle) place(v int) {
	if g.board.Place(g.row, g.col, v) && g.board.Solved() {
		g.finish()
	}
}

func (g *gridPuzzle) handleKey(ev *tcell.EventKey) (leave bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		g.col = (g.col + puzzle.Size - 1) % puzzle.Size
	case tcell.KeyRight:
		g.col = (g.col + 1) % puzzle.Size
	case tcell.KeyUp:
		g.row = (g.row + puzzle.Size - 1) % puzzle.Size
	case tcell.KeyDown:
		g.row = (g.row + 1) % puzzle.Size
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		if !g.done {
			g.board.Place(g.row, g.col, 0)
		}
	}
	switch r := ev.Rune(); {
	case r == 'a':
		return true
	case r == 'n':
		g.deal()
	case r == 'h' && !g.done:
		if g.board.Cells[g.row][g.col] == 0 {
			g.hints++
			g.place(g.solution[g.row][g.col])
		}
	case r >= '0' && r <= '9' && !g.done:
		g.place(int(r - '0'))
	}
	return false
}

func (g *gridPuzzle) finish() {
	g.done = true
	if g.scores != nil {
		g.scores.Submit(score.Record{UserID: g.userID, GameType: gridGame, Score: g.Score(), Level: g.blanks})
	}
}

func (g *gridPuzzle) draw(s tcell.Screen) {
	s.Clear()
	drawText(s, 2, 1, styleStatus, fmt.Sprintf(" GRID  %d empty ", g.board.Cells.Empty()))
	for r := 0; r < puzzle.Size; r++ {
		for c := 0; c < puzzle.Size; c++ {
			x := 2 + c*2 + c/puzzle.BoxSize*2
			y := 3 + r + r/puzzle.BoxSize
			ch, style := '.', styleArena
			if v := g.board.Cells[r][c]; v != 0 {
				ch, style = rune('0'+v), styleFilled
				if g.board.Given[r][c] {
					style = styleGiven
				}
			}
			if r == g.row && c == g.col {
				style = styleCursor
			}
			s.SetContent(x, y, ch, nil, style)
		}
	}
	hint := "arrows move  1-9 place  0 clear  h hint  n new  a arcade  q quit"
	if g.done {
		hint = fmt.Sprintf("SOLVED  score %d  n new  a arcade", g.Score())
	}
	drawText(s, 2, 3+puzzle.Size+puzzle.Size/puzzle.BoxSize, styleDefault, hint)
	s.Show()
}
