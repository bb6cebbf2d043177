package ui

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-recovery-arcade/internal/component"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", -3: "", 1: "I", 4: "IV", 5: "V", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		assert.Equal(t, want, ToRoman(n), "n=%d", n)
	}
}

func TestDots(t *testing.T) {
	filled, total := Dots(2.5, 5)
	assert.Equal(t, 3, filled)
	assert.Equal(t, 5, total)

	filled, _ = Dots(-1, 5)
	assert.Zero(t, filled)

	filled, total = Dots(12, 10)
	assert.Equal(t, 10, filled)
	assert.Equal(t, 10, total)
}

func TestFillRatio(t *testing.T) {
	assert.Zero(t, fillRatio(5, 0))
	assert.Equal(t, 0.5, fillRatio(15, 30))
	assert.Equal(t, 1.0, fillRatio(45, 30))
}

func TestPauseButtonDebounce(t *testing.T) {
	b := NewPauseButton(100, 100, 20, nil, nil)
	now := time.Now()

	assert.True(t, b.IsClicked(110, 105))
	assert.False(t, b.IsClicked(130, 100))

	assert.True(t, b.Toggle(now))
	assert.True(t, b.IsPaused)
	assert.False(t, b.Toggle(now.Add(100*time.Millisecond)))
	assert.True(t, b.Toggle(now.Add(400*time.Millisecond)))
	assert.False(t, b.IsPaused)
}

func TestSummaryPanelButtons(t *testing.T) {
	p := NewSummaryPanel(nil, nil)
	assert.Equal(t, ActionNone, p.Update(image.Pt(200, 750), true), "hidden panel ignores clicks")

	p.Show("Game over", component.RunStats{Score: 12})
	for i := 0; i < 30; i++ {
		p.Update(image.Point{}, false)
	}
	assert.Equal(t, ActionRetry, p.Update(image.Pt(200, 750), true))
	assert.Equal(t, ActionMenu, p.Update(image.Pt(400, 750), true))
	assert.Equal(t, ActionNone, p.Update(image.Pt(200, 750), false))

	p.Hide()
	for i := 0; i < 30; i++ {
		p.Update(image.Point{}, false)
	}
	assert.False(t, p.IsVisible)
}
