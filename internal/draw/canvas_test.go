package draw

import (
	"strings"
	"testing"
)

func TestCanvasRenderHalfBlocks(t *testing.T) {
	// 4x2 terminal cells over a 4x4 logical space: each cell is one column
	// wide and two sub-pixels tall.
	c := NewCanvas(4, 2, 4, 4)

	c.SetFloat(0, 0) // Top sub-pixel of cell (1,1)
	c.SetFloat(1, 1) // Bottom sub-pixel of cell (2,1)
	c.SetFloat(2, 0)
	c.SetFloat(2, 1) // Both sub-pixels of cell (3,1)

	var sb strings.Builder
	c.Render(&sb)
	out := sb.String()

	if !strings.ContainsRune(out, BlockUpperHalf) {
		t.Error("missing upper half block")
	}
	if !strings.ContainsRune(out, BlockLowerHalf) {
		t.Error("missing lower half block")
	}
	if !strings.ContainsRune(out, BlockFull) {
		t.Error("missing full block")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 2, 4, 4)
	c.SetFloat(1, 1)
	c.Clear()

	var sb strings.Builder
	c.Render(&sb)
	if sb.Len() != 0 {
		t.Errorf("cleared canvas rendered %q", sb.String())
	}
}

func TestCanvasOutOfBoundsIsSafe(t *testing.T) {
	c := NewCanvas(4, 2, 4, 4)
	c.SetFloat(-10, -10)
	c.SetFloat(100, 100)
	c.DrawLine(Point{X: -5, Y: -5}, Point{X: 50, Y: 50})
	c.DrawCircle(Point{X: 2, Y: 2}, 100)
}

func TestCanvasResizeKeepsLogicalSpace(t *testing.T) {
	c := NewCanvas(4, 2, 8, 8)
	c.Resize(8, 4)

	// The far logical corner must land in the last cell at any size.
	c.SetFloat(7.4, 7.4)
	var sb strings.Builder
	c.Render(&sb)
	if sb.Len() == 0 {
		t.Error("far corner pixel lost after resize")
	}
}

func TestCanvasOffsetsShiftOutput(t *testing.T) {
	c := NewCanvas(2, 1, 2, 2)
	c.SetOffset(5, 3)
	c.SetFloat(0, 0)

	var sb strings.Builder
	c.Render(&sb)
	if !strings.Contains(sb.String(), "\033[4;6H") {
		t.Errorf("offset not applied: %q", sb.String())
	}
}

func TestDrawCircleMarksPerimeter(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)
	c.DrawCircle(Point{X: 10, Y: 10}, 5)

	var sb strings.Builder
	c.Render(&sb)
	if sb.Len() == 0 {
		t.Error("circle drew nothing")
	}
}

func TestDrawPolygonFilledKeepsCallerPoints(t *testing.T) {
	// Callers build polygons inside BorrowPoints and then outline them, so
	// the fill pass must not scale the borrowed slice in place.
	c := NewCanvas(40, 25, 400, 300)
	want := [4]Point{
		{X: 100, Y: 100},
		{X: 300, Y: 100},
		{X: 300, Y: 200},
		{X: 100, Y: 200},
	}

	pts := c.BorrowPoints(4)
	copy(pts, want[:])
	c.DrawPolygon(pts, true)

	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("filled draw rewrote borrowed point %d: got %+v, want %+v", i, pts[i], want[i])
		}
	}
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	col, row := c.LogicalToTerminal(50, 50)
	if col != 6 || row != 3 {
		t.Errorf("center mapped to (%d, %d), want (6, 3)", col, row)
	}
}
