package loop

// Presentation constants. Gameplay tuning lives in the game package; these
// only shape how frames are produced.

// Frame pacing
const (
	targetFPS = 60
)

// Logical arena dimensions. Game objects use these coordinates; rendering
// scales to fit the terminal.
const (
	arenaWidth  = 800.0
	arenaHeight = 600.0
)

// Render area caps. Terminals larger than this get a centered, bordered
// playfield instead of a stretched one.
const (
	maxRenderCols = 160
	maxRenderRows = 50
)
