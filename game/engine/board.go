package engine

import "fmt"

// Color identifies one of the four players.
type Color string

const (
	Red    Color = "red"
	Green  Color = "green"
	Yellow Color = "yellow"
	Blue   Color = "blue"
)

// TurnOrder is the fixed cyclic order of play.
var TurnOrder = [NumColors]Color{Red, Green, Yellow, Blue}

// Cell names one square of the shared ring ("r1".."b13") or of a color's
// private home stretch ("rh1".."rh5").
type Cell string

const (
	NumColors       = 4
	ArcSize         = 13
	RingSize        = NumColors * ArcSize
	HomeStretchSize = 5
	PathLength      = RingSize + HomeStretchSize
	TokensPerColor  = 4

	BasePosition  = 0
	EntryPosition = 1
	HomePosition  = PathLength

	MinDie = 1
	MaxDie = 6
	// EntryRoll is the roll that lets a token leave base and grants an extra turn.
	EntryRoll = 6

	DefaultSafeCellOffset = 8
)

// Valid reports whether c is one of the four player colors.
func (c Color) Valid() bool {
	return c.Index() >= 0
}

// Index returns the position of c in TurnOrder, or -1 for unknown colors.
func (c Color) Index() int {
	for i, color := range TurnOrder {
		if color == c {
			return i
		}
	}
	return -1
}

// Letter returns the one-letter prefix used in cell names.
func (c Color) Letter() string {
	if !c.Valid() {
		return "?"
	}
	return string(c)[:1]
}

// Next returns the color that plays after c.
func (c Color) Next() Color {
	return TurnOrder[(c.Index()+1)%NumColors]
}

// EntryOffset is the index into the shared ring where c enters the board.
func (c Color) EntryOffset() int {
	return ArcSize * c.Index()
}

// ParseColor converts user input into a Color.
func ParseColor(s string) (Color, error) {
	c := Color(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// Ring returns the 52 shared cells, one 13-cell arc per color in turn order.
func Ring() []Cell {
	ring := make([]Cell, 0, RingSize)
	for _, c := range TurnOrder {
		for i := 1; i <= ArcSize; i++ {
			ring = append(ring, Cell(fmt.Sprintf("%s%d", c.Letter(), i)))
		}
	}
	return ring
}

// HomeCells returns the private home stretch of c in travel order.
func HomeCells(c Color) []Cell {
	cells := make([]Cell, 0, HomeStretchSize)
	for i := 1; i <= HomeStretchSize; i++ {
		cells = append(cells, Cell(fmt.Sprintf("%sh%d", c.Letter(), i)))
	}
	return cells
}

// BuildPaths constructs each color's 57-cell path: the shared ring rotated to
// the color's entry cell followed by its home stretch.
func BuildPaths() map[Color][]Cell {
	ring := Ring()
	paths := make(map[Color][]Cell, NumColors)
	for _, c := range TurnOrder {
		path := make([]Cell, 0, PathLength)
		start := c.EntryOffset()
		for i := 0; i < RingSize; i++ {
			path = append(path, ring[(start+i)%RingSize])
		}
		path = append(path, HomeCells(c)...)
		paths[c] = path
	}
	return paths
}

// Board is the immutable geometry shared by every game using the same rule set.
type Board struct {
	ring      []Cell
	paths     map[Color][]Cell
	safe      map[Cell]bool
	ringIndex map[Cell]int
}

// NewBoard builds the paths once and marks the cell at safeOffset of every
// color's arc as safe.
func NewBoard(safeOffset int) (*Board, error) {
	if safeOffset < 0 || safeOffset >= ArcSize {
		return nil, fmt.Errorf("safe cell offset must be between 0 and %d, got %d", ArcSize-1, safeOffset)
	}

	ring := Ring()
	b := &Board{
		ring:      ring,
		paths:     BuildPaths(),
		safe:      make(map[Cell]bool, NumColors),
		ringIndex: make(map[Cell]int, RingSize),
	}
	for i, cell := range ring {
		b.ringIndex[cell] = i
	}
	for _, c := range TurnOrder {
		b.safe[ring[c.EntryOffset()+safeOffset]] = true
	}
	return b, nil
}

// Path returns a copy of the path for c.
func (b *Board) Path(c Color) []Cell {
	return append([]Cell(nil), b.paths[c]...)
}

// CellAt returns the cell a token of color c occupies at pos. Tokens in base
// occupy no cell.
func (b *Board) CellAt(c Color, pos int) (Cell, bool) {
	path, ok := b.paths[c]
	if !ok || pos < EntryPosition || pos > len(path) {
		return "", false
	}
	return path[pos-1], true
}

// RingIndex returns the canonical shared-ring index for a token of color c at
// pos. Tokens in base or in the home stretch are not on the ring.
func (b *Board) RingIndex(c Color, pos int) (int, bool) {
	if !c.Valid() || pos < EntryPosition || pos > RingSize {
		return 0, false
	}
	return (c.EntryOffset() + pos - 1) % RingSize, true
}

// IsSafe reports whether no capture can happen on cell.
func (b *Board) IsSafe(cell Cell) bool {
	return b.safe[cell]
}

// SafeCells lists the safe cells in ring order.
func (b *Board) SafeCells() []Cell {
	cells := make([]Cell, 0, len(b.safe))
	for _, cell := range b.ring {
		if b.safe[cell] {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Layout is a renderer-friendly description of the board.
type Layout struct {
	Ring          []Cell           `json:"ring"`
	Paths         map[Color][]Cell `json:"paths"`
	SafeCells     []Cell           `json:"safe_cells"`
	EntryCells    map[Color]Cell   `json:"entry_cells"`
	TurnOrder     []Color          `json:"turn_order"`
	PathLength    int              `json:"path_length"`
	TokensPerSide int              `json:"tokens_per_color"`
}

// Layout returns a copy of the board geometry.
func (b *Board) Layout() *Layout {
	layout := &Layout{
		Ring:          append([]Cell(nil), b.ring...),
		Paths:         make(map[Color][]Cell, NumColors),
		SafeCells:     b.SafeCells(),
		EntryCells:    make(map[Color]Cell, NumColors),
		TurnOrder:     append([]Color(nil), TurnOrder[:]...),
		PathLength:    PathLength,
		TokensPerSide: TokensPerColor,
	}
	for _, c := range TurnOrder {
		layout.Paths[c] = b.Path(c)
		layout.EntryCells[c] = b.ring[c.EntryOffset()]
	}
	return layout
}

// CellRingIndex returns the ring index of a shared cell. Home-stretch cells
// are not on the ring.
func (b *Board) CellRingIndex(cell Cell) (int, bool) {
	i, ok := b.ringIndex[cell]
	return i, ok
}
