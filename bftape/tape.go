package bftape

const DefaultSize = 30000

// Tape is a fixed length array of 8-bit cells and a cursor into it.
// The cursor is always within [0, Len()).
type Tape struct {
	cells  []byte
	cursor int
}

func New(size int) *Tape {
	if size <= 0 {
		size = DefaultSize
	}
	return &Tape{
		cells: make([]byte, size),
	}
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Cursor() int {
	return t.cursor
}

// Move shifts the cursor by delta. A move that would leave the tape is rolled back.
func (t *Tape) Move(delta int) error {
	t.cursor += delta
	if t.cursor < 0 || t.cursor >= len(t.cells) {
		addr := t.cursor
		t.cursor -= delta
		return &BoundsError{
			Address: addr,
			Size:    len(t.cells),
		}
	}
	return nil
}

// Adjust adds delta to the current cell.
// Results below zero floor at 0, results above 255 wrap.
func (t *Tape) Adjust(delta int) {
	v := int(t.cells[t.cursor]) + delta
	if v < 0 {
		v = 0
	}
	t.cells[t.cursor] = byte(v % 256)
}

func (t *Tape) Get() byte {
	return t.cells[t.cursor]
}

func (t *Tape) Set(v byte) {
	t.cells[t.cursor] = v
}

// Cells returns a copy of the tape contents.
func (t *Tape) Cells() []byte {
	ret := make([]byte, len(t.cells))
	copy(ret, t.cells)
	return ret
}
