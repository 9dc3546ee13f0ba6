package debugs

import (
	"github.com/alape/bfi/bfir"
	"github.com/alape/bfi/bfvm"
)

// MachineGlobals names the parts of a paused machine visible to taps and expressions.
func MachineGlobals(m *bfvm.Machine, status bfvm.Status) map[string]any {
	return map[string]any{
		"pc":      status.PC,
		"inst":    status.Inst,
		"cursor":  status.Cursor,
		"cell":    status.Cell,
		"stack":   status.Stack,
		"program": []bfir.Inst(m.Program),
		"tape":    m.Tape.Cells(),
		"steps":   m.Steps(),
	}
}
