package bfir

import "strconv"

// Inst is one lowered instruction. Delta is meaningful for OpMove and OpAdjust only.
type Inst struct {
	Op    Op
	Delta int
}

func Move(delta int) Inst {
	return Inst{Op: OpMove, Delta: delta}
}

func Adjust(delta int) Inst {
	return Inst{Op: OpAdjust, Delta: delta}
}

func Zero() Inst {
	return Inst{Op: OpZero}
}

func Read() Inst {
	return Inst{Op: OpRead}
}

func Write() Inst {
	return Inst{Op: OpWrite}
}

func Enter() Inst {
	return Inst{Op: OpLoopEnter}
}

func Exit() Inst {
	return Inst{Op: OpLoopExit}
}

func (i Inst) String() string {
	if i.Op.HasDelta() {
		return i.Op.String() + "[" + strconv.Itoa(i.Delta) + "]"
	}
	return i.Op.String() + "[]"
}
