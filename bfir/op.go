package bfir

type Op uint8

const (
	OpMove Op = iota + 1
	OpAdjust
	OpZero
	OpRead
	OpWrite
	OpLoopEnter
	OpLoopExit
)

var opNames = [...]string{
	OpMove:      "Move",
	OpAdjust:    "Adjust",
	OpZero:      "Zero",
	OpRead:      "Read",
	OpWrite:     "Write",
	OpLoopEnter: "LoopEnter",
	OpLoopExit:  "LoopExit",
}

func (o Op) String() string {
	if int(o) < len(opNames) && opNames[o] != "" {
		return opNames[o]
	}
	return "Invalid"
}

// HasDelta reports whether instructions of this op carry a run-length delta.
func (o Op) HasDelta() bool {
	return o == OpMove || o == OpAdjust
}
