package bficonfigs

import (
	"github.com/alape/bfi/cmds"
	"github.com/alape/bfi/configs"
)

// Trace enables per instruction status output.
type Trace bool

// Debug enables interactive single stepping.
type Debug bool

var (
	traceFlag = cmds.Switch("-trace", "print the machine status before every instruction")
	debugFlag = cmds.Switch("-debug", "step through instructions interactively")
)

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || configs.First[bool](loader, "trace"))
}

func (Module) Debug(
	loader configs.Loader,
) Debug {
	return Debug(*debugFlag || configs.First[bool](loader, "debug"))
}
