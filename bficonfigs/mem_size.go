package bficonfigs

import (
	"github.com/alape/bfi/bftape"
	"github.com/alape/bfi/cmds"
	"github.com/alape/bfi/configs"
	"github.com/alape/bfi/vars"
)

// MemSize is the number of tape cells.
type MemSize int

var memSizeFlag = cmds.Var[int]("-mem", "number of tape cells")

func (Module) MemSize(
	loader configs.Loader,
) MemSize {
	return MemSize(vars.FirstNonZero(
		max(*memSizeFlag, 0),
		configs.First[int](loader, "mem_size"),
		bftape.DefaultSize,
	))
}

// CacheSize bounds the number of lowered programs kept per machine.
type CacheSize int

const DefaultCacheSize = 64

func (Module) CacheSize(
	loader configs.Loader,
) CacheSize {
	var n int
	if err := loader.AssignFirst("cache_size", &n); err != nil {
		return DefaultCacheSize
	}
	return CacheSize(n)
}
