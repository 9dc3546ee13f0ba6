package bfvm

import (
	"github.com/alape/bfi/bficonfigs"
	"github.com/alape/bfi/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bficonfigs.Module
	Logs    logs.Module
}

type NewMachine func(options ...Option) *Machine

func (Module) NewMachine(
	logger logs.Logger,
	newSpan logs.NewSpan,
	memSize bficonfigs.MemSize,
	cacheSize bficonfigs.CacheSize,
) NewMachine {
	return func(options ...Option) *Machine {
		return New(int(memSize), append([]Option{
			WithLogger(logger),
			WithSpans(newSpan),
			WithCacheSize(int(cacheSize)),
		}, options...)...)
	}
}
