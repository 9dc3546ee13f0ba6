package main

import (
	"github.com/alape/bfi/bficonfigs"
	"github.com/alape/bfi/bfvm"
	"github.com/alape/bfi/debugs"
	"github.com/alape/bfi/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bficonfigs.Module
	VM      bfvm.Module
	Sources sources.Module
	Debugs  debugs.Module
}
