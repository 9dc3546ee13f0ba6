package bficonfigs

import (
	"github.com/alape/bfi/configs"
	"github.com/alape/bfi/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
