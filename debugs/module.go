// Package debugs inspects a paused machine with starlark.
package debugs

import (
	"github.com/alape/bfi/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
