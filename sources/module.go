// Package sources reads program text from files, standard input or URLs.
package sources

import (
	"io"
	"os"

	"github.com/alape/bfi/logs"
	"github.com/alape/bfi/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Nets nets.Module
	Logs logs.Module
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}
