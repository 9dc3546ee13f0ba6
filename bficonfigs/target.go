package bficonfigs

import (
	"github.com/alape/bfi/bfir"
	"github.com/alape/bfi/cmds"
	"github.com/alape/bfi/configs"
	"github.com/alape/bfi/vars"
)

// Target is the syntax generated programs are written in.
type Target = bfir.Syntax

var targetFlag = cmds.Var[bfir.Syntax]("-target", "generated program language, c or go")

func (Module) Target(
	loader configs.Loader,
) Target {
	if *targetFlag != "" {
		return *targetFlag
	}
	syntax, err := bfir.ParseSyntax(vars.FirstNonZero(
		configs.First[string](loader, "target"),
		string(bfir.SyntaxC),
	))
	if err != nil {
		panic(err)
	}
	return syntax
}
