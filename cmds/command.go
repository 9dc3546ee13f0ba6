package cmds

import (
	"fmt"
	"reflect"
)

// Command is a named argv word. Func receives the words that follow it,
// one per parameter; Subs become available to the words after it.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	Hidden      bool
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Hide leaves the command out of usage output.
func (c *Command) Hide() *Command {
	c.Hidden = true
	return c
}

var errorType = reflect.TypeFor[error]()

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	switch {
	case fnType.NumOut() >= 2:
		panic(fmt.Errorf("must return 0 or 1 value"))
	case fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("must return error"))
	case fnType.IsVariadic():
		panic(fmt.Errorf("variadic function not supported"))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

// arity is the number of words the command may consume.
func (c *Command) arity() int {
	if !c.Func.IsValid() {
		return 0
	}
	return c.Func.Type().NumIn()
}
