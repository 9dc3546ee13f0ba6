package cmds

// Var defines name to set the returned value from the following word,
// and name. to reset it.
func Var[T any](name string, desc ...string) *T {
	var value T

	Define(name, describe(Func(func(v T) {
		value = v
	}), desc))

	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Hide())

	return &value
}

// Switch defines name to set the returned flag and !name to clear it.
func Switch(name string, desc ...string) *bool {
	var value bool

	Define(name, describe(Func(func() {
		value = true
	}), desc))

	Define("!"+name, Func(func() {
		value = false
	}).Hide())

	return &value
}

// Collect defines name to append the following word to the returned list.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	Define(name, describe(Func(func(v T) {
		value = append(value, v)
	}), desc))
	return &value
}

func describe(command *Command, desc []string) *Command {
	if len(desc) > 0 {
		command.Desc(desc[0])
	}
	return command
}
