package bficonfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/alape/bfi/cmds"
	"github.com/alape/bfi/configs"
	"github.com/alape/bfi/logs"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config", "read a config file before the default ones")

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	// explicit files first
	paths := append([]string(nil), *configFiles...)
	defer func() {
		if len(paths) > 0 {
			logger.Debug("config file",
				"paths", paths,
			)
		}
	}()

	filenames := []string{
		"bfi.cue",
		".bfi.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		paths = append(paths, existing(workingDir, filenames)...)
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		paths = append(paths, existing(configDir, filenames)...)
	}

	// system wide dir
	paths = append(paths, existing("/etc", filenames)...)

	return configs.NewLoader(paths, schema)
}

func existing(dir string, filenames []string) (ret []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}
