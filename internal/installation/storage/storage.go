package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/shibukawa/configdir"

	"github.com/py-app-standalone/cli/internal/condition"
	"github.com/py-app-standalone/cli/internal/constants"
)

// AppDataPath returns the directory in which we store all our appdata
func AppDataPath() (string, error) {
	localPath, envSet := os.LookupEnv(constants.ConfigEnvVarName)
	if envSet {
		return AppDataPathWithParent(localPath)
	}

	if condition.InTest() {
		localPath, err := appDataPathInTest()
		if err != nil {
			// panic as this is only happening in tests
			panic(err)
		}
		return AppDataPathWithParent(localPath)
	}

	// Account for HOME dir not being set, meaning querying global folders will fail.
	// This is a workaround for docker envs that don't usually have $HOME set.
	_, envSet = os.LookupEnv("HOME")
	if !envSet && runtime.GOOS != "windows" {
		localPath := filepath.Dir(os.Args[0])
		if localPath == "" {
			var err error
			localPath, err = os.MkdirTemp("", "pyapp-config")
			if err != nil {
				return "", fmt.Errorf("could not create temp dir: %w", err)
			}
		}
		return AppDataPathWithParent(localPath)
	}

	configDirs := configdir.New(constants.InternalConfigNamespace, "cli")
	return configDirs.QueryFolders(configdir.Global)[0].Path, nil
}

var _appDataPathInTest string

func appDataPathInTest() (string, error) {
	if _appDataPathInTest != "" {
		return _appDataPathInTest, nil
	}

	localPath, err := os.MkdirTemp("", "pyapp-config-test")
	if err != nil {
		return "", fmt.Errorf("could not create temp dir: %w", err)
	}

	_appDataPathInTest = localPath

	return localPath, nil
}

// AppDataPathWithParent returns the appdata dir nested under the given parent dir
func AppDataPathWithParent(parentDir string) (string, error) {
	configDirs := configdir.New(constants.InternalConfigNamespace, "cli")
	configDirs.LocalPath = parentDir
	return configDirs.QueryFolders(configdir.Local)[0].Path, nil
}

// LogsPath returns the directory that invocation log files get written to
func LogsPath() string {
	appData, err := AppDataPath()
	if err != nil {
		return filepath.Join(os.TempDir(), constants.InternalConfigNamespace, "logs")
	}
	return filepath.Join(appData, "logs")
}
