package config

import (
	"fmt"
	os2 "os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cometbft/cometbft/libs/os"

	"github.com/aura-nw/smart-account-sample/log"
)

func CreateDirectoryIfNeeded(configurationDirectory string, logger *log.Logger) error {
	expanded := ExpandHomeDir(configurationDirectory)
	exists, err := folderExists(expanded)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	err = os2.MkdirAll(expanded, 0o755)
	if err != nil {
		return err
	}

	logger.Info("created directory", "directory", configurationDirectory)

	return nil
}

// SafeWrite writes contents to file unless it already exists. Files are only readable by the owner
// since they may hold secrets.
func SafeWrite(file string, contents []byte, logger *log.Logger) error {
	expanded := ExpandHomeDir(file)
	if os.FileExists(expanded) {
		return fmt.Errorf("refusing to overwrite existing file %s", expanded)
	}

	err := CreateDirectoryIfNeeded(filepath.Dir(expanded), logger)
	if err != nil {
		return err
	}

	err = os2.WriteFile(expanded, contents, 0o600)
	if err != nil {
		return err
	}
	logger.Info("wrote file", "file", expanded)
	return nil
}

func ExpandHomeDir(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	usr, err := user.Current()
	if err != nil {
		panic(fmt.Errorf("failed to get user's home directory: %v", err))
	}
	return strings.Replace(path, "~", usr.HomeDir, 1)
}

func FileExists(filePath string) bool {
	expanded := ExpandHomeDir(filePath)
	return os.FileExists(expanded)
}

func folderExists(folderPath string) (bool, error) {
	fileInfo, err := os2.Stat(folderPath)
	if err != nil {
		if os2.IsNotExist(err) {
			// The folder does not exist
			return false, nil
		}
		// Some other error occurred when trying to access the folder
		return false, err
	}
	// Check if the path is indeed a folder/directory
	return fileInfo.IsDir(), nil
}
