package constants

import (
	"os"
	"path/filepath"
)

const DefaultHomeEnv string = "PARAROUTE_HOME"
const ConfigEnv string = "PARAROUTE_CONFIG"

var DefaultHome string

func init() {
	if home := os.Getenv(DefaultHomeEnv); home != "" {
		DefaultHome = home
		return
	} else {
		// ~/.pararoute default
		userHomeDir, err := os.UserHomeDir()
		if err != nil {
			DefaultHome = "/data"
		} else {
			DefaultHome = filepath.Join(userHomeDir, ".pararoute")
		}
	}
}
