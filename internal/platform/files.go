package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// IsAndroid reports whether the app is running on Android. runtime.GOOS is
// checked first with environment fallbacks because Fyne Android apps run as
// libdist.so inside the app sandbox.
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// GetDataDir returns the directory for persistent application data
// (account store, starred items)
func GetDataDir() (string, error) {
	if IsAndroid() {
		// Internal app storage survives reinstalls of the same signing key
		// and needs no runtime permission
		if dataHome := os.Getenv("FILESDIR"); dataHome != "" {
			return filepath.Join(dataHome, "opacapp"), nil
		}
		return filepath.Join("/data/data/com.opacgo.opacapp/files", "opacapp"), nil
	}

	switch runtime.GOOS {
	case OSWindows:
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}
		return filepath.Join(appData, "opacapp"), nil
	case OSDarwin:
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(homeDir, "Library", "Application Support", "opacapp"), nil
	default:
		if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
			return filepath.Join(dataHome, "opacapp"), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(homeDir, ".local", "share", "opacapp"), nil
	}
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
