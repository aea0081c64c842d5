package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// OpenURLInBrowser opens the URL in the default system browser
func OpenURLInBrowser(rawURL string) error {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return fmt.Errorf("refusing to open non-http URL: %s", rawURL)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, rawURL).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", rawURL).Run()
	case OSAndroid:
		return openURLAndroid(rawURL)
	default:
		if IsAndroid() {
			return openURLAndroid(rawURL)
		}
		return exec.Command(XDGOpenCommand, rawURL).Run()
	}
}

// openURLAndroid opens the URL via activity manager intents
func openURLAndroid(rawURL string) error {
	var err error
	var cmd *exec.Cmd

	// Strategy 1: Generic VIEW intent, let the system pick the browser
	cmd = exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", rawURL)
	if err = cmd.Run(); err == nil {
		return nil
	}

	// Strategy 2: Try well-known browser activities directly
	browsers := []string{
		"com.android.chrome/com.google.android.apps.chrome.Main", // Chrome
		"org.mozilla.firefox/.App",                               // Firefox
		"com.android.browser/.BrowserActivity",                   // AOSP browser
	}

	for _, browser := range browsers {
		cmd = exec.Command("am", "start", "-n", browser, "-d", rawURL)
		if err = cmd.Run(); err == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to open URL: no suitable browser found")
}
