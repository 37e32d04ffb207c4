package platform

import "fmt"

// Opener returns the command that opens a URL in the desktop's default
// browser on goos, with the URL appended as the last argument.
func Opener(goos string) (name string, args []string, err error) {
	switch goos {
	case "darwin":
		return "open", nil, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", nil, nil
	default:
		return "", nil, fmt.Errorf("opening URLs is not supported on %s", goos)
	}
}

// AppearanceQuery returns the command that reports the desktop color scheme
// on goos, or ok=false when there is none worth asking.
func AppearanceQuery(goos string) (name string, args []string, ok bool) {
	switch goos {
	case "darwin":
		// Prints "Dark" in dark mode; exits 1 in light mode (key missing).
		return "defaults", []string{"read", "-g", "AppleInterfaceStyle"}, true
	case "linux":
		// Prints 'prefer-dark', 'prefer-light' or 'default' on GNOME 42+.
		return "gsettings", []string{"get", "org.gnome.desktop.interface", "color-scheme"}, true
	default:
		return "", nil, false
	}
}
