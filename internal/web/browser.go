package web

import (
	"net"
	"os/exec"
	"runtime"
)

// OpenBrowser tries to open a URL in the system browser.
func OpenBrowser(url string) error {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}
	return exec.Command(cmd, args...).Start()
}

// LocalURL turns a listen address into a URL a browser can open.
func LocalURL(addr string) string {
	host, port := splitAddr(addr)
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + joinAddr(host, port) + "/"
}

func splitAddr(addr string) (string, string) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr, ""
	}
	return host, port
}

func joinAddr(host, port string) string {
	if port == "" {
		return host
	}
	return net.JoinHostPort(host, port)
}
