// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns transport failures into troubleshooting hints for the user.
package httperrors

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Category classifies a network failure for display.
type Category string

const (
	Timeout           Category = "timeout"
	DNS               Category = "dns"
	ConnectionRefused Category = "connection_refused"
	TLS               Category = "tls"
	Server            Category = "server"
	Generic           Category = "generic"
)

// Classify reports which kind of network failure err is.
func Classify(err error) Category {
	switch {
	case isTimeoutError(err):
		return Timeout
	case isDNSError(err):
		return DNS
	case isConnectionRefusedError(err):
		return ConnectionRefused
	case isSSLError(err):
		return TLS
	case isServerError(err.Error()):
		return Server
	default:
		return Generic
	}
}

// ShowNetworkError prints a hint block for a network failure that happened
// while doing context against the agent service at apiURL.
func ShowNetworkError(err error, context, apiURL string) {
	if err == nil {
		return
	}
	host := ExtractHostFromURL(apiURL)

	switch Classify(err) {
	case Timeout:
		pterm.Printf("⏱️  Connection timeout while %s\n", context)
		pterm.Println()
		pterm.Println("The agent service took too long to respond. This could mean:")
		pterm.Println("  • The agent is still busy with a long-running execution")
		pterm.Println("  • Slow network connection")
		pterm.Println()
		pterm.Println("Raise the limit with 'agentceo config set timeout_seconds <n>' or AGENTCEO_TIMEOUT.")
	case DNS:
		pterm.Printf("🌐 Cannot resolve server address while %s\n", context)
		pterm.Println()
		pterm.Printf("Unable to look up %s. Check the API URL and your DNS settings.\n", host)
	case ConnectionRefused:
		pterm.Printf("🚫 Connection refused while %s\n", context)
		pterm.Println()
		pterm.Printf("Nothing is listening at %s. Is the agent service running?\n", host)
		pterm.Println("Set the address with --api-url, AGENTCEO_API_URL or 'agentceo config set api_url <url>'.")
	case TLS:
		pterm.Printf("🔒 Secure connection failed while %s\n", context)
		pterm.Println()
		pterm.Println("Cannot establish a secure HTTPS connection. Check:")
		pterm.Println("  • The server certificate")
		pterm.Println("  • Network proxy settings")
		pterm.Println("  • Your system date and time")
	case Server:
		pterm.Printf("⚠️  Server error while %s\n", context)
		pterm.Println()
		pterm.Printf("The agent service at %s reported an internal error. Try again in a moment.\n", host)
	default:
		pterm.Printf("❌ Cannot reach the agent service while %s\n", context)
		pterm.Println()
		pterm.Printf("Check that %s is reachable from this machine.\n", host)
		details := err.Error()
		if len(details) > 100 {
			details = details[:100] + "..."
		}
		pterm.Debug.Printf("Technical details: %s\n", details)
	}
	pterm.Println()
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

func isServerError(errStr string) bool {
	lower := strings.ToLower(errStr)
	return strings.Contains(lower, "502") ||
		strings.Contains(lower, "503") ||
		strings.Contains(lower, "504") ||
		strings.Contains(lower, "bad gateway") ||
		strings.Contains(lower, "service unavailable") ||
		strings.Contains(lower, "gateway timeout")
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "the server"
	}
	return u.Host
}
