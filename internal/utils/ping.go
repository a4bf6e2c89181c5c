package utils

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"
)

const authorizerPingTimeout = 1500 * time.Millisecond

// serviceAddress resolves host:port for a service URL, defaulting the port from the scheme
func serviceAddress(serviceURL string) (string, error) {
	parsedURL, err := url.Parse(serviceURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Hostname() == "" {
		return "", fmt.Errorf("invalid URL %q: missing host", serviceURL)
	}

	port := parsedURL.Port()
	if port == "" {
		port = "80"
		if parsedURL.Scheme == "https" {
			port = "443"
		}
	}
	return net.JoinHostPort(parsedURL.Hostname(), port), nil
}

// PingService checks that something accepts TCP connections at the URL's host and port
func PingService(ctx context.Context, serviceURL string, timeout time.Duration) error {
	address, err := serviceAddress(serviceURL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return conn.Close()
}

// PingAuthorizer checks if the Authorizer service is reachable
func PingAuthorizer(authzURL string) error {
	return PingService(context.Background(), authzURL, authorizerPingTimeout)
}
