package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc creates a proxy function based on configuration.
// If no proxy URLs are provided, falls back to environment variables.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if hostExempt(req.URL.Host, noProxy) {
			return nil, nil
		}

		proxyURL := httpProxy
		if req.URL.Scheme == "https" && httpsProxy != "" {
			proxyURL = httpsProxy
		}
		if proxyURL == "" {
			return nil, nil
		}
		return url.Parse(proxyURL)
	}
}

// hostExempt checks a host against the comma-separated no-proxy list
func hostExempt(host, noProxy string) bool {
	if noProxy == "" {
		return false
	}
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}
	for _, entry := range strings.Split(noProxy, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if host == entry || strings.HasSuffix(host, "."+strings.TrimPrefix(entry, ".")) {
			return true
		}
	}
	return false
}
