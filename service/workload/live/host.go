package live

import (
	"strings"

	"github.com/viant/afs/url"
)

// Host identifies where ps runs.  An empty URL or localhost samples the
// local machine; any other host is reached over ssh with Credentials
// resolved through scy secrets.
type Host struct {
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
	Credentials string `json:"credentials,omitempty" yaml:"credentials,omitempty"`
}

// IsLocal reports whether the host is the local machine.
func (h *Host) IsLocal() bool {
	if h == nil || h.URL == "" {
		return true
	}
	host := h.hostname()
	return host == "localhost" || host == "127.0.0.1"
}

func (h *Host) hostname() string {
	host := url.Host(h.URL)
	if host == "" {
		host = h.URL
	}
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host
}

// address returns host:port for ssh, defaulting the port to 22.
func (h *Host) address() string {
	host := url.Host(h.URL)
	if host == "" {
		host = h.URL
	}
	if !strings.Contains(host, ":") {
		host += ":22"
	}
	return host
}
