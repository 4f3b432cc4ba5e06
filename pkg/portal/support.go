package portal

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
)

func FilterNonEmpty(values []string) []string {
	out := []string{}

	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}

	return out
}

func Sha256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// ParseClientIP returns the host of r.RemoteAddr. X-Forwarded-For is only
// read when that host is one of trustedProxies, in which case the right-most
// entry that is not itself a trusted proxy wins.
func ParseClientIP(r *http.Request, trustedProxies ...string) string {
	remote := remoteHost(r.RemoteAddr)

	if !isTrusted(remote, trustedProxies) {
		return remote
	}

	xff := strings.TrimSpace(r.Header.Get(ForwardedForHeader))
	if xff == "" {
		return remote
	}

	hops := strings.Split(xff, ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])

		if hop != "" && !isTrusted(hop, trustedProxies) {
			return hop
		}
	}

	return remote
}

func remoteHost(addr string) string {
	addr = strings.TrimSpace(addr)

	host, _, err := net.SplitHostPort(addr)
	if err == nil && host != "" {
		return host
	}

	return addr
}

func isTrusted(host string, trustedProxies []string) bool {
	if host == "" {
		return false
	}

	for _, proxy := range trustedProxies {
		if strings.TrimSpace(proxy) == host {
			return true
		}
	}

	return false
}
