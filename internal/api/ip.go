package api

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
)

// clientIP resolves the caller's address, preferring proxy headers.
func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if xr := strings.TrimSpace(r.Header.Get("X-Real-IP")); xr != "" {
		return xr
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// hashIP produces a salted sha256 digest of the address so consent records
// never hold a raw IP.
func hashIP(ip, salt string) string {
	h := sha256.Sum256([]byte(ip + "|" + salt))
	return hex.EncodeToString(h[:])
}
