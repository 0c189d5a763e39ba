package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/jobtracker"
)

// UnknownIPAddress stands in for a client whose address could not be determined.
const UnknownIPAddress = "0.0.0.0"

// IANA defined IPv4 non-public ranges.
// The SPA host usually sits behind a load balancer on one of these.
var privatePrefixes = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress stashes the client's IP address in the *http.Request.Context
// under jobtracker.IpAddrKey, where LogRequest picks it up.
//
// See ClientIPAddress for how the address is found.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIPAddress(r)
			r = r.Clone(context.WithValue(r.Context(), jobtracker.IpAddrKey, ip))
			h.ServeHTTP(w, r)
		})
	}
}

// IPAddressFromContext retrieves the address InjectIPAddress stashed in ctx.
func IPAddressFromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(jobtracker.IpAddrKey).(string)
	return ip, ok && ip != ""
}

// ClientIPAddress finds the public address of the client sending r.
//
// Proxy headers win; see GetIPAddress.
// Without them, as when the dev server is hit directly, r.RemoteAddr is used if it is public.
// Otherwise ClientIPAddress returns UnknownIPAddress.
func ClientIPAddress(r *http.Request) string {
	if ip := GetIPAddress(r.Header); ip != UnknownIPAddress {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if addr, err := netip.ParseAddr(host); err == nil && isPublic(addr) {
		return addr.String()
	}

	return UnknownIPAddress
}

// GetIPAddress parses "X-Forwarded-For" and "X-Real-Ip" headers for the IP address
// from the request.
//
// GetIPAddress skips addresses from non-public ranges
// and returns UnknownIPAddress when none is left.
func GetIPAddress(hm http.Header) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(hm.Get(h), ",")
		// march from right to left until we get a public address
		// that will be the address right before our proxy.
		for i := len(addresses) - 1; i >= 0; i-- {
			ip := strings.TrimSpace(addresses[i])
			addr, err := netip.ParseAddr(ip)
			if err != nil || !isPublic(addr) {
				continue
			}
			return ip
		}
	}

	return UnknownIPAddress
}

// isPublic asserts addr is a global unicast address outside the private IPv4 ranges.
func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() {
		return false
	}

	if !addr.Is4() {
		return true
	}

	for _, p := range privatePrefixes {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}
