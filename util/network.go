package util

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strconv"
)

// ResolveEndpoints resolves host and service to the list of candidate
// TCP endpoints, in resolver order.  With noDNS the host must be a
// numeric IP literal; the service may always be numeric or a name from
// the services database.
func ResolveEndpoints(ctx context.Context, host, service string, noDNS bool) ([]netip.AddrPort, error) {
	port, err := resolvePort(ctx, service)
	if err != nil {
		return nil, err
	}

	if noDNS {
		addr, err := netip.ParseAddr(host)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as an IP address (DNS disabled with -n)", host)
		}
		return []netip.AddrPort{netip.AddrPortFrom(addr, port)}, nil
	}

	addrs, err := net.DefaultResolver.LookupNetIP(ctx, "ip", host)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", host, err)
	}
	eps := make([]netip.AddrPort, 0, len(addrs))
	for _, a := range addrs {
		eps = append(eps, netip.AddrPortFrom(a.Unmap(), port))
	}
	return eps, nil
}

func resolvePort(ctx context.Context, service string) (uint16, error) {
	if n, err := strconv.Atoi(service); err == nil {
		if n < 1 || n > 65535 {
			return 0, fmt.Errorf("port %d out of range 1-65535", n)
		}
		return uint16(n), nil
	}
	n, err := net.DefaultResolver.LookupPort(ctx, "tcp", service)
	if err != nil {
		return 0, fmt.Errorf("unknown service %q: %w", service, err)
	}
	return uint16(n), nil
}

// FormatAddr returns "host:port" with IPv6 hosts bracketed.
func FormatAddr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
