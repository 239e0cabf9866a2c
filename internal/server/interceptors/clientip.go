package interceptors

import (
	"context"
	"net"
	"strings"

	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

// ClientIP returns the client IP recorded by WithClientIP, else from gRPC metadata
// (x-forwarded-for, x-real-ip) or peer, or "unknown".
func ClientIP(ctx context.Context) string {
	if ip, _ := ctx.Value(clientIPKey).(string); ip != "" {
		return ip
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ip := firstForwarded(md.Get("x-forwarded-for")); ip != "" {
			return ip
		}
		if vals := md.Get("x-real-ip"); len(vals) > 0 {
			if s := strings.TrimSpace(vals[0]); s != "" {
				return s
			}
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		if host, _, err := net.SplitHostPort(p.Addr.String()); err == nil {
			return host
		}
		return p.Addr.String()
	}
	return "unknown"
}

func firstForwarded(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	s, _, _ := strings.Cut(vals[0], ",")
	return strings.TrimSpace(s)
}
