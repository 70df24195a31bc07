// Package clientip extracts real client IP addresses from HTTP requests.
//
// It checks proxy headers in priority order to determine the actual client
// address, which matters for access logging and security decisions behind
// proxies, load balancers, or CDNs.
//
// # Header Priority
//
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (most common proxy header, leftmost entry wins)
//  4. X-Real-IP (nginx and other proxies)
//  5. RemoteAddr (direct connection)
//
// # Usage
//
//	ip := clientip.GetIP(r)
//	log.Info("request", logger.ClientIP(ip))
//
// # Validation and Normalization
//
// Every candidate address is parsed before use: malformed header values are
// skipped, the unspecified addresses 0.0.0.0 and :: are rejected, and
// IPv4-mapped IPv6 addresses normalize to plain IPv4, so a dual-stack
// listener reports ::ffff:203.0.113.5 as 203.0.113.5. GetIP never panics
// and always returns a non-empty string, falling back to the raw
// RemoteAddr when nothing better is available.
package clientip
