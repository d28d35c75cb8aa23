package auth

import "strings"

// Routes reachable without a session. Blog and use-case pages match by
// prefix so individual articles stay public.
var publicRoutes = []string{"/", "/login", "/register", "/faq", "/about"}

var publicPrefixes = []string{"/blog", "/use-cases", "/static/", "/health"}

// PublicRoute reports whether path is reachable while anonymous.
func PublicRoute(path string) bool {
	for _, route := range publicRoutes {
		if path == route {
			return true
		}
	}
	for _, prefix := range publicPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") || (strings.HasSuffix(prefix, "/") && strings.HasPrefix(path, prefix)) {
			return true
		}
	}
	return false
}
