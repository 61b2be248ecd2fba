package cookie

import "strings"

// HostKeys returns the domain keys a browser cookie store may hold for
// hostname, from least to most specific. A cookie set with a Domain
// attribute is stored under a dotted host key, one set without is stored
// bare, so both forms are produced at every suffix level:
//
//	foo.example.com -> example.com, .example.com,
//	                   foo.example.com, .foo.example.com
//
// "localhost" is stored as the literal string and returns only itself.
// A single-label hostname other than localhost has no matching suffix
// keys and returns an empty slice.
func HostKeys(hostname string) []string {
	if hostname == "localhost" {
		return []string{hostname}
	}

	labels := strings.Split(hostname, ".")
	var keys []string
	for i := 2; i <= len(labels); i++ {
		domain := strings.Join(labels[len(labels)-i:], ".")
		keys = append(keys, domain, "."+domain)
	}
	return keys
}
