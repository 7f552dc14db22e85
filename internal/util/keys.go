package util

import "strings"

// StorageKey isolates a user key inside a namespace: "v:<ns>:<key>".
func StorageKey(ns, key string) string {
	var sb strings.Builder
	sb.Grow(2 + len(ns) + 1 + len(key))
	sb.WriteString("v:")
	sb.WriteString(ns)
	sb.WriteByte(':')
	sb.WriteString(key)
	return sb.String()
}
