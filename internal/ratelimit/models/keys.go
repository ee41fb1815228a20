package models

import "strings"

const keyPrefix = "ims:rl:"

// SanitizeKeySegment escapes the key delimiter so a client-controlled segment
// (an IPv6 address, a forwarded header) cannot spill into an adjacent bucket.
func SanitizeKeySegment(s string) string {
	return strings.ReplaceAll(s, ":", "_")
}

// BucketKey names the bucket for a class and a client.
func BucketKey(class EndpointClass, client string) string {
	return keyPrefix + string(class) + ":" + SanitizeKeySegment(client)
}
