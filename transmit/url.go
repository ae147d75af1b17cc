package transmit

import "strings"

// BuildURL joins the receiver address and an optional suffix with exactly
// one slash, regardless of how the two sides are slashed. An empty suffix
// returns the address unchanged.
func BuildURL(address, suffix string) string {
	if suffix == "" {
		return address
	}

	return strings.TrimSuffix(address, "/") + "/" + strings.TrimPrefix(suffix, "/")
}
