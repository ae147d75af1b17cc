package transmit

import "testing"

func TestBuildURL(t *testing.T) {
	cases := []struct {
		address string
		suffix  string
		want    string
	}{
		{"https://a.com/", "/events", "https://a.com/events"},
		{"https://a.com", "events", "https://a.com/events"},
		{"https://a.com", "", "https://a.com"},
		{"https://a.com/", "events", "https://a.com/events"},
		{"https://a.com/base/", "/caep/events", "https://a.com/base/caep/events"},
	}

	for _, tc := range cases {
		if got := BuildURL(tc.address, tc.suffix); got != tc.want {
			t.Errorf("BuildURL(%q, %q) = %q, want %q", tc.address, tc.suffix, got, tc.want)
		}
	}
}
