package tickets

import "testing"

func TestSanitizeChannelName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Alice", "alice"},
		{"Bob Smith", "bob-smith"},
		{"weird!!name", "weirdname"},
		{"under_score-ok9", "under_score-ok9"},
		{"🔥🔥🔥", "member"},
	}
	for _, tc := range cases {
		if got := sanitizeChannelName(tc.in); got != tc.want {
			t.Errorf("sanitizeChannelName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
