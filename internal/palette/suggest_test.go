package palette

import "testing"

func TestSuggestNearMiss(t *testing.T) {
	r := mustRegistry(t, testCommands())
	got, ok := r.Suggest("dashbord")
	if !ok {
		t.Fatal("expected a suggestion for a near-miss query")
	}
	if got.Title != "Dashboard" {
		t.Fatalf("suggestion = %q, want %q", got.Title, "Dashboard")
	}
}

func TestSuggestFarQueryReturnsNothing(t *testing.T) {
	r := mustRegistry(t, testCommands())
	if _, ok := r.Suggest("xqzzjwvvnn"); ok {
		t.Fatal("expected no suggestion for an unrelated query")
	}
}

func TestSuggestEmptyQueryReturnsNothing(t *testing.T) {
	r := mustRegistry(t, testCommands())
	if _, ok := r.Suggest("   "); ok {
		t.Fatal("expected no suggestion for a blank query")
	}
}

func TestSuggestThresholdScalesWithLength(t *testing.T) {
	cases := []struct {
		length, want int
	}{
		{length: 1, want: 2},
		{length: 4, want: 2},
		{length: 8, want: 4},
		{length: 20, want: 6},
	}
	for _, tc := range cases {
		if got := suggestThreshold(tc.length); got != tc.want {
			t.Fatalf("threshold(%d) = %d, want %d", tc.length, got, tc.want)
		}
	}
}
