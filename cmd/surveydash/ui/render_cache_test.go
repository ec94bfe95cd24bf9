package ui

import "testing"

func TestComputeKeyDeterministic(t *testing.T) {
	a := ComputeKey("usage", "Germany", 120)
	b := ComputeKey("usage", "Germany", 120)
	if a != b {
		t.Errorf("same inputs should hash equal: %d != %d", a, b)
	}

	c := ComputeKey("usage", "Austria", 120)
	if a == c {
		t.Error("different country should hash differently")
	}

	d := ComputeKey("usage", "Germany", 80)
	if a == d {
		t.Error("different width should hash differently")
	}
}

func TestComputeKeyStringBoundaries(t *testing.T) {
	// ("ab","c") and ("a","bc") concatenate identically; the separator
	// must keep them apart.
	if ComputeKey("ab", "c") == ComputeKey("a", "bc") {
		t.Error("string boundary collision")
	}
}

func TestGetOrCompute(t *testing.T) {
	rc := NewRenderCache(16)

	calls := 0
	render := func() string {
		calls++
		return "rendered"
	}

	key := ComputeKey("analysis", "All", "LanguageHaveWorkedWith", 100)
	if got := rc.GetOrCompute(key, render); got != "rendered" {
		t.Errorf("unexpected content %q", got)
	}
	if got := rc.GetOrCompute(key, render); got != "rendered" {
		t.Errorf("unexpected content %q", got)
	}
	if calls != 1 {
		t.Errorf("render ran %d times, want 1", calls)
	}
}

func TestClear(t *testing.T) {
	rc := NewRenderCache(16)
	key := ComputeKey("x")
	rc.Set(key, "stale")
	rc.Clear()
	if _, ok := rc.Get(key); ok {
		t.Error("cache should be empty after Clear")
	}
}
