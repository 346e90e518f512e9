package stoplist

import "testing"

func TestDefaultSetContainsCoreStopwords(t *testing.T) {
	s := NewSet(nil)
	for _, w := range []string{"the", "a", "and", "of", "near", "today"} {
		if !s.IsStop(w) {
			t.Errorf("%q should be a stopword", w)
		}
	}
	for _, w := range []string{"new", "campus", "furnace"} {
		if s.IsStop(w) {
			t.Errorf("%q should not be a stopword", w)
		}
	}
}

func TestExtraTerms(t *testing.T) {
	s := NewSet([]string{"campus"})
	if !s.IsStop("campus") {
		t.Error("Extra term should be a stopword")
	}
}

func TestAddRemove(t *testing.T) {
	s := NewEmptySet([]string{"noise"})
	if !s.IsStop("noise") {
		t.Error("Should contain initial term")
	}

	s.Remove("noise")
	if s.IsStop("noise") {
		t.Error("Removed term should not match")
	}

	s.Add("other")
	if !s.IsStop("other") {
		t.Error("Added term should match")
	}
}

func TestEnglishReturnsCopy(t *testing.T) {
	a := English()
	a[0] = "mutated"
	b := English()
	if b[0] == "mutated" {
		t.Error("English() must not expose the shared backing array")
	}
}
