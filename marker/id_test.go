package marker

import "testing"

func TestNewIDValid(t *testing.T) {
	cases := []string{"datetime/symbols@1", "plurals/cardinal@2", "a@0"}
	for _, s := range cases {
		if _, err := NewID(s); err != nil {
			t.Errorf("NewID(%q) unexpected error: %v", s, err)
		}
	}
}

func TestNewIDInvalid(t *testing.T) {
	cases := []string{"", "@1", "foo@", "foo@bar", "foo@1@2", "foo bar@1", "foo.bar@1"}
	for _, s := range cases {
		if _, err := NewID(s); err == nil {
			t.Errorf("NewID(%q) expected error, got nil", s)
		}
	}
}

func TestIDIdenticalStringsHashAndCompareEqual(t *testing.T) {
	a, _ := NewID("aaa@1")
	b, _ := NewID("aaa@1")
	if a.Hash() != b.Hash() || !a.Equal(b) {
		t.Fatal("identical marker strings must hash and compare equal")
	}
}

func TestInfoAcceptsAttributesSingleton(t *testing.T) {
	id, _ := NewID("singleton/marker@1")
	info := Info{ID: id, IsSingleton: true}
	if !info.AcceptsAttributes("") {
		t.Error("singleton marker must accept the empty attribute tag")
	}
	if info.AcceptsAttributes("wide") {
		t.Error("singleton marker must reject non-empty attributes")
	}
}
