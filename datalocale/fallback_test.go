package datalocale

import "testing"

func chainStrings(start Locale, cfg FallbackConfig) []string {
	var out []string
	for _, l := range All(start, cfg) {
		out = append(out, l.String())
	}

	return out
}

func TestFallbackLanguagePriority(t *testing.T) {
	start := Parse("en-Latn-US")
	chain := chainStrings(start, FallbackConfig{Priority: PriorityLanguage})

	want := []string{"en-Latn-US", "en-Latn", "en", "und"}
	assertChain(t, chain, want)
}

func TestFallbackRegionPriority(t *testing.T) {
	start := Parse("en-Latn-US")
	chain := chainStrings(start, FallbackConfig{Priority: PriorityRegion})

	want := []string{"en-Latn-US", "en-US", "en", "und"}
	assertChain(t, chain, want)
}

func TestFallbackStripsVariantsFirst(t *testing.T) {
	start := Locale{Language: "ca", Region: "ES", Variants: []string{"valencia"}}
	chain := chainStrings(start, FallbackConfig{Priority: PriorityRegion})

	want := []string{"ca-ES-valencia", "ca-ES", "ca", "und"}
	assertChain(t, chain, want)
}

func TestFallbackInfersScriptForDisambiguation(t *testing.T) {
	start := Locale{Language: "sr", Region: "RS"}
	chain := chainStrings(start, FallbackConfig{Priority: PriorityRegion})

	found := false
	for _, c := range chain {
		if c == "sr-Cyrl-RS" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected inferred script step sr-Cyrl-RS in chain %v", chain)
	}
	// The inferred script must not survive to the tail of the chain.
	if chain[len(chain)-1] != "und" || chain[len(chain)-2] != "sr" {
		t.Errorf("chain should still end ...,sr,und: got %v", chain)
	}
}

func TestFallbackExtensionsCarriedThrough(t *testing.T) {
	start := Locale{Language: "th", Region: "TH", Extensions: "u-ca-buddhist"}
	chain := chainStrings(start, FallbackConfig{Priority: PriorityRegion})

	for _, c := range chain {
		if c == "und-u-ca-buddhist" || c == "th-u-ca-buddhist" {
			return
		}
	}
	t.Errorf("expected extensions carried through chain: %v", chain)
}

func TestFallbackExtensionsStrippedWhenConfigured(t *testing.T) {
	start := Locale{Language: "th", Region: "TH", Extensions: "u-ca-buddhist"}
	chain := chainStrings(start, FallbackConfig{Priority: PriorityRegion, StripExtensions: true})

	for _, c := range chain {
		if c == "und-u-ca-buddhist" {
			t.Errorf("extensions should have been stripped: %v", chain)
		}
	}
}

func TestFallbackChainIsFiniteAndNeverRepeats(t *testing.T) {
	chain := All(Parse("zh-Hans-CN"), FallbackConfig{Priority: PriorityLanguage})
	seen := map[string]bool{}
	for _, l := range chain {
		s := l.String()
		if seen[s] {
			t.Fatalf("locale %q repeated in chain %v", s, chain)
		}
		seen[s] = true
	}
	if chain[len(chain)-1].String() != "und" {
		t.Fatalf("chain must terminate at und, got %v", chain)
	}
}

func assertChain(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("chain = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chain = %v, want %v", got, want)
		}
	}
}
