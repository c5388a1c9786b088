package shade

import "testing"

func TestVariantString(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{UnlitTextured, "unlit_textured"},
		{LitReflective, "lit_reflective"},
		{LitSimple, "lit_simple"},
		{Variant(99), "Variant(99)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Variant(%d).String() = %q, want %q", uint8(tt.v), got, tt.want)
		}
	}
}

func TestVariantFeatures(t *testing.T) {
	tests := []struct {
		v              Variant
		lit            bool
		hasEnvironment bool
	}{
		{UnlitTextured, false, false},
		{LitReflective, true, true},
		{LitSimple, true, false},
	}
	for _, tt := range tests {
		if got := tt.v.Lit(); got != tt.lit {
			t.Errorf("%s.Lit() = %v, want %v", tt.v, got, tt.lit)
		}
		if got := tt.v.HasEnvironment(); got != tt.hasEnvironment {
			t.Errorf("%s.HasEnvironment() = %v, want %v", tt.v, got, tt.hasEnvironment)
		}
	}
}

func TestVariantsOrder(t *testing.T) {
	vs := Variants()
	if len(vs) != 3 {
		t.Fatalf("Variants() returned %d variants, want 3", len(vs))
	}
	want := []Variant{UnlitTextured, LitReflective, LitSimple}
	for i, v := range vs {
		if v != want[i] {
			t.Errorf("Variants()[%d] = %s, want %s", i, v, want[i])
		}
	}
}
