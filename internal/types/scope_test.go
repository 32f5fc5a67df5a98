package types

import "testing"

func TestScope_Has(t *testing.T) {
	tests := []struct {
		s, other Scope
		want     bool
	}{
		{VAll, V1, true},
		{VAll, VBoth, true},
		{VBoth, V2, true},
		{V1, V2, false},
		{V1, VBoth, false},
		{VAll, VNone, false},
	}
	for _, tt := range tests {
		if got := tt.s.Has(tt.other); got != tt.want {
			t.Errorf("%v.Has(%v) = %v, want %v", tt.s, tt.other, got, tt.want)
		}
	}
}

func TestScope_StringRoundTrip(t *testing.T) {
	for _, s := range []Scope{VNone, V1, V2, VBoth, VAll} {
		got, ok := ParseScope(s.String())
		if !ok || got != s {
			t.Errorf("ParseScope(%q) = %v, %v", s.String(), got, ok)
		}
	}

	if _, ok := ParseScope("v3"); ok {
		t.Error("ParseScope(v3) should fail")
	}
	if got := Scope(4).String(); got != "unknown" {
		t.Errorf("Scope(4).String() = %q", got)
	}
}

func TestPictureType_String(t *testing.T) {
	if got := PictureFrontCover.String(); got != "Front cover" {
		t.Errorf("PictureFrontCover = %q", got)
	}
	if got := PicturePublisherLogotype.String(); got != "Publisher logotype" {
		t.Errorf("PicturePublisherLogotype = %q", got)
	}
	if got := PictureType(-1).String(); got != "PictureType(-1)" {
		t.Errorf("PictureType(-1) = %q", got)
	}
}
