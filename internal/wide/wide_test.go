package wide

import (
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []uint16
		ok    bool
	}{
		{"ascii", "ab", []uint16{'a', 'b'}, true},
		{"empty", "", nil, true},
		{"bmp", "héllo", []uint16{'h', 0xe9, 'l', 'l', 'o'}, true},
		{"cjk", "日本", []uint16{0x65e5, 0x672c}, true},
		{"surrogate pair", "𝄞", []uint16{0xd834, 0xdd1e}, true},
		{"bare continuation", "\x80", nil, false},
		{"truncated", "\xe6\x97", nil, false},
		{"overlong", "\xc0\xaf", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Decode(tc.input)
			if ok != tc.ok {
				t.Fatalf("Decode(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if !ok {
				return
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Decode(%q) = %v, want %v", tc.input, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Decode(%q)[%d] = %#04x, want %#04x", tc.input, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	inputs := []string{"", "a", "hello world", "héllo", "日本語", "𝄞 clef", "\x02", "mixed 𝄞日本a"}
	for _, s := range inputs {
		units, ok := Decode(s)
		if !ok {
			t.Fatalf("Decode(%q) failed", s)
		}
		if got := Encode(units); got != s {
			t.Errorf("Encode(Decode(%q)) = %q", s, got)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
		ok    bool
	}{
		{"empty", "", 0, true},
		{"ascii", "abc", 3, true},
		{"multibyte", "日本語", 3, true},
		{"astral counts two units one point", "𝄞", 1, true},
		{"invalid mid-string", "ab\xffcd", 0, false},
		{"truncated tail", "ok\xe6\x97", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			count, ok := Validate(tc.input)
			if ok != tc.ok || count != tc.count {
				t.Errorf("Validate(%q) = (%d, %v), want (%d, %v)", tc.input, count, ok, tc.count, tc.ok)
			}
		})
	}
}

func TestByteLen(t *testing.T) {
	for _, s := range []string{"a", "é", "日", "𝄞"} {
		if got := ByteLen(s[0]); got != len(s) {
			t.Errorf("ByteLen(%q leading byte) = %d, want %d", s, got, len(s))
		}
	}
}
