package libdiff

import "testing"

func TestStrings(t *testing.T) {
	tests := []struct {
		name, from, to, want string
	}{
		{"equal", "a\nb\n", "a\nb\n", ""},
		{"replace", "a\nb\nc\n", "a\nx\nc\n", " a\n-b\n+x\n c\n"},
		{"append", "a\n", "a\nb\n", " a\n+b\n"},
		{"delete", "a\nb\n", "b\n", "-a\n b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strings(tt.from, tt.to); got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
		})
	}
}
