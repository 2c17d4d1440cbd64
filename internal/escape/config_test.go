// internal/escape/config_test.go
package escape

import "testing"

func TestNewConfigMutualExclusion(t *testing.T) {
	cases := []struct {
		name string
		in   Flags
		want Flags
	}{
		{"newline both", Flags{NewlineEscaped: true, NewlineHex: true}, Flags{NewlineEscaped: true}},
		{"newline hex only", Flags{NewlineHex: true}, Flags{NewlineHex: true}},
		{"space both", Flags{SpaceCircle: true, SpaceHex: true}, Flags{SpaceCircle: true}},
		{"space hex only", Flags{SpaceHex: true}, Flags{SpaceHex: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got, want := NewConfig(c.in), NewConfig(c.want); got != want {
				t.Errorf("NewConfig(%+v) = %+v, want %+v", c.in, got, want)
			}
		})
	}
}

func TestConfigModes(t *testing.T) {
	if !NewConfig(Flags{AllHex: true, Bytes: true}).Raw() {
		t.Error("all+bytes should be raw")
	}
	if NewConfig(Flags{AllHex: true}).Raw() || NewConfig(Flags{Bytes: true}).Raw() {
		t.Error("raw needs both all and bytes")
	}
	if NewConfig(Flags{AllHex: true}).NeedsFonts() {
		t.Error("all-hex never consults fonts")
	}
	for _, f := range []Flags{{AllHex: true}, {NewlineEscaped: true}, {NewlineHex: true}} {
		if !NewConfig(f).WantsTrailingNewline() {
			t.Errorf("%+v should want a trailing newline", f)
		}
	}
	if NewConfig(Flags{SpaceHex: true, TabHex: true}).WantsTrailingNewline() {
		t.Error("plain newlines pass through; no trailing newline wanted")
	}
}
