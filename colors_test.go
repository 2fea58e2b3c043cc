// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package colorutil

import (
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/taskgroup"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
	"golang.org/x/image/colornames"
)

const numColors = 148

func TestTable(t *testing.T) {
	if got := len(colorList); got != numColors {
		t.Errorf("Table has %d entries, want %d", got, numColors)
	}
	if got := len(n2c); got != numColors {
		t.Errorf("Table has %d distinct names, want %d", got, numColors)
	}

	hexRE := regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	seen := mapset.New[string]()
	for _, e := range colorList {
		if !hexRE.MatchString(e.hex) {
			t.Errorf("Entry %q: invalid hex %q", e.name, e.hex)
		}
		key := strings.ToLower(e.name)
		if seen.Has(key) {
			t.Errorf("Entry %q: duplicate name %q", e.name, key)
		}
		seen.Add(key)
	}

	// Spot-check the names that share a color with another name.
	for _, pair := range [][2]string{
		{"Aqua", "Cyan"},
		{"Fuchsia", "Magenta"},
		{"Gray", "Grey"},
		{"DarkSlateGray", "DarkSlateGrey"},
		{"LightSlateGray", "LightSlateGrey"},
	} {
		a, aok := Lookup(pair[0])
		b, bok := Lookup(pair[1])
		if !aok || !bok || a != b {
			t.Errorf("Lookup %q = %q, %q = %q; want equal", pair[0], a, pair[1], b)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"AliceBlue", "#F0F8FF", true},
		{"aliceblue", "#F0F8FF", true},
		{"ALICEBLUE", "#F0F8FF", true},
		{"Aqua", "#00FFFF", true},
		{"Cyan", "#00FFFF", true},
		{"indianred ", "#CD5C5C", true},
		{"indianred", "", false},
		{"alice blue", "", false},
		{" aliceblue", "", false},
		{"#F0F8FF", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := Lookup(tc.name)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("Lookup(%q): got (%q, %v), want (%q, %v)", tc.name, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != numColors {
		t.Errorf("Names: got %d, want %d", len(names), numColors)
	}
	if !slices.IsSorted(names) {
		t.Error("Names are not sorted")
	}
	for _, n := range names {
		if n != strings.ToLower(n) {
			t.Errorf("Name %q is not lower-case", n)
		}
		if _, ok := Lookup(n); !ok {
			t.Errorf("Lookup(%q) failed", n)
		}
	}

	// The result belongs to the caller.
	names[0] = "bogus"
	if diff := cmp.Diff(sortedNames, Names()); diff != "" {
		t.Errorf("Names changed (-want, +got):\n%s", diff)
	}
	if Names()[0] != "aliceblue" {
		t.Errorf("Names()[0] = %q, want aliceblue", Names()[0])
	}
}

// Every name that is also an SVG 1.1 color keyword should denote the same
// color there.
func TestSVGColorNames(t *testing.T) {
	var checked int
	for n, hex := range n2c {
		want, ok := colornames.Map[strings.TrimSpace(n)]
		if !ok {
			t.Logf("Name %q is not an SVG keyword (skipped)", n)
			continue
		}
		checked++
		got := MustParse(hex)
		if got.R() != want.R || got.G() != want.G || got.B() != want.B {
			t.Errorf("Color %q: got %v, SVG has %v", n, got, want)
		}
	}
	if checked < numColors-1 {
		t.Errorf("Checked %d names against SVG, want at least %d", checked, numColors-1)
	}
}

func TestRoundTripNames(t *testing.T) {
	for _, e := range colorList {
		byName, err := Parse(e.name)
		if err != nil {
			t.Errorf("Parse(%q): %v", e.name, err)
			continue
		}
		byHex, err := Parse(e.hex)
		if err != nil {
			t.Errorf("Parse(%q): %v", e.hex, err)
			continue
		}
		if byName != byHex {
			t.Errorf("Parse(%q) = %v, Parse(%q) = %v; want equal", e.name, byName, e.hex, byHex)
		}
	}
}

func TestConcurrentLookup(t *testing.T) {
	names := Names()
	g, run := taskgroup.New(nil).Limit(runtime.NumCPU())
	for i := 0; i < 8; i++ {
		for _, n := range names {
			n := n
			run(taskgroup.NoError(func() {
				hex, ok := Lookup(strings.ToUpper(n))
				if !ok {
					t.Errorf("Lookup(%q) failed", n)
					return
				}
				c, err := ToColor(n)
				if err != nil {
					t.Errorf("ToColor(%q): %v", n, err)
				} else if want := MustParse(hex); *c != want {
					t.Errorf("ToColor(%q): got %v, want %v", n, *c, want)
				}
			}))
		}
	}
	g.Wait()
}
