// SPDX-License-Identifier: MIT

package core

import "testing"

func TestLinkTypeDefaultDovetail(t *testing.T) {
	l := MakeLink(1, 2)
	if got := l.Type(); got != ESLink {
		t.Errorf("default link type = %v, want %v", got, ESLink)
	}
}

func TestLinkReverse(t *testing.T) {
	l := MakeLink(1, 2)
	r := l.Reverse()
	want := Link{From: StartSide(2), To: EndSide(1)}
	if r != want {
		t.Errorf("Reverse() = %+v, want %+v", r, want)
	}
	if r.Reverse() != l {
		t.Errorf("Reverse() is not involutive")
	}
}

func TestModeOppositeSide(t *testing.T) {
	s := StartSide(5)
	if got := Directed.OppositeSide(s); got != s {
		t.Errorf("Directed.OppositeSide = %+v, want identity %+v", got, s)
	}
	if got := Bidirected.OppositeSide(s); got != EndSide(5) {
		t.Errorf("Bidirected.OppositeSide = %+v, want %+v", got, EndSide(5))
	}
}

func TestModeForEachSide(t *testing.T) {
	var sides []Side
	Bidirected.ForEachSide(7, func(s Side) bool {
		sides = append(sides, s)
		return true
	})
	if len(sides) != 2 || sides[0] != StartSide(7) || sides[1] != EndSide(7) {
		t.Errorf("Bidirected.ForEachSide = %v, want [start,end]", sides)
	}

	sides = nil
	Directed.ForEachSide(7, func(s Side) bool {
		sides = append(sides, s)
		return true
	})
	if len(sides) != 1 || sides[0] != StartSide(7) {
		t.Errorf("Directed.ForEachSide = %v, want [start]", sides)
	}
}

func TestAllLinkTypes(t *testing.T) {
	cases := []struct {
		from, to Side
		want     LinkType
	}{
		{StartSide(1), StartSide(2), SSLink},
		{StartSide(1), EndSide(2), SELink},
		{EndSide(1), StartSide(2), ESLink},
		{EndSide(1), EndSide(2), EELink},
	}
	for _, c := range cases {
		l := Link{From: c.from, To: c.to}
		if got := l.Type(); got != c.want {
			t.Errorf("Link{%v,%v}.Type() = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}
