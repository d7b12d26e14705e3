// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wavelet

import (
	"math/rand"
	"testing"

	"github.com/bitpacked/succinct/bitvec"
)

// A wavelet tree over "tobeornottobethatisthequestion".
func TestScenarioE(t *testing.T) {
	t.Parallel()
	text := "tobeornottobethatisthequestion"
	tree := New(text, bitvec.Spec{})

	wantAlphabet := []rune{'a', 'b', 'e', 'h', 'i', 'n', 'o', 'q', 'r', 's', 't', 'u'}
	if len(tree.Alphabet()) != len(wantAlphabet) {
		t.Fatalf("alphabet, expected %v, got %v", wantAlphabet, tree.Alphabet())
	}
	for i, want := range wantAlphabet {
		if tree.Alphabet()[i] != want {
			t.Errorf("alphabet[%d], expected %q, got %q", i, want, tree.Alphabet()[i])
		}
	}

	if c, ok := tree.Access(0); !ok || c != 't' {
		t.Errorf("Access(0), expected ('t',true), got (%q,%v)", c, ok)
	}
	if r, ok := tree.Rank('t', 9); !ok || r != 2 {
		t.Errorf("Rank('t',9), expected (2,true), got (%d,%v)", r, ok)
	}
	if r, ok := tree.Rank('o', 30); !ok || r != 5 {
		t.Errorf("Rank('o',30), expected (5,true), got (%d,%v)", r, ok)
	}
	if r, ok := tree.Rank('i', 18); !ok || r != 1 {
		t.Errorf("Rank('i',18), expected (1,true), got (%d,%v)", r, ok)
	}
	if p, ok := tree.Select('t', 3); !ok || p != 10 {
		t.Errorf("Select('t',3), expected (10,true), got (%d,%v)", p, ok)
	}
	if p, ok := tree.Select('o', 2); !ok || p != 5 {
		t.Errorf("Select('o',2), expected (5,true), got (%d,%v)", p, ok)
	}
}

func TestAccessMatchesSourceText(t *testing.T) {
	t.Parallel()
	text := "tobeornottobethatisthequestion"
	tree := New(text, bitvec.Spec{})

	runes := []rune(text)
	for i, want := range runes {
		got, ok := tree.Access(i)
		if !ok || got != want {
			t.Errorf("Access(%d), expected (%q,true), got (%q,%v)", i, want, got, ok)
		}
	}
	if _, ok := tree.Access(len(runes)); ok {
		t.Errorf("Access(len), expected absent")
	}
}

func TestContains(t *testing.T) {
	t.Parallel()
	tree := New("abcabc", bitvec.Spec{})
	for _, c := range []rune{'a', 'b', 'c'} {
		if !tree.Contains(c) {
			t.Errorf("Contains(%q), expected true", c)
		}
	}
	if tree.Contains('z') {
		t.Errorf("Contains('z'), expected false")
	}
}

// The identity property relating rank, access and select: the rank of a
// position's own character increases by exactly one across that position,
// and selecting that new rank returns to the same position.
func TestRankAccessSelectIdentity(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(11))
	alphabet := []rune("abcdefgh")
	runes := make([]rune, 500)
	for i := range runes {
		runes[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	text := string(runes)
	tree := New(text, bitvec.Spec{})

	for i := 0; i < len(runes); i++ {
		c, ok := tree.Access(i)
		if !ok {
			t.Fatalf("Access(%d), expected ok", i)
		}
		before, _ := tree.Rank(c, i)
		after, ok := tree.Rank(c, i+1)
		if !ok || after-before != 1 {
			t.Fatalf("rank delta at %d for %q: expected 1, got %d", i, c, after-before)
		}
		pos, ok := tree.Select(c, after)
		if !ok || pos != i+1 {
			t.Errorf("Select(%q,%d), expected %d, got %d (ok=%v)", c, after, i+1, pos, ok)
		}
	}
}

func TestRankZeroAndOutOfBounds(t *testing.T) {
	t.Parallel()
	tree := New("abcabc", bitvec.Spec{})
	if r, ok := tree.Rank('a', 0); !ok || r != 0 {
		t.Errorf("Rank('a',0), expected (0,true), got (%d,%v)", r, ok)
	}
	if _, ok := tree.Rank('a', 100); ok {
		t.Errorf("Rank('a',100), expected absent")
	}
	if _, ok := tree.Rank('z', 3); ok {
		t.Errorf("Rank('z',3), expected absent: 'z' is not in the alphabet")
	}
}
