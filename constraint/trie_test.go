package constraint_test

import (
	"math/rand"
	"testing"

	"github.com/bambam/bambam/constraint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubSequenceTrie_EmptyMatchesOnlyEmptyQuery(t *testing.T) {
	trie := constraint.NewSubSequenceTrie()
	assert.True(t, trie.ContainsSubsequence(nil))
	assert.False(t, trie.ContainsSubsequence([]string{"walk"}))
}

func TestSubSequenceTrie_StoredSequencesAndTheirSubsequencesMatch(t *testing.T) {
	stored := [][]string{
		{"walk", "transit", "walk"},
		{"bike"},
	}
	trie := constraint.NewSubSequenceTrie()
	for _, s := range stored {
		trie.Insert(s)
	}

	subsequences := []([]string){
		{"walk", "transit", "walk"},
		{"walk"},
		{"transit"},
		{"walk", "walk"},
		{"walk", "transit"},
		{"transit", "walk"},
		{"bike"},
		nil,
	}
	for _, q := range subsequences {
		assert.True(t, trie.ContainsSubsequence(q), "expected %v to match", q)
	}

	nonSubsequences := []([]string){
		{"drive"},
		{"walk", "bike"},
		{"walk", "transit", "walk", "walk"},
		{"transit", "transit"},
	}
	for _, q := range nonSubsequences {
		assert.False(t, trie.ContainsSubsequence(q), "expected %v not to match", q)
	}
}

// Property 9 (spec §8): lookups do not depend on child-iteration order —
// verified by repeatedly inserting the same sequences in shuffled order.
func TestSubSequenceTrie_DeterministicAcrossInsertionOrder(t *testing.T) {
	sequences := [][]string{
		{"walk", "transit", "walk"},
		{"walk", "bike"},
		{"drive"},
		{"transit", "walk", "transit"},
	}
	queries := [][]string{
		{"walk"}, {"transit"}, {"walk", "walk"}, {"bike"}, {"drive", "walk"}, {"transit", "transit"},
	}

	var want []bool
	for round := 0; round < 20; round++ {
		order := rand.Perm(len(sequences))
		trie := constraint.NewSubSequenceTrie()
		for _, i := range order {
			trie.Insert(sequences[i])
		}
		var got []bool
		for _, q := range queries {
			got = append(got, trie.ContainsSubsequence(q))
		}
		if round == 0 {
			want = got
			continue
		}
		require.Equal(t, want, got)
	}
}
