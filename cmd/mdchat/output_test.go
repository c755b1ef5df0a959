package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/mdchat/internal/domain/entities"
)

func TestPrintVerdict(t *testing.T) {
	tests := []struct {
		name     string
		result   entities.EvaluationResult
		expected string
	}{
		{
			name:     "fit with reason",
			result:   entities.EvaluationResult{Fits: true, Reason: "The text names a title and an author."},
			expected: "Verdict: FIT\n\nThe text names a title and an author.\n",
		},
		{
			name:     "unfit without reason",
			result:   entities.EvaluationResult{},
			expected: "Verdict: UNFIT\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, printVerdict(&buf, &tt.result))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestPrintGraph(t *testing.T) {
	var buf bytes.Buffer
	graph := &entities.KnowledgeGraph{Triplets: []entities.Triplet{
		{Subject: "Frank Herbert", Predicate: "wrote", Object: "Dune"},
		{Subject: "Dune", Predicate: "published in", Object: "1965"},
	}}

	require.NoError(t, printGraph(&buf, graph))

	assert.Equal(t, "Found 2 triplets:\n\n1. Frank Herbert -[wrote]-> Dune\n2. Dune -[published in]-> 1965\n", buf.String())
}

func TestPrintGraph_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printGraph(&buf, &entities.KnowledgeGraph{Triplets: []entities.Triplet{}}))

	assert.Equal(t, "No triplets found.\n", buf.String())
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected []string
	}{
		{name: "short", input: "one two", width: 20, expected: []string{"one two"}},
		{name: "wraps", input: "one two three", width: 8, expected: []string{"one two", "three"}},
		{name: "long word", input: "a supercalifragilistic b", width: 5, expected: []string{"a", "supercalifragilistic", "b"}},
		{name: "keeps paragraphs", input: "one\n\ntwo", width: 10, expected: []string{"one", "", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.input, tt.width)
			assert.Equal(t, tt.expected, got)
			for _, line := range got {
				if !strings.Contains(line, "supercalifragilistic") {
					assert.LessOrEqual(t, len(line), tt.width)
				}
			}
		})
	}
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"init", "serve", "evaluate", "extract", "graph", "run", "models", "token"} {
		assert.Contains(t, names, want)
	}
}

func TestExtractCmd_Flags(t *testing.T) {
	cmd := newExtractCmd()

	for _, flag := range []string{"model", "schema", "preprompt", "multiple", "out"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), flag)
	}
	assert.Equal(t, "o", cmd.Flags().Lookup("out").Shorthand)
}
