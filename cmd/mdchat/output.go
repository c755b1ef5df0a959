package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ersonp/mdchat/internal/domain/entities"
)

func printVerdict(w io.Writer, result *entities.EvaluationResult) error {
	verdict := "UNFIT"
	if result.Fits {
		verdict = "FIT"
	}

	if _, err := fmt.Fprintf(w, "Verdict: %s\n", verdict); err != nil {
		return err
	}
	if result.Reason == "" {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, line := range wrapText(result.Reason, DefaultReasonWidth) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func printGraph(w io.Writer, graph *entities.KnowledgeGraph) error {
	if len(graph.Triplets) == 0 {
		_, err := fmt.Fprintln(w, "No triplets found.")
		return err
	}

	if _, err := fmt.Fprintf(w, "Found %d triplets:\n\n", len(graph.Triplets)); err != nil {
		return err
	}
	for i, t := range graph.Triplets {
		if _, err := fmt.Fprintf(w, "%d. %s -[%s]-> %s\n", i+1, t.Subject, t.Predicate, t.Object); err != nil {
			return err
		}
	}
	return nil
}

// wrapText splits each paragraph of s into lines no longer than width,
// breaking on spaces. Words longer than width get a line of their own.
func wrapText(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var b strings.Builder
		for _, word := range words {
			if b.Len() > 0 && b.Len()+1+len(word) > width {
				lines = append(lines, b.String())
				b.Reset()
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(word)
		}
		lines = append(lines, b.String())
	}
	return lines
}
