package entities

// Submission is one run of the workbench form.
type Submission struct {
	// Model names the data model whose JSON Schema drives the run.
	Model     string
	Text      string
	Preprompt string
	Multiple  bool
	APIKey    string
}

// WorkbenchState holds the three result slots published by the workbench.
type WorkbenchState struct {
	Evaluation EvaluationResult `json:"evaluation"`
	Graph      KnowledgeGraph   `json:"graph"`
	Extraction any              `json:"extraction"`
	Loading    bool             `json:"loading"`
}

// EmptyExtraction returns the value the extraction slot holds when it has
// nothing to show.
func EmptyExtraction() map[string]any {
	return map[string]any{}
}

// InitialWorkbenchState returns the state before any submission.
func InitialWorkbenchState() WorkbenchState {
	return WorkbenchState{
		Evaluation: EvaluationResult{},
		Graph:      KnowledgeGraph{Triplets: []Triplet{}},
		Extraction: EmptyExtraction(),
	}
}
