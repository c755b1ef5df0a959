package entities

// Triplet is a single subject-predicate-object statement extracted from text.
type Triplet struct {
	Subject   string `json:"subject" description:"The entity the statement is about"`
	Predicate string `json:"predicate" description:"The relation between subject and object"`
	Object    string `json:"object" description:"The value or target entity of the relation"`
}

// KnowledgeGraph is an ordered list of triplets.
type KnowledgeGraph struct {
	Triplets []Triplet `json:"triplets" description:"All statements found in the text, in reading order"`
}

// GraphRequest asks for a knowledge graph to be built from a prompt.
type GraphRequest struct {
	Prompt    string
	PrePrompt string
	APIKey    string
}
