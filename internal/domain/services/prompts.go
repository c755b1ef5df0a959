// Package services contains domain business logic.
package services

import "github.com/ersonp/mdchat/internal/domain/ports"

// EvaluationPrompt asks the model for a tagged fit/unfit verdict.
// ParseVerdict depends on the <FIT> and <UNFIT> tags named here.
const EvaluationPrompt = `You will be given a JSON schema and a text. Decide whether the text
contains information that can be expressed using the schema.

Start your answer with exactly one tag:
- <FIT> if the text fits the schema
- <UNFIT> if it does not

After the tag, explain your decision in two or three sentences. Mention which
parts of the schema the text covers and which it does not.`

// ExtractionPrePrompt frames the structured extraction call.
const ExtractionPrePrompt = `You are a helpful assistant that understands JSON schemas.
If the given text does not fit the schema, set the 'fits' property to false and
leave the 'data' or 'items' property empty. Otherwise set it to true and fill the
'data' or 'items' property with the data from the text that fits the schema.

Extract data only from the given text. If something is not stated directly, leave it empty.`

// KnowledgeGraphPrompt asks for subject-predicate-object triplets.
const KnowledgeGraphPrompt = `Build a knowledge graph from the following text.
Represent every statement as a triplet of subject, predicate and object.
Use short, canonical names for entities and reuse the same name every time the
same entity appears. Use lower_snake_case verbs for predicates. Keep the
triplets in the order the statements appear in the text.`

// userMessages builds a user-role message per non-empty content.
func userMessages(contents ...string) []ports.Message {
	messages := make([]ports.Message, 0, len(contents))
	for _, c := range contents {
		if c == "" {
			continue
		}
		messages = append(messages, ports.Message{Role: ports.RoleUser, Content: c})
	}
	return messages
}
