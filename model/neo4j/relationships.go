// model/neo4j/relationships.go
package docflow_neo4j

// Relationship Types
const (
	// RelChildOf links a department to its parent department
	RelChildOf = "CHILD_OF"

	// RelHasFeedback links a document to its feedback entries
	RelHasFeedback = "HAS_FEEDBACK"
)
