// model/neo4j/nodes.go
package docflow_neo4j

// Node Labels
const (
	// LabelDocument is a document together with its workflow state
	LabelDocument = "Document"

	// LabelDepartment is a subject documents are filed under
	LabelDepartment = "Department"

	// LabelUser is a person who uploads or reviews documents
	LabelUser = "User"

	// LabelFeedback is a reviewer note attached to a document
	LabelFeedback = "Feedback"
)
