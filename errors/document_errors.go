// errors/document_errors.go

package errors

import "errors"

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrInvalidDocumentData = errors.New("invalid document data")
	ErrDocumentConflict    = errors.New("document conflict")
	ErrEmptyReason         = errors.New("a reason is required")
	ErrInvalidStatus       = errors.New("invalid approval status")
	ErrNoDocumentsSelected = errors.New("no documents selected")
)
