// Package dao holds the storage backends. The document and department
// collections are replaced whole; callers never patch individual records.
package dao

import (
	"context"

	"github.com/dev-mohitbeniwal/docflow/model"
)

type DocumentRepository interface {
	List(ctx context.Context) ([]model.Document, error)
	GetByID(ctx context.Context, id string) (model.Document, error)
	Replace(ctx context.Context, docs []model.Document) error
}

type DepartmentRepository interface {
	List(ctx context.Context) ([]model.Department, error)
	Replace(ctx context.Context, departments []model.Department) error
}

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
}

type FeedbackRepository interface {
	Add(ctx context.Context, feedback model.Feedback) error
	ListByDocument(ctx context.Context, documentID string) ([]model.Feedback, error)
}

// Repositories bundles one backend's stores.
type Repositories struct {
	Documents   DocumentRepository
	Departments DepartmentRepository
	Users       UserRepository
	Feedback    FeedbackRepository
}
