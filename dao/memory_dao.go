package dao

import (
	"context"
	"fmt"
	"slices"
	"sync"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
)

// MemoryDocumentDAO keeps the collection in process. Reads and writes copy,
// so no caller ever holds a reference into the stored state.
type MemoryDocumentDAO struct {
	mu   sync.RWMutex
	docs []model.Document
}

func NewMemoryDocumentDAO(docs []model.Document) *MemoryDocumentDAO {
	return &MemoryDocumentDAO{docs: model.CloneDocuments(docs)}
}

func (dao *MemoryDocumentDAO) List(ctx context.Context) ([]model.Document, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()
	out := model.CloneDocuments(dao.docs)
	if out == nil {
		out = []model.Document{}
	}
	return out, nil
}

func (dao *MemoryDocumentDAO) GetByID(ctx context.Context, id string) (model.Document, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()
	for _, d := range dao.docs {
		if d.ID == id {
			return d.Clone(), nil
		}
	}
	return model.Document{}, fmt.Errorf("%w: %s", docflow_errors.ErrDocumentNotFound, id)
}

func (dao *MemoryDocumentDAO) Replace(ctx context.Context, docs []model.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	next := model.CloneDocuments(docs)
	dao.mu.Lock()
	dao.docs = next
	dao.mu.Unlock()
	return nil
}

type MemoryDepartmentDAO struct {
	mu          sync.RWMutex
	departments []model.Department
}

func NewMemoryDepartmentDAO(departments []model.Department) *MemoryDepartmentDAO {
	return &MemoryDepartmentDAO{departments: model.CloneDepartments(departments)}
}

func (dao *MemoryDepartmentDAO) List(ctx context.Context) ([]model.Department, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()
	out := model.CloneDepartments(dao.departments)
	if out == nil {
		out = []model.Department{}
	}
	return out, nil
}

func (dao *MemoryDepartmentDAO) Replace(ctx context.Context, departments []model.Department) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	next := model.CloneDepartments(departments)
	dao.mu.Lock()
	dao.departments = next
	dao.mu.Unlock()
	return nil
}

// MemoryUserDAO is read-only; the directory is fixed at startup.
type MemoryUserDAO struct {
	users []model.User
}

func NewMemoryUserDAO(users []model.User) *MemoryUserDAO {
	return &MemoryUserDAO{users: slices.Clone(users)}
}

func (dao *MemoryUserDAO) List(ctx context.Context) ([]model.User, error) {
	return slices.Clone(dao.users), nil
}

func (dao *MemoryUserDAO) GetByID(ctx context.Context, id string) (model.User, error) {
	for _, u := range dao.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("%w: %s", docflow_errors.ErrUserNotFound, id)
}

type MemoryFeedbackDAO struct {
	mu      sync.RWMutex
	entries []model.Feedback
}

func NewMemoryFeedbackDAO() *MemoryFeedbackDAO {
	return &MemoryFeedbackDAO{}
}

func (dao *MemoryFeedbackDAO) Add(ctx context.Context, feedback model.Feedback) error {
	dao.mu.Lock()
	defer dao.mu.Unlock()
	dao.entries = append(dao.entries, feedback)
	return nil
}

// ListByDocument returns entries oldest first.
func (dao *MemoryFeedbackDAO) ListByDocument(ctx context.Context, documentID string) ([]model.Feedback, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()
	out := []model.Feedback{}
	for _, f := range dao.entries {
		if f.DocumentID == documentID {
			out = append(out, f)
		}
	}
	return out, nil
}

// NewMemoryRepositories builds the in-process backend, optionally seeded.
func NewMemoryRepositories(seed bool) Repositories {
	if !seed {
		return Repositories{
			Documents:   NewMemoryDocumentDAO(nil),
			Departments: NewMemoryDepartmentDAO(nil),
			Users:       NewMemoryUserDAO(nil),
			Feedback:    NewMemoryFeedbackDAO(),
		}
	}
	return Repositories{
		Documents:   NewMemoryDocumentDAO(SeedDocuments()),
		Departments: NewMemoryDepartmentDAO(SeedDepartments()),
		Users:       NewMemoryUserDAO(SeedUsers()),
		Feedback:    NewMemoryFeedbackDAO(),
	}
}
