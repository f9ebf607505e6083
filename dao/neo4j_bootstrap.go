package dao

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/docflow/logging"
)

// NewNeo4jRepositories builds the graph backend. With seed set, an empty
// graph is filled with the demo users, departments and documents.
func NewNeo4jRepositories(ctx context.Context, driver neo4j.Driver, seed bool) (Repositories, error) {
	users := NewUserDAO(driver)
	docs := NewDocumentDAO(driver)
	depts := NewDepartmentDAO(driver)
	repos := Repositories{
		Documents:   docs,
		Departments: depts,
		Users:       users,
		Feedback:    NewFeedbackDAO(driver),
	}
	if !seed {
		return repos, nil
	}

	existing, err := docs.List(ctx)
	if err != nil {
		return repos, fmt.Errorf("failed to check existing documents: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("Graph already holds documents, skipping seed", zap.Int("count", len(existing)))
		return repos, nil
	}

	if err := users.Upsert(ctx, SeedUsers()); err != nil {
		return repos, fmt.Errorf("failed to seed users: %w", err)
	}
	if err := depts.Replace(ctx, SeedDepartments()); err != nil {
		return repos, fmt.Errorf("failed to seed departments: %w", err)
	}
	if err := docs.Replace(ctx, SeedDocuments()); err != nil {
		return repos, fmt.Errorf("failed to seed documents: %w", err)
	}
	logger.Info("Seeded graph with demo data")
	return repos, nil
}
