// dao/user_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/docflow/db"
	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	logger "github.com/dev-mohitbeniwal/docflow/logging"
	"github.com/dev-mohitbeniwal/docflow/model"
	docflow_neo4j "github.com/dev-mohitbeniwal/docflow/model/neo4j"
)

type UserDAO struct {
	Driver neo4j.Driver
}

var _ UserRepository = &UserDAO{}

func NewUserDAO(driver neo4j.Driver) *UserDAO {
	dao := &UserDAO{Driver: driver}
	// Ensure unique constraint on User ID
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for User", zap.Error(err))
	}
	return dao
}

func (dao *UserDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on User ID")
	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_user_id IF NOT EXISTS
        FOR (u:` + docflow_neo4j.LabelUser + `) REQUIRE u.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on User ID", zap.Error(err))
		return err
	}

	logger.Info("Successfully ensured unique constraint on User ID")
	return nil
}

// Upsert merges the given users into the directory.
func (dao *UserDAO) Upsert(ctx context.Context, users []model.User) error {
	start := time.Now()
	rows := make([]map[string]interface{}, len(users))
	for i, u := range users {
		rows[i] = map[string]interface{}{
			"id":     u.ID,
			"name":   u.Name,
			"role":   string(u.Role),
			"email":  u.Email,
			"avatar": u.Avatar,
		}
	}

	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        UNWIND $rows AS row
        MERGE (u:` + docflow_neo4j.LabelUser + ` {id: row.id})
        SET u += row
        `
		if _, err := transaction.Run(query, map[string]interface{}{"rows": rows}); err != nil {
			return nil, docflow_errors.ErrDatabaseOperation
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to upsert users", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return err
	}

	logger.Info("Users upserted successfully",
		zap.Int("count", len(users)),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (dao *UserDAO) GetByID(ctx context.Context, userID string) (model.User, error) {
	start := time.Now()

	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:` + docflow_neo4j.LabelUser + ` {id: $id})
        RETURN u
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": userID})
		if err != nil {
			return nil, docflow_errors.ErrDatabaseOperation
		}
		if result.Next() {
			return mapNodeToUser(result.Record().Values[0].(neo4j.Node)), nil
		}
		return nil, fmt.Errorf("%w: %s", docflow_errors.ErrUserNotFound, userID)
	})
	if err != nil {
		logger.Warn("Failed to retrieve user",
			zap.Error(err),
			zap.String("userID", userID),
			zap.Duration("duration", time.Since(start)))
		return model.User{}, err
	}

	return result.(model.User), nil
}

func (dao *UserDAO) List(ctx context.Context) ([]model.User, error) {
	start := time.Now()

	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:` + docflow_neo4j.LabelUser + `)
        RETURN u
        ORDER BY u.id
        `
		result, err := transaction.Run(query, nil)
		if err != nil {
			return nil, docflow_errors.ErrDatabaseOperation
		}
		users := []model.User{}
		for result.Next() {
			users = append(users, mapNodeToUser(result.Record().Values[0].(neo4j.Node)))
		}
		return users, result.Err()
	})
	if err != nil {
		logger.Error("Failed to list users",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	return result.([]model.User), nil
}

func mapNodeToUser(node neo4j.Node) model.User {
	props := node.Props
	user := model.User{}

	user.ID, _ = props["id"].(string)
	user.Name, _ = props["name"].(string)
	user.Email, _ = props["email"].(string)
	user.Avatar, _ = props["avatar"].(string)
	if role, ok := props["role"].(string); ok {
		user.Role = model.Role(role)
	}

	return user
}
