// dao/feedback_dao.go
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
	helper_util "github.com/dev-mohitbeniwal/docflow/util/helper"
)

type FeedbackDAO struct {
	Driver neo4j.Driver
}

var _ FeedbackRepository = &FeedbackDAO{}

func NewFeedbackDAO(driver neo4j.Driver) *FeedbackDAO {
	return &FeedbackDAO{Driver: driver}
}

// Add stores the entry and links it to its document when the document node
// exists.
func (dao *FeedbackDAO) Add(ctx context.Context, feedback model.Feedback) error {
	start := time.Now()

	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE (f:` + docflow_neo4j.LabelFeedback + ` $props)
        WITH f
        OPTIONAL MATCH (d:` + docflow_neo4j.LabelDocument + ` {id: $documentID})
        FOREACH (ignored IN CASE WHEN d IS NULL THEN [] ELSE [1] END |
            MERGE (d)-[:` + docflow_neo4j.RelHasFeedback + `]->(f))
        `
		params := map[string]interface{}{
			"documentID": feedback.DocumentID,
			"props": map[string]interface{}{
				"id":         feedback.ID,
				"documentID": feedback.DocumentID,
				"userID":     feedback.UserID,
				"userName":   feedback.UserName,
				"status":     string(feedback.Status),
				"message":    feedback.Message,
				"createdAt":  helper_util.FormatTime(feedback.CreatedAt),
			},
		}
		if _, err := transaction.Run(query, params); err != nil {
			return nil, docflow_errors.ErrDatabaseOperation
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to add feedback",
			zap.Error(err),
			zap.String("docID", feedback.DocumentID),
			zap.Duration("duration", time.Since(start)))
		return err
	}
	return nil
}

func (dao *FeedbackDAO) ListByDocument(ctx context.Context, documentID string) ([]model.Feedback, error) {
	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (f:` + docflow_neo4j.LabelFeedback + ` {documentID: $documentID})
        RETURN f
        ORDER BY f.createdAt ASC
        `
		result, err := transaction.Run(query, map[string]interface{}{"documentID": documentID})
		if err != nil {
			return nil, docflow_errors.ErrDatabaseOperation
		}
		entries := []model.Feedback{}
		for result.Next() {
			f, err := mapNodeToFeedback(result.Record().Values[0].(neo4j.Node))
			if err != nil {
				return nil, err
			}
			entries = append(entries, f)
		}
		return entries, result.Err()
	})
	if err != nil {
		logger.Error("Failed to list feedback", zap.Error(err), zap.String("docID", documentID))
		return nil, err
	}
	return result.([]model.Feedback), nil
}

func mapNodeToFeedback(node neo4j.Node) (model.Feedback, error) {
	props := node.Props
	f := model.Feedback{}

	f.ID, _ = props["id"].(string)
	f.DocumentID, _ = props["documentID"].(string)
	f.UserID, _ = props["userID"].(string)
	f.UserName, _ = props["userName"].(string)
	f.Message, _ = props["message"].(string)
	if status, ok := props["status"].(string); ok {
		f.Status = model.ApprovalStatus(status)
	}
	createdAt, _ := props["createdAt"].(string)
	t, err := helper_util.ParseTime(createdAt)
	if err != nil {
		return model.Feedback{}, fmt.Errorf("invalid feedback createdAt %q: %w", createdAt, err)
	}
	f.CreatedAt = t

	return f, nil
}
