// dao/document_dao.go
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

// DocumentDAO stores the collection as Document nodes. The position property
// keeps the collection order across Replace calls.
type DocumentDAO struct {
	Driver neo4j.Driver
}

var _ DocumentRepository = &DocumentDAO{}

func NewDocumentDAO(driver neo4j.Driver) *DocumentDAO {
	dao := &DocumentDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Document", zap.Error(err))
	}
	return dao
}

func (dao *DocumentDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Document ID")
	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_document_id IF NOT EXISTS
        FOR (d:` + docflow_neo4j.LabelDocument + `) REQUIRE d.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on Document ID", zap.Error(err))
		return err
	}

	logger.Info("Successfully ensured unique constraint on Document ID")
	return nil
}

func (dao *DocumentDAO) List(ctx context.Context) ([]model.Document, error) {
	start := time.Now()

	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (d:Document)
        RETURN d
        ORDER BY d.position ASC
        `
		result, err := transaction.Run(query, nil)
		if err != nil {
			return nil, docflow_errors.ErrDatabaseOperation
		}

		docs := []model.Document{}
		for result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			doc, err := mapNodeToDocument(node)
			if err != nil {
				return nil, fmt.Errorf("failed to map document node to struct: %w", err)
			}
			docs = append(docs, doc)
		}
		return docs, result.Err()
	})
	if err != nil {
		logger.Error("Failed to list documents",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	docs := result.([]model.Document)
	logger.Debug("Documents listed successfully",
		zap.Int("count", len(docs)),
		zap.Duration("duration", time.Since(start)))
	return docs, nil
}

func (dao *DocumentDAO) GetByID(ctx context.Context, id string) (model.Document, error) {
	start := time.Now()

	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (d:Document {id: $id})
        RETURN d
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": id})
		if err != nil {
			return nil, docflow_errors.ErrDatabaseOperation
		}
		if result.Next() {
			return mapNodeToDocument(result.Record().Values[0].(neo4j.Node))
		}
		return nil, fmt.Errorf("%w: %s", docflow_errors.ErrDocumentNotFound, id)
	})
	if err != nil {
		logger.Warn("Failed to retrieve document",
			zap.Error(err),
			zap.String("docID", id),
			zap.Duration("duration", time.Since(start)))
		return model.Document{}, err
	}

	return result.(model.Document), nil
}

// Replace swaps the stored collection in one write transaction: documents
// missing from docs are detached and deleted, the rest are merged.
func (dao *DocumentDAO) Replace(ctx context.Context, docs []model.Document) error {
	start := time.Now()
	logger.Info("Replacing document collection", zap.Int("count", len(docs)))

	ids := make([]string, len(docs))
	rows := make([]map[string]interface{}, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
		rows[i] = documentProps(doc, i)
	}

	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		prune := `
        MATCH (d:Document)
        WHERE NOT d.id IN $ids
        DETACH DELETE d
        `
		if _, err := transaction.Run(prune, map[string]interface{}{"ids": ids}); err != nil {
			return nil, docflow_errors.ErrDatabaseOperation
		}

		upsert := `
        UNWIND $rows AS row
        MERGE (d:Document {id: row.id})
        SET d = row
        `
		if _, err := transaction.Run(upsert, map[string]interface{}{"rows": rows}); err != nil {
			return nil, docflow_errors.ErrDatabaseOperation
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to replace documents",
			zap.Error(err),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Document collection replaced successfully",
		zap.Int("count", len(docs)),
		zap.Duration("duration", duration))
	return nil
}

func documentProps(doc model.Document, position int) map[string]interface{} {
	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]interface{}{
		"id":             doc.ID,
		"position":       int64(position),
		"title":          doc.Title,
		"description":    doc.Description,
		"tags":           tags,
		"department":     doc.Department,
		"type":           doc.Type,
		"fileType":       doc.FileType,
		"size":           doc.Size,
		"uploadedBy":     doc.UploadedBy,
		"uploadedAt":     helper_util.FormatTime(doc.UploadedAt),
		"lastModified":   helper_util.FormatNullableTime(doc.LastModified),
		"approvalStatus": string(doc.ApprovalStatus),
		"approvedBy":     doc.ApprovedBy,
		"approvedAt":     helper_util.FormatNullableTime(doc.ApprovedAt),
		"assignedTo":     doc.AssignedTo,
		"assignedDate":   helper_util.FormatNullableTime(doc.AssignedDate),
		"publishedAt":    helper_util.FormatNullableTime(doc.PublishedAt),
		"securityLevel":  string(doc.SecurityLevel),
		"isDeleted":      doc.IsDeleted,
	}
}

// Helper function to map Neo4j Node to Document struct
func mapNodeToDocument(node neo4j.Node) (model.Document, error) {
	props := node.Props
	doc := model.Document{}

	doc.ID, _ = props["id"].(string)
	doc.Title, _ = props["title"].(string)
	doc.Description, _ = props["description"].(string)
	doc.Department, _ = props["department"].(string)
	doc.Type, _ = props["type"].(string)
	doc.FileType, _ = props["fileType"].(string)
	doc.UploadedBy, _ = props["uploadedBy"].(string)
	doc.ApprovedBy, _ = props["approvedBy"].(string)
	doc.AssignedTo, _ = props["assignedTo"].(string)
	doc.IsDeleted, _ = props["isDeleted"].(bool)
	if size, ok := props["size"].(int64); ok {
		doc.Size = size
	}
	if status, ok := props["approvalStatus"].(string); ok {
		doc.ApprovalStatus = model.ApprovalStatus(status)
	}
	if level, ok := props["securityLevel"].(string); ok {
		doc.SecurityLevel = model.SecurityLevel(level)
	}
	if tags, ok := props["tags"].([]interface{}); ok && len(tags) > 0 {
		doc.Tags = make([]string, 0, len(tags))
		for _, t := range tags {
			if s, ok := t.(string); ok {
				doc.Tags = append(doc.Tags, s)
			}
		}
	}

	uploadedAt, _ := props["uploadedAt"].(string)
	var err error
	if doc.UploadedAt, err = helper_util.ParseTime(uploadedAt); err != nil {
		return model.Document{}, fmt.Errorf("invalid uploadedAt %q: %w", uploadedAt, err)
	}
	for key, dst := range map[string]**time.Time{
		"lastModified": &doc.LastModified,
		"approvedAt":   &doc.ApprovedAt,
		"assignedDate": &doc.AssignedDate,
		"publishedAt":  &doc.PublishedAt,
	} {
		t, err := helper_util.ParseNullableTime(props[key])
		if err != nil {
			return model.Document{}, fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = t
	}

	return doc, nil
}
