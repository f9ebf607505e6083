// dao/department_dao.go
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

// DepartmentDAO stores the department tree as Department nodes joined by
// CHILD_OF relationships.
type DepartmentDAO struct {
	Driver neo4j.Driver
}

var _ DepartmentRepository = &DepartmentDAO{}

func NewDepartmentDAO(driver neo4j.Driver) *DepartmentDAO {
	dao := &DepartmentDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Department", zap.Error(err))
	}
	return dao
}

func (dao *DepartmentDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Department ID")
	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_dept_id IF NOT EXISTS
        FOR (d:` + docflow_neo4j.LabelDepartment + `) REQUIRE d.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on Department ID", zap.Error(err))
		return err
	}

	logger.Info("Successfully ensured unique constraint on Department ID")
	return nil
}

func (dao *DepartmentDAO) List(ctx context.Context) ([]model.Department, error) {
	start := time.Now()

	result, err := db.ExecuteReadTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (d:Department)
        RETURN d
        ORDER BY d.position ASC
        `
		result, err := transaction.Run(query, nil)
		if err != nil {
			return nil, docflow_errors.ErrDatabaseOperation
		}

		var flat []model.Department
		for result.Next() {
			dept, err := mapNodeToDepartment(result.Record().Values[0].(neo4j.Node))
			if err != nil {
				return nil, fmt.Errorf("failed to map department node to struct: %w", err)
			}
			flat = append(flat, dept)
		}
		return flat, result.Err()
	})
	if err != nil {
		logger.Error("Failed to list departments",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	flat, _ := result.([]model.Department)
	return buildDepartmentTree(flat), nil
}

// Replace stores the whole tree. Parents are written before children so the
// CHILD_OF match always finds its target.
func (dao *DepartmentDAO) Replace(ctx context.Context, departments []model.Department) error {
	start := time.Now()

	flat := flattenDepartmentTree(departments)
	ids := make([]string, len(flat))
	rows := make([]map[string]interface{}, len(flat))
	for i, dept := range flat {
		ids[i] = dept.ID
		rows[i] = map[string]interface{}{
			"id":        dept.ID,
			"position":  int64(i),
			"name":      dept.Name,
			"color":     dept.Color,
			"path":      dept.Path,
			"parentID":  dept.ParentID,
			"createdAt": helper_util.FormatTime(dept.CreatedAt),
		}
	}

	_, err := db.ExecuteWriteTransaction(ctx, dao.Driver, func(transaction neo4j.Transaction) (interface{}, error) {
		queries := []struct {
			cypher string
			params map[string]interface{}
		}{
			{`
            MATCH (d:Department)
            WHERE NOT d.id IN $ids
            DETACH DELETE d
            `, map[string]interface{}{"ids": ids}},
			{`
            MATCH (:Department)-[r:` + docflow_neo4j.RelChildOf + `]->(:Department)
            DELETE r
            `, nil},
			{`
            UNWIND $rows AS row
            MERGE (d:Department {id: row.id})
            SET d = row
            `, map[string]interface{}{"rows": rows}},
			{`
            MATCH (c:Department)
            WHERE c.parentID <> ''
            MATCH (p:Department {id: c.parentID})
            MERGE (c)-[:` + docflow_neo4j.RelChildOf + `]->(p)
            `, nil},
		}
		for _, q := range queries {
			if _, err := transaction.Run(q.cypher, q.params); err != nil {
				return nil, docflow_errors.ErrDatabaseOperation
			}
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to replace departments",
			zap.Error(err),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Department tree replaced successfully",
		zap.Int("count", len(flat)),
		zap.Duration("duration", duration))
	return nil
}

// Helper function to map Neo4j Node to Department struct
func mapNodeToDepartment(node neo4j.Node) (model.Department, error) {
	props := node.Props
	dept := model.Department{}

	dept.ID, _ = props["id"].(string)
	dept.Name, _ = props["name"].(string)
	dept.Color, _ = props["color"].(string)
	dept.Path, _ = props["path"].(string)
	dept.ParentID, _ = props["parentID"].(string)
	if createdAt, ok := props["createdAt"].(string); ok && createdAt != "" {
		t, err := helper_util.ParseTime(createdAt)
		if err != nil {
			return model.Department{}, fmt.Errorf("invalid createdAt %q: %w", createdAt, err)
		}
		dept.CreatedAt = t
	}

	return dept, nil
}

// flattenDepartmentTree lists departments parent-first, recording ParentID
// from the tree shape. Children are dropped from the flat entries.
func flattenDepartmentTree(departments []model.Department) []model.Department {
	var flat []model.Department
	var walk func(nodes []model.Department, parentID string)
	walk = func(nodes []model.Department, parentID string) {
		for _, d := range nodes {
			entry := d
			entry.Children = nil
			if parentID != "" {
				entry.ParentID = parentID
			}
			flat = append(flat, entry)
			walk(d.Children, d.ID)
		}
	}
	walk(departments, "")
	return flat
}

// buildDepartmentTree is the inverse of flattenDepartmentTree. Entries whose
// parent is unknown become roots.
func buildDepartmentTree(flat []model.Department) []model.Department {
	byParent := make(map[string][]model.Department)
	known := make(map[string]bool, len(flat))
	for _, d := range flat {
		known[d.ID] = true
	}
	var roots []model.Department
	for _, d := range flat {
		if d.ParentID != "" && known[d.ParentID] {
			byParent[d.ParentID] = append(byParent[d.ParentID], d)
			continue
		}
		roots = append(roots, d)
	}

	var attach func(nodes []model.Department) []model.Department
	attach = func(nodes []model.Department) []model.Department {
		for i := range nodes {
			if children, ok := byParent[nodes[i].ID]; ok {
				nodes[i].Children = attach(children)
			}
		}
		return nodes
	}
	out := attach(roots)
	if out == nil {
		out = []model.Department{}
	}
	return out
}
