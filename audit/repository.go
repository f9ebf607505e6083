// audit/repository.go
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

type Repository interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, q Query) ([]AuditLog, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a new repository with a given Elasticsearch client URL.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient, index: index}, nil
}

// LogAccess logs an audit action to Elasticsearch.
func (r *ElasticsearchRepository) LogAccess(ctx context.Context, log AuditLog) error {
	data, err := json.Marshal(log)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: log.ID,
		Body:       strings.NewReader(string(data)),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing audit log: %s", res.String())
	}

	return nil
}

func buildSearchQuery(q Query) map[string]interface{} {
	must := []interface{}{
		map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": q.From.Format(time.RFC3339),
					"lte": q.To.Format(time.RFC3339),
				},
			},
		},
	}
	if q.UserID != "" {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{"user_id": q.UserID},
		})
	}
	if q.ResourceID != "" {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{"resource_id": q.ResourceID},
		})
	}
	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"must": must},
		},
		"sort": []interface{}{
			map[string]interface{}{"timestamp": map[string]interface{}{"order": "desc"}},
		},
	}
}

// QueryLogs searches for audit logs in Elasticsearch within a specific time frame and optionally filters by userID and resourceID.
func (r *ElasticsearchRepository) QueryLogs(ctx context.Context, q Query) ([]AuditLog, error) {
	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(buildSearchQuery(q)); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(strings.NewReader(buf.String())),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching audit logs: %s", res.String())
	}

	var body struct {
		Hits struct {
			Hits []struct {
				Source AuditLog `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	logs := make([]AuditLog, len(body.Hits.Hits))
	for i, hit := range body.Hits.Hits {
		logs[i] = hit.Source
	}
	return logs, nil
}

// MemoryRepository keeps audit logs in process when Elasticsearch is disabled.
type MemoryRepository struct {
	mu   sync.RWMutex
	logs []AuditLog
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) LogAccess(ctx context.Context, log AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, log)
	return nil
}

// QueryLogs returns matches newest first.
func (r *MemoryRepository) QueryLogs(ctx context.Context, q Query) ([]AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []AuditLog{}
	for _, l := range r.logs {
		if l.Timestamp.Before(q.From) || (!q.To.IsZero() && l.Timestamp.After(q.To)) {
			continue
		}
		if q.UserID != "" && l.UserID != q.UserID {
			continue
		}
		if q.ResourceID != "" && l.ResourceID != q.ResourceID {
			continue
		}
		out = append(out, l)
	}
	slices.Reverse(out)
	return out, nil
}
