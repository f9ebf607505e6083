package workflow

import (
	"context"
	"fmt"
	"slices"
	"time"

	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
	"github.com/dev-mohitbeniwal/docflow/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/docflow/pdp/model"
)

// resolve maps every selected id to its index, dropping duplicates while
// keeping selection order.
func resolve(docs []model.Document, ids []string) ([]int, error) {
	if len(ids) == 0 {
		return nil, docflow_errors.ErrNoDocumentsSelected
	}
	seen := make(map[string]bool, len(ids))
	indexes := make([]int, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		i := indexOf(docs, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", docflow_errors.ErrDocumentNotFound, id)
		}
		indexes = append(indexes, i)
	}
	return indexes, nil
}

// Delete soft-deletes one document once the confirmer agrees. A declined
// confirmation returns the input collection and deleted=false.
func Delete(ctx context.Context, docs []model.Document, id string, user *model.User, confirmer Confirmer) (next []model.Document, deleted bool, err error) {
	i, doc, err := find(docs, id)
	if err != nil {
		return docs, false, err
	}
	if err := engine.Explain(pdp_model.ActionDelete, doc, user); err != nil {
		return docs, false, err
	}
	req := ConfirmationRequest{
		Action:      string(pdp_model.ActionDelete),
		DocumentIDs: []string{id},
		Message:     fmt.Sprintf("Delete %q?", doc.Title),
	}
	if confirmer == nil || !confirmer.Confirm(ctx, req) {
		return docs, false, nil
	}

	doc.IsDeleted = true
	return replaceAt(docs, i, doc), true, nil
}

// BulkApprove approves every selected pending document. Selected documents in
// any other state are skipped. If the user may not approve one of the
// remaining documents nothing changes.
func BulkApprove(docs []model.Document, ids []string, user *model.User, now time.Time) ([]model.Document, model.BulkApproveResult, error) {
	result := model.BulkApproveResult{Approved: []string{}, Skipped: []string{}}
	indexes, err := resolve(docs, ids)
	if err != nil {
		return docs, result, err
	}

	targets := make([]int, 0, len(indexes))
	for _, i := range indexes {
		if docs[i].ApprovalStatus != model.StatusPending {
			result.Skipped = append(result.Skipped, docs[i].ID)
			continue
		}
		if err := engine.Explain(pdp_model.ActionApprove, docs[i], user); err != nil {
			return docs, model.BulkApproveResult{Approved: []string{}, Skipped: []string{}}, err
		}
		targets = append(targets, i)
	}

	next := slices.Clone(docs)
	for _, i := range targets {
		doc := next[i].Clone()
		doc.ApprovalStatus = model.StatusApproved
		stamp(&doc, user, now)
		next[i] = doc
		result.Approved = append(result.Approved, doc.ID)
	}
	return next, result, nil
}

// BulkDelete removes the selected documents from the collection after a
// single confirmation. Every target must pass the delete check first.
func BulkDelete(ctx context.Context, docs []model.Document, ids []string, user *model.User, confirmer Confirmer) ([]model.Document, model.BulkDeleteResult, error) {
	result := model.BulkDeleteResult{Deleted: []string{}}
	indexes, err := resolve(docs, ids)
	if err != nil {
		return docs, result, err
	}

	selected := make(map[int]bool, len(indexes))
	targetIDs := make([]string, 0, len(indexes))
	for _, i := range indexes {
		if err := engine.Explain(pdp_model.ActionDelete, docs[i], user); err != nil {
			return docs, result, err
		}
		selected[i] = true
		targetIDs = append(targetIDs, docs[i].ID)
	}

	req := ConfirmationRequest{
		Action:      string(pdp_model.ActionDelete),
		DocumentIDs: targetIDs,
		Message:     fmt.Sprintf("Delete %d selected documents?", len(targetIDs)),
	}
	if confirmer == nil || !confirmer.Confirm(ctx, req) {
		result.Cancelled = true
		return docs, result, nil
	}

	next := make([]model.Document, 0, len(docs)-len(selected))
	for i, doc := range docs {
		if !selected[i] {
			next = append(next, doc)
		}
	}
	result.Deleted = targetIDs
	return next, result, nil
}

// BulkPublish publishes the selected approved documents and reports the rest
// as skipped. Deleted documents are never published.
func BulkPublish(docs []model.Document, ids []string, user *model.User, now time.Time) ([]model.Document, model.BulkPublishResult, error) {
	result := model.BulkPublishResult{Published: []string{}, Skipped: []string{}}
	if err := engine.Explain(pdp_model.ActionPublish, model.Document{}, user); err != nil {
		return docs, result, err
	}
	indexes, err := resolve(docs, ids)
	if err != nil {
		return docs, result, err
	}

	next := slices.Clone(docs)
	for _, i := range indexes {
		doc := next[i].Clone()
		if doc.ApprovalStatus != model.StatusApproved || doc.IsDeleted {
			result.Skipped = append(result.Skipped, doc.ID)
			continue
		}
		if doc.PublishedAt == nil {
			at := now
			doc.PublishedAt = &at
		}
		next[i] = doc
		result.Published = append(result.Published, doc.ID)
	}
	return next, result, nil
}
