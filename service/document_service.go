// service/document_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/docflow/audit"
	"github.com/dev-mohitbeniwal/docflow/dao"
	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	logger "github.com/dev-mohitbeniwal/docflow/logging"
	"github.com/dev-mohitbeniwal/docflow/model"
	"github.com/dev-mohitbeniwal/docflow/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/docflow/pdp/model"
	"github.com/dev-mohitbeniwal/docflow/search"
	"github.com/dev-mohitbeniwal/docflow/util"
	"github.com/dev-mohitbeniwal/docflow/workflow"
)

const (
	collectionLockName = "documents"
	collectionLockTTL  = 5 * time.Second
	lockRetryInterval  = 50 * time.Millisecond
	lockRetries        = 40
)

// IDocumentService defines the interface for document operations
type IDocumentService interface {
	ListDocuments(ctx context.Context, query model.DocumentQuery, user *model.User) ([]model.Document, error)
	GroupDocuments(ctx context.Context, query model.DocumentQuery, user *model.User) ([]model.DepartmentGroup, error)
	GetDocument(ctx context.Context, id string, user *model.User) (*model.Document, error)
	GetPermissions(ctx context.Context, id string, user *model.User) (*model.Permissions, error)
	ExplainPermissions(ctx context.Context, id string, user *model.User) ([]pdp_model.AccessDecision, error)
	ListFeedback(ctx context.Context, id string, user *model.User) ([]model.Feedback, error)

	UploadDocument(ctx context.Context, req model.UploadRequest, user *model.User) (*model.Document, error)
	EditDocument(ctx context.Context, id string, req model.EditRequest, user *model.User) (*model.Document, error)
	DeleteDocument(ctx context.Context, id string, user *model.User, confirmer workflow.Confirmer) (bool, error)
	RestoreDocument(ctx context.Context, id string, user *model.User) (*model.Document, error)
	ApproveDocument(ctx context.Context, id string, user *model.User) (*model.Document, error)
	RejectDocument(ctx context.Context, id, reason string, user *model.User) (*model.Document, error)
	AcknowledgeDocument(ctx context.Context, id string, user *model.User) (*model.Document, error)
	RequestRevision(ctx context.Context, id, reason string, user *model.User) (*model.Document, error)
	ResubmitDocument(ctx context.Context, id string, user *model.User) (*model.Document, error)
	ReassignDocument(ctx context.Context, id, assigneeID string, user *model.User) (*model.Document, error)

	BulkApprove(ctx context.Context, ids []string, user *model.User) (*model.BulkApproveResult, error)
	BulkDelete(ctx context.Context, ids []string, user *model.User, confirmer workflow.Confirmer) (*model.BulkDeleteResult, error)
	BulkPublish(ctx context.Context, ids []string, user *model.User) (*model.BulkPublishResult, error)
}

// DocumentService owns the read-modify-replace cycle over the document
// collection. Mutations are serialized so each transition fully applies
// before the next one reads the collection.
type DocumentService struct {
	docRepo         dao.DocumentRepository
	deptRepo        dao.DepartmentRepository
	userRepo        dao.UserRepository
	feedbackRepo    dao.FeedbackRepository
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	auditService    audit.Service
	evaluator       *engine.DocumentEvaluator

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

var _ IDocumentService = &DocumentService{}

// NewDocumentService creates a new instance of DocumentService
func NewDocumentService(repos dao.Repositories, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus, auditService audit.Service) *DocumentService {
	service := &DocumentService{
		docRepo:         repos.Documents,
		deptRepo:        repos.Departments,
		userRepo:        repos.Users,
		feedbackRepo:    repos.Feedback,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		auditService:    auditService,
		evaluator:       engine.NewDocumentEvaluator(),
		now:             func() time.Time { return time.Now().UTC() },
		newID:           uuid.NewString,
	}

	// Set up event subscriptions
	for _, eventType := range model.DocumentEventTypes {
		eventBus.Subscribe(eventType, service.handleDocumentEvent)
	}

	return service
}

// WithClock replaces the time source; used by tests.
func (s *DocumentService) WithClock(now func() time.Time) *DocumentService {
	s.now = now
	return s
}

// handleDocumentEvent writes one audit record per affected document.
func (s *DocumentService) handleDocumentEvent(ctx context.Context, event util.Event) error {
	de, ok := event.Payload.(model.DocumentEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	if s.auditService == nil {
		return nil
	}

	granted := de.Type != model.EventDocumentAccessDenied
	action := de.Type
	if !granted {
		action = de.Action
	}
	var errs []error
	for _, id := range de.DocumentIDs {
		log := audit.AuditLog{
			Timestamp:     de.At,
			UserID:        de.ActorID,
			UserName:      de.ActorName,
			Action:        action,
			ResourceID:    id,
			AccessGranted: granted,
		}
		if granted {
			log.ChangeDetails = changeDetails(de)
		} else {
			log.Reason = de.Detail
		}
		if err := s.auditService.LogAccess(ctx, log); err != nil {
			logger.Error("Failed to create audit log", zap.Error(err), zap.String("docID", id))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *DocumentService) publish(ctx context.Context, eventType string, user *model.User, detail string, ids ...string) {
	s.eventBus.Publish(ctx, eventType, model.DocumentEvent{
		Type:        eventType,
		DocumentIDs: ids,
		ActorID:     user.ID,
		ActorName:   user.Name,
		Detail:      detail,
		At:          s.now(),
	})
}

// recordDenied audits a refused action. Other errors pass through untouched.
func (s *DocumentService) recordDenied(ctx context.Context, user *model.User, err error, ids ...string) error {
	var permErr *docflow_errors.PermissionError
	if user == nil || !errors.As(err, &permErr) {
		return err
	}
	if permErr.DocumentID != "" {
		ids = []string{permErr.DocumentID}
	}
	logger.Warn("Document action denied",
		zap.String("userID", user.ID),
		zap.String("action", permErr.Action),
		zap.Strings("docIDs", ids),
		zap.String("reason", permErr.Reason))
	s.eventBus.Publish(ctx, model.EventDocumentAccessDenied, model.DocumentEvent{
		Type:        model.EventDocumentAccessDenied,
		Action:      permErr.Action,
		DocumentIDs: ids,
		ActorID:     user.ID,
		ActorName:   user.Name,
		Detail:      permErr.Reason,
		At:          s.now(),
	})
	return err
}

func (s *DocumentService) notify(ctx context.Context, documentID, message string) {
	if err := s.notificationSvc.Notify(ctx, documentID, message); err != nil {
		logger.Warn("Failed to send notification", zap.Error(err), zap.String("docID", documentID))
	}
}

func (s *DocumentService) addFeedback(ctx context.Context, fb model.Feedback) {
	fb.ID = s.newID()
	if err := s.feedbackRepo.Add(ctx, fb); err != nil {
		logger.Error("Failed to store feedback", zap.Error(err), zap.String("docID", fb.DocumentID))
	}
}

// lockCollection takes the cross-instance lock when redis is configured.
func (s *DocumentService) lockCollection(ctx context.Context) (func(), error) {
	for attempt := 0; attempt < lockRetries; attempt++ {
		token, locked, err := s.cacheService.Lock(ctx, collectionLockName, collectionLockTTL)
		if err != nil {
			logger.Warn("Distributed lock unavailable, continuing with local lock", zap.Error(err))
			return func() {}, nil
		}
		if locked {
			return func() {
				if err := s.cacheService.Unlock(context.WithoutCancel(ctx), collectionLockName, token); err != nil {
					logger.Warn("Failed to release distributed lock", zap.Error(err))
				}
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
	return nil, fmt.Errorf("%w: document collection is locked by another writer", docflow_errors.ErrDocumentConflict)
}

// mutate runs one read-modify-replace cycle. apply returns changed=false when
// the collection must be left as it is.
func (s *DocumentService) mutate(ctx context.Context, apply func(docs []model.Document, now time.Time) (next []model.Document, changed bool, err error), touched ...string) error {
	return s.withCollectionLock(ctx, func() error {
		return s.replaceLocked(ctx, apply, touched)
	})
}

// withCollectionLock runs fn while holding both the local mutex and the
// cross-instance lock.
func (s *DocumentService) withCollectionLock(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockCollection(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	return fn()
}

func (s *DocumentService) replaceLocked(ctx context.Context, apply func(docs []model.Document, now time.Time) (next []model.Document, changed bool, err error), touched []string) error {
	docs, err := s.docRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}

	next, changed, err := apply(docs, s.now())
	if err != nil || !changed {
		return err
	}

	start := time.Now()
	if err := s.docRepo.Replace(ctx, next); err != nil {
		logger.Error("Error replacing document collection", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return fmt.Errorf("failed to store documents: %w", err)
	}

	if err := s.cacheService.InvalidateDocuments(ctx, touched...); err != nil {
		logger.Warn("Failed to invalidate document cache", zap.Error(err))
	}
	return nil
}

func (s *DocumentService) loadDocuments(ctx context.Context) ([]model.Document, error) {
	if docs, found, err := s.cacheService.GetDocuments(ctx); err != nil {
		logger.Warn("Failed to read document cache", zap.Error(err))
	} else if found {
		return docs, nil
	}

	if !s.cacheService.Enabled() {
		docs, err := s.docRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load documents: %w", err)
		}
		return docs, nil
	}

	// Fill under the collection lock so a snapshot read before a mutation
	// cannot be cached after that mutation invalidated the entry.
	var docs []model.Document
	err := s.withCollectionLock(ctx, func() error {
		if cached, found, err := s.cacheService.GetDocuments(ctx); err == nil && found {
			docs = cached
			return nil
		}
		var err error
		docs, err = s.docRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to load documents: %w", err)
		}
		if err := s.cacheService.SetDocuments(ctx, docs); err != nil {
			logger.Warn("Failed to cache documents", zap.Error(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func requireUser(user *model.User) error {
	if user == nil || user.ID == "" {
		return docflow_errors.ErrUnauthorized
	}
	return nil
}

// ListDocuments applies the search query to the current collection.
func (s *DocumentService) ListDocuments(ctx context.Context, query model.DocumentQuery, user *model.User) ([]model.Document, error) {
	if err := search.ValidateQuery(query); err != nil {
		return nil, fmt.Errorf("%w: %w", docflow_errors.ErrInvalidSearch, err)
	}
	docs, err := s.loadDocuments(ctx)
	if err != nil {
		return nil, err
	}
	return search.FilterAt(docs, query, user, s.now()), nil
}

// GroupDocuments is ListDocuments partitioned by department.
func (s *DocumentService) GroupDocuments(ctx context.Context, query model.DocumentQuery, user *model.User) ([]model.DepartmentGroup, error) {
	filtered, err := s.ListDocuments(ctx, query, user)
	if err != nil {
		return nil, err
	}
	departments, err := s.deptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}
	return search.GroupByDepartment(filtered, departments), nil
}

func (s *DocumentService) GetDocument(ctx context.Context, id string, user *model.User) (*model.Document, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	if doc, err := s.cacheService.GetDocument(ctx, id); err != nil {
		logger.Warn("Failed to read document from cache", zap.Error(err), zap.String("docID", id))
	} else if doc != nil {
		return doc, nil
	}

	if !s.cacheService.Enabled() {
		doc, err := s.docRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &doc, nil
	}

	var doc model.Document
	err := s.withCollectionLock(ctx, func() error {
		var err error
		doc, err = s.docRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.cacheService.SetDocument(ctx, doc); err != nil {
			logger.Warn("Failed to cache document", zap.Error(err), zap.String("docID", id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *DocumentService) GetPermissions(ctx context.Context, id string, user *model.User) (*model.Permissions, error) {
	doc, err := s.GetDocument(ctx, id, user)
	if err != nil {
		return nil, err
	}
	perms := engine.PermissionsFor(*doc, user)
	return &perms, nil
}

// ExplainPermissions returns one decision per action, with the rules that
// were checked and the reason for every denial.
func (s *DocumentService) ExplainPermissions(ctx context.Context, id string, user *model.User) ([]pdp_model.AccessDecision, error) {
	doc, err := s.GetDocument(ctx, id, user)
	if err != nil {
		return nil, err
	}
	return s.evaluator.EvaluateAll(ctx, *doc, user), nil
}

func (s *DocumentService) ListFeedback(ctx context.Context, id string, user *model.User) ([]model.Feedback, error) {
	if _, err := s.GetDocument(ctx, id, user); err != nil {
		return nil, err
	}
	return s.feedbackRepo.ListByDocument(ctx, id)
}

// validateAssignee checks that the user exists and may review documents.
func (s *DocumentService) validateAssignee(ctx context.Context, assigneeID string) error {
	assignee, err := s.userRepo.GetByID(ctx, assigneeID)
	if errors.Is(err, docflow_errors.ErrUserNotFound) {
		return docflow_errors.Validation("unknown assignee %q", assigneeID)
	} else if err != nil {
		return fmt.Errorf("failed to load assignee: %w", err)
	}
	if !assignee.Role.CanReview() {
		return docflow_errors.Validation("assignee %q cannot review documents", assigneeID)
	}
	return nil
}

func (s *DocumentService) UploadDocument(ctx context.Context, req model.UploadRequest, user *model.User) (*model.Document, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateUpload(req); err != nil {
		return nil, err
	}
	if req.AssignedTo != "" {
		if err := s.validateAssignee(ctx, req.AssignedTo); err != nil {
			return nil, err
		}
	}

	id := s.newID()
	var created model.Document
	err := s.mutate(ctx, func(docs []model.Document, now time.Time) ([]model.Document, bool, error) {
		next, doc, err := workflow.Upload(docs, id, req, user, now)
		created = doc
		return next, err == nil, err
	}, id)
	if err != nil {
		logger.Error("Error uploading document", zap.Error(err), zap.String("userID", user.ID))
		return nil, s.recordDenied(ctx, user, err)
	}

	s.publish(ctx, model.EventDocumentUploaded, user, created.Title, created.ID)
	if created.AssignedTo != "" {
		s.notify(ctx, created.ID, fmt.Sprintf("Document %q is waiting for your review", created.Title))
	}
	logger.Info("Document uploaded successfully", zap.String("docID", created.ID), zap.String("userID", user.ID))
	return &created, nil
}

func (s *DocumentService) EditDocument(ctx context.Context, id string, req model.EditRequest, user *model.User) (*model.Document, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	var edited model.Document
	err := s.mutate(ctx, func(docs []model.Document, now time.Time) ([]model.Document, bool, error) {
		next, doc, err := workflow.Edit(docs, id, req, user, now)
		edited = doc
		return next, err == nil, err
	}, id)
	if err != nil {
		return nil, s.recordDenied(ctx, user, err, id)
	}

	s.publish(ctx, model.EventDocumentEdited, user, "", id)
	logger.Info("Document edited successfully", zap.String("docID", id), zap.String("userID", user.ID))
	return &edited, nil
}

// DeleteDocument soft-deletes after confirmation. It reports false when the
// confirmer declined.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string, user *model.User, confirmer workflow.Confirmer) (bool, error) {
	if err := requireUser(user); err != nil {
		return false, err
	}
	var deleted bool
	err := s.mutate(ctx, func(docs []model.Document, _ time.Time) ([]model.Document, bool, error) {
		next, ok, err := workflow.Delete(ctx, docs, id, user, confirmer)
		deleted = ok
		return next, ok, err
	}, id)
	if err != nil {
		return false, s.recordDenied(ctx, user, err, id)
	}
	if !deleted {
		logger.Info("Document deletion cancelled", zap.String("docID", id), zap.String("userID", user.ID))
		return false, nil
	}

	s.publish(ctx, model.EventDocumentDeleted, user, "", id)
	s.notify(ctx, id, fmt.Sprintf("Document %s was deleted by %s", id, user.Name))
	logger.Info("Document deleted successfully", zap.String("docID", id), zap.String("userID", user.ID))
	return true, nil
}

func (s *DocumentService) RestoreDocument(ctx context.Context, id string, user *model.User) (*model.Document, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	var restored model.Document
	err := s.mutate(ctx, func(docs []model.Document, _ time.Time) ([]model.Document, bool, error) {
		next, doc, err := workflow.Restore(docs, id, user)
		restored = doc
		return next, err == nil, err
	}, id)
	if err != nil {
		return nil, s.recordDenied(ctx, user, err, id)
	}

	s.publish(ctx, model.EventDocumentRestored, user, "", id)
	logger.Info("Document restored successfully", zap.String("docID", id), zap.String("userID", user.ID))
	return &restored, nil
}

func (s *DocumentService) ApproveDocument(ctx context.Context, id string, user *model.User) (*model.Document, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	var approved model.Document
	err := s.mutate(ctx, func(docs []model.Document, now time.Time) ([]model.Document, bool, error) {
		next, doc, err := workflow.Approve(docs, id, user, now)
		approved = doc
		return next, err == nil, err
	}, id)
	if err != nil {
		return nil, s.recordDenied(ctx, user, err, id)
	}

	s.publish(ctx, model.EventDocumentApproved, user, "", id)
	s.notify(ctx, id, fmt.Sprintf("Document %q approved by %s", approved.Title, user.Name))
	logger.Info("Document approved successfully", zap.String("docID", id), zap.String("userID", user.ID))
	return &approved, nil
}

func (s *DocumentService) RejectDocument(ctx context.Context, id, reason string, user *model.User) (*model.Document, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	var (
		rejected model.Document
		feedback model.Feedback
	)
	err := s.mutate(ctx, func(docs []model.Document, now time.Time) ([]model.Document, bool, error) {
		next, doc, fb, err := workflow.Reject(docs, id, reason, user, now)
		rejected, feedback = doc, fb
		return next, err == nil, err
	}, id)
	if err != nil {
		return nil, s.recordDenied(ctx, user, err, id)
	}

	s.addFeedback(ctx, feedback)
	s.publish(ctx, model.EventDocumentRejected, user, feedback.Message, id)
	s.notify(ctx, id, fmt.Sprintf("Document %q rejected by %s: %s", rejected.Title, user.Name, feedback.Message))
	logger.Info("Document rejected successfully", zap.String("docID", id), zap.String("userID", user.ID))
	return &rejected, nil
}

// AcknowledgeDocument is idempotent: a repeat acknowledgment returns the
// document unchanged and emits nothing.
func (s *DocumentService) AcknowledgeDocument(ctx context.Context, id string, user *model.User) (*model.Document, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	var (
		acked   model.Document
		changed bool
	)
	err := s.mutate(ctx, func(docs []model.Document, now time.Time) ([]model.Document, bool, error) {
		next, doc, ok, err := workflow.Acknowledge(docs, id, user, now)
		acked, changed = doc, ok
		return next, ok, err
	}, id)
	if err != nil {
		return nil, s.recordDenied(ctx, user, err, id)
	}
	if !changed {
		return &acked, nil
	}

	s.publish(ctx, model.EventDocumentAcknowledged, user, "", id)
	s.notify(ctx, id, fmt.Sprintf("Document %q acknowledged by %s", acked.Title, user.Name))
	logger.Info("Document acknowledged successfully", zap.String("docID", id), zap.String("userID", user.ID))
	return &acked, nil
}

func (s *DocumentService) RequestRevision(ctx context.Context, id, reason string, user *model.User) (*model.Document, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	var (
		revised  model.Document
		feedback model.Feedback
	)
	err := s.mutate(ctx, func(docs []model.Document, now time.Time) ([]model.Document, bool, error) {
		next, doc, fb, err := workflow.RequestRevision(docs, id, reason, user, now)
		revised, feedback = doc, fb
		return next, err == nil, err
	}, id)
	if err != nil {
		return nil, s.recordDenied(ctx, user, err, id)
	}

	s.addFeedback(ctx, feedback)
	s.publish(ctx, model.EventDocumentRevision, user, feedback.Message, id)
	s.notify(ctx, id, fmt.Sprintf("Revision requested on %q by %s: %s", revised.Title, user.Name, feedback.Message))
	return &revised, nil
}

func (s *DocumentService) ResubmitDocument(ctx context.Context, id string, user *model.User) (*model.Document, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	var resubmitted model.Document
	err := s.mutate(ctx, func(docs []model.Document, now time.Time) ([]model.Document, bool, error) {
		next, doc, err := workflow.Resubmit(docs, id, user, now)
		resubmitted = doc
		return next, err == nil, err
	}, id)
	if err != nil {
		return nil, s.recordDenied(ctx, user, err, id)
	}

	s.publish(ctx, model.EventDocumentResubmitted, user, "", id)
	if resubmitted.AssignedTo != "" {
		s.notify(ctx, id, fmt.Sprintf("Document %q was resubmitted for review", resubmitted.Title))
	}
	return &resubmitted, nil
}

func (s *DocumentService) ReassignDocument(ctx context.Context, id, assigneeID string, user *model.User) (*model.Document, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	if assigneeID != "" {
		if err := s.validateAssignee(ctx, assigneeID); err != nil {
			return nil, err
		}
	}
	var reassigned model.Document
	err := s.mutate(ctx, func(docs []model.Document, now time.Time) ([]model.Document, bool, error) {
		next, doc, err := workflow.Reassign(docs, id, assigneeID, user, now)
		reassigned = doc
		return next, err == nil, err
	}, id)
	if err != nil {
		return nil, s.recordDenied(ctx, user, err, id)
	}

	s.publish(ctx, model.EventDocumentReassigned, user, assigneeID, id)
	s.notify(ctx, id, fmt.Sprintf("Document %q reassigned to %s", reassigned.Title, assigneeID))
	return &reassigned, nil
}

func (s *DocumentService) BulkApprove(ctx context.Context, ids []string, user *model.User) (*model.BulkApproveResult, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	var result model.BulkApproveResult
	err := s.mutate(ctx, func(docs []model.Document, now time.Time) ([]model.Document, bool, error) {
		next, res, err := workflow.BulkApprove(docs, ids, user, now)
		result = res
		return next, err == nil && len(res.Approved) > 0, err
	}, ids...)
	if err != nil {
		return nil, s.recordDenied(ctx, user, err, ids...)
	}

	if len(result.Approved) > 0 {
		s.publish(ctx, model.EventDocumentsBulkApproved, user, "", result.Approved...)
		for _, id := range result.Approved {
			s.notify(ctx, id, fmt.Sprintf("Document %s approved by %s", id, user.Name))
		}
	}
	logger.Info("Bulk approval finished",
		zap.Int("approved", len(result.Approved)),
		zap.Int("skipped", len(result.Skipped)),
		zap.String("userID", user.ID))
	return &result, nil
}

func (s *DocumentService) BulkDelete(ctx context.Context, ids []string, user *model.User, confirmer workflow.Confirmer) (*model.BulkDeleteResult, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	var result model.BulkDeleteResult
	err := s.mutate(ctx, func(docs []model.Document, _ time.Time) ([]model.Document, bool, error) {
		next, res, err := workflow.BulkDelete(ctx, docs, ids, user, confirmer)
		result = res
		return next, err == nil && !res.Cancelled, err
	}, ids...)
	if err != nil {
		return nil, s.recordDenied(ctx, user, err, ids...)
	}
	if result.Cancelled {
		logger.Info("Bulk delete cancelled", zap.Strings("docIDs", ids), zap.String("userID", user.ID))
		return &result, nil
	}

	s.publish(ctx, model.EventDocumentsBulkDeleted, user, "", result.Deleted...)
	logger.Info("Bulk delete finished", zap.Int("deleted", len(result.Deleted)), zap.String("userID", user.ID))
	return &result, nil
}

func (s *DocumentService) BulkPublish(ctx context.Context, ids []string, user *model.User) (*model.BulkPublishResult, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	var result model.BulkPublishResult
	err := s.mutate(ctx, func(docs []model.Document, now time.Time) ([]model.Document, bool, error) {
		next, res, err := workflow.BulkPublish(docs, ids, user, now)
		result = res
		return next, err == nil && res.PublishedCount() > 0, err
	}, ids...)
	if err != nil {
		return nil, s.recordDenied(ctx, user, err, ids...)
	}

	if result.PublishedCount() > 0 {
		s.publish(ctx, model.EventDocumentsPublished, user, "", result.Published...)
	}
	logger.Info("Bulk publish finished",
		zap.Int("published", result.PublishedCount()),
		zap.Int("skipped", result.SkippedCount()),
		zap.String("userID", user.ID))
	return &result, nil
}

func changeDetails(de model.DocumentEvent) json.RawMessage {
	details := map[string]interface{}{
		"event": de.Type,
	}
	if de.Detail != "" {
		details["detail"] = de.Detail
	}
	if len(de.DocumentIDs) > 1 {
		details["batchSize"] = len(de.DocumentIDs)
	}
	data, _ := json.Marshal(details)
	return data
}
