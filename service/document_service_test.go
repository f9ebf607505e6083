package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/docflow/audit"
	"github.com/dev-mohitbeniwal/docflow/dao"
	"github.com/dev-mohitbeniwal/docflow/db"
	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	"github.com/dev-mohitbeniwal/docflow/model"
	pdp_model "github.com/dev-mohitbeniwal/docflow/pdp/model"
	docflow_mock "github.com/dev-mohitbeniwal/docflow/test/mock"
	"github.com/dev-mohitbeniwal/docflow/util"
	"github.com/dev-mohitbeniwal/docflow/workflow"
)

var (
	fixedNow = time.Date(2024, 7, 7, 12, 0, 0, 0, time.UTC)

	adminUser    = &model.User{ID: "admin-1", Name: "Sarah Chen", Role: model.RoleAdmin}
	managerUser  = &model.User{ID: "mgr-1", Name: "James Wilson", Role: model.RoleManager}
	manager2User = &model.User{ID: "mgr-2", Name: "Priya Patel", Role: model.RoleManager}
	employeeUser = &model.User{ID: "emp-1", Name: "Tom Baker", Role: model.RoleEmployee}
)

const testEncryptionKey = "0123456789abcdef0123456789abcdef"

type testEnv struct {
	repos    dao.Repositories
	audit    *docflow_mock.MockAuditService
	bus      *util.EventBus
	cache    *util.CacheService
	redis    *miniredis.Miniredis
	docs     *DocumentService
	depts    *DepartmentService
	users    *UserService
	auditMu  sync.Mutex
	auditLog []audit.AuditLog
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	redisCache, err := db.NewRedisCacheWithClient(client, []byte(testEncryptionKey), time.Minute)
	require.NoError(t, err)
	t.Cleanup(redisCache.Close)

	env := &testEnv{
		repos: dao.NewMemoryRepositories(true),
		audit: new(docflow_mock.MockAuditService),
		bus:   util.NewEventBus(),
		cache: util.NewCacheService(redisCache),
		redis: s,
	}
	env.audit.On("LogAccess", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			env.auditMu.Lock()
			env.auditLog = append(env.auditLog, args.Get(1).(audit.AuditLog))
			env.auditMu.Unlock()
		}).
		Return(nil)

	validationUtil := util.NewValidationUtil()
	notificationSvc := util.NewNotificationService(redisCache)

	env.docs = NewDocumentService(env.repos, validationUtil, env.cache, notificationSvc, env.bus, env.audit).
		WithClock(func() time.Time { return fixedNow })
	ids := 0
	env.docs.newID = func() string {
		ids++
		return fmt.Sprintf("new-%d", ids)
	}
	env.depts = NewDepartmentService(env.repos, validationUtil, env.cache, notificationSvc, env.bus)
	env.users = NewUserService(env.repos, validationUtil, env.cache)
	return env
}

// audited waits for event handlers and returns the audit records written so far.
func (e *testEnv) audited() []audit.AuditLog {
	e.bus.Wait()
	e.auditMu.Lock()
	defer e.auditMu.Unlock()
	return append([]audit.AuditLog(nil), e.auditLog...)
}

func (e *testEnv) stored(t *testing.T, id string) model.Document {
	t.Helper()
	doc, err := e.repos.Documents.GetByID(context.Background(), id)
	require.NoError(t, err)
	return doc
}

func TestApproveDocument(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc, err := env.docs.ApproveDocument(ctx, "doc-1", managerUser)
	require.NoError(t, err)

	assert.Equal(t, model.StatusApproved, doc.ApprovalStatus)
	assert.Equal(t, managerUser.Name, doc.ApprovedBy)
	require.NotNil(t, doc.ApprovedAt)
	assert.Equal(t, fixedNow, *doc.ApprovedAt)
	assert.Equal(t, model.StatusApproved, env.stored(t, "doc-1").ApprovalStatus)

	logs := env.audited()
	require.Len(t, logs, 1)
	assert.Equal(t, model.EventDocumentApproved, logs[0].Action)
	assert.Equal(t, "doc-1", logs[0].ResourceID)
	assert.Equal(t, managerUser.ID, logs[0].UserID)
	assert.True(t, logs[0].AccessGranted)
}

func TestApproveDocument_DeniedIsAudited(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.docs.ApproveDocument(ctx, "doc-1", manager2User)
	require.Error(t, err)

	var permErr *docflow_errors.PermissionError
	require.True(t, errors.As(err, &permErr))
	assert.Equal(t, "mgr-1", permErr.BlockingUserID)
	assert.Equal(t, model.StatusPending, env.stored(t, "doc-1").ApprovalStatus)

	logs := env.audited()
	require.Len(t, logs, 1)
	assert.False(t, logs[0].AccessGranted)
	assert.Equal(t, "approve", logs[0].Action)
	assert.Equal(t, "doc-1", logs[0].ResourceID)
	assert.Contains(t, logs[0].Reason, "assigned to another user")
}

func TestApproveDocument_UnknownID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.docs.ApproveDocument(context.Background(), "missing", managerUser)
	assert.ErrorIs(t, err, docflow_errors.ErrDocumentNotFound)
	assert.Empty(t, env.audited())
}

func TestRejectDocument_StoresFeedback(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc, err := env.docs.RejectDocument(ctx, "doc-1", "numbers do not add up", managerUser)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, doc.ApprovalStatus)

	feedback, err := env.docs.ListFeedback(ctx, "doc-1", employeeUser)
	require.NoError(t, err)
	require.Len(t, feedback, 1)
	assert.Equal(t, "numbers do not add up", feedback[0].Message)
	assert.Equal(t, "new-1", feedback[0].ID)
	assert.Equal(t, managerUser.ID, feedback[0].UserID)
}

func TestRejectDocument_RequiresReason(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.docs.RejectDocument(ctx, "doc-1", "   ", managerUser)
	assert.ErrorIs(t, err, docflow_errors.ErrValidation)
	assert.Equal(t, model.StatusPending, env.stored(t, "doc-1").ApprovalStatus)

	feedback, err := env.docs.ListFeedback(ctx, "doc-1", managerUser)
	require.NoError(t, err)
	assert.Empty(t, feedback)
}

func TestUploadDocument(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc, err := env.docs.UploadDocument(ctx, model.UploadRequest{
		Title:      "  Onboarding Checklist ",
		Department: "Human Resources",
		Type:       "Guide",
		FileType:   "pdf",
		AssignedTo: "mgr-2",
	}, employeeUser)
	require.NoError(t, err)

	assert.Equal(t, "new-1", doc.ID)
	assert.Equal(t, "Onboarding Checklist", doc.Title)
	assert.Equal(t, employeeUser.Name, doc.UploadedBy)
	assert.Equal(t, model.StatusPending, doc.ApprovalStatus)
	assert.Equal(t, fixedNow, doc.UploadedAt)

	all, err := env.repos.Documents.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-1", all[0].ID)
}

func TestUploadDocument_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.docs.UploadDocument(ctx, model.UploadRequest{Title: "x"}, employeeUser)
	assert.ErrorIs(t, err, docflow_errors.ErrValidation)

	_, err = env.docs.UploadDocument(ctx, model.UploadRequest{
		Title: "Doc", Department: "Legal", Type: "Contract", FileType: "pdf", AssignedTo: "emp-1",
	}, employeeUser)
	assert.ErrorIs(t, err, docflow_errors.ErrValidation)

	_, err = env.docs.UploadDocument(ctx, model.UploadRequest{}, nil)
	assert.ErrorIs(t, err, docflow_errors.ErrUnauthorized)
}

func TestDeleteDocument_DeclinedLeavesDocument(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	deleted, err := env.docs.DeleteDocument(ctx, "doc-1", managerUser, workflow.Preconfirmed(false))
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.False(t, env.stored(t, "doc-1").IsDeleted)
	assert.Empty(t, env.audited())
}

func TestDeleteAndRestoreDocument(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	deleted, err := env.docs.DeleteDocument(ctx, "doc-1", managerUser, workflow.Preconfirmed(true))
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, env.stored(t, "doc-1").IsDeleted)

	_, err = env.docs.RestoreDocument(ctx, "doc-1", managerUser)
	assert.ErrorIs(t, err, docflow_errors.ErrPermissionDenied)

	restored, err := env.docs.RestoreDocument(ctx, "doc-1", adminUser)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
}

func TestAcknowledgeDocument_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.docs.AcknowledgeDocument(ctx, "doc-1", employeeUser)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAcknowledged, first.ApprovalStatus)

	second, err := env.docs.AcknowledgeDocument(ctx, "doc-1", employeeUser)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	logs := env.audited()
	require.Len(t, logs, 1)
	assert.Equal(t, model.EventDocumentAcknowledged, logs[0].Action)
}

func TestReassignDocument(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.docs.ReassignDocument(ctx, "doc-1", "emp-1", adminUser)
	assert.ErrorIs(t, err, docflow_errors.ErrValidation)

	_, err = env.docs.ReassignDocument(ctx, "doc-1", "nobody", adminUser)
	assert.ErrorIs(t, err, docflow_errors.ErrValidation)

	_, err = env.docs.ReassignDocument(ctx, "doc-1", "mgr-2", managerUser)
	assert.ErrorIs(t, err, docflow_errors.ErrPermissionDenied)

	doc, err := env.docs.ReassignDocument(ctx, "doc-1", "mgr-2", adminUser)
	require.NoError(t, err)
	assert.Equal(t, "mgr-2", doc.AssignedTo)
}

func TestRevisionAndResubmit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc, err := env.docs.RequestRevision(ctx, "doc-1", "add the Q2 comparison", managerUser)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRevision, doc.ApprovalStatus)

	doc, err = env.docs.ResubmitDocument(ctx, "doc-1", employeeUser)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, doc.ApprovalStatus)
	assert.Nil(t, doc.ApprovedAt)

	feedback, err := env.docs.ListFeedback(ctx, "doc-1", employeeUser)
	require.NoError(t, err)
	require.Len(t, feedback, 1)
	assert.Equal(t, model.StatusRevision, feedback[0].Status)
}

func TestBulkApprove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// doc-5 is already approved and gets skipped
	res, err := env.docs.BulkApprove(ctx, []string{"doc-1", "doc-5"}, managerUser)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1"}, res.Approved)
	assert.Equal(t, []string{"doc-5"}, res.Skipped)
	assert.Equal(t, model.StatusApproved, env.stored(t, "doc-1").ApprovalStatus)

	_, err = env.docs.BulkApprove(ctx, nil, managerUser)
	assert.ErrorIs(t, err, docflow_errors.ErrNoDocumentsSelected)
}

func TestBulkApprove_AllOrNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// doc-2 belongs to mgr-2
	_, err := env.docs.BulkApprove(ctx, []string{"doc-1", "doc-2"}, managerUser)
	assert.ErrorIs(t, err, docflow_errors.ErrPermissionDenied)
	assert.Equal(t, model.StatusPending, env.stored(t, "doc-1").ApprovalStatus)
	assert.Equal(t, model.StatusPending, env.stored(t, "doc-2").ApprovalStatus)
}

func TestBulkDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.docs.BulkDelete(ctx, []string{"doc-1"}, managerUser, workflow.Preconfirmed(false))
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
	env.stored(t, "doc-1")

	res, err = env.docs.BulkDelete(ctx, []string{"doc-1"}, managerUser, workflow.Preconfirmed(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1"}, res.Deleted)

	_, err = env.repos.Documents.GetByID(ctx, "doc-1")
	assert.ErrorIs(t, err, docflow_errors.ErrDocumentNotFound)
}

func TestBulkPublish(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.docs.BulkPublish(ctx, []string{"doc-5"}, employeeUser)
	assert.ErrorIs(t, err, docflow_errors.ErrPermissionDenied)

	res, err := env.docs.BulkPublish(ctx, []string{"doc-1", "doc-5"}, managerUser)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-5"}, res.Published)
	assert.Equal(t, []string{"doc-1"}, res.Skipped)
	require.NotNil(t, env.stored(t, "doc-5").PublishedAt)
}

func TestListDocuments_CacheInvalidatedOnMutation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	query := model.DefaultQuery()
	query.Filters.Status = string(model.StatusPending)

	before, err := env.docs.ListDocuments(ctx, query, managerUser)
	require.NoError(t, err)
	require.True(t, env.redis.Exists("documents:all"), "list should populate the cache")

	_, err = env.docs.ApproveDocument(ctx, "doc-1", managerUser)
	require.NoError(t, err)

	after, err := env.docs.ListDocuments(ctx, query, managerUser)
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)
	for _, d := range after {
		assert.NotEqual(t, "doc-1", d.ID)
	}
}

func TestListDocuments_InvalidQuery(t *testing.T) {
	env := newTestEnv(t)

	query := model.DefaultQuery()
	query.Filters.Status = "archived"
	_, err := env.docs.ListDocuments(context.Background(), query, managerUser)
	assert.ErrorIs(t, err, docflow_errors.ErrInvalidSearch)
}

func TestGroupDocuments_SynthesizesUnknownDepartment(t *testing.T) {
	env := newTestEnv(t)

	groups, err := env.docs.GroupDocuments(context.Background(), model.DefaultQuery(), managerUser)
	require.NoError(t, err)

	var found bool
	for _, g := range groups {
		if g.Department.Path == "Operations/IT" {
			found = true
			assert.Equal(t, "operations-it", g.Department.ID)
			assert.Equal(t, "IT", g.Department.Name)
		}
	}
	assert.True(t, found)
}

func TestGetPermissions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	perms, err := env.docs.GetPermissions(ctx, "doc-1", managerUser)
	require.NoError(t, err)
	assert.True(t, perms.CanApprove)
	assert.True(t, perms.CanEdit)
	assert.False(t, perms.CanRestore)

	perms, err = env.docs.GetPermissions(ctx, "doc-1", employeeUser)
	require.NoError(t, err)
	assert.Equal(t, model.Permissions{}, *perms)
}

func TestExplainPermissions(t *testing.T) {
	env := newTestEnv(t)

	decisions, err := env.docs.ExplainPermissions(context.Background(), "doc-2", managerUser)
	require.NoError(t, err)
	require.Len(t, decisions, len(pdp_model.DocumentActions))

	byAction := map[pdp_model.Action]pdp_model.AccessDecision{}
	for _, d := range decisions {
		byAction[d.Action] = d
	}
	approve := byAction[pdp_model.ActionApprove]
	assert.False(t, approve.Allowed())
	assert.Equal(t, "mgr-2", approve.BlockingUserID)
	assert.Equal(t, "doc-2", approve.DocumentID)

	_, err = env.docs.ExplainPermissions(context.Background(), "missing", managerUser)
	assert.ErrorIs(t, err, docflow_errors.ErrDocumentNotFound)
}

// gatedDocumentRepo takes its first List snapshot, then waits for release
// before returning it.
type gatedDocumentRepo struct {
	dao.DocumentRepository
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedDocumentRepo) List(ctx context.Context) ([]model.Document, error) {
	docs, err := g.DocumentRepository.List(ctx)
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	return docs, err
}

func TestListDocuments_CacheFillDoesNotOutliveMutation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gate := &gatedDocumentRepo{
		DocumentRepository: env.docs.docRepo,
		entered:            make(chan struct{}),
		release:            make(chan struct{}),
	}
	env.docs.docRepo = gate

	listed := make(chan error, 1)
	go func() {
		_, err := env.docs.ListDocuments(ctx, model.DefaultQuery(), managerUser)
		listed <- err
	}()
	<-gate.entered

	approved := make(chan error, 1)
	go func() {
		_, err := env.docs.ApproveDocument(ctx, "doc-1", managerUser)
		approved <- err
	}()
	close(gate.release)
	require.NoError(t, <-listed)
	require.NoError(t, <-approved)

	docs, err := env.docs.ListDocuments(ctx, model.DefaultQuery(), managerUser)
	require.NoError(t, err)
	var found bool
	for _, d := range docs {
		if d.ID == "doc-1" {
			found = true
			assert.Equal(t, model.StatusApproved, d.ApprovalStatus)
		}
	}
	require.True(t, found)

	doc, err := env.docs.GetDocument(ctx, "doc-1", managerUser)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, doc.ApprovalStatus)
}

func TestConcurrentUploadsAreSerialized(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var idMu sync.Mutex
	n := 0
	env.docs.newID = func() string {
		idMu.Lock()
		defer idMu.Unlock()
		n++
		return fmt.Sprintf("concurrent-%d", n)
	}

	const uploads = 20
	var wg sync.WaitGroup
	for i := 0; i < uploads; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.docs.UploadDocument(ctx, model.UploadRequest{
				Title: fmt.Sprintf("Doc %d", i), Department: "Legal", Type: "Memo", FileType: "txt",
			}, employeeUser)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := env.repos.Documents.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(dao.SeedDocuments())+uploads)
	assert.False(t, env.redis.Exists("lock:documents"))
}
