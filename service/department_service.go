// service/department_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/docflow/dao"
	docflow_errors "github.com/dev-mohitbeniwal/docflow/errors"
	logger "github.com/dev-mohitbeniwal/docflow/logging"
	"github.com/dev-mohitbeniwal/docflow/model"
	"github.com/dev-mohitbeniwal/docflow/model/neo4j/style"
	"github.com/dev-mohitbeniwal/docflow/search"
	"github.com/dev-mohitbeniwal/docflow/util"
)

// IDepartmentService defines the interface for department operations
type IDepartmentService interface {
	ListDepartments(ctx context.Context) ([]model.Department, error)
	LookupDepartment(ctx context.Context, path string) (*model.Department, error)
	CreateDepartment(ctx context.Context, req model.CreateDepartmentRequest, user *model.User) (*model.Department, error)
}

// DepartmentService handles business logic for department operations
type DepartmentService struct {
	deptRepo        dao.DepartmentRepository
	docRepo         dao.DocumentRepository
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus

	mu  sync.Mutex
	now func() time.Time
}

var _ IDepartmentService = &DepartmentService{}

// NewDepartmentService creates a new instance of DepartmentService
func NewDepartmentService(repos dao.Repositories, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *DepartmentService {
	service := &DepartmentService{
		deptRepo:        repos.Departments,
		docRepo:         repos.Documents,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		now:             func() time.Time { return time.Now().UTC() },
	}

	// Set up event subscriptions
	eventBus.Subscribe(model.EventDepartmentCreated, service.handleDepartmentCreated)

	return service
}

func (s *DepartmentService) handleDepartmentCreated(ctx context.Context, event util.Event) error {
	dept, ok := event.Payload.(model.Department)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	logger.Info("Department created event received", zap.String("deptID", dept.ID))

	if err := s.notificationSvc.NotifyDepartmentChange(ctx, "created", dept); err != nil {
		logger.Warn("Failed to send department creation notification", zap.Error(err), zap.String("deptID", dept.ID))
	}
	return nil
}

func (s *DepartmentService) loadTree(ctx context.Context) ([]model.Department, error) {
	if tree, found, err := s.cacheService.GetDepartmentTree(ctx); err != nil {
		logger.Warn("Failed to read department cache", zap.Error(err))
	} else if found {
		return tree, nil
	}

	// mu orders the fill against CreateDepartment's replace and invalidation.
	s.mu.Lock()
	defer s.mu.Unlock()
	tree, err := s.deptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}
	if err := s.cacheService.SetDepartmentTree(ctx, tree); err != nil {
		logger.Warn("Failed to cache department tree", zap.Error(err))
	}
	return tree, nil
}

// ListDepartments returns the tree with documentCount computed from the
// current collection. Counts include subdepartments and skip deleted documents.
func (s *DepartmentService) ListDepartments(ctx context.Context) ([]model.Department, error) {
	start := time.Now()
	tree, err := s.loadTree(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.docRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	perPath := make(map[string]int)
	for _, doc := range docs {
		if !doc.IsDeleted {
			perPath[doc.Department]++
		}
	}
	applyCounts(tree, perPath)

	logger.Debug("Departments listed", zap.Int("roots", len(tree)), zap.Duration("duration", time.Since(start)))
	return tree, nil
}

func departmentPath(d model.Department) string {
	if d.Path != "" {
		return d.Path
	}
	return d.Name
}

func applyCounts(departments []model.Department, perPath map[string]int) {
	for i := range departments {
		d := &departments[i]
		path := departmentPath(*d)
		d.DocumentCount = 0
		for docPath, n := range perPath {
			if docPath == path || strings.HasPrefix(docPath, path+"/") {
				d.DocumentCount += n
			}
		}
		applyCounts(d.Children, perPath)
	}
}

// LookupDepartment resolves a subject path, synthesizing a virtual
// department when none is recorded.
func (s *DepartmentService) LookupDepartment(ctx context.Context, path string) (*model.Department, error) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return nil, docflow_errors.Validation("department path is required")
	}
	tree, err := s.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	dept := search.ResolveDepartment(tree, path)
	return &dept, nil
}

func findByID(departments []model.Department, id string) (*model.Department, bool) {
	for i := range departments {
		if departments[i].ID == id {
			return &departments[i], true
		}
		if found, ok := findByID(departments[i].Children, id); ok {
			return found, true
		}
	}
	return nil, false
}

func countDepartments(departments []model.Department) int {
	n := len(departments)
	for _, d := range departments {
		n += countDepartments(d.Children)
	}
	return n
}

// CreateDepartment adds a department at the root or under ParentID.
func (s *DepartmentService) CreateDepartment(ctx context.Context, req model.CreateDepartmentRequest, user *model.User) (*model.Department, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	if !user.Role.CanReview() {
		return nil, docflow_errors.Denied("create department", "", "only managers and admins can create departments")
	}
	if err := s.validationUtil.ValidateCreateDepartment(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tree, err := s.deptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}

	name := strings.TrimSpace(req.Name)
	path := name
	siblings := &tree
	if req.ParentID != "" {
		parent, ok := findByID(tree, req.ParentID)
		if !ok {
			return nil, fmt.Errorf("%w: parent %s", docflow_errors.ErrDepartmentNotFound, req.ParentID)
		}
		path = departmentPath(*parent) + "/" + name
		siblings = &parent.Children
	}
	if _, exists := search.FindDepartmentByPath(tree, path); exists {
		return nil, fmt.Errorf("%w: %s already exists", docflow_errors.ErrDepartmentConflict, path)
	}
	id := search.DepartmentID(path)
	if existing, exists := findByID(tree, id); exists {
		return nil, fmt.Errorf("%w: id %s is taken by %s", docflow_errors.ErrDepartmentConflict, id, departmentPath(*existing))
	}

	color := req.Color
	if color == "" {
		color = style.PaletteColor(countDepartments(tree))
	}
	dept := model.Department{
		ID:        id,
		Name:      name,
		Color:     color,
		Path:      path,
		ParentID:  req.ParentID,
		CreatedAt: s.now(),
	}
	*siblings = append(*siblings, dept)

	if err := s.deptRepo.Replace(ctx, tree); err != nil {
		logger.Error("Error creating department", zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("failed to store departments: %w", err)
	}
	if err := s.cacheService.DeleteDepartmentTree(ctx); err != nil {
		logger.Warn("Failed to invalidate department cache", zap.Error(err))
	}

	s.eventBus.Publish(ctx, model.EventDepartmentCreated, dept)
	logger.Info("Department created successfully", zap.String("deptID", dept.ID), zap.String("userID", user.ID))
	return &dept, nil
}
