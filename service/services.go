// service/services.go
package service

import (
	"github.com/dev-mohitbeniwal/docflow/audit"
	"github.com/dev-mohitbeniwal/docflow/dao"
	"github.com/dev-mohitbeniwal/docflow/util"
)

type Services struct {
	Document IDocumentService
	Dept     IDepartmentService
	User     IUserService
	Audit    audit.Service
}

func InitializeServices(
	repos dao.Repositories,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	services := &Services{
		Document: NewDocumentService(repos, validationUtil, cacheService, notificationSvc, eventBus, auditService),
		Dept:     NewDepartmentService(repos, validationUtil, cacheService, notificationSvc, eventBus),
		User:     NewUserService(repos, validationUtil, cacheService),
		Audit:    auditService,
	}

	return services, nil
}
