// controller/controllers.go
package controller

import (
	"github.com/dev-mohitbeniwal/docflow/service"
	"github.com/dev-mohitbeniwal/docflow/util"
)

type Controllers struct {
	Document *DocumentController
	Dept     *DepartmentController
	User     *UserController
	Auth     *AuthController
	Audit    *AuditController
}

func InitializeControllers(services *service.Services, tokens *util.TokenUtil) *Controllers {
	return &Controllers{
		Document: NewDocumentController(services.Document),
		Dept:     NewDepartmentController(services.Dept),
		User:     NewUserController(services.User),
		Auth:     NewAuthController(services.User, tokens),
		Audit:    NewAuditController(services.Audit),
	}
}
