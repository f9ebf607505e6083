// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/docflow/controller"
	"github.com/dev-mohitbeniwal/docflow/db"
	"github.com/dev-mohitbeniwal/docflow/middleware"
	"github.com/dev-mohitbeniwal/docflow/model"
	"github.com/dev-mohitbeniwal/docflow/util"
)

type Options struct {
	Tokens            *util.TokenUtil
	Users             middleware.UserLookup
	Cache             *db.RedisCache
	RateLimitRequests int
	RateLimitWindow   time.Duration
	DevLogin          bool
}

func SetupRouter(controllers *controller.Controllers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(opts.Cache, opts.RateLimitRequests, opts.RateLimitWindow))

	api := router.Group("/api/v1")

	if opts.DevLogin {
		controllers.Auth.RegisterRoutes(api)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(opts.Tokens, opts.Users))

	controllers.Document.RegisterRoutes(protected)
	controllers.Dept.RegisterRoutes(protected)
	controllers.User.RegisterRoutes(protected)

	admin := protected.Group("")
	admin.Use(middleware.RequireRoles(model.RoleAdmin))
	controllers.Audit.RegisterRoutes(admin)

	return router
}
