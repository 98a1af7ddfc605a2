package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/smmpanel/panel/internal/infrastructure/auth"
	"github.com/smmpanel/panel/internal/infrastructure/config"
	"github.com/smmpanel/panel/internal/infrastructure/database"
	"github.com/smmpanel/panel/internal/infrastructure/permission"
	"github.com/smmpanel/panel/internal/infrastructure/ratelimit"
	"github.com/smmpanel/panel/internal/interfaces/http/middleware"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers of the admin API and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	enforcer *permission.Enforcer
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initUseCases()
	if err := c.initHandlers(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initInfrastructure() error {
	jwtSvc := auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer)
	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, c.log)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)

	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, admin rate limiting is off")
		return nil
	}

	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.redis.Ping(ctx).Err(); err != nil {
		// The limiter fails open, so an unreachable redis only disables limiting.
		c.log.Warnw("redis ping failed, rate limiter will allow requests while it is down",
			"addr", c.cfg.Redis.GetAddr(), "error", err)
	}

	limiter := ratelimit.NewRedisRateLimiter(c.redis, c.cfg.RateLimit.RequestsPerMinute, time.Minute)
	c.rateLimiter = middleware.NewRateLimiter(limiter, "ratelimit:admin", c.log)
	return nil
}

func (c *Container) initRepositories() {
	c.repos = newRepositories(c.db, c.log)
}

func (c *Container) initUseCases() {
	tx := database.NewTransactionManager(c.db, &c.cfg.Database)
	c.ucs = newUseCases(c.repos, tx, c.log)
}

func (c *Container) initHandlers() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	c.hdlrs = newHandlers(c.ucs, sqlDB, c.log)
	return nil
}

// GetEngine returns the Gin engine.
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Enforcer returns the casbin enforcer guarding the admin routes.
func (c *Container) Enforcer() *permission.Enforcer {
	return c.enforcer
}

// Shutdown releases connections owned by the container. The database is closed by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
