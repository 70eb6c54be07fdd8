package middleware

import (
	"net/http"
	"strings"

	"github.com/erp/ledgercore/internal/infrastructure/logger"
	"github.com/erp/ledgercore/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScopeConfig holds configuration for the company scope middleware
type ScopeConfig struct {
	// SkipPaths are paths served without a company, such as health checks
	SkipPaths []string
	// RequireUser rejects requests without X-User-ID
	RequireUser bool
}

// DefaultScopeConfig returns the default scope configuration
func DefaultScopeConfig() ScopeConfig {
	return ScopeConfig{
		SkipPaths:   []string{"/health", "/ready", "/api/v1/system"},
		RequireUser: true,
	}
}

// CompanyScope reads the caller's company and user from X-Company-ID and
// X-User-ID. Authentication happens upstream; this middleware only makes the
// scope available to handlers and logs.
func CompanyScope() gin.HandlerFunc {
	return CompanyScopeWithConfig(DefaultScopeConfig())
}

// CompanyScopeWithConfig returns the scope middleware with custom configuration
func CompanyScopeWithConfig(cfg ScopeConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip || strings.HasPrefix(path, skip+"/") {
				c.Next()
				return
			}
		}

		companyID, err := parseScopeHeader(c, CompanyIDHeader)
		if err != nil || companyID == uuid.Nil {
			respondMissingScope(c, "X-Company-ID header must be a company UUID")
			return
		}

		userID, err := parseScopeHeader(c, UserIDHeader)
		if err != nil || (cfg.RequireUser && userID == uuid.Nil) {
			respondMissingScope(c, "X-User-ID header must be a user UUID")
			return
		}

		c.Set(CompanyIDKey, companyID)
		if userID != uuid.Nil {
			c.Set(UserIDKey, userID)
		}

		ctx := c.Request.Context()
		ctx, log := logger.WithCompanyID(ctx, logger.FromContext(ctx), companyID.String())
		if userID != uuid.Nil {
			ctx, log = logger.WithUserID(ctx, log, userID.String())
		}
		c.Request = c.Request.WithContext(ctx)
		c.Set("logger", log)

		log.Debug("request scoped", zap.String("path", path))
		c.Next()
	}
}

func parseScopeHeader(c *gin.Context, header string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.GetHeader(header))
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}

func respondMissingScope(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeMissingScope, message, GetRequestID(c)))
}

// GetCompanyID returns the company set by CompanyScope, or uuid.Nil
func GetCompanyID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(CompanyIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetUserID returns the user set by CompanyScope, or uuid.Nil
func GetUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(UserIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
