package api

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskfleet/maestro/pkg/metrics"
)

const (
	ctxTenantID = "tenant_id"
	ctxUserID   = "user_id"
)

// Identity is the authenticated caller scope attached to each request.
type Identity struct {
	TenantID string
	UserID   string
}

// Authenticator resolves the caller identity. With a token table configured
// it requires a bearer token; without one it trusts proxy headers, which is
// the deployment mode behind oauth2-proxy / kube-rbac-proxy.
type Authenticator struct {
	tokens map[string]Identity
}

// NewAuthenticator creates an authenticator with an explicit token table.
func NewAuthenticator(tokens map[string]Identity) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// NewAuthenticatorFromEnv parses MAESTRO_API_TOKENS, formatted as
// "token=tenant:user,token2=tenant2:user2". An empty value means proxy-header
// mode.
func NewAuthenticatorFromEnv() *Authenticator {
	raw := os.Getenv("MAESTRO_API_TOKENS")
	if raw == "" {
		return &Authenticator{}
	}
	tokens := make(map[string]Identity)
	for _, entry := range strings.Split(raw, ",") {
		token, scope, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok || token == "" {
			continue
		}
		tenant, user, _ := strings.Cut(scope, ":")
		if tenant == "" {
			tenant = "default"
		}
		if user == "" {
			user = "api-client"
		}
		tokens[token] = Identity{TenantID: tenant, UserID: user}
	}
	return &Authenticator{tokens: tokens}
}

// Middleware authenticates the request and stores the identity in the gin
// context.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(a.tokens) > 0 {
			token := bearerToken(c)
			id, ok := a.tokens[token]
			if !ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"code":    "UNAUTHORIZED",
					"message": "missing or invalid bearer token",
				})
				return
			}
			c.Set(ctxTenantID, id.TenantID)
			c.Set(ctxUserID, id.UserID)
			c.Next()
			return
		}

		c.Set(ctxTenantID, headerOr(c, "X-Tenant-ID", "default"))
		c.Set(ctxUserID, proxyUser(c))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

// proxyUser extracts the caller from proxy headers.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy) > "api-client"
func proxyUser(c *gin.Context) string {
	if user := c.GetHeader("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.GetHeader("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.GetHeader("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}

func headerOr(c *gin.Context, header, fallback string) string {
	if v := c.GetHeader(header); v != "" {
		return v
	}
	return fallback
}

// identity reads the caller scope set by the auth middleware.
func identity(c *gin.Context) Identity {
	return Identity{
		TenantID: c.GetString(ctxTenantID),
		UserID:   c.GetString(ctxUserID),
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// requestLogger logs each request with latency and records request metrics.
// SSE streams are skipped: their latency is the lifetime of the run.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, statusClass(status)).Inc()

		if strings.HasSuffix(path, "/events") {
			return
		}
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration", time.Since(start))
	}
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
