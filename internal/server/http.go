package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tenant-core/internal/health"
	"tenant-core/internal/security"
	"tenant-core/internal/server/interceptors"
	"tenant-core/internal/telemetry"
	teldomain "tenant-core/internal/telemetry/domain"
	tenanthandler "tenant-core/internal/tenant/handler"
)

// AccessTokenCookie is read when the Authorization header is absent.
const AccessTokenCookie = "access_token"

// HTTPOptions configures the web-shell router.
type HTTPOptions struct {
	// Readiness backs GET /healthz. If nil, /healthz always reports ok.
	Readiness *health.Checker
	// SecureCookies marks cookies Secure (production).
	SecureCookies bool
	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is honoured for the client IP.
	// Empty trusts none and uses the connection's remote address.
	TrustedProxies []string
}

// NewHTTPRouter returns the gin engine serving /healthz and the /api/v1 tenant routes.
func NewHTTPRouter(deps Deps, opts HTTPOptions) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		log.Printf("http: invalid trusted proxies %v, trusting none: %v", opts.TrustedProxies, err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.GET("/healthz", healthz(opts.Readiness))

	api := r.Group("/api/v1")
	api.Use(RequireBearer(deps.Verifier), RequestTelemetry(deps.Telemetry))
	tenanthandler.NewHTTPHandler(deps.Tenant, opts.SecureCookies).Register(api)
	return r
}

func healthz(c *health.Checker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if c == nil {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		if ready, err := c.Status(); !ready {
			msg := "starting"
			if err != nil {
				msg = err.Error()
			}
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": msg})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// RequireBearer validates the access token from the Authorization header (or the access_token
// cookie) and puts the identity, route and client IP on the request context.
func RequireBearer(verifier *security.AccessVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := interceptors.BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				token = cookie
			}
		}
		if token == "" || verifier == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization"})
			return
		}
		id, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization"})
			return
		}
		ctx := interceptors.WithIdentity(c.Request.Context(), id.UserID, id.SessionID)
		ctx = interceptors.WithOperation(ctx, c.Request.Method+" "+c.FullPath())
		ctx = interceptors.WithClientIP(ctx, c.ClientIP())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

type httpRequestMetadata struct {
	Method     string `json:"method"`
	Route      string `json:"route"`
	StatusCode int    `json:"status_code"`
	DurationMs int64  `json:"duration_ms"`
	ClientIP   string `json:"client_ip"`
}

// RequestTelemetry emits an http_request event per request. A nil emitter disables it.
func RequestTelemetry(emitter telemetry.EventEmitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if emitter == nil {
			return
		}
		event := teldomain.NewEvent(teldomain.EventTypeHTTPRequest, "http_middleware", httpRequestMetadata{
			Method:     c.Request.Method,
			Route:      c.FullPath(),
			StatusCode: c.Writer.Status(),
			DurationMs: time.Since(start).Milliseconds(),
			ClientIP:   c.ClientIP(),
		})
		event.UserID, _ = interceptors.GetUserID(c.Request.Context())
		event.SessionID, _ = interceptors.GetSessionID(c.Request.Context())
		telemetry.EmitAsync(emitter, event)
	}
}
