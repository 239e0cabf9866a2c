package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"tenant-core/internal/audit/domain"
	auditrepo "tenant-core/internal/audit/repository"
)

// SentinelOrgID is the org_id used for audit events that have no org (e.g. a denial with no selection).
const SentinelOrgID = "_system"

// IPExtractor returns the client IP from the request context (e.g. gRPC metadata or peer).
type IPExtractor func(context.Context) string

// AuditLogger writes a single audit event. LogEvent is best-effort: failures are logged and do
// not affect the caller.
type AuditLogger interface {
	LogEvent(ctx context.Context, orgID, userID, action, resource, metadata string)
}

// Logger implements AuditLogger using the audit repository and an optional IP extractor.
type Logger struct {
	repo        auditrepo.Repository
	ipExtractor IPExtractor
	now         func() time.Time
}

// NewLogger returns a Logger that persists to repo. ipExtractor may be nil; then IP is recorded as "unknown".
func NewLogger(repo auditrepo.Repository, ipExtractor IPExtractor) *Logger {
	return &Logger{repo: repo, ipExtractor: ipExtractor, now: time.Now}
}

// LogEvent writes one audit log entry.
func (l *Logger) LogEvent(ctx context.Context, orgID, userID, action, resource, metadata string) {
	if l == nil || l.repo == nil {
		return
	}
	ip := "unknown"
	if l.ipExtractor != nil {
		ip = l.ipExtractor(ctx)
	}
	if orgID == "" {
		orgID = SentinelOrgID
	}
	entry := &domain.AuditLog{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		UserID:    userID,
		Action:    action,
		Resource:  resource,
		IP:        ip,
		Metadata:  metadata,
		CreatedAt: l.now().UTC(),
	}
	if err := l.repo.Create(ctx, entry); err != nil {
		log.Printf("audit: failed to log event %s/%s: %v", action, resource, err)
	}
}

type denialMetadata struct {
	Reason       string `json:"reason"`
	RequiredRole string `json:"required_role,omitempty"`
}

// LogDenial records an access_denied entry for operation with the user-visible reason.
func (l *Logger) LogDenial(ctx context.Context, orgID, userID, operation, reason, requiredRole string) {
	md, _ := json.Marshal(denialMetadata{Reason: reason, RequiredRole: requiredRole})
	if operation == "" {
		operation = "unknown"
	}
	l.LogEvent(ctx, orgID, userID, domain.ActionAccessDenied, operation, string(md))
}
