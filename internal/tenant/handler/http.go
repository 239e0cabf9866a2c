package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tenant-core/internal/tenant"
)

const (
	SelectionTokenHeader = "X-Selection-Token"
	SelectionTokenCookie = "selection_token"
)

// HTTPHandler serves the tenant operations to the web shell.
type HTTPHandler struct {
	svc          *tenant.Service
	secureCookie bool
}

// NewHTTPHandler returns a gin handler set. secureCookie marks the selection cookie Secure.
func NewHTTPHandler(svc *tenant.Service, secureCookie bool) *HTTPHandler {
	return &HTTPHandler{svc: svc, secureCookie: secureCookie}
}

// Register mounts the routes on r; r is expected to be behind the authentication middleware.
func (h *HTTPHandler) Register(r gin.IRouter) {
	r.GET("/context", h.getContext)
	r.POST("/context/select", h.selectOrganization)
	r.POST("/access/check", h.checkAccess)
	r.GET("/organizations", h.listOrganizations)
	r.GET("/organizations/:id", h.getOrganization)
	r.GET("/organizations/:id/audit-logs", h.listAuditLogs)
}

func (h *HTTPHandler) getContext(c *gin.Context) {
	v, err := h.svc.GetContext(c.Request.Context(), selectionTokenFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

type selectRequest struct {
	OrganizationID string `json:"organization_id" binding:"required"`
}

func (h *HTTPHandler) selectOrganization(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_id is required"})
		return
	}
	v, err := h.svc.SelectOrganization(c.Request.Context(), selectionTokenFrom(c), req.OrganizationID)
	if err != nil {
		writeError(c, err)
		return
	}
	if v.SelectionToken != "" {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SelectionTokenCookie, v.SelectionToken, 0, "/", "", h.secureCookie, true)
	}
	c.JSON(http.StatusOK, v)
}

type checkAccessRequest struct {
	RequiredRole           string `json:"required_role"`
	RequiredGlobalRole     string `json:"required_global_role"`
	RequiredOrganizationID string `json:"required_organization_id"`
	Action                 string `json:"action"`
}

func (h *HTTPHandler) checkAccess(c *gin.Context) {
	var req checkAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	v, err := h.svc.CheckAccess(c.Request.Context(), selectionTokenFrom(c), tenant.AccessQuery{
		RequiredRole:           req.RequiredRole,
		RequiredGlobalRole:     req.RequiredGlobalRole,
		RequiredOrganizationID: req.RequiredOrganizationID,
		Action:                 req.Action,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *HTTPHandler) listOrganizations(c *gin.Context) {
	orgs, err := h.svc.ListOrganizations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

func (h *HTTPHandler) getOrganization(c *gin.Context) {
	org, err := h.svc.GetOrganization(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organization": org})
}

func (h *HTTPHandler) listAuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	logs, err := h.svc.ListAuditLogs(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audit_logs": logs})
}

func selectionTokenFrom(c *gin.Context) string {
	if t := strings.TrimSpace(c.GetHeader(SelectionTokenHeader)); t != "" {
		return t
	}
	if t, err := c.Cookie(SelectionTokenCookie); err == nil {
		return t
	}
	return ""
}

// writeError maps a status error to an HTTP response. Denials carry the user-visible reason.
func writeError(c *gin.Context, err error) {
	st := status.Convert(err)
	switch st.Code() {
	case codes.PermissionDenied:
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "reason": st.Message()})
	case codes.Unauthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{"error": st.Message()})
	case codes.InvalidArgument:
		c.JSON(http.StatusBadRequest, gin.H{"error": st.Message()})
	case codes.NotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": st.Message()})
	case codes.Unimplemented:
		c.JSON(http.StatusNotImplemented, gin.H{"error": st.Message()})
	case codes.Unavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": st.Message()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
