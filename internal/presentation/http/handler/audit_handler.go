package handler

import (
	"github.com/artclub/backoffice-api/internal/application/service"
	"github.com/artclub/backoffice-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AuditHandler handles audit log HTTP requests
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// Verify recomputes the hash chain over the full audit log and reports the
// first broken link, if any.
func (h *AuditHandler) Verify(c *gin.Context) {
	report, err := h.auditService.VerifyChain(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Audit chain verified", report)
}
