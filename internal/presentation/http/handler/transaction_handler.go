package handler

import (
	"github.com/artclub/backoffice-api/internal/application/service"
	"github.com/artclub/backoffice-api/internal/presentation/http/dto/response"
	"github.com/artclub/backoffice-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles POS transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
	documentService    *service.DocumentService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService *service.TransactionService,
	documentService *service.DocumentService,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		documentService:    documentService,
	}
}

// List returns transactions newest first, optionally filtered by status
func (h *TransactionHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	status := c.Query("status")

	result, err := h.transactionService.ListTransactions(c.Request.Context(), params, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Get returns a single transaction with its items
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", tx)
}

// EnsureDocuments issues the fiscal documents for a paid transaction. The
// operation is idempotent: repeating it never creates duplicate documents.
func (h *TransactionHandler) EnsureDocuments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	adminID := GetAdminID(c)
	if adminID == nil {
		response.Unauthorized(c, "Admin not authenticated")
		return
	}

	result, err := h.documentService.EnsurePaidTransactionDocuments(c.Request.Context(), id, *adminID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Documents ensured", result)
}
