package handler

import (
	"net/http"

	"github.com/giatrungnguyen-lgtm/dropship333/internal/apierror"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/config"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/dto"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/infra"
	"github.com/giatrungnguyen-lgtm/dropship333/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WalletHandler struct {
	svc service.WalletService
	cfg *config.Config
}

func NewWalletHandler(svc service.WalletService, cfg *config.Config) *WalletHandler {
	return &WalletHandler{svc: svc, cfg: cfg}
}

// Get godoc
// @Summary      Wallet snapshot
// @Description  Derived view: balance folded from the transaction log, pending profit from unresolved orders.
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.WalletResponse
// @Router       /v1/wallet [get]
func (h *WalletHandler) Get(c *gin.Context) {
	resp, err := h.svc.Wallet(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute wallet"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History godoc
// @Summary      Transaction history
// @Description  The full append-only ledger, newest first.
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.TransactionListResponse
// @Router       /v1/wallet/transactions [get]
func (h *WalletHandler) History(c *gin.Context) {
	resp, err := h.svc.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list transactions"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RequestWithdrawal godoc
// @Summary      Request a withdrawal
// @Description  Creates a PENDING withdrawal. Rejected below the minimum amount or above the current balance; nothing is persisted on rejection.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.WithdrawalRequest true "Withdrawal data"
// @Success      201  {object} dto.TransactionResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/wallet/withdrawals [post]
func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	var req dto.WithdrawalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RequestWithdrawal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ResolveWithdrawal godoc
// @Summary      Approve or reject a pending withdrawal
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                       true "Transaction UUID"
// @Param        body body dto.ResolveWithdrawalRequest true "approve | reject"
// @Success      200  {object} dto.TransactionResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/wallet/withdrawals/{id} [patch]
func (h *WalletHandler) ResolveWithdrawal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.ResolveWithdrawalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.ResolveWithdrawal(c.Request.Context(), id, req.Action)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Statement godoc
// @Summary      Download the wallet statement as PDF
// @Tags         wallet
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200 {file} file
// @Router       /v1/wallet/statement [get]
func (h *WalletHandler) Statement(c *gin.Context) {
	ctx := c.Request.Context()
	txns, err := h.svc.Transactions(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load transactions"))
		return
	}
	wallet, err := h.svc.Wallet(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute wallet"))
		return
	}

	path, err := infra.GenerateStatementPDF(txns, wallet.Balance, h.cfg.StatementStoragePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to generate statement"))
		return
	}
	c.FileAttachment(path, "wallet-statement.pdf")
}
