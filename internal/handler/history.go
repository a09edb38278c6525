package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cipherlab-go/internal/cipher"
	"github.com/cipherlab-go/internal/dao"
	apperrors "github.com/cipherlab-go/internal/errors"
)

// HistoryHandler serves saved exercise runs and the OTP key-reuse log.
type HistoryHandler struct {
	historyDAO *dao.HistoryDAO
	padKeyDAO  *dao.PadKeyDAO
}

// NewHistoryHandler creates a history handler
func NewHistoryHandler(historyDAO *dao.HistoryDAO, padKeyDAO *dao.PadKeyDAO) *HistoryHandler {
	return &HistoryHandler{historyDAO: historyDAO, padKeyDAO: padKeyDAO}
}

// List handles GET /api/history
func (h *HistoryHandler) List(c *gin.Context) {
	username := c.GetString("username")
	entries, err := h.historyDAO.List(username)
	if err != nil {
		RespondError(c, apperrors.NewInternalWithCause("failed to list history", err))
		return
	}
	RespondSuccess(c, entries)
}

// CheckPadReuse handles POST /api/otp/check-reuse. It records the pad
// key's fingerprint and reports whether it was seen before. Advisory
// only: a reused pad still encrypts, it just stops being a one-time
// pad.
func (h *HistoryHandler) CheckPadReuse(c *gin.Context) {
	var req struct {
		Pad string `json:"pad"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.NewInvalidInput("invalid request body"))
		return
	}
	if req.Pad == "" {
		RespondError(c, apperrors.NewInvalidInput("pad is required"))
		return
	}

	fp := cipher.Fingerprint(req.Pad)
	rec, err := h.padKeyDAO.Record(fp, c.GetString("username"))
	if err != nil {
		RespondError(c, apperrors.NewInternalWithCause("failed to record pad key", err))
		return
	}

	resp := gin.H{
		"fingerprint": fp,
		"uses":        rec.Uses,
		"reused":      rec.Uses > 1,
	}
	if rec.Uses > 1 {
		resp["warning"] = "this pad key has been used before; one-time pads lose perfect secrecy on reuse"
	}
	RespondSuccess(c, resp)
}
