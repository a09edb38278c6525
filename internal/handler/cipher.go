package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/cipherlab-go/internal/cipher"
	"github.com/cipherlab-go/internal/config"
	"github.com/cipherlab-go/internal/dao"
	apperrors "github.com/cipherlab-go/internal/errors"
	"github.com/cipherlab-go/internal/trace"
)

// CipherHandler serves the per-family encode/decode/visualize routes.
type CipherHandler struct {
	cfg        *config.Config
	historyDAO *dao.HistoryDAO
}

// NewCipherHandler creates a cipher handler
func NewCipherHandler(cfg *config.Config, historyDAO *dao.HistoryDAO) *CipherHandler {
	return &CipherHandler{cfg: cfg, historyDAO: historyDAO}
}

// CipherRequest is the shared request body for cipher operations.
type CipherRequest struct {
	Text string         `json:"text"`
	Key  cipher.KeySpec `json:"key"`
}

// CipherResponse carries the transform result plus any advisory
// warnings the key produced.
type CipherResponse struct {
	Family    string   `json:"family"`
	Operation string   `json:"operation"`
	Result    string   `json:"result"`
	Warnings  []string `json:"warnings,omitempty"`
}

func (h *CipherHandler) build(c *gin.Context) (cipher.Cipher, *CipherRequest, bool) {
	family := cipher.Family(c.Param("family"))
	if !cipher.IsRegistered(family) {
		RespondError(c, apperrors.NewNotFound("unknown cipher family: "+string(family)))
		return nil, nil, false
	}

	var req CipherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.NewInvalidInput("invalid request body"))
		return nil, nil, false
	}
	if max := h.cfg.Limits.MaxTextLen; max > 0 && len(req.Text) > max {
		RespondError(c, apperrors.NewInvalidInputf("text exceeds the %d character limit", max))
		return nil, nil, false
	}

	ci, err := cipher.New(family, req.Key)
	if err != nil {
		RespondError(c, err)
		return nil, nil, false
	}
	return ci, &req, true
}

// Encode handles POST /api/cipher/:family/encode
func (h *CipherHandler) Encode(c *gin.Context) {
	h.transform(c, "encode")
}

// Decode handles POST /api/cipher/:family/decode
func (h *CipherHandler) Decode(c *gin.Context) {
	h.transform(c, "decode")
}

func (h *CipherHandler) transform(c *gin.Context, op string) {
	ci, req, ok := h.build(c)
	if !ok {
		return
	}

	var result string
	var err error
	if op == "encode" {
		result, err = ci.Encode(req.Text)
	} else {
		result, err = ci.Decode(req.Text)
	}
	if err != nil {
		RespondError(c, err)
		return
	}

	resp := CipherResponse{
		Family:    string(ci.Family()),
		Operation: op,
		Result:    result,
	}
	if adv, ok := ci.(cipher.Advisor); ok {
		resp.Warnings = adv.Advisories()
	}

	h.record(c, resp, req.Text)
	RespondSuccess(c, resp)
}

// Visualize handles POST /api/cipher/:family/visualize
func (h *CipherHandler) Visualize(c *gin.Context) {
	ci, req, ok := h.build(c)
	if !ok {
		return
	}
	viz, err := ci.Visualize(req.Text)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, viz)
}

// record appends the run to the user's history when the request is
// authenticated. Unauthenticated runs are simply not recorded.
func (h *CipherHandler) record(c *gin.Context, resp CipherResponse, input string) {
	username := c.GetString("username")
	if username == "" || h.historyDAO == nil {
		return
	}
	entry := dao.HistoryEntry{
		Username:  username,
		Family:    resp.Family,
		Operation: resp.Operation,
		Input:     input,
		Output:    resp.Result,
		Warnings:  resp.Warnings,
	}
	if err := h.historyDAO.Append(entry); err != nil {
		reqID := trace.GetRequestID(c.Request.Context())
		log.Warn().Err(err).Str("req_id", reqID).Msg("Failed to record history entry")
	}
}

// Families handles GET /api/cipher/families
func (h *CipherHandler) Families(c *gin.Context) {
	RespondSuccess(c, cipher.Families())
}
