package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cipherlab-go/internal/analysis"
	"github.com/cipherlab-go/internal/cipher"
	"github.com/cipherlab-go/internal/config"
	apperrors "github.com/cipherlab-go/internal/errors"
)

// AnalysisHandler serves the cryptanalysis routes.
type AnalysisHandler struct {
	cfg *config.Config
}

// NewAnalysisHandler creates an analysis handler
func NewAnalysisHandler(cfg *config.Config) *AnalysisHandler {
	return &AnalysisHandler{cfg: cfg}
}

// AnalyzeText handles POST /api/analyze
func (h *AnalysisHandler) AnalyzeText(c *gin.Context) {
	var req struct {
		Ciphertext string `json:"ciphertext"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.NewInvalidInput("invalid request body"))
		return
	}
	if max := h.cfg.Limits.MaxTextLen; max > 0 && len(req.Ciphertext) > max {
		RespondError(c, apperrors.NewInvalidInputf("ciphertext exceeds the %d character limit", max))
		return
	}
	RespondSuccess(c, analysis.AnalyzeText(req.Ciphertext, h.cfg.Analysis.MinCiphertextLen))
}

// AnalyzeLCG handles POST /api/analyze/lcg
func (h *AnalysisHandler) AnalyzeLCG(c *gin.Context) {
	var req struct {
		Preset     string `json:"preset"`
		Seed       uint64 `json:"seed"`
		Multiplier uint64 `json:"multiplier"`
		Increment  uint64 `json:"increment"`
		Modulus    uint64 `json:"modulus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.NewInvalidInput("invalid request body"))
		return
	}

	params := cipher.LCGParams{
		Seed:       req.Seed,
		Multiplier: req.Multiplier,
		Increment:  req.Increment,
		Modulus:    req.Modulus,
	}
	if req.Preset != "" {
		preset, ok := cipher.PresetByName(req.Preset)
		if !ok {
			RespondError(c, apperrors.NewInvalidKeyf("unknown LCG preset %q", req.Preset))
			return
		}
		params = preset.Params
		if req.Seed != 0 {
			params.Seed = req.Seed % params.Modulus
		}
	}
	// Validation matches the cipher's own rules.
	if _, err := cipher.NewLCG(params); err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, analysis.AnalyzeLCG(params.Seed, params.Multiplier, params.Increment, params.Modulus))
}

// Presets handles GET /api/lcg/presets
func (h *AnalysisHandler) Presets(c *gin.Context) {
	RespondSuccess(c, cipher.Presets())
}
