// Package server exposes the cipher-breaking engine over a stateless JSON
// HTTP API. Every request is a fresh invocation of the core; nothing is
// retained between requests.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"GoCaesar/internal/cipher"
	"GoCaesar/internal/frequency"
	"GoCaesar/internal/ranker"
)

// Analyzer produces a ranked analysis for a ciphertext.
type Analyzer interface {
	Analyze(ciphertext, lang string) ranker.Analysis
}

// Handler holds the HTTP handlers for the analyze API.
type Handler struct {
	analyzer Analyzer
	logger   *zap.Logger
}

// NewHandler creates a Handler backed by the given analyzer.
func NewHandler(analyzer Analyzer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{analyzer: analyzer, logger: logger}
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /analyze", h.handleAnalyze)
	mux.HandleFunc("POST /encrypt", h.handleEncrypt)
	mux.HandleFunc("POST /frequency", h.handleFrequency)
}

// --- Analyze ---

type analyzeRequest struct {
	CipherText string `json:"cipherText"`
	Lang       string `json:"lang"`
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.CipherText) == "" {
		writeError(w, http.StatusBadRequest, "cipher text is required")
		return
	}
	if req.Lang == "" {
		req.Lang = "auto"
	}

	start := time.Now()
	analysis := h.analyzer.Analyze(req.CipherText, req.Lang)
	h.logger.Info("analyzed ciphertext",
		zap.Int("input_runes", len([]rune(req.CipherText))),
		zap.String("lang", req.Lang),
		zap.Float64("best_score", analysis.Score),
		zap.Duration("took", time.Since(start)),
	)

	writeJSON(w, http.StatusOK, analysis)
}

// --- Encrypt ---

type encryptRequest struct {
	PlainText string `json:"plainText"`
	Key       int    `json:"key"`
}

func (h *Handler) handleEncrypt(w http.ResponseWriter, r *http.Request) {
	var req encryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.PlainText) == "" {
		writeError(w, http.StatusBadRequest, "plain text is required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cipherText": cipher.Encrypt(req.PlainText, req.Key),
		"key":        req.Key,
	})
}

// --- Frequency ---

type frequencyRequest struct {
	CipherText string `json:"cipherText"`
	Lang       string `json:"lang"`
}

func (h *Handler) handleFrequency(w http.ResponseWriter, r *http.Request) {
	var req frequencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.CipherText) == "" {
		writeError(w, http.StatusBadRequest, "cipher text is required")
		return
	}

	plain, key := frequency.DecryptByGuess(req.CipherText, req.Lang)

	letters := frequency.Letters(req.CipherText)
	freqs := make(map[string]float64, len(letters))
	for r, f := range letters {
		freqs[string(r)] = f
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"key":         key,
		"plainText":   plain,
		"frequencies": freqs,
		"chiSquared":  frequency.ChiSquared(plain, req.Lang),
		"entropy":     frequency.Entropy(req.CipherText),
		"bigramScore": frequency.BigramLogLikelihood(plain),
	})
}
