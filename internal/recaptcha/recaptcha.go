package recaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/config"
)

const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

var (
	ErrNoToken         = errors.New("no token provided")
	ErrRejected        = errors.New("reCAPTCHA verification failed")
	ErrLowScore        = errors.New("low reCAPTCHA score - possible bot activity")
	ErrActionMismatch  = errors.New("action mismatch")
	ErrProviderFailure = errors.New("internal verification error")
)

type Result struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action,omitempty"`
	ErrorCodes []string `json:"errorCodes,omitempty"`
}

type Verifier struct {
	secret    string
	minScore  float64
	verifyURL string
	http      *http.Client
	logger    *zap.Logger
}

func New(cfg config.Recaptcha, logger *zap.Logger) *Verifier {
	return &Verifier{
		secret:    cfg.SecretKey,
		minScore:  cfg.MinScore,
		verifyURL: DefaultVerifyURL,
		http:      &http.Client{Timeout: 10 * time.Second},
		logger:    logger,
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks a v3 token. Without a configured secret every token passes
// with score 1. The returned Result is filled even when err is non-nil.
func (v *Verifier) Verify(ctx context.Context, token, action string) (Result, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Result{}, ErrNoToken
	}
	if v.secret == "" {
		v.logger.Warn("reCAPTCHA secret key not configured, skipping verification")
		return Result{Success: true, Score: 1, Action: action}, nil
	}

	form := url.Values{"secret": {v.secret}, "response": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.http.Do(req)
	if err != nil {
		v.logger.Error("siteverify request failed", zap.String("op", "recaptcha.verify"), zap.Error(err))
		return Result{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	var sv siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&sv); err != nil {
		v.logger.Error("siteverify decode failed", zap.String("op", "recaptcha.verify"), zap.Error(err))
		return Result{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	res := Result{Success: sv.Success, Score: sv.Score, Action: sv.Action, ErrorCodes: sv.ErrorCodes}
	if !sv.Success {
		return res, ErrRejected
	}
	if sv.Score < v.minScore {
		res.Success = false
		return res, ErrLowScore
	}
	if action != "" && sv.Action != action {
		res.Success = false
		return res, ErrActionMismatch
	}
	return res, nil
}
