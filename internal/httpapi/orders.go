package httpapi

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/commerce"
	"github.com/TemirB/storefront/internal/domain"
	"github.com/TemirB/storefront/internal/orders"
	"github.com/TemirB/storefront/internal/ratelimit"
	"github.com/TemirB/storefront/internal/session"
)

// orderStatus maps order sentinels to response codes; anything unknown is a
// backend failure.
func orderStatus(err error) int {
	switch {
	case errors.Is(err, orders.ErrMissingReference),
		errors.Is(err, orders.ErrInvalidEmail),
		errors.Is(err, orders.ErrMissingCustomer),
		errors.Is(err, orders.ErrNotCancellable):
		return http.StatusBadRequest
	case errors.Is(err, orders.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, orders.ErrEmailMismatch):
		return http.StatusForbidden
	case errors.Is(err, orders.ErrOwnedByOther):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) orderError(w http.ResponseWriter, op string, err error) {
	status := orderStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("order request failed", zap.String("op", op), zap.Error(err))
		writeError(w, status, "Failed to process order request")
		return
	}
	writeError(w, status, err.Error())
}

// claimOrder is limited per client IP before the body is even read.
func (s *Server) claimOrder(w http.ResponseWriter, r *http.Request) {
	if s.d.ClaimLimit != nil {
		res := s.d.ClaimLimit.Check(ratelimit.ClientIP(r))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if !res.Allowed {
			retry := int(math.Ceil(time.Until(res.ResetAt).Seconds()))
			if retry < 1 {
				retry = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			writeError(w, http.StatusTooManyRequests, "Too many claim attempts. Please try again later.")
			return
		}
	}

	var req orders.ClaimRequest
	if err := decodeJSON(r, orderRefSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.d.Orders.Claim(r.Context(), req)
	if err != nil {
		s.orderError(w, "http.orders.claim", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": res.Order, "changed": res.Changed})
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	var req orders.CancelRequest
	if err := decodeJSON(r, orderRefSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := s.d.Orders.Cancel(r.Context(), req)
	if err != nil {
		s.orderError(w, "http.orders.cancel", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": o})
}

func (s *Server) lookupOrder(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := orders.LookupRequest{
		Token:     q.Get("token"),
		DisplayID: q.Get("display_id"),
		Email:     q.Get("email"),
	}
	if req.Token == "" && req.DisplayID == "" {
		writeError(w, http.StatusBadRequest, orders.ErrMissingReference.Error())
		return
	}
	sess := session.FromContext(r.Context())
	o, err := s.d.Orders.Lookup(commerce.WithToken(r.Context(), sess.Token()), req)
	if err != nil {
		s.orderError(w, "http.orders.lookup", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": o})
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess.Token() == "" {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	list, count, err := s.d.Orders.Summaries(commerce.WithToken(r.Context(), sess.Token()))
	if err != nil {
		status := backendStatus(err)
		if status == http.StatusUnauthorized {
			sess.Logout()
		}
		s.logger.Warn("order summaries failed", zap.String("op", "http.orders.list"), zap.Int("status", status), zap.Error(err))
		writeError(w, status, "Failed to load orders")
		return
	}
	if list == nil {
		list = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": list, "count": count})
}
