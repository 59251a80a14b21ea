package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/cart"
	"github.com/TemirB/storefront/internal/domain"
	"github.com/TemirB/storefront/internal/session"
)

type cartResponse struct {
	Cart    *domain.Cart   `json:"cart"`
	Summary domain.Summary `json:"summary"`
}

func writeCart(w http.ResponseWriter, c *domain.Cart) {
	writeJSON(w, http.StatusOK, cartResponse{Cart: c, Summary: c.Summary()})
}

func (s *Server) cartError(w http.ResponseWriter, op string, err error) {
	var perr *cart.PromotionError
	switch {
	case errors.Is(err, cart.ErrBusy):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, cart.ErrNoCart):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, cart.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &perr):
		writeError(w, http.StatusBadRequest, "promotion code rejected")
	default:
		status := backendStatus(err)
		s.logger.Warn("cart request failed", zap.String("op", op), zap.Int("status", status), zap.Error(err))
		writeError(w, status, "cart backend error")
	}
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	c, err := s.d.Cart.Get(r.Context(), sess)
	if err != nil {
		s.cartError(w, "http.cart.get", err)
		return
	}
	writeCart(w, c)
}

func (s *Server) ensureCart(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if _, err := s.d.Cart.Ensure(r.Context(), sess); err != nil {
		s.cartError(w, "http.cart.ensure", err)
		return
	}
	writeCart(w, sess.Cart())
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	c, err := s.d.Cart.Clear(r.Context(), sess)
	if err != nil {
		s.cartError(w, "http.cart.clear", err)
		return
	}
	writeCart(w, c)
}

// cartSummary answers from the session cache without a backend call.
func (s *Server) cartSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cart.Summary(session.FromContext(r.Context())))
}

func (s *Server) cartQuantity(w http.ResponseWriter, r *http.Request) {
	variantID := chi.URLParam(r, "variantID")
	qty := cart.QuantityFor(session.FromContext(r.Context()), variantID)
	writeJSON(w, http.StatusOK, map[string]any{"variant_id": variantID, "quantity": qty})
}

type addLineRequest struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) addLine(w http.ResponseWriter, r *http.Request) {
	var req addLineRequest
	if err := decodeJSON(r, addLineSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	c, err := s.d.Cart.AddLine(r.Context(), session.FromContext(r.Context()), req.VariantID, req.Quantity)
	if err != nil {
		s.cartError(w, "http.cart.add_line", err)
		return
	}
	writeCart(w, c)
}

type updateLineRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateLine(w http.ResponseWriter, r *http.Request) {
	var req updateLineRequest
	if err := decodeJSON(r, updateLineSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := s.d.Cart.UpdateLine(r.Context(), session.FromContext(r.Context()), chi.URLParam(r, "lineID"), req.Quantity)
	if err != nil {
		s.cartError(w, "http.cart.update_line", err)
		return
	}
	writeCart(w, c)
}

func (s *Server) removeLine(w http.ResponseWriter, r *http.Request) {
	c, err := s.d.Cart.RemoveLine(r.Context(), session.FromContext(r.Context()), chi.URLParam(r, "lineID"))
	if err != nil {
		s.cartError(w, "http.cart.remove_line", err)
		return
	}
	writeCart(w, c)
}

type promotionsRequest struct {
	PromoCodes []string `json:"promo_codes"`
}

// promotions applies or removes a batch of codes on the session cart. An
// explicit cart_id must name that cart.
func (s *Server) promotions(apply bool) http.HandlerFunc {
	op := "http.cart.remove_promotions"
	if apply {
		op = "http.cart.apply_promotions"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req promotionsRequest
		if err := decodeJSON(r, promotionsSchema, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		sess := session.FromContext(r.Context())
		if id := r.URL.Query().Get("cart_id"); id != "" {
			if c := sess.Cart(); c == nil || c.ID != id {
				writeError(w, http.StatusBadRequest, "cart_id does not match the session cart")
				return
			}
		}

		var (
			c   *domain.Cart
			err error
		)
		if apply {
			c, err = s.d.Cart.ApplyPromotions(r.Context(), sess, req.PromoCodes)
		} else {
			c, err = s.d.Cart.RemovePromotions(r.Context(), sess, req.PromoCodes)
		}
		if err != nil {
			s.cartError(w, op, err)
			return
		}
		writeCart(w, c)
	}
}
