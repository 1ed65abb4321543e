package checkout

import (
	"fmt"
	"net/url"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/app_errors"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/config"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/models"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
)

var purchasableTiers = []string{models.TierStarter, models.TierFull, models.TierVIP}

// CheckoutService builds the outbound URL that hands the browser to the
// external payment processor. No response is awaited: the processor later
// returns the learner to the success or cancel page by plain navigation, with
// no verified linkage back to the original session.
type CheckoutService struct {
	log        logger.Log
	links      map[string]*url.URL
	successURL string
	cancelURL  string
}

// NewCheckoutService validates the per-tier payment links up front. A missing
// or unparseable link is a deployment defect and refuses to wire.
func NewCheckoutService(log logger.Log, cfg config.Checkout) (*CheckoutService, error) {
	links := make(map[string]*url.URL, len(purchasableTiers))
	for _, tier := range purchasableTiers {
		raw, ok := cfg.Links[tier]
		if !ok || raw == "" {
			return nil, fmt.Errorf("%w: %s", app_errors.ErrCheckoutLinkMissing, tier)
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid payment link for tier %s: %w", tier, err)
		}
		links[tier] = u
	}
	if cfg.SuccessURL == "" || cfg.CancelURL == "" {
		return nil, fmt.Errorf("checkout success_url and cancel_url must be configured")
	}
	return &CheckoutService{
		log:        log,
		links:      links,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}, nil
}

// BuildCheckoutURL resolves the tier's payment link and appends the return
// targets. For the single-module starter tier with a chosen module it also
// appends a client reference of the form module_<ID> so a human operator can
// correlate the payment with the module choice afterwards.
func (s *CheckoutService) BuildCheckoutURL(tier string, selectedModuleID int) (string, error) {
	base, ok := s.links[tier]
	if !ok {
		return "", app_errors.ErrUnknownTier
	}

	u := *base
	q := u.Query()
	q.Set("success_url", s.successURL)
	q.Set("cancel_url", s.cancelURL)
	if tier == models.TierStarter && selectedModuleID > 0 {
		q.Set("client_reference_id", fmt.Sprintf("module_%d", selectedModuleID))
	}
	u.RawQuery = q.Encode()

	s.log.Info("checkout redirect built", "tier", tier, "module_id", selectedModuleID)
	return u.String(), nil
}
