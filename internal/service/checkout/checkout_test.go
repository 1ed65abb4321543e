package checkout

import (
	"net/url"
	"testing"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/app_errors"
	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/config"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Checkout {
	return config.Checkout{
		Links: map[string]string{
			"starter": "https://pay.example.com/b/starter",
			"full":    "https://pay.example.com/b/full",
			"vip":     "https://pay.example.com/b/vip",
		},
		SuccessURL: "https://site.example.com/checkout/success",
		CancelURL:  "https://site.example.com/checkout/cancel",
	}
}

func TestBuildCheckoutURL_StarterWithModule(t *testing.T) {
	s, err := NewCheckoutService(logger.New("local"), testConfig())
	require.NoError(t, err)

	raw, err := s.BuildCheckoutURL("starter", 3)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "pay.example.com", u.Host)

	q := u.Query()
	assert.Equal(t, "module_3", q.Get("client_reference_id"))
	assert.Equal(t, "https://site.example.com/checkout/success", q.Get("success_url"))
	assert.Equal(t, "https://site.example.com/checkout/cancel", q.Get("cancel_url"))
}

func TestBuildCheckoutURL_FullHasNoClientReference(t *testing.T) {
	s, err := NewCheckoutService(logger.New("local"), testConfig())
	require.NoError(t, err)

	raw, err := s.BuildCheckoutURL("full", 3)
	require.NoError(t, err)

	q, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Empty(t, q.Query().Get("client_reference_id"))
	assert.Equal(t, "/b/full", q.Path)
}

func TestBuildCheckoutURL_StarterWithoutModule(t *testing.T) {
	s, err := NewCheckoutService(logger.New("local"), testConfig())
	require.NoError(t, err)

	raw, err := s.BuildCheckoutURL("starter", 0)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Empty(t, u.Query().Get("client_reference_id"))
}

func TestBuildCheckoutURL_UnknownTier(t *testing.T) {
	s, err := NewCheckoutService(logger.New("local"), testConfig())
	require.NoError(t, err)

	_, err = s.BuildCheckoutURL("gold", 0)
	assert.ErrorIs(t, err, app_errors.ErrUnknownTier)
}

func TestNewCheckoutService_MissingLink(t *testing.T) {
	cfg := testConfig()
	delete(cfg.Links, "vip")

	_, err := NewCheckoutService(logger.New("local"), cfg)
	assert.ErrorIs(t, err, app_errors.ErrCheckoutLinkMissing)
}

func TestNewCheckoutService_MissingReturnURLs(t *testing.T) {
	cfg := testConfig()
	cfg.SuccessURL = ""

	_, err := NewCheckoutService(logger.New("local"), cfg)
	assert.Error(t, err)
}
