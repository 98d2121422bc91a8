package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cookie-consent-api/internal/store"
)

func TestRenderScript(t *testing.T) {
	c := store.Client{
		ID:                 "client-9",
		CompanyName:        "Widgets Inc",
		PrimaryColor:       "#112233",
		BannerPosition:     "top",
		EnableAffiliateAds: false,
		AutoBlock:          true,
		ConsentExpiry:      30,
		ShowDeclineButton:  false,
		GranularConsent:    true,
	}

	s := renderScript(c)
	assert.True(t, strings.HasPrefix(s, `<script src="https://cdn.cookiebot.ai/v1/cookiebot-ai.js"`))
	assert.True(t, strings.HasSuffix(s, "</script>"))
	assert.Contains(t, s, `data-cbid="client-9"`)
	assert.Contains(t, s, `data-company-name="Widgets Inc"`)
	assert.Contains(t, s, `data-enable-affiliate-ads="false"`)
	assert.Contains(t, s, `data-banner-position="top"`)
	assert.Contains(t, s, `data-consent-expiry="30"`)
	assert.Contains(t, s, `data-show-decline="false"`)
	assert.Contains(t, s, `data-granular-consent="true"`)
	assert.NotContains(t, s, "data-logo-url")

	c.LogoURL = "https://cdn.widgets.example/logo.svg"
	assert.Contains(t, renderScript(c), `data-logo-url="https://cdn.widgets.example/logo.svg"`)
}

func TestSampleAds(t *testing.T) {
	catalog := store.NewSeeded().Ads()

	assert.Empty(t, sampleAds(catalog, 0))
	assert.Len(t, sampleAds(catalog, 1), 1)
	assert.Len(t, sampleAds(catalog, 2), 2)
	assert.Len(t, sampleAds(catalog, 10), 3)

	// no repeats within a sample
	for i := 0; i < 20; i++ {
		seen := map[string]bool{}
		for _, ad := range sampleAds(catalog, 3) {
			assert.False(t, seen[ad.ID])
			seen[ad.ID] = true
		}
	}
}

func TestHashIP(t *testing.T) {
	h1 := hashIP("203.0.113.9", "salt-a")
	h2 := hashIP("203.0.113.9", "salt-b")
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, h1, hashIP("203.0.113.9", "salt-a"))
}
