package api

import (
	"math/rand"

	"cookie-consent-api/internal/store"
)

// sampleAds returns a uniformly random, non-repeating sample of up to max
// entries from the catalog. When max exceeds the catalog size the whole
// catalog comes back in randomized order.
func sampleAds(catalog []store.AffiliateAd, max int) []store.AffiliateAd {
	if max > len(catalog) {
		max = len(catalog)
	}
	if max < 0 {
		max = 0
	}
	out := make([]store.AffiliateAd, 0, max)
	for _, i := range rand.Perm(len(catalog))[:max] {
		out = append(out, catalog[i])
	}
	return out
}
