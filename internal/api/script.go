package api

import (
	"fmt"
	"strconv"
	"strings"

	"cookie-consent-api/internal/store"
)

const scriptSrc = "https://cdn.cookiebot.ai/v1/cookiebot-ai.js"

// renderScript builds the HTML embed snippet for a client. Feature flags are
// rendered as lowercase "true"/"false"; the logo attribute is omitted when
// unset.
func renderScript(c store.Client) string {
	attrs := []string{
		fmt.Sprintf("data-cbid=%q", c.ID),
		fmt.Sprintf("data-company-name=%q", c.CompanyName),
	}
	if c.LogoURL != "" {
		attrs = append(attrs, fmt.Sprintf("data-logo-url=%q", c.LogoURL))
	}
	attrs = append(attrs,
		fmt.Sprintf("data-enable-affiliate-ads=%q", strconv.FormatBool(c.EnableAffiliateAds)),
		fmt.Sprintf("data-primary-color=%q", c.PrimaryColor),
		fmt.Sprintf("data-banner-position=%q", c.BannerPosition),
		fmt.Sprintf("data-auto-block=%q", strconv.FormatBool(c.AutoBlock)),
		fmt.Sprintf("data-consent-expiry=%q", strconv.Itoa(c.ConsentExpiry)),
		fmt.Sprintf("data-show-decline=%q", strconv.FormatBool(c.ShowDeclineButton)),
		fmt.Sprintf("data-granular-consent=%q", strconv.FormatBool(c.GranularConsent)),
	)

	var b strings.Builder
	fmt.Fprintf(&b, "<script src=%q\n", scriptSrc)
	for i, a := range attrs {
		b.WriteString("        " + a)
		if i < len(attrs)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString(">\n</script>")
	return b.String()
}
