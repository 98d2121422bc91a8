package store

// Static sample data. A production deployment would load tenants from a
// database; the demo client exercises every endpoint.

func seedClients() map[string]*Client {
	return map[string]*Client{
		"demo-client-123": {
			ID:                 "demo-client-123",
			CompanyName:        "Demo Company",
			LogoURL:            "",
			PrimaryColor:       "#667eea",
			BannerPosition:     "bottom",
			EnableAffiliateAds: true,
			AutoBlock:          true,
			ConsentExpiry:      365,
			ShowDeclineButton:  true,
			GranularConsent:    true,
			CreatedAt:          "2025-01-01T00:00:00Z",
		},
	}
}

func seedWebsites() map[string][]Website {
	return map[string][]Website{
		"demo-client-123": {
			{
				ID:          1,
				Domain:      "example.com",
				Status:      "active",
				Visitors:    45230,
				ConsentRate: 82.1,
				Revenue:     1247.50,
				LastScan:    "2025-07-07T10:30:00Z",
			},
			{
				ID:          2,
				Domain:      "shop.example.com",
				Status:      "active",
				Visitors:    32100,
				ConsentRate: 76.8,
				Revenue:     892.30,
				LastScan:    "2025-07-07T09:15:00Z",
			},
			{
				ID:          3,
				Domain:      "blog.example.com",
				Status:      "warning",
				Visitors:    18900,
				ConsentRate: 71.2,
				Revenue:     456.80,
				LastScan:    "2025-07-06T14:20:00Z",
			},
		},
	}
}

func seedAds() []AffiliateAd {
	return []AffiliateAd{
		{
			ID:          "ad-001",
			Title:       "Privacy-First Analytics",
			Description: "GDPR-compliant analytics platform",
			Image:       "https://via.placeholder.com/40x40/667eea/ffffff?text=PA",
			URL:         "https://example.com/privacy-analytics",
			Category:    "analytics",
			CPC:         0.45,
		},
		{
			ID:          "ad-002",
			Title:       "Secure Cloud Storage",
			Description: "End-to-end encrypted file storage",
			Image:       "https://via.placeholder.com/40x40/10b981/ffffff?text=CS",
			URL:         "https://example.com/cloud-storage",
			Category:    "security",
			CPC:         0.62,
		},
		{
			ID:          "ad-003",
			Title:       "GDPR Compliance Tool",
			Description: "Automated compliance management",
			Image:       "https://via.placeholder.com/40x40/f59e0b/ffffff?text=GC",
			URL:         "https://example.com/gdpr-tool",
			Category:    "compliance",
			CPC:         0.78,
		},
	}
}
