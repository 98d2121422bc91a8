package store

import (
	"sync"
	"time"
)

// Client is a tenant account. JSON field names are part of the public API
// surface and must not change.
type Client struct {
	ID                 string `json:"id"`
	CompanyName        string `json:"company_name"`
	LogoURL            string `json:"logo_url"`
	PrimaryColor       string `json:"primary_color"`
	BannerPosition     string `json:"banner_position"` // "top" | "bottom"
	EnableAffiliateAds bool   `json:"enable_affiliate_ads"`
	AutoBlock          bool   `json:"auto_block"`
	ConsentExpiry      int    `json:"consent_expiry"` // days
	ShowDeclineButton  bool   `json:"show_decline_button"`
	GranularConsent    bool   `json:"granular_consent"`
	CreatedAt          string `json:"created_at"`
}

// Website is a domain registered under a client.
type Website struct {
	ID          int     `json:"id"`
	Domain      string  `json:"domain"`
	Status      string  `json:"status"` // "active" | "warning" | "error"
	Visitors    int     `json:"visitors"`
	ConsentRate float64 `json:"consent_rate"`
	Revenue     float64 `json:"revenue"`
	LastScan    string  `json:"last_scan"`
}

// AffiliateAd is an immutable catalog entry.
type AffiliateAd struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	URL         string  `json:"url"`
	Category    string  `json:"category"`
	CPC         float64 `json:"cpc"`
}

// Store owns the mutable client and website collections plus the static ad
// catalog. All access goes through the mutex; reads return copies so callers
// never alias internal state. Website ids are assigned under the write lock,
// keeping them unique per client under concurrent adds.
type Store struct {
	mu       sync.RWMutex
	clients  map[string]*Client
	websites map[string][]Website
	ads      []AffiliateAd
}

// NewSeeded returns a store populated with the demo sample data.
func NewSeeded() *Store {
	return &Store{
		clients:  seedClients(),
		websites: seedWebsites(),
		ads:      seedAds(),
	}
}

// Client returns a copy of the client record, if it exists.
func (s *Store) Client(id string) (Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[id]
	if !ok {
		return Client{}, false
	}
	return *c, true
}

// UpdateClient overwrites recognized mutable fields from the given partial
// map. Unrecognized keys and values of the wrong type are silently ignored.
// Identity and creation time are immutable.
func (s *Store) UpdateClient(id string, fields map[string]any) (Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.clients[id]
	if !ok {
		return Client{}, false
	}
	for key, val := range fields {
		applyField(c, key, val)
	}
	return *c, true
}

// Websites returns the ordered website sequence for a client. The slice is
// never nil so it encodes as [] rather than null.
func (s *Store) Websites(clientID string) []Website {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Website, len(s.websites[clientID]))
	copy(out, s.websites[clientID])
	return out
}

// WebsiteCount returns the number of registered websites for a client.
func (s *Store) WebsiteCount(clientID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.websites[clientID])
}

// AddWebsite appends a new website for the client with id = sequence length
// + 1, active status and zeroed metrics. Returns false if the client is
// unknown.
func (s *Store) AddWebsite(clientID, domain string) (Website, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[clientID]; !ok {
		return Website{}, false
	}
	w := Website{
		ID:       len(s.websites[clientID]) + 1,
		Domain:   domain,
		Status:   "active",
		LastScan: time.Now().UTC().Format(time.RFC3339),
	}
	s.websites[clientID] = append(s.websites[clientID], w)
	return w, true
}

// Ads returns a copy of the affiliate ad catalog.
func (s *Store) Ads() []AffiliateAd {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]AffiliateAd, len(s.ads))
	copy(out, s.ads)
	return out
}

// Ad looks up a catalog entry by id.
func (s *Store) Ad(id string) (AffiliateAd, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ad := range s.ads {
		if ad.ID == id {
			return ad, true
		}
	}
	return AffiliateAd{}, false
}

func applyField(c *Client, key string, val any) {
	switch key {
	case "company_name":
		if v, ok := val.(string); ok {
			c.CompanyName = v
		}
	case "logo_url":
		if v, ok := val.(string); ok {
			c.LogoURL = v
		}
	case "primary_color":
		if v, ok := val.(string); ok {
			c.PrimaryColor = v
		}
	case "banner_position":
		if v, ok := val.(string); ok {
			c.BannerPosition = v
		}
	case "enable_affiliate_ads":
		if v, ok := val.(bool); ok {
			c.EnableAffiliateAds = v
		}
	case "auto_block":
		if v, ok := val.(bool); ok {
			c.AutoBlock = v
		}
	case "consent_expiry":
		// JSON numbers decode as float64
		switch v := val.(type) {
		case float64:
			c.ConsentExpiry = int(v)
		case int:
			c.ConsentExpiry = v
		}
	case "show_decline_button":
		if v, ok := val.(bool); ok {
			c.ShowDeclineButton = v
		}
	case "granular_consent":
		if v, ok := val.(bool); ok {
			c.GranularConsent = v
		}
	}
}
