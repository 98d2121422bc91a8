package report

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

type DailyConsent struct {
	Date     string  `json:"date"`
	Consents int     `json:"consents"`
	Revenue  float64 `json:"revenue"`
}

type ConsentCategory struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type Analytics struct {
	TotalVisitors     int               `json:"total_visitors"`
	ConsentRate       float64           `json:"consent_rate"`
	AffiliateRevenue  float64           `json:"affiliate_revenue"`
	ActiveWebsites    int               `json:"active_websites"`
	DailyConsents     []DailyConsent    `json:"daily_consents"`
	ConsentCategories []ConsentCategory `json:"consent_categories"`
}

type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Clicks  int     `json:"clicks"`
}

type TopAd struct {
	Title   string  `json:"title"`
	Revenue float64 `json:"revenue"`
	Clicks  int     `json:"clicks"`
}

type Revenue struct {
	TotalRevenue     float64        `json:"total_revenue"`
	RevenueShare     float64        `json:"revenue_share"`
	NextPayout       string         `json:"next_payout"`
	DailyRevenue     []DailyRevenue `json:"daily_revenue"`
	TopPerformingAds []TopAd        `json:"top_performing_ads"`
}

// Source produces the analytics and revenue payloads. The mock implementation
// below synthesizes numbers; a real aggregation pipeline can be swapped in
// without touching the handlers.
type Source interface {
	Analytics(activeWebsites int) Analytics
	Revenue() Revenue
}

// MockSource generates pseudo-random series anchored at the current day. The
// mutex guards the rng, which is not safe for concurrent use.
type MockSource struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewMockSource() *MockSource {
	return newMockSource(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

func newMockSource(rng *rand.Rand, now func() time.Time) *MockSource {
	return &MockSource{rng: rng, now: now}
}

func (s *MockSource) Analytics(activeWebsites int) Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().UTC()
	daily := make([]DailyConsent, 0, 7)
	for i := 0; i < 7; i++ {
		daily = append(daily, DailyConsent{
			Date:     today.AddDate(0, 0, i-6).Format(dateLayout),
			Consents: 1200 + s.rng.Intn(701),
			Revenue:  round2(40 + s.rng.Float64()*40),
		})
	}

	return Analytics{
		TotalVisitors:    125430,
		ConsentRate:      78.5,
		AffiliateRevenue: 2847.32,
		ActiveWebsites:   activeWebsites,
		DailyConsents:    daily,
		ConsentCategories: []ConsentCategory{
			{Name: "Necessary", Value: 100, Color: "#10b981"},
			{Name: "Preferences", Value: 65, Color: "#3b82f6"},
			{Name: "Statistics", Value: 82, Color: "#f59e0b"},
			{Name: "Marketing", Value: 45, Color: "#ef4444"},
		},
	}
}

func (s *MockSource) Revenue() Revenue {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().UTC()
	start := today.AddDate(0, 0, -30)

	daily := make([]DailyRevenue, 0, 30)
	var total float64
	for i := 0; i < 30; i++ {
		rev := round2(20 + s.rng.Float64()*80)
		total += rev
		daily = append(daily, DailyRevenue{
			Date:    start.AddDate(0, 0, i).Format(dateLayout),
			Revenue: rev,
			Clicks:  50 + s.rng.Intn(151),
		})
	}

	return Revenue{
		TotalRevenue: round2(total),
		RevenueShare: 0.6,
		NextPayout:   today.AddDate(0, 0, 25).Format(dateLayout),
		DailyRevenue: daily,
		TopPerformingAds: []TopAd{
			{Title: "Privacy-First Analytics", Revenue: 456.78, Clicks: 1024},
			{Title: "Secure Cloud Storage", Revenue: 389.45, Clicks: 892},
			{Title: "GDPR Compliance Tool", Revenue: 234.56, Clicks: 567},
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
