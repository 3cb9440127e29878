package analytics

import "time"

type OverviewMetrics struct {
	TotalUsers          int     `json:"totalUsers"`
	ActiveUsers         int     `json:"activeUsers"`
	NewUsersThisMonth   int     `json:"newUsersThisMonth"`
	GrowthRateThisMonth float64 `json:"growthRateThisMonth"`
}

type RoleAnalytics struct {
	RoleDistribution map[string]float64 `json:"roleDistribution"`
	TotalRoles       int                `json:"totalRoles"`
	MostCommonRole   string             `json:"mostCommonRole"`
}

type ActivityMetrics struct {
	TotalUsers          int     `json:"totalUsers"`
	ActiveUsers         int     `json:"activeUsers"`
	InactiveUsers       int     `json:"inactiveUsers"`
	RecentlyActiveUsers int     `json:"recentlyActiveUsers"`
	ActivityRate        float64 `json:"activityRate"`
	WeeklyActivityRate  float64 `json:"weeklyActivityRate"`
}

type DomainData struct {
	Domain     string  `json:"domain"`
	UserCount  int     `json:"userCount"`
	Percentage float64 `json:"percentage"`
}

type GeographicDistribution struct {
	TopDomains       []DomainData `json:"topDomains"`
	TotalDomains     int          `json:"totalDomains"`
	MostCommonDomain string       `json:"mostCommonDomain"`
}

type EngagementMetrics struct {
	DailyActiveUsers      int     `json:"dailyActiveUsers"`
	WeeklyActiveUsers     int     `json:"weeklyActiveUsers"`
	MonthlyActiveUsers    int     `json:"monthlyActiveUsers"`
	DailyEngagementRate   float64 `json:"dailyEngagementRate"`
	WeeklyEngagementRate  float64 `json:"weeklyEngagementRate"`
	MonthlyEngagementRate float64 `json:"monthlyEngagementRate"`
}

type RetentionAnalysis struct {
	RetentionRates       map[string]float64 `json:"retentionRates"`
	AverageRetentionRate float64            `json:"averageRetentionRate"`
	ChurnRate            float64            `json:"churnRate"`
}

type GrowthTrend struct {
	Period     string  `json:"period"`
	NewUsers   int     `json:"newUsers"`
	TotalUsers int     `json:"totalUsers"`
	GrowthRate float64 `json:"growthRate"`
}

type PerformanceMetrics struct {
	TotalUsers          int     `json:"totalUsers"`
	QueryResponseTimeMs int64   `json:"queryResponseTimeMs"`
	CacheHitRate        float64 `json:"cacheHitRate"`
	AverageResponseTime float64 `json:"averageResponseTime"`
}

// Dashboard is the full snapshot computed from the user set. It has no
// identity of its own; every call recomputes it unless a cached copy is
// still fresh.
type Dashboard struct {
	Overview     OverviewMetrics        `json:"overview"`
	GrowthTrends []GrowthTrend          `json:"growthTrends"`
	Roles        RoleAnalytics          `json:"roles"`
	Activity     ActivityMetrics        `json:"activity"`
	Geographic   GeographicDistribution `json:"geographic"`
	Engagement   EngagementMetrics      `json:"engagement"`
	Retention    RetentionAnalysis      `json:"retention"`
	Performance  PerformanceMetrics     `json:"performance"`
	GeneratedAt  time.Time              `json:"generatedAt"`
}

type Export struct {
	Format     string     `json:"format"`
	Data       *Dashboard `json:"data"`
	ExportedAt time.Time  `json:"exportedAt"`
}
