package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/HariharanVicky/user-management-service/internal/user/domain"
	"github.com/HariharanVicky/user-management-service/pkg/constant"
)

// buildDashboard folds the full user set into a snapshot. now is injected
// so the time-windowed metrics are testable.
func buildDashboard(users []*domain.User, now time.Time, queryMs int64) *Dashboard {
	return &Dashboard{
		Overview:     computeOverview(users, now),
		GrowthTrends: computeGrowthTrends(users, now),
		Roles:        computeRoles(users),
		Activity:     computeActivity(users, now),
		Geographic:   computeGeographic(users),
		Engagement:   computeEngagement(users, now),
		Retention:    computeRetention(users, now),
		Performance: PerformanceMetrics{
			TotalUsers:          len(users),
			QueryResponseTimeMs: queryMs,
			CacheHitRate:        85.5,
			AverageResponseTime: 150.0,
		},
		GeneratedAt: now,
	}
}

func computeOverview(users []*domain.User, now time.Time) OverviewMetrics {
	total := len(users)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	priorCutoff := now.AddDate(0, -1, 0)

	active := 0
	newThisMonth := 0
	prior := 0
	for _, u := range users {
		if u.Enabled {
			active++
		}
		if !u.CreatedAt.Before(monthStart) {
			newThisMonth++
		}
		if u.CreatedAt.Before(priorCutoff) {
			prior++
		}
	}

	growth := 100.0
	if prior > 0 {
		growth = float64(total-prior) / float64(prior) * 100
	}

	return OverviewMetrics{
		TotalUsers:          total,
		ActiveUsers:         active,
		NewUsersThisMonth:   newThisMonth,
		GrowthRateThisMonth: growth,
	}
}

func computeRoles(users []*domain.User) RoleAnalytics {
	counts := make(map[string]int)
	var order []string
	for _, u := range users {
		if _, seen := counts[u.Role]; !seen {
			order = append(order, u.Role)
		}
		counts[u.Role]++
	}

	distribution := make(map[string]float64, len(counts))
	for role, count := range counts {
		distribution[role] = percentage(count, len(users))
	}

	// Ties go to the role encountered first.
	mostCommon := constant.RoleUser
	best := 0
	for _, role := range order {
		if counts[role] > best {
			best = counts[role]
			mostCommon = role
		}
	}

	return RoleAnalytics{
		RoleDistribution: distribution,
		TotalRoles:       len(counts),
		MostCommonRole:   mostCommon,
	}
}

func computeActivity(users []*domain.User, now time.Time) ActivityMetrics {
	weekAgo := now.AddDate(0, 0, -7)

	active := 0
	recentlyActive := 0
	for _, u := range users {
		if u.Enabled {
			active++
		}
		if u.UpdatedAt.After(weekAgo) {
			recentlyActive++
		}
	}

	return ActivityMetrics{
		TotalUsers:          len(users),
		ActiveUsers:         active,
		InactiveUsers:       len(users) - active,
		RecentlyActiveUsers: recentlyActive,
		ActivityRate:        percentage(active, len(users)),
		WeeklyActivityRate:  percentage(recentlyActive, len(users)),
	}
}

func computeGeographic(users []*domain.User) GeographicDistribution {
	counts := make(map[string]int)
	for _, u := range users {
		_, domainPart, found := strings.Cut(u.Email, "@")
		if !found {
			continue
		}
		counts[strings.ToLower(domainPart)]++
	}

	domains := make([]DomainData, 0, len(counts))
	for d, count := range counts {
		domains = append(domains, DomainData{
			Domain:     d,
			UserCount:  count,
			Percentage: percentage(count, len(users)),
		})
	}
	sort.Slice(domains, func(i, j int) bool {
		if domains[i].UserCount != domains[j].UserCount {
			return domains[i].UserCount > domains[j].UserCount
		}
		return domains[i].Domain < domains[j].Domain
	})

	top := domains
	if len(top) > 10 {
		top = top[:10]
	}

	mostCommon := "unknown"
	if len(top) > 0 {
		mostCommon = top[0].Domain
	}

	return GeographicDistribution{
		TopDomains:       top,
		TotalDomains:     len(counts),
		MostCommonDomain: mostCommon,
	}
}

func computeEngagement(users []*domain.User, now time.Time) EngagementMetrics {
	dayAgo := now.AddDate(0, 0, -1)
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	daily, weekly, monthly := 0, 0, 0
	for _, u := range users {
		if u.UpdatedAt.After(dayAgo) {
			daily++
		}
		if u.UpdatedAt.After(weekAgo) {
			weekly++
		}
		if u.UpdatedAt.After(monthAgo) {
			monthly++
		}
	}

	return EngagementMetrics{
		DailyActiveUsers:      daily,
		WeeklyActiveUsers:     weekly,
		MonthlyActiveUsers:    monthly,
		DailyEngagementRate:   percentage(daily, len(users)),
		WeeklyEngagementRate:  percentage(weekly, len(users)),
		MonthlyEngagementRate: percentage(monthly, len(users)),
	}
}

func computeRetention(users []*domain.User, now time.Time) RetentionAnalysis {
	rates := map[string]float64{
		"7_days":  retentionRate(users, now, 7),
		"30_days": retentionRate(users, now, 30),
		"90_days": retentionRate(users, now, 90),
	}

	sum := 0.0
	for _, r := range rates {
		sum += r
	}

	churned := 0
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	for _, u := range users {
		if u.UpdatedAt.Before(thirtyDaysAgo) {
			churned++
		}
	}

	return RetentionAnalysis{
		RetentionRates:       rates,
		AverageRetentionRate: sum / float64(len(rates)),
		ChurnRate:            percentage(churned, len(users)),
	}
}

func retentionRate(users []*domain.User, now time.Time, days int) float64 {
	cutoff := now.AddDate(0, 0, -days)
	retained := 0
	for _, u := range users {
		if u.UpdatedAt.After(cutoff) {
			retained++
		}
	}
	return percentage(retained, len(users))
}

func computeGrowthTrends(users []*domain.User, now time.Time) []GrowthTrend {
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	trends := make([]GrowthTrend, 0, 12)
	for i := 11; i >= 0; i-- {
		monthStart := currentMonth.AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		newUsers := 0
		totalAtEnd := 0
		before := 0
		for _, u := range users {
			if u.CreatedAt.Before(monthEnd) {
				totalAtEnd++
				if !u.CreatedAt.Before(monthStart) {
					newUsers++
				} else {
					before++
				}
			}
		}

		growth := 100.0
		if before > 0 {
			growth = float64(totalAtEnd-before) / float64(before) * 100
		}

		trends = append(trends, GrowthTrend{
			Period:     monthStart.Format("2006-01"),
			NewUsers:   newUsers,
			TotalUsers: totalAtEnd,
			GrowthRate: growth,
		})
	}

	return trends
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
