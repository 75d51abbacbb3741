package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/citizenconnect/complaints-api/internal/domain/view"
	"github.com/citizenconnect/complaints-api/internal/repository"
	"github.com/citizenconnect/complaints-api/pkg/types"
	"github.com/redis/go-redis/v9"
)

const (
	topCategories = 5
	recentLimit   = 10
	statsCacheTTL = 60 * time.Second
)

// Stats is the dashboard payload. Each field is computed independently and
// degrades to its zero value when its query fails.
type Stats struct {
	Total             int64                  `json:"total"`
	ByStatus          []view.StatusCount     `json:"by_status"`
	ByCategory        []view.CategoryCount   `json:"by_category"`
	ByProvince        []view.ProvinceCount   `json:"by_province"`
	Recent            []view.RecentComplaint `json:"recent"`
	AvgResolutionDays float64                `json:"avg_resolution_days"`
}

// DashboardService computes aggregates for staff. Cache is optional; nil
// disables it and every call hits the datastore.
type DashboardService struct {
	Repos *repository.Repos
	Cache *redis.Client
}

func NewDashboardService(repos *repository.Repos, cache *redis.Client) *DashboardService {
	return &DashboardService{
		Repos: repos,
		Cache: cache,
	}
}

// GetStats resolves the aggregation scope in three tiers: an explicitly
// requested institution, else the acting user's institution, else global.
func (s *DashboardService) GetStats(institutionID *uint, actor *types.Claims) (Stats, error) {
	if actor == nil {
		return Stats{}, ErrAuthRequired
	}

	scope := institutionID
	if scope == nil && actor.InstitutionID != nil {
		scope = actor.InstitutionID
	}

	if cached, ok := s.cachedStats(scope); ok {
		return cached, nil
	}

	stats := Stats{
		ByStatus:   []view.StatusCount{},
		ByCategory: []view.CategoryCount{},
		ByProvince: []view.ProvinceCount{},
		Recent:     []view.RecentComplaint{},
	}

	if total, err := s.Repos.Stats.CountComplaints(scope); err != nil {
		log.Printf("Error counting complaints: %v", err)
	} else {
		stats.Total = total
	}

	if byStatus, err := s.Repos.Stats.CountByStatus(scope); err != nil {
		log.Printf("Error counting complaints by status: %v", err)
	} else if byStatus != nil {
		stats.ByStatus = byStatus
	}

	if byCategory, err := s.Repos.Stats.CountByCategory(scope, topCategories); err != nil {
		log.Printf("Error counting complaints by category: %v", err)
	} else if byCategory != nil {
		stats.ByCategory = byCategory
	}

	if byProvince, err := s.Repos.Stats.CountByProvince(scope); err != nil {
		log.Printf("Error counting complaints by province: %v", err)
	} else if byProvince != nil {
		stats.ByProvince = byProvince
	}

	if recent, err := s.Repos.Stats.RecentComplaints(scope, recentLimit); err != nil {
		log.Printf("Error fetching recent complaints: %v", err)
	} else if recent != nil {
		stats.Recent = recent
	}

	if avg, err := s.Repos.Stats.AvgResolutionDays(scope); err != nil {
		log.Printf("Error computing average resolution time: %v", err)
	} else {
		stats.AvgResolutionDays = avg
	}

	s.cacheStats(scope, stats)
	return stats, nil
}

func statsCacheKey(scope *uint) string {
	if scope == nil {
		return "dashboard:stats:global"
	}
	return fmt.Sprintf("dashboard:stats:%d", *scope)
}

func (s *DashboardService) cachedStats(scope *uint) (Stats, bool) {
	if s.Cache == nil {
		return Stats{}, false
	}
	raw, err := s.Cache.Get(context.Background(), statsCacheKey(scope)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Dashboard cache read error: %v", err)
		}
		return Stats{}, false
	}
	var stats Stats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return Stats{}, false
	}
	return stats, true
}

func (s *DashboardService) cacheStats(scope *uint, stats Stats) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.Cache.Set(context.Background(), statsCacheKey(scope), raw, statsCacheTTL).Err(); err != nil {
		log.Printf("Dashboard cache write error: %v", err)
	}
}
