package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache keys for rendered reports. Every successful mutation, postings and
// account changes alike, invalidates all of them, so a cached report never
// reflects superseded ledger state.
const (
	CacheKeyTrialBalance    = "reports:trial-balance"
	CacheKeyBalanceSheet    = "reports:balance-sheet"
	CacheKeyIncomeStatement = "reports:income-statement"
	CacheKeySummary         = "reports:summary"
)

var reportCacheKeys = []string{
	CacheKeyTrialBalance,
	CacheKeyBalanceSheet,
	CacheKeyIncomeStatement,
	CacheKeySummary,
}

// ReportCacheService caches rendered report JSON in Redis with a short TTL.
// Reports are cheap to recompute, so a nil client simply disables caching.
type ReportCacheService struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewReportCacheService(redisClient *redis.Client) *ReportCacheService {
	return &ReportCacheService{
		redis: redisClient,
		ttl:   5 * time.Minute,
	}
}

// SetTTL overrides the default report lifetime.
func (s *ReportCacheService) SetTTL(ttl time.Duration) {
	if ttl > 0 {
		s.ttl = ttl
	}
}

// Get loads a cached report into dest. It returns false on a miss, on any
// Redis error, or when caching is disabled.
func (s *ReportCacheService) Get(ctx context.Context, key string, dest any) bool {
	if s.redis == nil {
		return false
	}

	data, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("Report cache read failed for %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("Report cache decode failed for %s: %v", key, err)
		return false
	}
	return true
}

// Set stores a rendered report. Failures only cost a recompute next time.
func (s *ReportCacheService) Set(ctx context.Context, key string, report any) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		log.Printf("Report cache encode failed for %s: %v", key, err)
		return
	}
	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		log.Printf("Report cache write failed for %s: %v", key, err)
	}
}

// Invalidate drops every cached report.
func (s *ReportCacheService) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Del(ctx, reportCacheKeys...).Err(); err != nil {
		log.Printf("Report cache invalidation failed: %v", err)
	}
}
