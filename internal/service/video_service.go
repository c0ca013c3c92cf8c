package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"video-quiz/internal/cache"
	"video-quiz/internal/domain"
	"video-quiz/internal/logger"
	"video-quiz/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var videoListingKey = cache.GenerateCacheKey("videos", "listing", "all")

// VideoService lists and ingests videos held by the Vision service.
type VideoService interface {
	ListVideos(ctx context.Context) (*domain.VideoListing, error)
	UploadVideo(ctx context.Context, req domain.UploadVideoRequest) (*domain.UploadResult, error)
}

type videoService struct {
	client    domain.VisionClient
	cache     domain.Cache
	ttl       time.Duration
	validator *validation.Validator
	group     singleflight.Group
	now       func() time.Time
}

// cachedListing is the JSON form of a listing kept in the cache.
type cachedListing struct {
	Videos    []domain.Video `json:"videos"`
	FetchedAt time.Time      `json:"fetched_at"`
}

// NewVideoService creates a VideoService. With a nil cache or a zero ttl every
// call goes to the Vision service.
func NewVideoService(client domain.VisionClient, c domain.Cache, ttl time.Duration, v *validation.Validator) VideoService {
	if v == nil {
		v = validation.NewValidator()
	}
	return &videoService{
		client:    client,
		cache:     c,
		ttl:       ttl,
		validator: v,
		now:       time.Now,
	}
}

func (s *videoService) cachingEnabled() bool {
	return s.cache != nil && s.ttl > 0
}

// ListVideos returns the videos known to the Vision service. When caching is
// enabled a fresh cached listing is served as is, and an older one is served
// with Stale set if the upstream fails.
func (s *videoService) ListVideos(ctx context.Context) (*domain.VideoListing, error) {
	if !s.cachingEnabled() {
		return s.fetch(ctx)
	}

	cached := s.readCache(ctx)
	if cached != nil && s.now().Sub(cached.FetchedAt) < s.ttl {
		return cached, nil
	}

	result, err, shared := s.group.Do(videoListingKey, func() (interface{}, error) {
		listing, err := s.fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.writeCache(ctx, listing)
		return listing, nil
	})
	if err != nil {
		if cached != nil {
			logger.Get().Warn("Vision service unavailable, serving cached video list",
				zap.Error(err),
				zap.Time("fetched_at", cached.FetchedAt))
			stale := *cached
			stale.Stale = true
			return &stale, nil
		}
		return nil, err
	}
	if shared {
		logger.Get().Debug("Video list fetch shared with a concurrent request")
	}

	listing := *result.(*domain.VideoListing)
	return &listing, nil
}

func (s *videoService) fetch(ctx context.Context) (*domain.VideoListing, error) {
	videos, err := s.client.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	return &domain.VideoListing{Videos: videos, FetchedAt: s.now()}, nil
}

func (s *videoService) readCache(ctx context.Context) *domain.VideoListing {
	raw, err := s.cache.Get(ctx, videoListingKey)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Failed to read video list from cache", zap.Error(err))
		}
		return nil
	}

	var entry cachedListing
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		logger.Get().Warn("Discarding unreadable cached video list", zap.Error(err))
		return nil
	}
	if entry.Videos == nil {
		entry.Videos = []domain.Video{}
	}
	return &domain.VideoListing{Videos: entry.Videos, FetchedAt: entry.FetchedAt}
}

// writeCache stores the listing without expiry; freshness is judged against
// FetchedAt so an old entry stays available as a fallback.
func (s *videoService) writeCache(ctx context.Context, listing *domain.VideoListing) {
	data, err := json.Marshal(cachedListing{Videos: listing.Videos, FetchedAt: listing.FetchedAt})
	if err != nil {
		logger.Get().Error("Failed to encode video list for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, videoListingKey, string(data), 0); err != nil {
		logger.Get().Warn("Failed to write video list to cache", zap.Error(err))
	}
}

// UploadVideo asks the Vision service to index a video by URL and drops the
// cached listing so the new video shows up on the next request.
func (s *videoService) UploadVideo(ctx context.Context, req domain.UploadVideoRequest) (*domain.UploadResult, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	result, err := s.client.UploadVideo(ctx, req)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Video submitted for indexing",
		zap.String("video_id", result.VideoID),
		zap.String("video_name", req.Name))

	if s.cache != nil {
		if err := s.cache.Delete(ctx, videoListingKey); err != nil {
			logger.Get().Warn("Failed to invalidate cached video list", zap.Error(err))
		}
	}
	return result, nil
}
