package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"quiz-forge/internal/cache"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/generator"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/util"
)

// ContentService defines the interface for content generation operations
type ContentService interface {
	Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
}

// contentService implements ContentService
type contentService struct {
	cache domain.Cache // nil disables caching
	cfg   *config.Config
}

// NewContentService creates a new instance of contentService. cache may be
// nil, in which case every request runs the generator.
func NewContentService(cache domain.Cache, cfg *config.Config) ContentService {
	return &contentService{
		cache: cache,
		cfg:   cfg,
	}
}

// Generate implements ContentService. Client-seeded requests are
// deterministic, so their results are served from the cache when possible;
// unseeded requests are freshly random every time and bypass it. Cache
// failures are logged and never surface to the caller.
func (s *contentService) Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	seeded := req.Seed != nil
	var seed int64
	if seeded {
		seed = *req.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	var key string
	if seeded && s.cache != nil {
		key = cache.GenerationKey(req.Text, seed)
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var resp dto.GenerateResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				logger.Get().Debug("Generation cache hit", zap.String("key", key))
				return &resp, nil
			}
			logger.Get().Warn("Discarding undecodable cache entry", zap.String("key", key))
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Generation cache lookup failed", zap.Error(err))
		}
	}

	assignments, quiz := generator.Content(seed, req.Text)

	resp := &dto.GenerateResponse{
		ID:            util.NewULID(),
		Assignments:   assignments,
		QuizQuestions: toQuizResponses(quiz),
	}

	logger.Get().Info("Generated content",
		zap.String("id", resp.ID),
		zap.Bool("seeded", seeded),
		zap.Int("assignments", len(resp.Assignments)),
		zap.Int("quiz_questions", len(resp.QuizQuestions)),
	)

	if key != "" {
		payload, err := json.Marshal(resp)
		if err != nil {
			return nil, domain.NewInternalError("Failed to encode generation result", err)
		}
		if err := s.cache.Set(ctx, key, string(payload), s.cfg.Cache.GenerationTTL); err != nil {
			logger.Get().Warn("Failed to cache generation result", zap.Error(err))
		}
	}

	return resp, nil
}

func toQuizResponses(questions []domain.QuizQuestion) []dto.QuizQuestionResponse {
	responses := make([]dto.QuizQuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, dto.QuizQuestionResponse{
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}
	return responses
}
