package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/ignatzorin/recruitment-backend/internal/logger"
)

const limiterPrefix = "recruitment:limiter"

// NewLimiterStore возвращает redis хранилище счётчиков, если задан redisURL,
// иначе хранилище в памяти процесса.
func NewLimiterStore(ctx context.Context, redisURL string) (limiter.Store, func() error, error) {
	if redisURL == "" {
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: limiterPrefix, CleanUpInterval: time.Minute}), func() error { return nil }, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("rate limit: некорректный REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("rate limit: redis недоступен: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: limiterPrefix, MaxRetry: 3})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("rate limit: %w", err)
	}
	return store, client.Close, nil
}

// RateLimitMiddleware ограничивает число запросов. Ключ - пользователь из токена,
// для анонимных запросов - IP.
func RateLimitMiddleware(store limiter.Store, name string, limit int64, period time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		limit = 10
	}
	if period <= 0 {
		period = time.Minute
	}
	instance := limiter.New(store, limiter.Rate{Period: period, Limit: limit})

	return func(c *gin.Context) {
		key := name + ":" + c.ClientIP()
		if actor, ok := CurrentActor(c); ok {
			key = name + ":" + actor.UserID.String()
		}

		lctx, err := instance.Get(c.Request.Context(), key)
		if err != nil {
			// Недоступность хранилища не должна блокировать кандидатов.
			logger.L().WithFields(logrus.Fields{"limiter": name}).WithError(err).Warn("rate limit: ошибка хранилища")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   gin.H{"code": "RATE_LIMITED", "message": "слишком много запросов, попробуйте позже"},
			})
			return
		}

		c.Next()
	}
}
