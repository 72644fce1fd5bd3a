package health

import (
	"context"
	"net/http"
	"time"

	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type HealthController struct {
	Log     *zap.Logger
	MongoDB *mongo.Client
	Redis   *redis.Client
}

func NewHealthController(logger *zap.Logger, mongoDB *mongo.Client, redisClient *redis.Client) *HealthController {
	return &HealthController{
		Log:     logger,
		MongoDB: mongoDB,
		Redis:   redisClient,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	result := responses.HealthCheck{Status: "ok", Mongo: "up", Redis: "up"}
	code := constvars.StatusOK

	if err := ctrl.MongoDB.Ping(ctx, nil); err != nil {
		ctrl.Log.Error("health check mongo ping failed", zap.Error(err))
		result.Status = "degraded"
		result.Mongo = "down"
		code = constvars.StatusServiceUnavailable
	}
	if err := ctrl.Redis.Ping(ctx).Err(); err != nil {
		ctrl.Log.Error("health check redis ping failed", zap.Error(err))
		result.Status = "degraded"
		result.Redis = "down"
		code = constvars.StatusServiceUnavailable
	}

	utils.BuildSuccessResponse(w, code, constvars.HealthCheckSuccessMessage, result)
}
