package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gymtrack-backend/internal/models"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewUserService builds a user lookup service. cache may be nil, in which
// case every lookup hits the database.
func NewUserService(db *gorm.DB, cache *redis.Client) *UserService {
	return &UserService{db: db, cache: cache}
}

func (s *UserService) FindByID(userID uint) (models.User, error) {
	cacheKey := fmt.Sprintf("user:%d", userID)
	ctx := context.Background()

	if s.cache != nil {
		val, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(user); err == nil {
			s.cache.Set(ctx, cacheKey, data, time.Hour)
		}
	}

	return user, nil
}
