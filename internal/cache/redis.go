package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mfar201/flight-ticket-booking-system-sub001/config"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
	stagedTTL  time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL, stagedTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
		stagedTTL:  stagedTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// AcquireSeatHold takes a short-lived per-seat hold before the booking
// transaction runs, so two customers picking the identical seat do not both
// reach the database. The hold is advisory; the counter decrement in the
// transaction is what actually prevents overselling.
func (c *RedisCache) AcquireSeatHold(ctx context.Context, flightID int64, class domain.SeatClass, seat int, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, seatHoldKey(flightID, class, seat), "held", ttl).Result()
}

func (c *RedisCache) ReleaseSeatHold(ctx context.Context, flightID int64, class domain.SeatClass, seat int) error {
	return c.client.Del(ctx, seatHoldKey(flightID, class, seat)).Err()
}

// StageRoleChange stores the proposal under the acting administrator's id,
// overwriting any earlier proposal. At most one proposal is outstanding per
// actor; the TTL bounds how long an unconfirmed one survives.
func (c *RedisCache) StageRoleChange(ctx context.Context, actorID int64, proposal domain.RoleChangeProposal) error {
	payload, err := json.Marshal(proposal)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, stagedRoleKey(actorID), payload, c.stagedTTL).Err()
}

// TakeRoleChange atomically fetches and deletes the actor's staged proposal,
// so confirm and discard each consume it exactly once. Absent or expired
// proposals report ErrNoStagedChange.
func (c *RedisCache) TakeRoleChange(ctx context.Context, actorID int64) (*domain.RoleChangeProposal, error) {
	data, err := c.client.GetDel(ctx, stagedRoleKey(actorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoStagedChange
		}
		return nil, domain.Transient(err)
	}

	var proposal domain.RoleChangeProposal
	if err := json.Unmarshal(data, &proposal); err != nil {
		return nil, domain.Transient(err)
	}
	return &proposal, nil
}

func flightsKey() string {
	return "cache:flights"
}

func seatHoldKey(flightID int64, class domain.SeatClass, seat int) string {
	return fmt.Sprintf("hold:flight:%d:%s:seat:%d", flightID, class, seat)
}

func stagedRoleKey(actorID int64) string {
	return fmt.Sprintf("staged:rolechange:%d", actorID)
}
