// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package paquete

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher implements [Publisher] over Redis pub/sub.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher creates a publisher that writes to channel.
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

/*
PublishEstadoCambiado sends the event as a JSON message.

Description: Delivery is at-most-once. Subscribers that are offline miss the
message and must read the package state from the API instead.

Parameters:
  - context: context.Context
  - event: EstadoCambiado

Returns:
  - error: Encoding or connectivity failures
*/
func (publisher *RedisPublisher) PublishEstadoCambiado(context context.Context, event EstadoCambiado) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("redis_paquete_event_encode_failed: %w", err)
	}

	if err := publisher.client.Publish(context, publisher.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis_paquete_event_publish_failed: %w", err)
	}

	return nil
}
