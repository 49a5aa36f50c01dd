package cache

import (
	"testing"
	"time"

	"github.com/Domenick1991/airboard/config"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Minute)
	defer c.Close()

	assert.NotNil(t, c.client)
	assert.Equal(t, time.Minute, c.flightsTTL)
	assert.Equal(t, "localhost:6379", c.client.Options().Addr)
}

func TestFlightsKey(t *testing.T) {
	assert.Equal(t, "cache:board:flights", flightsKey())
}
