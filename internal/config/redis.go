package config

// This file defines the Redis configuration for the visit counter backend.
// The client parameters are loaded from environment variables.  Connectivity
// is deliberately not verified here: the store re-evaluates reachability on
// every request, so a backend that is down at startup only degrades the
// endpoints instead of preventing the process from starting.

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig describes how to reach the counter backend.  The pool is
// bounded at PoolSize connections and every dial, read and write is bounded
// by Timeout so a slow or dead backend cannot monopolise pool slots.
type RedisConfig struct {
	Addr          string        // host:port of the Redis server
	Password      string        // optional password
	DB            int           // database number
	TLS           bool          // enable TLS when true
	TLSSkipVerify bool          // skip server certificate verification (self-signed setups only)
	PoolSize      int           // maximum number of pooled connections
	Timeout       time.Duration // dial/read/write timeout per operation
}

// LoadRedis reads the Redis configuration from environment variables.
// Supported variables are:
//
//	REDIS_HOST and REDIS_PORT – hostname and port of the Redis server
//	REDIS_ADDR – host:port shorthand (takes precedence when set)
//	REDIS_PASSWORD – optional password
//	REDIS_DB – database number (default 0)
//	REDIS_TLS – enable TLS when "true" or "1"
//	REDIS_TLS_SKIP_VERIFY – accept unverifiable server certificates (default off)
//	REDIS_POOL_SIZE – maximum pooled connections (default 20)
//	REDIS_TIMEOUT – per-operation timeout (default 1s)
func LoadRedis() RedisConfig {
	addr := getenv("REDIS_ADDR", "")
	if addr == "" {
		addr = getenv("REDIS_HOST", "redis") + ":" + getenv("REDIS_PORT", "6379")
	}
	return RedisConfig{
		Addr:          addr,
		Password:      getenv("REDIS_PASSWORD", ""),
		DB:            envInt("REDIS_DB", 0),
		TLS:           envBool("REDIS_TLS", false),
		TLSSkipVerify: envBool("REDIS_TLS_SKIP_VERIFY", false),
		PoolSize:      envInt("REDIS_POOL_SIZE", 20),
		Timeout:       envDur("REDIS_TIMEOUT", time.Second),
	}
}

// NewRedisClient instantiates a pooled go-redis client from the config.
// MaxRetries is disabled: the handlers decide how to surface a failure and
// an automatic retry would only stretch the request past its timeout budget.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	var tlsConf *tls.Config
	if cfg.TLS {
		tlsConf = &tls.Config{InsecureSkipVerify: cfg.TLSSkipVerify}
	}
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		TLSConfig:    tlsConf,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		MaxRetries:   -1,
	})
}
