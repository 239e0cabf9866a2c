// Package health tracks readiness of the datasets and the policy engine and publishes it through
// the standard grpc.health.v1 service and the HTTP /healthz endpoint.
package health

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PolicyChecker is satisfied by the OPA evaluator.
type PolicyChecker interface {
	HealthCheck(ctx context.Context) error
}

type namedCheck struct {
	name  string
	check func(context.Context) error
}

// Checker runs dependency checks and mirrors the result into a grpc health server for the
// overall service ("") and each registered service name.
type Checker struct {
	checks   []namedCheck
	server   *health.Server
	services []string

	mu      sync.RWMutex
	lastErr error
	checked bool
}

// NewChecker returns a Checker reporting through server for services.
func NewChecker(server *health.Server, services ...string) *Checker {
	return &Checker{server: server, services: append([]string{""}, services...)}
}

// AddPinger registers a database (or anything with PingContext) under name. Nil is ignored.
func (c *Checker) AddPinger(name string, p Pinger) *Checker {
	if p != nil {
		c.checks = append(c.checks, namedCheck{name: name, check: p.PingContext})
	}
	return c
}

// AddPolicyChecker registers the policy engine. Nil is ignored.
func (c *Checker) AddPolicyChecker(name string, p PolicyChecker) *Checker {
	if p != nil {
		c.checks = append(c.checks, namedCheck{name: name, check: p.HealthCheck})
	}
	return c
}

// Check runs every check and returns the first failure.
func (c *Checker) Check(ctx context.Context) error {
	var firstErr error
	for _, nc := range c.checks {
		if err := nc.check(ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", nc.name, err)
		}
	}
	c.mu.Lock()
	c.lastErr, c.checked = firstErr, true
	c.mu.Unlock()
	c.publish(firstErr)
	return firstErr
}

// Status returns the result of the last Check; before the first run the service is not ready.
func (c *Checker) Status() (ready bool, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.checked && c.lastErr == nil, c.lastErr
}

func (c *Checker) publish(err error) {
	if c.server == nil {
		return
	}
	st := healthpb.HealthCheckResponse_SERVING
	if err != nil {
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	for _, svc := range c.services {
		c.server.SetServingStatus(svc, st)
	}
}

// Run checks every interval until ctx is done. Each check gets a timeout of half the interval.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		checkCtx, cancel := context.WithTimeout(ctx, interval/2)
		if err := c.Check(checkCtx); err != nil {
			log.Printf("health: not ready: %v", err)
		}
		cancel()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
