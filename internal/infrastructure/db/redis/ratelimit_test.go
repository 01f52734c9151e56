package redis

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// memServer answers the handful of commands used here without a network
// round trip, by short-circuiting the client's hook chain.
type memServer struct {
	mu      sync.Mutex
	strings map[string]string
	counts  map[string]int64
	ttls    map[string]time.Duration
	keys    []string
}

func newMemClient(t *testing.T) (*redis.Client, *memServer) {
	t.Helper()
	srv := &memServer{
		strings: map[string]string{},
		counts:  map[string]int64{},
		ttls:    map[string]time.Duration{},
	}
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	client.AddHook(srv)
	t.Cleanup(func() { _ = client.Close() })
	return client, srv
}

func (s *memServer) DialHook(next redis.DialHook) redis.DialHook {
	return func(context.Context, string, string) (net.Conn, error) {
		return nil, fmt.Errorf("memServer: no network")
	}
}

func (s *memServer) ProcessHook(redis.ProcessHook) redis.ProcessHook {
	return func(_ context.Context, cmd redis.Cmder) error {
		s.apply(cmd)
		return cmd.Err()
	}
}

func (s *memServer) ProcessPipelineHook(redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(_ context.Context, cmds []redis.Cmder) error {
		for _, cmd := range cmds {
			s.apply(cmd)
		}
		return nil
	}
}

func (s *memServer) apply(cmd redis.Cmder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	args := cmd.Args()
	key := ""
	if len(args) > 1 {
		key, _ = args[1].(string)
	}
	switch cmd.Name() {
	case "incr":
		s.keys = append(s.keys, key)
		s.counts[key]++
		cmd.(*redis.IntCmd).SetVal(s.counts[key])
	case "expire":
		set := false
		if _, ok := s.ttls[key]; !ok {
			s.ttls[key] = time.Duration(toInt64(args[2])) * time.Second
			set = true
		}
		cmd.(*redis.BoolCmd).SetVal(set)
	case "pttl":
		ttl, ok := s.ttls[key]
		if !ok {
			ttl = -1
		}
		cmd.(*redis.DurationCmd).SetVal(ttl)
	case "del":
		_, hadCount := s.counts[key]
		_, hadString := s.strings[key]
		delete(s.counts, key)
		delete(s.ttls, key)
		delete(s.strings, key)
		var n int64
		if hadCount || hadString {
			n = 1
		}
		cmd.(*redis.IntCmd).SetVal(n)
	case "get":
		v, ok := s.strings[key]
		if !ok {
			cmd.SetErr(redis.Nil)
			return
		}
		cmd.(*redis.StringCmd).SetVal(v)
	case "set":
		s.strings[key] = fmt.Sprint(args[2])
		cmd.(*redis.StatusCmd).SetVal("OK")
	}
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}

func TestRateLimiter_RejectsAfterMaxAndResets(t *testing.T) {
	client, srv := newMemClient(t)
	limiter := NewRateLimiter(client, "login", 5, 15*time.Minute)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		res, err := limiter.Check(ctx, "203.0.113.7")
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		if !res.Allowed || res.Remaining != 5-i {
			t.Fatalf("attempt %d: got %+v", i, res)
		}
	}

	res, err := limiter.Check(ctx, "203.0.113.7")
	if err != nil {
		t.Fatalf("sixth attempt: %v", err)
	}
	if res.Allowed || res.Remaining != 0 || res.RetryAfter != 15*time.Minute {
		t.Fatalf("sixth attempt should be rejected, got %+v", res)
	}
	if srv.keys[0] != "ratelimit:login:203.0.113.7" {
		t.Fatalf("unexpected key %q", srv.keys[0])
	}

	other, _ := limiter.Check(ctx, "198.51.100.2")
	if !other.Allowed || other.Remaining != 4 {
		t.Fatalf("identifiers must not share a counter, got %+v", other)
	}

	if err := limiter.Reset(ctx, "203.0.113.7"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	res, _ = limiter.Check(ctx, "203.0.113.7")
	if !res.Allowed || res.Remaining != 4 {
		t.Fatalf("after reset got %+v", res)
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	client, _ := newMemClient(t)
	limiter := NewRateLimiter(client, "leads", 0, 0)
	if limiter.max <= 0 || limiter.window <= 0 {
		t.Fatalf("defaults not applied: max=%d window=%v", limiter.max, limiter.window)
	}
}

func TestLeadDedup_RememberThenLookup(t *testing.T) {
	client, _ := newMemClient(t)
	dedup := NewLeadDedup(client, 0)
	ctx := context.Background()

	id, err := dedup.Lookup(ctx, "abc")
	if err != nil || id != "" {
		t.Fatalf("unseen fingerprint: id=%q err=%v", id, err)
	}
	if err := dedup.Remember(ctx, "abc", "lead-7"); err != nil {
		t.Fatalf("remember: %v", err)
	}
	id, err = dedup.Lookup(ctx, "abc")
	if err != nil || id != "lead-7" {
		t.Fatalf("seen fingerprint: id=%q err=%v", id, err)
	}
	if dedup.ttl != defaultDedupTTL {
		t.Fatalf("ttl = %v", dedup.ttl)
	}
}
