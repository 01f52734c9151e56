package redis

import (
	"testing"
	"time"
)

func TestConfigOptions_URLWins(t *testing.T) {
	opts, err := Config{URL: "redis://:secret@cache:6380/2", Addr: "localhost:6379", DB: 0}.options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Addr != "cache:6380" || opts.DB != 2 || opts.Password != "secret" {
		t.Fatalf("got addr=%q db=%d password=%q", opts.Addr, opts.DB, opts.Password)
	}
	if opts.ClientName != clientName {
		t.Fatalf("client name = %q", opts.ClientName)
	}
}

func TestConfigOptions_DefaultTimeout(t *testing.T) {
	opts, err := Config{Addr: "localhost:6379"}.options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.DialTimeout != defaultTimeout || opts.ReadTimeout != defaultTimeout {
		t.Fatalf("timeouts = %v/%v", opts.DialTimeout, opts.ReadTimeout)
	}

	opts, _ = Config{Addr: "localhost:6379", Timeout: time.Second}.options()
	if opts.DialTimeout != time.Second {
		t.Fatalf("dial timeout = %v, want 1s", opts.DialTimeout)
	}
}

func TestConfigOptions_BadURL(t *testing.T) {
	if _, err := (Config{URL: "http://not-redis"}).options(); err == nil {
		t.Fatal("expected error for non-redis scheme")
	}
}
