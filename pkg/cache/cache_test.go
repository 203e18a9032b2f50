package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("svg"), time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get() = ok=%v err=%v, want hit", ok, err)
	}
	if string(data) != "svg" {
		t.Errorf("Get() = %q, want svg", data)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get() after Delete() = hit, want miss")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("expired entry still served")
	}
}

func TestNullCacheNeverStores(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache returned a hit")
	}
}

func TestDefaultKeyerDeterministic(t *testing.T) {
	k := NewDefaultKeyer()

	a := k.StatsKey("octocat", StatsKeyOpts{})
	b := k.StatsKey("octocat", StatsKeyOpts{})
	if a != b {
		t.Error("same inputs produced different stats keys")
	}

	if a == k.StatsKey("octocat", StatsKeyOpts{AllCommits: true}) {
		t.Error("AllCommits not part of the stats key")
	}
	if a == k.StatsKey("monalisa", StatsKeyOpts{}) {
		t.Error("username not part of the stats key")
	}

	c1 := k.CardKey("octocat", CardKeyOpts{StatsHash: "s", OptionsHash: "o1"})
	c2 := k.CardKey("octocat", CardKeyOpts{StatsHash: "s", OptionsHash: "o2"})
	if c1 == c2 {
		t.Error("options fingerprint not part of the card key")
	}
}

func TestScopedKeyerPrefixes(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "eu-1:")

	key := scoped.StatsKey("octocat", StatsKeyOpts{})
	if !strings.HasPrefix(key, "eu-1:") {
		t.Errorf("key %q missing scope prefix", key)
	}
	if strings.TrimPrefix(key, "eu-1:") != inner.StatsKey("octocat", StatsKeyOpts{}) {
		t.Error("scoped key does not wrap the inner key")
	}
}

func TestHashStable(t *testing.T) {
	if Hash([]byte("a")) != Hash([]byte("a")) {
		t.Error("hash not deterministic")
	}
	if Hash([]byte("a")) == Hash([]byte("b")) {
		t.Error("different inputs collided")
	}
	if len(Hash([]byte("a"))) != 64 {
		t.Error("hash is not full sha-256 hex")
	}
}
