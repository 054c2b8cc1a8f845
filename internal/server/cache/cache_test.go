package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New(time.Minute, time.Minute)

	c.Set("key", "value")
	got, found := c.Get("key")
	if !found {
		t.Fatal("expected key to be present")
	}
	if got != "value" {
		t.Errorf("got %v, want value", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(10*time.Millisecond, time.Minute)

	c.Set("key", "value")
	time.Sleep(20 * time.Millisecond)

	if _, found := c.Get("key"); found {
		t.Error("expected key to be expired")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New(time.Minute, time.Minute)

	c.Set("key", "value")
	c.Delete("key")

	if _, found := c.Get("key"); found {
		t.Error("expected key to be deleted")
	}
}

func TestCacheClear(t *testing.T) {
	c := New(time.Minute, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	if c.ItemCount() != 0 {
		t.Errorf("expected empty cache, got %d items", c.ItemCount())
	}
}
