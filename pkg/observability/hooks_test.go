package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopEngineHooks{}
	e.OnBuild(ctx, 14, 14, 6, time.Millisecond)
	e.OnQueryStart(ctx, "search")
	e.OnQueryComplete(ctx, "search", 56000011, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "count")
	c.OnCacheMiss(ctx, "search")
	c.OnCacheSet(ctx, "count", 128)
	c.OnCacheError(ctx, "get", errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Engine() should return NoopEngineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customEngine := &testEngineHooks{}
	SetEngineHooks(customEngine)
	if Engine() != customEngine {
		t.Error("SetEngineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	SetEngineHooks(nil)
	SetCacheHooks(nil)
	if Engine() != customEngine || Cache() != customCache {
		t.Error("nil registration should keep existing hooks")
	}

	Reset()
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Reset should restore NoopEngineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset should restore NoopCacheHooks")
	}
}

func TestHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testEngineHooks{}
	SetEngineHooks(h)

	ctx := context.Background()
	Engine().OnQueryStart(ctx, "count")
	Engine().OnQueryComplete(ctx, "count", 26, time.Millisecond, nil)

	if h.starts != 1 || h.completes != 1 || h.lastValue != 26 {
		t.Errorf("hooks saw starts=%d completes=%d value=%d", h.starts, h.completes, h.lastValue)
	}
}

func TestConcurrentAccess(t *testing.T) {
	Reset()
	defer Reset()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetCacheHooks(&testCacheHooks{})
		}()
		go func() {
			defer wg.Done()
			Cache().OnCacheMiss(context.Background(), "count")
		}()
	}
	wg.Wait()
}

type testEngineHooks struct {
	starts    int
	completes int
	lastValue int64
}

func (h *testEngineHooks) OnBuild(context.Context, int, int, int, time.Duration) {}
func (h *testEngineHooks) OnQueryStart(context.Context, string)                  { h.starts++ }
func (h *testEngineHooks) OnQueryComplete(_ context.Context, _ string, v int64, _ time.Duration, _ error) {
	h.completes++
	h.lastValue = v
}

type testCacheHooks struct{}

func (testCacheHooks) OnCacheHit(context.Context, string)          {}
func (testCacheHooks) OnCacheMiss(context.Context, string)         {}
func (testCacheHooks) OnCacheSet(context.Context, string, int)     {}
func (testCacheHooks) OnCacheError(context.Context, string, error) {}
