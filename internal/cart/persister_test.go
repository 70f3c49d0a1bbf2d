package cart

import (
	"context"
	"fmt"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/zeevo-shop/zeevo-edge/pkg/db"
	"github.com/zeevo-shop/zeevo-edge/pkg/redis"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fakeCmdable struct {
	data map[string]string
}

func (f *fakeCmdable) Ping(context.Context) *goredis.StatusCmd {
	return goredis.NewStatusResult("PONG", nil)
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value any, ttl time.Duration) *goredis.StatusCmd {
	f.data[key] = fmt.Sprint(value)
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *goredis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeCmdable) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	for _, key := range keys {
		delete(f.data, key)
	}
	return goredis.NewIntResult(int64(len(keys)), nil)
}

func TestRedisPersisterRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := redis.NewWithStore(&fakeCmdable{data: map[string]string{}})
	persister, err := NewRedisPersister(client)
	if err != nil {
		t.Fatalf("building persister: %v", err)
	}

	items := []Item{
		{ID: "a", Title: "Anvil", Price: decimal.NewFromInt(100), Quantity: 2, StoreID: "s1"},
	}
	if err := persister.Save(ctx, "c1", items); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := persister.Load(ctx, "c1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "a" || loaded[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", loaded)
	}
	if !loaded[0].Price.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("price lost precision: %s", loaded[0].Price)
	}

	if err := persister.Delete(ctx, "c1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	loaded, err = persister.Load(ctx, "c1")
	if err != nil {
		t.Fatalf("load after delete failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty cart after delete, got %+v", loaded)
	}
}

func TestRedisPersisterMissingCartIsEmpty(t *testing.T) {
	client := redis.NewWithStore(&fakeCmdable{data: map[string]string{}})
	persister, err := NewRedisPersister(client)
	if err != nil {
		t.Fatalf("building persister: %v", err)
	}

	items, err := persister.Load(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", items)
	}
}

func newSQLiteClient(t *testing.T) *db.Client {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	return db.NewWithConn(conn)
}

func TestDBPersisterRoundTrip(t *testing.T) {
	ctx := context.Background()
	persister, err := NewDBPersister(ctx, newSQLiteClient(t))
	if err != nil {
		t.Fatalf("building persister: %v", err)
	}

	items := []Item{
		{ID: "a", Title: "Anvil", Price: decimal.NewFromInt(100), Quantity: 2, StoreID: "s1"},
		{ID: "b", Title: "Rope", Price: decimal.NewFromInt(50), Quantity: 1, StoreID: "s1"},
	}
	if err := persister.Save(ctx, "c1", items); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := persister.Load(ctx, "c1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 2 || loaded[0].ID != "a" || loaded[1].ID != "b" {
		t.Fatalf("expected insertion order preserved, got %+v", loaded)
	}

	// saving a smaller collection replaces the rows wholesale
	if err := persister.Save(ctx, "c1", items[:1]); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err = persister.Load(ctx, "c1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected wholesale replace, got %+v", loaded)
	}

	if err := persister.Delete(ctx, "c1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	loaded, _ = persister.Load(ctx, "c1")
	if len(loaded) != 0 {
		t.Fatalf("expected empty cart after delete, got %+v", loaded)
	}
}
