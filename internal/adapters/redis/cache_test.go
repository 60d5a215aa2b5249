package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "backoffice_console/internal/adapters/redis"
	"backoffice_console/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	in := []domain.Resource{{
		ID:   "r1",
		Type: domain.ResourceRoom,
		Room: &domain.Room{RoomNumber: "101", Capacity: 2, RoomType: "double", Price: 80},
	}}
	if err := c.Set(ctx, "resources:hotel", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out []domain.Resource
	ok, err := c.Get(ctx, "resources:hotel", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(out) != 1 || out[0].Room == nil || out[0].Room.RoomNumber != "101" {
		t.Fatalf("round trip: %+v", out)
	}

	if err := c.Del(ctx, "resources:hotel"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, err = c.Get(ctx, "resources:hotel", &out)
	if err != nil || ok {
		t.Fatalf("after del: ok=%v err=%v", ok, err)
	}
}

func TestCache_MissIsNotAnError(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)

	var dst domain.Company
	ok, err := c.Get(context.Background(), "nope", &dst)
	if err != nil {
		t.Fatalf("miss must not error: %v", err)
	}
	if ok {
		t.Fatalf("unexpected hit")
	}
}
