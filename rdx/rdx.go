// Package rdx holds the optional Redis pieces: a read-through cache for
// event pages and the pub/sub channel that feeds live sign-up feeds.
// Redis is an accelerator here, never a source of truth; everything
// degrades to direct repository calls when REDIS_ADDR is unset.
package rdx

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"campushub/models"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

const eventCacheTTL = 5 * time.Minute

// SignupChannel carries notices about new registrations and volunteers.
const SignupChannel = "signup-events"

// Init connects when REDIS_ADDR is configured. Returns false otherwise;
// all package functions are no-ops with a nil connection.
func Init(ctx context.Context) bool {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("Redis not configured; caching and live feed fan-out disabled")
		return false
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable: %v", err)
		return false
	}
	Conn = client
	return true
}

func eventKey(slug string) string { return "event:" + slug }

// CacheEvent stores an event page payload, best-effort.
func CacheEvent(ctx context.Context, e models.Event) {
	if Conn == nil {
		return
	}
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	if err := Conn.Set(ctx, eventKey(e.Slug), data, eventCacheTTL).Err(); err != nil {
		log.Printf("rdx: cache write for %s failed: %v", e.Slug, err)
	}
}

// CachedEvent returns a cached event, if any.
func CachedEvent(ctx context.Context, slug string) (models.Event, bool) {
	if Conn == nil {
		return models.Event{}, false
	}
	raw, err := Conn.Get(ctx, eventKey(slug)).Bytes()
	if err != nil {
		return models.Event{}, false
	}
	var e models.Event
	if err := json.Unmarshal(raw, &e); err != nil {
		return models.Event{}, false
	}
	return e, true
}

// InvalidateEvent drops a cached event after a save.
func InvalidateEvent(ctx context.Context, slug string) {
	if Conn == nil {
		return
	}
	Conn.Del(ctx, eventKey(slug))
}

// SignupNotice is what organizer dashboards see on the live feed.
type SignupNotice struct {
	Kind       string `json:"kind"` // "registration" or "volunteer"
	Slug       string `json:"slug"`
	EventTitle string `json:"eventTitle"`
	Name       string `json:"name"`
	TS         int64  `json:"ts"`
}

// PublishSignup fans a notice out to live feed workers. Failures are
// logged and dropped; the sign-up itself has already been stored.
func PublishSignup(ctx context.Context, n SignupNotice) {
	if Conn == nil {
		return
	}
	data, err := json.Marshal(n)
	if err != nil {
		return
	}
	if err := Conn.Publish(ctx, SignupChannel, data).Err(); err != nil {
		log.Printf("rdx: publish signup notice failed: %v", err)
	}
}

// SubscribeSignups opens the sign-up notice subscription, or nil when
// Redis is not configured.
func SubscribeSignups(ctx context.Context) *redis.PubSub {
	if Conn == nil {
		return nil
	}
	return Conn.Subscribe(ctx, SignupChannel)
}
