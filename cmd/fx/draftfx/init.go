package draftfx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"tripwise/internal/infra"
	"tripwise/internal/wizard"
)

var Module = fx.Provide(
	provideDraftStore)

func provideDraftStore() wizard.DraftStore {
	ttl := draftTTL()
	if client := infra.InitRedis(); client != nil {
		return wizard.NewRedisDraftStore(client, ttl)
	}
	log.Println("REDIS_URL not set, keeping wizard drafts in process memory")
	return wizard.NewMemoryDraftStore(ttl)
}

func draftTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("DRAFT_TTL_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}
