package app

import (
	"testing"
	"time"

	"github.com/tradeforge/go-opensea/internal/testutil"
	"github.com/tradeforge/go-opensea/pkg/types"
	"go.uber.org/zap/zaptest"
)

// TestE2E_WatchHappyPath exercises the complete discovery flow against a
// fake OpenSea API.
//
// Flow:
// 1. Fake API starts with two active listings
// 2. New assembles the application against the fake, Run starts it
// 3. The watcher polls, both listings flow through the reporter into
//    the journal, and stay readable from the cache by hash
// 4. A third listing appears upstream and is picked up on a later poll
// 5. Cancelling the app context drives a clean shutdown.
func TestE2E_WatchHappyPath(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// === SETUP: fake API with two active listings ===
	hash1 := "0x541a9eb3962494caffeda36a495cc978c7ecc21c6b714aaabc678187d3da9ac7"
	hash2 := "0x9e833331babb4b42694d95b06dfed2d93d18b1e663318cab0c3b5d5fd72ce0f6"

	mockAPI := testutil.NewMockOpenSeaAPI([]types.Order{
		*testutil.CreateTestOrder(hash1),
		*testutil.CreateTestOrder(hash2),
	})
	defer mockAPI.Close()

	// === SETUP: application wired against the fake ===
	cfg := testConfig()
	cfg.BaseURL = mockAPI.URL
	cfg.WatchPollInterval = 20 * time.Millisecond

	a, err := New(cfg, logger, nil)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	// Swap the console printer for a journal the test can inspect
	journal := &stubStorage{}
	a.listingStorage = journal

	// === RUN ===
	runDone := make(chan error, 1)
	go func() {
		runDone <- a.Run()
	}()

	// === VERIFY: both listings discovered and recorded ===
	deadline := time.After(5 * time.Second)
	for journal.recorded() < 2 {
		select {
		case <-deadline:
			t.Fatalf("journal recorded %d listings, want 2", journal.recorded())
		case <-time.After(10 * time.Millisecond):
		}
	}

	// === VERIFY: discovered orders stay readable from the cache ===
	order := a.watcher.GetOrder(hash1)
	if order == nil {
		t.Fatalf("order %s not cached", hash1)
	}
	if order.Hash() != hash1 {
		t.Errorf("cached order hash = %s, want %s", order.Hash(), hash1)
	}
	if !order.IsFillable() {
		t.Error("cached order should be fillable")
	}

	// === INJECT: a third listing appears upstream ===
	hash3 := "0x2f0cb8b9b2e8bbe7a08cd3c7a6a47d4b8b8e6e47e1c4829eec03dcd1b7d2e7a5"
	mockAPI.AddOrder(*testutil.CreateTestOrder(hash3))

	deadline = time.After(5 * time.Second)
	for journal.recorded() < 3 {
		select {
		case <-deadline:
			t.Fatalf("journal recorded %d listings, want 3", journal.recorded())
		case <-time.After(10 * time.Millisecond):
		}
	}

	if a.watcher.SeenCount() != 3 {
		t.Errorf("watcher discovered %d listings, want 3", a.watcher.SeenCount())
	}
	if mockAPI.PollCount() < 2 {
		t.Errorf("fake API polled %d times, want at least 2", mockAPI.PollCount())
	}

	// === SHUTDOWN ===
	a.cancel()

	select {
	case err := <-runDone:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("app did not shut down after cancel")
	}
}
