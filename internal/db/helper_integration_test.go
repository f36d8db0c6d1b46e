//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"
)

func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	repo := New(tx)
	return tx, ctx, repo
}

func assertNewsSortedByPublicationStart(t *testing.T, news []News) {
	t.Helper()
	for i := 1; i < len(news); i++ {
		if news[i-1].PublicationStart.Before(news[i].PublicationStart) {
			t.Fatalf("news not sorted by publicationStart DESC at %d: %v < %v",
				i, news[i-1].PublicationStart, news[i].PublicationStart)
		}
	}
}

func newsIDs(news []News) []int {
	ids := make([]int, len(news))
	for i := range news {
		ids[i] = news[i].ID
	}
	return ids
}
