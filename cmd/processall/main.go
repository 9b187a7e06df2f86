// cmd/processall/main.go
// Processes every round still awaiting results, oldest first. With -force it
// refetches and reprocesses every round, rebuilding the full rating history.
//
// Usage:
//
//	go run ./cmd/processall [-force]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/mkallio/discrating/config"
	bundb "github.com/mkallio/discrating/db"
	"github.com/mkallio/discrating/metrix"
	"github.com/mkallio/discrating/rating"
)

func main() {
	force := flag.Bool("force", false, "reprocess already processed rounds too")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	if err := bundb.CreateTables(ctx, db); err != nil {
		log.Fatal("create tables:", err)
	}

	svc := rating.New(db)
	mx := metrix.NewClient(cfg.MetrixURL)

	ids, err := svc.PendingRoundIDs(ctx, *force)
	if err != nil {
		log.Fatal("pending rounds:", err)
	}

	for _, id := range ids {
		res, err := mx.RoundResult(ctx, id)
		if err != nil {
			log.Fatalf("fetch round %d: %v", id, err)
		}
		fmt.Printf("round %d: %s %s\n", id, res.Name, res.Datetime.Format("2006-01-02 15:04"))
		if err := svc.ProcessRound(ctx, id, res, *force); err != nil {
			log.Fatalf("process round %d: %v", id, err)
		}
	}
	fmt.Printf("processed %d rounds\n", len(ids))
}
