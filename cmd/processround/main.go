// cmd/processround/main.go
// Fetches one round's results from Metrix and processes them, cascading the
// recalculation through every later round.
//
// Usage:
//
//	go run ./cmd/processround -id 3124562 [-force]
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
	roundID := flag.Int64("id", 0, "Metrix round id (required)")
	force := flag.Bool("force", false, "reprocess an already processed round")
	flag.Parse()

	if *roundID == 0 {
		log.Fatal("-id is required")
	}

	ctx := context.Background()
	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	if err := bundb.CreateTables(ctx, db); err != nil {
		log.Fatal("create tables:", err)
	}

	mx := metrix.NewClient(cfg.MetrixURL)
	res, err := mx.RoundResult(ctx, *roundID)
	if err != nil {
		log.Fatal("fetch round:", err)
	}
	fmt.Printf("round: %s %s\n", res.Name, res.Datetime.Format("2006-01-02 15:04"))

	svc := rating.New(db)
	if err := svc.ProcessRound(ctx, *roundID, res, *force); err != nil {
		log.Fatal("process round:", err)
	}
	fmt.Println("round processed")
}
