// cmd/removeround/main.go
// Removes a round. Removing a processed round needs -force and recalculates
// every later round.
//
// Usage:
//
//	go run ./cmd/removeround -id 3124562 [-force]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/mkallio/discrating/config"
	bundb "github.com/mkallio/discrating/db"
	"github.com/mkallio/discrating/rating"
)

func main() {
	roundID := flag.Int64("id", 0, "Metrix round id (required)")
	force := flag.Bool("force", false, "remove even if the round was processed")
	flag.Parse()

	if *roundID == 0 {
		log.Fatal("-id is required")
	}

	ctx := context.Background()
	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	svc := rating.New(db)
	if err := svc.RemoveRound(ctx, *roundID, *force); err != nil {
		log.Fatal("remove round:", err)
	}
	fmt.Println("round removed")
}
