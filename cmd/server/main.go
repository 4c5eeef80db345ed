package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"google.golang.org/grpc"

	"bazaar/api/grpcserver"
	pb "bazaar/api/pb"

	"bazaar/domain/auction"
	"bazaar/domain/ledger"
	"bazaar/infra/kafka"
	"bazaar/infra/sequence"
	"bazaar/infra/state"
	entrywal "bazaar/infra/wal/entry"
	exitwal "bazaar/infra/wal/exit"
	"bazaar/jobs/broadcaster"
	"bazaar/service"
)

func main() {
	var (
		addr     = flag.String("addr", ":50051", "gRPC listen address")
		walDir   = flag.String("wal-dir", "./wal_entry", "entry WAL directory")
		stateDir = flag.String("state-dir", "./state", "state store directory")
		exitDir  = flag.String("exit-dir", "./wal_exit", "outbox directory")
		brokers  = flag.String("brokers", "", "comma-separated kafka brokers (empty disables publishing)")
		topic    = flag.String("topic", "market.transfers", "kafka topic for transfer events")
	)
	flag.Parse()

	// ---------------- Entry WAL ----------------

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:         *walDir,
		SegmentSize: 2 * 1024 * 1024,
	})
	if err != nil {
		log.Fatalf("entry WAL init failed: %v", err)
	}
	defer entryWAL.Close()

	// ---------------- State store ----------------

	store, err := state.Open(*stateDir)
	if err != nil {
		log.Fatalf("state store init failed: %v", err)
	}
	defer store.Close()

	// ---------------- Exit outbox ----------------

	outbox, err := exitwal.Open(*exitDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer outbox.Close()

	// ---------------- Domain ----------------

	l := ledger.New()
	reg := auction.NewRegistry()
	seqGen := sequence.New(0)

	// ---------------- Service + recovery ----------------

	svc := service.NewMarketService(l, reg, seqGen, entryWAL, store, outbox)

	if err := svc.Recover(*walDir); err != nil {
		log.Fatalf("recovery failed: %v", err)
	}

	svc.StartCheckpointJob(30 * time.Second)

	// ---------------- Background jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *brokers != "" {
		brokerList := strings.Split(*brokers, ",")

		bc, err := broadcaster.New(outbox, brokerList, *topic, 2*time.Second)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		go bc.Run(ctx)

		announceStartup(ctx, brokerList, *topic, seqGen.Current())
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterMarketServer(
		grpcSrv,
		grpcserver.NewServer(svc),
	)

	fmt.Printf("🚀 Bazaar Engine running on %s\n", *addr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}

// announceStartup publishes a one-shot marker so downstream consumers know
// the engine came (back) up and from which sequence it resumed. Failure is
// non-fatal; the transfer stream itself goes through the outbox.
func announceStartup(ctx context.Context, brokers []string, topic string, seq uint64) {
	p := kafka.NewProducer(brokers, topic)
	defer p.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.PublishMarker(ctx, seq); err != nil {
		log.Printf("[kafka] startup marker not delivered: %v", err)
	}
}
