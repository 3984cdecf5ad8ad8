package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"tuninghub/internal/docstore"
	"tuninghub/internal/grpcserver"
	"tuninghub/pkg/utils"
)

func main() {
	cfg := utils.LoadAppConfig()
	utils.SetupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	openCtx, cancelOpen := context.WithTimeout(ctx, 15*time.Second)
	store, closeStore, err := docstore.Open(openCtx, cfg)
	cancelOpen()
	if err != nil {
		log.Fatalf("store open failed: %v", err)
	}
	defer closeStore()

	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("grpc listen failed: %v", err)
	}

	svc := grpcserver.NewServer(store)
	grpcServer := grpc.NewServer()
	svc.Register(grpcServer)
	go svc.Run(ctx)

	go func() {
		<-ctx.Done()
		log.Println("shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	log.Printf("gRPC health server listening on %s", cfg.GRPCAddr)
	if err := grpcServer.Serve(listener); err != nil {
		log.Fatalf("grpc server stopped: %v", err)
	}
}
