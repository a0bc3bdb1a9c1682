package main

import (
	"bufio"
	"context"
	"encoding/json"
	"log"
	"net"
	"os"
	"time"

	"github.com/Dew789/Game-Community/internal/cluster"
	"github.com/Dew789/Game-Community/internal/config"
	"github.com/Dew789/Game-Community/internal/db"
	"github.com/Dew789/Game-Community/internal/repository"
	"github.com/Dew789/Game-Community/internal/service"
)

func main() {
	cfg := config.Load()
	db.InitMongo(cfg)

	addr := os.Getenv("SIM_NODE_ADDR")
	if addr == "" {
		addr = ":9001"
	}

	nodeID := os.Getenv("NODE_ID")
	if nodeID == "" {
		nodeID = "?"
	}

	log.Printf("[SIM NODE %s] escuchando en %s", nodeID, addr)

	gameRepo := repository.NewGameRepository()
	scoreRepo := repository.NewScoreRepository()
	recRepo := repository.NewRecommendRepository()

	// el nodo solo corre shards, no coordina ni cachea
	recSvc := service.NewRecommendService(gameRepo, scoreRepo, recRepo,
		cfg.RebuildK, cfg.RebuildWorkers, nil)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Println("accept error:", err)
			continue
		}
		go handleConn(nodeID, conn, recSvc)
	}
}

func handleConn(nodeID string, conn net.Conn, svc *service.RecommendService) {
	defer conn.Close()

	dec := json.NewDecoder(bufio.NewReader(conn))
	var task cluster.RebuildTask
	if err := dec.Decode(&task); err != nil {
		log.Printf("[SIM NODE %s] decode task error: %v", nodeID, err)
		return
	}

	log.Printf("[SIM NODE %s] tarea recibida: shard=%d/%d k=%d workers=%d",
		nodeID, task.ShardID, task.Shards, task.K, task.Workers)

	start := time.Now()

	res, err := svc.RebuildShard(context.Background(), &task)
	if err != nil {
		log.Printf("[SIM NODE %s] rebuild error: %v", nodeID, err)
		return
	}

	log.Printf("[SIM NODE %s] completado: shard=%d/%d filas=%d fallidos=%d tiempo=%s",
		nodeID, task.ShardID, task.Shards, res.Written, len(res.FailedGames), time.Since(start))

	resp := cluster.RebuildResponse{
		ShardID:     task.ShardID,
		Written:     res.Written,
		FailedGames: res.FailedGames,
	}

	if err := json.NewEncoder(conn).Encode(&resp); err != nil {
		log.Printf("[SIM NODE %s] encode resp error: %v", nodeID, err)
	}
}
