package main

import (
	"budget-server/confs"
	"budget-server/db"
	"budget-server/server"
	"log"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	srv := server.NewServer(database)
	if err := srv.Start(confs.ServerAddr()); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
