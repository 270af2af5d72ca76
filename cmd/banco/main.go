package main

import (
	"fmt"
	"os"

	"github.com/banco-simulado/internal/config"
	"github.com/banco-simulado/internal/data/memory"
	"github.com/banco-simulado/internal/logger"
	"github.com/banco-simulado/internal/menu"
	"github.com/banco-simulado/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig("banco")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg)

	// Initialize the in-memory stores. All state is process-lifetime
	// and re-seeded on every start.
	clients := memory.NewClientRepository()
	accounts := memory.NewAccountRepository()
	investments := memory.NewInvestmentRepository()

	// Initialize the service
	svc := service.NewBancoService(cfg, log, clients, accounts, investments)

	// Run the interactive menu until the user exits
	if err := menu.New(svc, os.Stdin, os.Stdout).Run(); err != nil {
		log.Error("menu session failed", "error", err)
		os.Exit(1)
	}
}
