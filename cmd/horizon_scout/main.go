package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/consortium-kit/horizon-scout/api"
	"github.com/consortium-kit/horizon-scout/config"
	"github.com/consortium-kit/horizon-scout/internal/analyzer"
	"github.com/consortium-kit/horizon-scout/internal/clusters"
	"github.com/consortium-kit/horizon-scout/internal/crossmatch"
)

func main() {
	// Define command-line flags
	var (
		help         = flag.Bool("help", false, "Show help message")
		version      = flag.Bool("version", false, "Show version information")
		port         = flag.String("port", "8080", "Port to run the server on")
		clustersDir  = flag.String("clusters-dir", "./clusters", "Directory containing cluster documents (.txt, .md, .pdf)")
		taxonomyFile = flag.String("taxonomy", "", "Optional JSON file overriding the keyword taxonomy")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Horizon Scout - keyword scoring and cluster cross-matching for funding calls\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                               # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                   # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --clusters-dir ./wp-documents # Use a custom clusters directory\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Horizon Scout v1.0.0\n")
		fmt.Printf("Weighted keyword scoring, cluster document parsing, and cross-matching\n")
		return
	}

	// Load the taxonomy configuration
	taxonomy := config.DefaultTaxonomy()
	if *taxonomyFile != "" {
		loaded, err := config.LoadTaxonomy(*taxonomyFile)
		if err != nil {
			log.Fatalf("Failed to load taxonomy: %v", err)
		}
		taxonomy = loaded
		log.Printf("Using taxonomy overrides from %s", *taxonomyFile)
	}

	// Initialize the engines
	analyzerService, err := analyzer.NewService(taxonomy)
	if err != nil {
		log.Fatalf("Failed to initialize analyzer: %v", err)
	}

	log.Printf("Using clusters directory: %s", *clustersDir)
	manager := clusters.NewManager(*clustersDir)
	if err := manager.Load(); err != nil {
		log.Fatalf("Failed to load cluster documents: %v", err)
	}
	stats := manager.Stats()
	log.Printf("Loaded %d cluster documents (%d projects)", stats.TotalDocuments, stats.TotalProjects)

	matcher, err := crossmatch.NewMatcher(manager, taxonomy)
	if err != nil {
		log.Fatalf("Failed to initialize cross matcher: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, api.NewAPI(taxonomy, analyzerService, manager, matcher))

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
