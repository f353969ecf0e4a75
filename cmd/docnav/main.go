package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/docnav/docnav/api"
	"github.com/docnav/docnav/config"
	"github.com/docnav/docnav/internal/engine"
	"github.com/docnav/docnav/internal/persistence"
)

func main() {
	// Define command-line flags
	var (
		help         = flag.Bool("help", false, "Show help message")
		version      = flag.Bool("version", false, "Show version information")
		port         = flag.String("port", "8080", "Port to run the server on")
		contentDir   = flag.String("content-dir", "./content", "Root directory of the markdown content tree")
		manifestPath = flag.String("manifest", "./content/navigation.json", "Path to the navigation manifest")
		settingsPath = flag.String("settings", "", "Optional settings JSON file (flags override its content locations)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("docnav - documentation navigation and search service\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                                  # Serve ./content on port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                      # Custom port\n", os.Args[0])
		fmt.Printf("  %s --content-dir /srv/docs --manifest /srv/docs/nav.json\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("docnav v1.0.0\n")
		fmt.Printf("Markdown study-note browser with navigation-tree search\n")
		return
	}

	var settings config.Settings
	if *settingsPath != "" {
		if err := persistence.LoadJSON(*settingsPath, &settings); err != nil {
			log.Fatalf("Failed to load settings from %s: %v", *settingsPath, err)
		}
	}
	if settings.ContentDir == "" {
		settings.ContentDir = *contentDir
	}
	if settings.ManifestPath == "" {
		settings.ManifestPath = *manifestPath
	}
	settings.ApplyDefaults()

	log.Printf("Using content directory: %s", settings.ContentDir)
	log.Printf("Using navigation manifest: %s", settings.ManifestPath)

	browser, err := engine.NewEngine(settings)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestSizeLimitMiddleware(settings.MaxRequestBodyBytes))

	// Setup API routes
	api.SetupRoutes(router, browser)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
