package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/iiif-mcp/internal/config"
	"github.com/ironsheep/iiif-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("iiif-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("iiif-mcp - MCP server for IIIF image retrieval")
			fmt.Println()
			fmt.Println("Usage: iiif-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Configuration (TOML, optional):")
			fmt.Println("  ~/.config/iiif-mcp/config.toml, overridden by ./iiif-mcp.toml")
			fmt.Println("  Keys: max_dimension, max_area, quality, format")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IIIF_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logLevel := os.Getenv("IIIF_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("IIIF MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Limits: max dimension %dpx, max area %d", cfg.MaxDimension, cfg.MaxArea)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
