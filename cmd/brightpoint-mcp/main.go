package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/brightpoint-mcp/internal/config"
	"github.com/ironsheep/brightpoint-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("brightpoint-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.Debug() {
		log.Printf("Bright Point MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Defaults: threshold %d, exclusion radius %g, median radius %d",
			cfg.Detection.Threshold, cfg.Detection.ExclusionRadius, cfg.Detection.MedianRadius)
	}

	server.Version = Version
	srv := server.New(cfg)

	if len(os.Args) > 1 && os.Args[1] == "scan" {
		err := runScan(srv, os.Args[2:], os.Stdout)
		if errors.Is(err, errScanUsage) {
			fmt.Fprintln(os.Stderr, "Usage: brightpoint-mcp scan <image-path>")
			os.Exit(2)
		}
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}
		return
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

var errScanUsage = errors.New("scan takes exactly one image path")

// runScan runs one detection with the configured defaults on the single path
// in args and writes the result to w as indented JSON.
func runScan(srv *server.Server, args []string, w io.Writer) error {
	if len(args) != 1 {
		return errScanUsage
	}
	res, err := srv.Detect(server.DetectRequest{Path: args[0]})
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func printUsage() {
	fmt.Println("brightpoint-mcp - MCP server for bright point detection")
	fmt.Println()
	fmt.Println("Usage: brightpoint-mcp [options]")
	fmt.Println("       brightpoint-mcp scan <image-path>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  scan <path>      Detect bright points in one image and print JSON")
	fmt.Println()
	fmt.Println("Environment variables (also read from ./.env):")
	fmt.Println("  BRIGHTPOINT_LOG_LEVEL=debug         Enable debug logging")
	fmt.Println("  BRIGHTPOINT_THRESHOLD=75            Minimum contrast above background")
	fmt.Println("  BRIGHTPOINT_EXCLUSION_RADIUS=20     Merge distance and cooldown in pixels")
	fmt.Println("  BRIGHTPOINT_MEDIAN_RADIUS=40        Half-width of the background window")
	fmt.Println("  BRIGHTPOINT_MAX_SCANS=64            Scan results kept for later tool calls")
	fmt.Println()
	fmt.Println("Without a command the server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
