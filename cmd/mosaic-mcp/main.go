package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/mosaic-tools-mcp/internal/imaging"
	"github.com/ironsheep/mosaic-tools-mcp/internal/server"
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
			fmt.Printf("mosaic-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("mosaic-tools-mcp - MCP server for mosaic, blur and overlay region edits")
			fmt.Println()
			fmt.Println("Usage: mosaic-tools-mcp [options]")
			fmt.Println("       mosaic-tools-mcp edit [edit flags]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Commands:")
			fmt.Println("  edit             Apply one edit to an image file and save it")
			fmt.Println("                   (run 'mosaic-tools-mcp edit -h' for flags)")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MOSAIC_MCP_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println("  MOSAIC_MCP_STRICT=true         Reject out-of-range parameters instead of clamping")
			fmt.Println("  MOSAIC_MCP_JPEG_QUALITY=95     Default JPEG quality for saved images")
			fmt.Println()
			fmt.Println("Without a command the server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := configFromEnv()

	if len(os.Args) > 1 && os.Args[1] == "edit" {
		if err := runEdit(os.Args[2:], cfg, os.Stdout, os.Stderr); err != nil {
			log.Fatalf("Edit failed: %v", err)
		}
		return
	}

	if cfg.Debug {
		log.Printf("Mosaic MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// configFromEnv reads the MOSAIC_MCP_* environment variables. Invalid values
// are logged and ignored.
func configFromEnv() server.Config {
	cfg := server.Config{
		Version:     Version,
		Debug:       os.Getenv("MOSAIC_MCP_LOG_LEVEL") == "debug",
		JPEGQuality: imaging.DefaultJPEGQuality,
	}

	if v := os.Getenv("MOSAIC_MCP_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("Ignoring MOSAIC_MCP_STRICT=%q: %v", v, err)
		} else {
			cfg.Strict = strict
		}
	}

	if v := os.Getenv("MOSAIC_MCP_JPEG_QUALITY"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 1 || q > 100 {
			log.Printf("Ignoring MOSAIC_MCP_JPEG_QUALITY=%q: want 1-100", v)
		} else {
			cfg.JPEGQuality = q
		}
	}

	return cfg
}
