package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Smoke test against a running server (see cmd/server). Exits non-zero on failure.

func main() {
	baseURL := os.Getenv("CHRONICLE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	fmt.Println("1. Health check...")
	if _, ok := get(baseURL + "/healthz"); !ok {
		fmt.Println("FAILED: healthz")
		os.Exit(1)
	}

	fmt.Println("2. Fetching events (de)...")
	body, ok := get(baseURL + "/events?lang=de")
	if !ok {
		fmt.Println("FAILED: events")
		os.Exit(1)
	}

	var events struct {
		Events []string `json:"events"`
	}
	if err := json.Unmarshal(body, &events); err != nil {
		fmt.Printf("FAILED: events response is not JSON: %v\n", err)
		os.Exit(1)
	}
	for _, e := range events.Events {
		if !strings.HasPrefix(e, "1 EVEN ") || !strings.Contains(e, "\n2 TYPE ") {
			fmt.Printf("FAILED: malformed event record:\n%s\n", e)
			os.Exit(1)
		}
	}
	fmt.Printf("   %d events\n", len(events.Events))

	fmt.Println("3. Version...")
	body, ok = get(baseURL + "/version")
	if !ok {
		fmt.Println("FAILED: version")
		os.Exit(1)
	}
	fmt.Printf("   %s\n", body)

	fmt.Println("Integration Test PASSED")
}

func get(url string) ([]byte, bool) {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		fmt.Printf("Request error: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Status %d: %s\n", resp.StatusCode, string(body))
		return nil, false
	}
	return body, true
}
