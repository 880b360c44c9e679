package helpers

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// WaitForServer polls addr's /health endpoint until it answers 200 or the
// attempts run out.
func WaitForServer(addr string, attempts int, interval time.Duration) error {
	url := strings.TrimRight(addr, "/") + "/health"
	for i := 0; i < attempts; i++ {
		resp, err := http.Get(url)
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return nil
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(interval)
	}
	return fmt.Errorf("server at %s not healthy after %d attempts", addr, attempts)
}

// NormalizeAddr turns a listen address such as ":8080" into a base URL.
func NormalizeAddr(addr string) string {
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return addr
	}
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
