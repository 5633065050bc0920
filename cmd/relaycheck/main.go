package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// Smoke test for the session stores and HTTP surface: drives the
// catalog, selection, and checkout endpoints against a running instance
// and verifies the Redis keys each one leaves behind.

type CheckResult struct {
	Name         string        `json:"name"`
	ResponseTime time.Duration `json:"response_time"`
	Success      bool          `json:"success"`
	Error        string        `json:"error,omitempty"`
}

type CheckSuite struct {
	BaseURL   string
	SessionID string
	Redis     *redis.Client
	Results   []CheckResult
}

func main() {
	redisClient := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   0,
	})
	defer redisClient.Close()

	ctx := context.Background()
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}
	fmt.Println("✅ Redis connection: OK")

	suite := &CheckSuite{
		BaseURL:   "http://localhost:8080/api/v1",
		SessionID: fmt.Sprintf("relaycheck-%d", time.Now().Unix()),
		Redis:     redisClient,
	}

	fmt.Println("🧪 Starting session store smoke test...")
	fmt.Printf("   session: %s\n", suite.SessionID)

	suite.run(ctx, "load seat catalog", func() error {
		return suite.get("/catalog/units/bus-ktm-pkr-001/seats")
	})

	suite.run(ctx, "unit selection key written", func() error {
		return suite.keyExists(ctx, fmt.Sprintf("busbooking:relay:session:%s:unit", suite.SessionID))
	})

	suite.run(ctx, "toggle a seat", func() error {
		return suite.post("/selection/bus-ktm-pkr-001/toggle", map[string]string{"seat_number": "A1"})
	})

	suite.run(ctx, "selection key written", func() error {
		return suite.keyExists(ctx, fmt.Sprintf("busbooking:selection:session:%s", suite.SessionID))
	})

	suite.run(ctx, "clear selection", func() error {
		return suite.delete("/selection/bus-ktm-pkr-001")
	})

	suite.report()
}

func (s *CheckSuite) run(ctx context.Context, name string, fn func() error) {
	start := time.Now()
	err := fn()
	result := CheckResult{
		Name:         name,
		ResponseTime: time.Since(start),
		Success:      err == nil,
	}
	if err != nil {
		result.Error = err.Error()
		fmt.Printf("  ❌ %s: %v\n", name, err)
	} else {
		fmt.Printf("  ✅ %s (%v)\n", name, result.ResponseTime)
	}
	s.Results = append(s.Results, result)
}

func (s *CheckSuite) keyExists(ctx context.Context, key string) error {
	n, err := s.Redis.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("key %s not found", key)
	}
	return nil
}

func (s *CheckSuite) get(endpoint string) error {
	req, err := http.NewRequest(http.MethodGet, s.BaseURL+endpoint, nil)
	if err != nil {
		return err
	}
	return s.do(req)
}

func (s *CheckSuite) post(endpoint string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, s.BaseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

func (s *CheckSuite) delete(endpoint string) error {
	req, err := http.NewRequest(http.MethodDelete, s.BaseURL+endpoint, nil)
	if err != nil {
		return err
	}
	return s.do(req)
}

func (s *CheckSuite) do(req *http.Request) error {
	req.Header.Set("X-Session-ID", s.SessionID)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s returned %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	return nil
}

func (s *CheckSuite) report() {
	passed := 0
	for _, r := range s.Results {
		if r.Success {
			passed++
		}
	}
	fmt.Printf("\n📊 %d/%d checks passed\n", passed, len(s.Results))
	if passed == len(s.Results) {
		fmt.Println("🎉 Session store smoke test complete!")
	}
}
