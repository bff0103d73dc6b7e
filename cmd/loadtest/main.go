package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type userCreateRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	City string `json:"city"`
}

type userResponse struct {
	User struct {
		UserID int64 `json:"user_id"`
	} `json:"user"`
}

var (
	cities = []string{"Moscow", "Ekaterinburg", "Kazan", "Novosibirsk"}
	users  []int64
	httpc  = &http.Client{Timeout: 10 * time.Second}
)

func createUser(targetHost string, body userCreateRequest) (int64, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	resp, err := httpc.Post(targetHost+"/users/add", "application/json", bytes.NewReader(b))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("users/add returned %d", resp.StatusCode)
	}

	var created userResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, err
	}
	return created.User.UserID, nil
}

// Seed
func seedData(targetHost string, count int) error {
	log.Println("Seeding: creating users...")

	for i := 1; i <= count; i++ {
		id, err := createUser(targetHost, userCreateRequest{
			Name: fmt.Sprintf("User_%d", i),
			Age:  18 + rand.Intn(60),
			City: cities[rand.Intn(len(cities))],
		})
		if err != nil {
			return err
		}
		users = append(users, id)
		time.Sleep(10 * time.Millisecond)
	}

	log.Printf("Seed completed: users=%d\n", len(users))
	return nil
}

// Targeter
func makeTargeter(targetHost string) vegeta.Targeter {
	jsonHeader := map[string][]string{"Content-Type": {"application/json"}}

	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 70% GET users/get
		if r < 0.70 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/users/get?user_id=%d", targetHost, users[rand.Intn(len(users))])
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 25% POST users/setCity
		if r < 0.95 {
			body, err := json.Marshal(map[string]any{
				"user_id": users[rand.Intn(len(users))],
				"city":    cities[rand.Intn(len(cities))],
			})
			if err != nil {
				return err
			}
			t.Method = http.MethodPost
			t.URL = targetHost + "/users/setCity"
			t.Body = body
			t.Header = jsonHeader
			return nil
		}

		// 5% POST users/deactivateOlderThan
		body, err := json.Marshal(map[string]int{"age_limit": 60 + rand.Intn(20)})
		if err != nil {
			return err
		}
		t.Method = http.MethodPost
		t.URL = targetHost + "/users/deactivateOlderThan"
		t.Body = body
		t.Header = jsonHeader
		return nil
	}
}

// Attack
func runAttack(targetHost string, rps int, duration time.Duration) {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter(targetHost)

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	targetHost := flag.String("target", "http://localhost:8080", "base url of the service")
	rps := flag.Int("rps", 20, "requests per second")
	duration := flag.Duration("duration", time.Minute, "attack duration")
	seed := flag.Int("users", 200, "number of users to seed")
	flag.Parse()

	if err := seedData(*targetHost, *seed); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack(*targetHost, *rps, *duration)
}
