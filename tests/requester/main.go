package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	mrand "math/rand"
	"net/http"
	"sync"
	"time"
)

// requester hammers the order read path with a mix of known and unknown ids.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base url")
	orderID := flag.String("order", "", "order id readable by the buyer")
	buyerID := flag.String("buyer", "buyer-1", "buyer id sent in X-User-Id")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		var wg sync.WaitGroup
		for range mrand.Intn(10) {
			wg.Go(func() {
				id := *orderID
				if id == "" || mrand.Intn(5) == 0 {
					id = randomUUID()
				}
				doRequest(client, *baseURL+"/orders/"+id, *buyerID)
			})
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomUUID() string {
	var b [16]byte
	rand.Read(b[:])
	b[6] = b[6]&0x0f | 0x40
	b[8] = b[8]&0x3f | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

func doRequest(client *http.Client, url, buyerID string) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	req.Header.Set("X-User-Id", buyerID)

	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("GET", url, "->", resp.Status)
}
