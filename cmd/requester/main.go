package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:5000/api", "api base url")
	maxID := flag.Int("max-id", 100, "upper bound for requested order ids")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(client, *baseURL, *maxID) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(client *http.Client, baseURL string, maxID int) {
	url := fmt.Sprintf("%s/orders/%d", baseURL, rand.Intn(maxID)+1)
	switch rand.Intn(10) {
	case 0:
		url = baseURL + "/orders/stats"
	case 1:
		url = baseURL + "/orders?q=soda"
	}

	resp, err := client.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
