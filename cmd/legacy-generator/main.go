package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

// legacyOrder заказ в плоском формате веб-клиента.
type legacyOrder struct {
	ListNo        string `json:"listNo"`
	OrdererName   string `json:"ordererName"`
	ProductList   string `json:"productList"`
	Quantity      int    `json:"quantity"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	InvoiceStatus string `json:"invoiceStatus"`
}

var (
	orderers = []string{"Ahmet Yılmaz", "Mehmet Kaya", "Ayşe Demir", "Fatma Çelik", "Bakkal Hasan"}
	products = []string{
		"ideal pet şişe 0.33",
		"ideal pet şişe 0.50",
		"ideal pet şişe 5l",
		"ideal pet şişe 19",
		"limonata",
		"sade soda",
		"şalgam",
	}
	statuses         = []string{"Hazırlandı", "Teslim Edildi", "Teslim Edilmedi"}
	paymentStatuses  = []string{"Tahsil Edildi", "Tahsil Edilmedi"}
	invoiceStatuses  = []string{"Fatura Kesildi", "Fatura İstemiyor", "Fatura Kesilecek"}
	brokenOrderRatio = 10
)

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

func generateLegacyOrder(listNo int) legacyOrder {
	o := legacyOrder{
		ListNo:        strconv.Itoa(listNo),
		OrdererName:   pick(orderers),
		ProductList:   pick(products),
		Quantity:      rand.Intn(20) + 1,
		Status:        pick(statuses),
		PaymentStatus: pick(paymentStatuses),
		InvoiceStatus: pick(invoiceStatuses),
	}

	// часть заказов заведомо битая, чтобы проверить DLQ
	if rand.Intn(brokenOrderRatio) == 0 {
		o.ProductList = "bilinmeyen ürün"
	}
	return o
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "legacy-orders", "legacy orders topic")
	interval := flag.Duration("interval", 2*time.Second, "delay between orders")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:                  *topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for listNo := 1; ; {
		select {
		case <-ticker.C:
			order := generateLegacyOrder(listNo)
			data, err := json.Marshal(order)
			if err != nil {
				log.Println("failed to marshal order:", err)
				continue
			}
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to write order:", err)
				continue
			}
			log.Println("legacy order generated", order.ListNo, order.OrdererName, order.ProductList)
			listNo++
		case <-ctx.Done():
			return
		}
	}
}
