package utils

import (
	"coursehub/config"
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/go-resty/resty/v2"
)

// GatewayOrder is the gateway's order object for a checkout
type GatewayOrder struct {
	OrderID string `json:"id"`
	Status  string `json:"status"`
	Raw     []byte `json:"-"`
}

// GatewayPayment is the gateway's captured-payment object
type GatewayPayment struct {
	PaymentID string `json:"id"`
	OrderID   string `json:"order_id"`
	Status    string `json:"status"` // created, authorized, captured, failed
	Method    string `json:"method"`
	Raw       []byte `json:"-"`
}

// minorUnits converts a price to the gateway's smallest currency unit,
// rounding to the nearest unit. A plain int64 cast truncates and undercharges
// prices like 19.99 by one paisa.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateGatewayOrder opens an order on the payment gateway. Amount is in the
// smallest currency unit, per the gateway's contract.
func CreateGatewayOrder(amount float64, currency, receipt string) (*GatewayOrder, error) {
	client := resty.New()

	resp, err := client.R().
		SetBasicAuth(config.AppConfig.PaymentApiKey, config.AppConfig.PaymentSecretKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":   minorUnits(amount),
			"currency": currency,
			"receipt":  receipt,
		}).
		Post(config.AppConfig.PaymentApiURL + "/orders")
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %v", err)
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Gateway order create failed: %s", resp.String())
		return nil, fmt.Errorf("payment gateway returned %d", resp.StatusCode())
	}

	var order GatewayOrder
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %v", err)
	}
	order.Raw = resp.Body()

	return &order, nil
}

// FetchGatewayPayment fetches a payment object from the gateway to verify a
// client-reported capture
func FetchGatewayPayment(paymentID string) (*GatewayPayment, error) {
	client := resty.New()

	resp, err := client.R().
		SetBasicAuth(config.AppConfig.PaymentApiKey, config.AppConfig.PaymentSecretKey).
		Get(config.AppConfig.PaymentApiURL + "/payments/" + paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gateway payment: %v", err)
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Gateway payment fetch failed: %s", resp.String())
		return nil, fmt.Errorf("payment gateway returned %d", resp.StatusCode())
	}

	var payment GatewayPayment
	if err := json.Unmarshal(resp.Body(), &payment); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %v", err)
	}
	payment.Raw = resp.Body()

	return &payment, nil
}
