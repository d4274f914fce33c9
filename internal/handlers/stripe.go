// handlers/stripe.go - Stripe payment webhook
package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/webhook"
)

// StripeWebhook marks a project paid when its payment intent succeeds. The
// project id rides in the intent's metadata. Events are acknowledged with
// 200 even when processing fails, to keep Stripe from retrying forever.
func (h *Handler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("[stripe] reading body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var event stripe.Event
	if h.StripeWebhookSecret != "" {
		event, err = webhook.ConstructEvent(body, r.Header.Get("Stripe-Signature"), h.StripeWebhookSecret)
		if err != nil {
			log.Printf("[stripe] signature verification failed: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	} else {
		log.Printf("[stripe] no webhook secret configured, skipping signature verification")
		if err := json.Unmarshal(body, &event); err != nil {
			log.Printf("[stripe] parsing event: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	if event.Type != "payment_intent.succeeded" {
		log.Printf("[stripe] ignoring event type: %s", event.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	if event.Data == nil {
		log.Printf("[stripe] event %s carries no data", event.ID)
		w.WriteHeader(http.StatusOK)
		return
	}

	var intent struct {
		ID             string            `json:"id"`
		AmountReceived int64             `json:"amount_received"`
		Metadata       map[string]string `json:"metadata"`
	}
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		log.Printf("[stripe] parsing payment intent: %v", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	projectID, err := strconv.ParseInt(intent.Metadata["project_id"], 10, 64)
	if err != nil {
		log.Printf("[stripe] no usable project_id in metadata, skipping event %s", event.ID)
		w.WriteHeader(http.StatusOK)
		return
	}

	amount := float64(intent.AmountReceived) / 100.0
	if err := h.DB.RecordPayment(r.Context(), projectID, amount, intent.ID); err != nil {
		log.Printf("[stripe] recording payment for project %d: %v", projectID, err)
		w.WriteHeader(http.StatusOK)
		return
	}

	log.Printf("[stripe] project %d marked paid (%.2f, payment %s)", projectID, amount, intent.ID)
	w.WriteHeader(http.StatusOK)
}
