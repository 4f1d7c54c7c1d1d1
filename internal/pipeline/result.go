package pipeline

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/quicklist/internal/ebay"
)

// Outcome tags a pipeline Result.
type Outcome string

// Pipeline outcomes.
const (
	OutcomeDone           Outcome = "done"
	OutcomeStepFailed     Outcome = "step_failed"
	OutcomePublishSkipped Outcome = "publish_skipped"
)

// Step names a pipeline step that talks to eBay.
type Step string

// Pipeline steps, in execution order.
const (
	StepCreateInventoryItem Step = "create_inventory_item"
	StepCreateOffer         Step = "create_offer"
	StepPublishOffer        Step = "publish_offer"
	stepDone                Step = "done"
)

// Result is the tagged outcome of one pipeline run. Step is "done" for the
// done and publish_skipped outcomes and the failing step otherwise.
type Result struct {
	Outcome   Outcome             `json:"outcome"`
	Step      Step                `json:"step"`
	SKU       string              `json:"sku,omitempty"`
	OfferID   string              `json:"offerId,omitempty"`
	ListingID string              `json:"listingId,omitempty"`
	Publish   *ebay.PublishResult `json:"publishResult,omitempty"`
	Status    int                 `json:"status,omitempty"`
	Body      any                 `json:"body,omitempty"`
	Reason    string              `json:"reason,omitempty"`
}

// Done reports a published offer.
func Done(sku, offerID string, pub *ebay.PublishResult) *Result {
	r := &Result{Outcome: OutcomeDone, Step: stepDone, SKU: sku, OfferID: offerID, Publish: pub}
	if pub != nil {
		r.ListingID = pub.ListingID
	}
	return r
}

// Skipped reports an offer created but not published.
func Skipped(sku, offerID, reason string) *Result {
	return &Result{Outcome: OutcomePublishSkipped, Step: stepDone, SKU: sku, OfferID: offerID, Reason: reason}
}

// Failed reports the step that eBay rejected, with its status and body.
func Failed(step Step, sku, offerID string, status int, body any) *Result {
	return &Result{
		Outcome: OutcomeStepFailed,
		Step:    step,
		SKU:     sku,
		OfferID: offerID,
		Status:  status,
		Body:    body,
	}
}

// Published reports whether the run ended with a live listing.
func (r *Result) Published() bool {
	return r.Outcome == OutcomeDone
}

// ValidationError lists required listing fields that were blank.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
