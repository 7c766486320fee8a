// Package jobs holds the background jobs pushed onto the queue.
package jobs

import (
	"fmt"

	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/mail"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/queue"
)

// OrderReceiptJobName is the registry key for OrderReceiptJob.
const OrderReceiptJobName = "jobs.OrderReceiptJob"

// OrderReceiptJob emails a receipt for a placed order.
type OrderReceiptJob struct {
	Email    string  `json:"email"`
	Title    string  `json:"title"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Handle implements queue.Job.
func (j OrderReceiptJob) Handle() error {
	body := fmt.Sprintf(
		"<p>Your order is in.</p><p>%d × %s — ₹%.2f total.</p>",
		j.Quantity, j.Title, j.Total,
	)
	return mail.To(j.Email).
		Subject("Order received: " + j.Title).
		Body(body).
		Send()
}

// RegisterJobs makes every job type known to the queue. Call once at
// boot before starting workers.
func RegisterJobs() {
	queue.Register(OrderReceiptJobName, func() queue.Job { return &OrderReceiptJob{} })
}
