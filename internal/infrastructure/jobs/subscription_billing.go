package jobs

import (
	"context"
	"log"
	"time"
)

// BillingRunner processes due subscription deductions in batches
type BillingRunner interface {
	ProcessDue(ctx context.Context, now time.Time, batchSize int) (int, error)
}

// SubscriptionBillingJob periodically sweeps subscriptions whose next
// deduction has come due
type SubscriptionBillingJob struct {
	runner    BillingRunner
	interval  time.Duration
	batchSize int
	stop      chan struct{}
}

func NewSubscriptionBillingJob(runner BillingRunner, interval time.Duration) *SubscriptionBillingJob {
	return &SubscriptionBillingJob{
		runner:    runner,
		interval:  interval,
		batchSize: 100,
		stop:      make(chan struct{}),
	}
}

func (j *SubscriptionBillingJob) Start(ctx context.Context) {
	log.Println("🕐 Starting subscription billing job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Subscription billing job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Subscription billing job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *SubscriptionBillingJob) Stop() {
	close(j.stop)
}

func (j *SubscriptionBillingJob) sweep(ctx context.Context) {
	// Drain everything due right now, not just the first batch
	for {
		processed, err := j.runner.ProcessDue(ctx, time.Now().UTC(), j.batchSize)
		if err != nil {
			log.Printf("❌ Error processing due subscriptions: %v", err)
			return
		}
		if processed == 0 {
			return
		}
		log.Printf("✅ Processed %d due subscriptions", processed)
		if processed < j.batchSize {
			return
		}
	}
}
