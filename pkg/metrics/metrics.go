package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// SubscriptionDeductions counts billing deduction attempts by outcome
	SubscriptionDeductions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "subscription_deductions_total",
		Help: "Subscription fee deduction attempts by outcome",
	}, []string{"status"})

	// PayoutsProcessed counts completed payout requests
	PayoutsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payouts_processed_total",
		Help: "Payout requests processed by an admin",
	})

	// DepositsApproved counts approved deposit requests
	DepositsApproved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deposits_approved_total",
		Help: "Deposit requests approved by an admin",
	})

	// FlashSaleUnits counts units sold through flash sales
	FlashSaleUnits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "flash_sale_units_sold_total",
		Help: "Units sold through flash sale listings",
	})
)

func init() {
	prometheus.MustRegister(SubscriptionDeductions, PayoutsProcessed, DepositsApproved, FlashSaleUnits)
}
