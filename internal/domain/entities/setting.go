package entities

import "time"

// Platform setting keys
const (
	SettingDailySubscriptionFee   = "daily_subscription_fee"
	SettingDefaultCommissionRate  = "default_commission_rate"
	SettingManualDepositsEnabled  = "manual_deposits_enabled"
	SettingCODOnlyMode            = "cod_only_mode"
	SettingFreeSubscriptionMonths = "free_subscription_months"
)

// PlatformSetting is an admin-editable key/value configuration row
type PlatformSetting struct {
	Key       string    `json:"key" gorm:"primary_key"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SettingInput represents input for updating a platform setting
type SettingInput struct {
	Value string `json:"value" binding:"required"`
}
