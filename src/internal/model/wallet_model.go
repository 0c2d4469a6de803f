package model

import "time"

type SettleRiderCODRequest struct {
	RiderID         string `json:"-" validate:"required"`
	AmountCollected int64  `json:"amountCollected" validate:"required,gt=0"`
	EarningsPaid    int64  `json:"earningsPaid" validate:"gte=0"`
	Reference       string `json:"reference,omitempty"`
	ProcessedBy     string `json:"-" validate:"required"`
}

// RiderSnapshot is returned after a COD settlement so the operator sees the
// post-settlement position in one read.
type RiderSnapshot struct {
	RiderID          string `json:"riderId"`
	CODBalance       int64  `json:"codBalance"`
	EarningsBalance  int64  `json:"earningsBalance"`
	SettlementStatus string `json:"settlementStatus"`
	EntriesSettled   int64  `json:"entriesSettled"`
}

type GetWalletRequest struct {
	ID string `json:"id" validate:"required"`
}

type RequestPayoutRequest struct {
	EntityType  string `json:"entityType" validate:"required,oneof=restaurant rider"`
	EntityID    string `json:"entityId" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	ProcessedBy string `json:"-" validate:"required"`
}

type MarkPayoutPaidRequest struct {
	PayoutID    string `json:"-" validate:"required"`
	BankRef     string `json:"bankRef" validate:"required"`
	ProcessedBy string `json:"-" validate:"required"`
}

type FinanceOverview struct {
	TotalOrderVolume     int64     `json:"totalOrderVolume"`
	TotalCommission      int64     `json:"totalCommission"`
	TotalDeliveryFees    int64     `json:"totalDeliveryFees"`
	TotalRiderPay        int64     `json:"totalRiderPay"`
	TotalPlatformProfit  int64     `json:"totalPlatformProfit"`
	OutstandingCOD       int64     `json:"outstandingCod"`
	PendingPayouts       int64     `json:"pendingPayouts"`
	SettledOrders        int64     `json:"settledOrders"`
	GeneratedAt          time.Time `json:"generatedAt"`
}

type UpdateSettingsRequest struct {
	DefaultCommissionRate   *float64 `json:"defaultCommissionRate,omitempty" validate:"omitempty,gte=0,lte=100"`
	BaseDeliveryFee         *int64   `json:"baseDeliveryFee,omitempty" validate:"omitempty,gte=0"`
	PerKmDeliveryRate       *int64   `json:"perKmDeliveryRate,omitempty" validate:"omitempty,gte=0"`
	MaxDeliveryFee          *int64   `json:"maxDeliveryFee,omitempty" validate:"omitempty,gte=0"`
	ServiceFee              *int64   `json:"serviceFee,omitempty" validate:"omitempty,gte=0"`
	TaxEnabled              *bool    `json:"taxEnabled,omitempty"`
	TaxRate                 *float64 `json:"taxRate,omitempty" validate:"omitempty,gte=0,lte=100"`
	RiderBasePay            *int64   `json:"riderBasePay,omitempty" validate:"omitempty,gte=0"`
	RiderPerKmRate          *int64   `json:"riderPerKmRate,omitempty" validate:"omitempty,gte=0"`
	RiderPlatformFeePercent *float64 `json:"riderPlatformFeePercent,omitempty" validate:"omitempty,gte=0,lte=100"`
	DefaultDistanceKm       *float64 `json:"defaultDistanceKm,omitempty" validate:"omitempty,gt=0"`
	CODThreshold            *int64   `json:"codThreshold,omitempty" validate:"omitempty,gt=0"`
	MaintenanceMode         *bool    `json:"maintenanceMode,omitempty"`
}
