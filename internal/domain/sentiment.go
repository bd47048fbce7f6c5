package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// SentimentMin and SentimentMax bound the canonical score range.
	SentimentMin = -1.0
	SentimentMax = 1.0
	// SentimentTolerance is the band beyond the canonical range treated as
	// floating point noise and clamped. Anything further out is rejected.
	SentimentTolerance = 0.05
)

// Sector groups tradable assets under one aggregate sentiment score. The
// sector id doubles as the ETF symbol used when evaluating realized moves.
type Sector struct {
	SectorID     string
	Name         string
	CurrentScore float64
	ScoreAsOf    *time.Time
	Universe     []Asset
}

type AssetClass string

const (
	AssetClassEquity AssetClass = "equity"
	AssetClassETF    AssetClass = "etf"
	AssetClassCrypto AssetClass = "crypto"
)

// Asset is immutable reference data.
type Asset struct {
	Symbol   string
	SectorID string
	Class    AssetClass
}

// SentimentReading is one scoring event. Append-only.
type SentimentReading struct {
	SentimentReadingID uuid.UUID
	SectorID           string
	RawValue           float64
	NormalizedValue    float64
	PromptVersionID    uuid.UUID
	CreatedAt          time.Time
}
