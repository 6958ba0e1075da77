package entities

import "time"

// FieldRecord is one monitored talhão for the current run. The id is
// positional (1-based insertion order) and never reused or renumbered.
// Loss fraction and alert are copied from the matched rule at creation
// time and not re-derived later.
type FieldRecord struct {
	ID                int       `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	AreaHectares      float64   `json:"area_hectares"`
	ExpectedYieldTons float64   `json:"expected_yield_tons"`
	Cultivar          string    `json:"cultivar"`
	StressLevel       string    `json:"stress_level"`
	LossFraction      float64   `json:"loss_fraction"`
	AlertMessage      string    `json:"alert_message"`
	EstimatedLoss     float64   `json:"estimated_loss_currency"`
}

// PlantingHistory is the row shape persisted to the relational sink.
// The row key is a surrogate: per-run field ids restart at 1 on every
// run, so they are stored as a plain indexed column.
type PlantingHistory struct {
	RowID         uint      `gorm:"primaryKey" json:"row_id"`
	FieldID       int       `gorm:"index" json:"field_id"`
	RecordedAt    time.Time `json:"recorded_at"`
	Cultivar      string    `json:"cultivar"`
	AreaHa        float64   `json:"area_ha"`
	StressLevel   string    `json:"stress_level"`
	LossFraction  float64   `json:"loss_fraction"`
	EstimatedLoss float64   `json:"estimated_loss"`
}
