package model

// Provider is the mobile network a number belongs to.
type Provider string

const (
	ProviderVinaphone Provider = "Vinaphone"
	ProviderViettel   Provider = "Viettel"
	ProviderMobifone  Provider = "Mobifone"
	ProviderOther     Provider = "Other"
)

func (p Provider) Valid() bool {
	switch p {
	case ProviderVinaphone, ProviderViettel, ProviderMobifone, ProviderOther:
		return true
	}
	return false
}

// SimStatus is the catalog availability of a listing.
type SimStatus string

const (
	SimStatusAvailable SimStatus = "available"
	SimStatusSold      SimStatus = "sold"
	SimStatusPending   SimStatus = "pending"
)

func (s SimStatus) Valid() bool {
	switch s {
	case SimStatusAvailable, SimStatusSold, SimStatusPending:
		return true
	}
	return false
}

const (
	MinScore = 0.0
	MaxScore = 10.0
)

// Sim is a sellable phone-number listing.
type Sim struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PhoneNumber string    `json:"phone_number" gorm:"type:varchar(32);uniqueIndex;not null"`
	Price       int64     `json:"price" gorm:"not null"`
	Provider    Provider  `json:"provider" gorm:"type:varchar(16);not null"`
	Category    []string  `json:"category" gorm:"serializer:json"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Score       *float64  `json:"score,omitempty"`
	Status      SimStatus `json:"status" gorm:"type:varchar(16);index;not null"`
}

func (Sim) TableName() string { return "sims" }

// ScoreInRange reports whether the optional score lies in [0, 10].
func (s *Sim) ScoreInRange() bool {
	return s.Score == nil || (*s.Score >= MinScore && *s.Score <= MaxScore)
}
