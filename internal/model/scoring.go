package model

// Five elements (ngũ hành) a number can be classified under.
const (
	ElementKim  = "Kim"
	ElementMoc  = "Mộc"
	ElementThuy = "Thủy"
	ElementHoa  = "Hỏa"
	ElementTho  = "Thổ"
)

// ScoringResult is a feng shui verdict for one phone number. It is never stored.
type ScoringResult struct {
	Score          float64 `json:"score"`
	Element        string  `json:"element"`
	Interpretation string  `json:"interpretation"`
	Compatibility  string  `json:"compatibility"`
}

// ScoringSource says which path produced a result.
type ScoringSource string

const (
	ScoringSourceLive     ScoringSource = "live"
	ScoringSourceDemo     ScoringSource = "demo"
	ScoringSourceDegraded ScoringSource = "degraded"
)

// ScoringOutcome always carries a usable result; failures become the degraded
// source instead of an error.
type ScoringOutcome struct {
	Result ScoringResult `json:"result"`
	Source ScoringSource `json:"source"`
}
