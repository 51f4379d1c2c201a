package fortune

// MaxDetails is the number of detail columns a dataset may carry.
const MaxDetails = 5

// Fortune represents a single omikuji slip
type Fortune struct {
	ID        string   // Non-empty, unique by convention only
	Title     string   // Headline result (e.g., 大吉, 吉, 凶)
	LuckyItem string   // Category value from genre1
	Love      string   // Category value from genre2
	Study     string   // Category value from genre3
	Details   []string // Up to MaxDetails non-empty lines, in column order
}
