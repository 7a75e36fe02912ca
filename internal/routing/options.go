package routing

// Preference selects the ranking criterion for returned itineraries.
type Preference string

const (
	PreferenceFastest        Preference = "fastest"
	PreferenceCheapest       Preference = "cheapest"
	PreferenceLeastTransfers Preference = "least_transfers"
)

func (p Preference) valid() bool {
	switch p {
	case PreferenceFastest, PreferenceCheapest, PreferenceLeastTransfers:
		return true
	}
	return false
}

const (
	DefaultMaxTransfers   = 2
	MaxPermittedTransfers = 3
	DefaultTopK           = 5
	MaxTopK               = 10
)

// Options are the per-search parameters supplied by the caller.
type Options struct {
	MaxTransfers int
	Preference   Preference
	TopK         int
	// SeatClassFilter restricts boarding to trains carrying the given seat
	// class code (e.g. "SL", "3A"). Empty means no restriction.
	SeatClassFilter string
}

func DefaultOptions() Options {
	return Options{
		MaxTransfers: DefaultMaxTransfers,
		Preference:   PreferenceFastest,
		TopK:         DefaultTopK,
	}
}

// withDefaults fills zero values without touching explicitly set ones.
// MaxTransfers 0 is a meaningful value (direct trains only) and is kept.
func (o Options) withDefaults() Options {
	if o.Preference == "" {
		o.Preference = PreferenceFastest
	}
	if o.TopK == 0 {
		o.TopK = DefaultTopK
	}
	return o
}

func (o Options) validate(inputErr *InputError) {
	if o.MaxTransfers < 0 {
		inputErr.add("maxTransfers", "must be non-negative")
	}
	if o.MaxTransfers > MaxPermittedTransfers {
		inputErr.add("maxTransfers", "must be at most 3")
	}
	if !o.Preference.valid() {
		inputErr.add("preference", "must be one of fastest, cheapest, least_transfers")
	}
	if o.TopK < 0 {
		inputErr.add("topK", "must be non-negative")
	}
	if o.TopK > MaxTopK {
		inputErr.add("topK", "must be at most 10")
	}
}
