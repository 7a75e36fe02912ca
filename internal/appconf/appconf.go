package appconf

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment maps the -env flag value to an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}

// Config holds all the configuration settings for the application: the port
// the server listens on, the operating environment, and the search tunables
// that the route engine reads at startup.
type Config struct {
	Port               int
	Env                Environment
	ApiKeys            []string
	CORSAllowedOrigins []string
	Search             SearchTunables
}

// SearchTunables are the route-search knobs exposed through the config file.
// Zero values mean "use the engine default".
type SearchTunables struct {
	MinConnectionMinutes   int     `yaml:"min_connection_minutes" validate:"gte=0,lte=180"`
	TransferPenaltyMinutes int     `yaml:"transfer_penalty_minutes" validate:"gte=0,lte=180"`
	VisitedBucketMinutes   int     `yaml:"visited_bucket_minutes" validate:"gte=0,lte=120"`
	HorizonHours           int     `yaml:"horizon_hours" validate:"gte=0,lte=96"`
	AvgSpeedKmph           float64 `yaml:"avg_speed_kmph" validate:"gte=0,lte=400"`
	MaxIterations          int     `yaml:"max_iterations" validate:"gte=0"`
}
