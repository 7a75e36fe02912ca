package routing

import (
	"time"

	"railplan.onerail.org/internal/models"
)

// searchState is one node of the time-expanded graph: a traveler at a
// station at an instant, either aboard a train or awaiting one. States live
// only for the duration of a single search invocation.
type searchState struct {
	station *models.Station
	arrival time.Time

	// train and stop are set while riding; a nil train means the traveler is
	// awaiting departure (only the initial state, all expansions board).
	train *models.Train
	stop  *models.Stop

	// g is the accumulated cost in minutes: elapsed time from the requested
	// departure plus the transfer penalties incurred so far.
	g         float64
	transfers int
	path      []models.Segment
}

func (s *searchState) lastTrainNumber() string {
	if len(s.path) == 0 {
		return ""
	}
	return s.path[len(s.path)-1].TrainNumber
}

func clonePath(path []models.Segment) []models.Segment {
	cloned := make([]models.Segment, len(path))
	copy(cloned, path)
	return cloned
}

// visitedKey coarsens states so the continuous-time graph stays finite:
// revisiting a station within the same time bucket aboard the same train (or
// equally on foot) is only worthwhile with a lower f-cost.
type visitedKey struct {
	station string
	bucket  int64
	train   string
}

func (s *searchState) key(base time.Time, bucket time.Duration) visitedKey {
	k := visitedKey{
		station: s.station.Code,
		bucket:  int64(s.arrival.Sub(base) / bucket),
	}
	if s.train != nil {
		k.train = s.train.Number
	}
	return k
}

// frontierItem is a frontier entry. seq is the insertion order and the final
// tie-break, which keeps expansion order deterministic.
type frontierItem struct {
	state *searchState
	f     float64
	g     float64
	seq   int
	index int
}

// frontier is a min-heap ordered by f, then g, then insertion order.
type frontier []*frontierItem

func (fr frontier) Len() int { return len(fr) }

func (fr frontier) Less(i, j int) bool {
	if fr[i].f != fr[j].f {
		return fr[i].f < fr[j].f
	}
	if fr[i].g != fr[j].g {
		return fr[i].g < fr[j].g
	}
	return fr[i].seq < fr[j].seq
}

func (fr frontier) Swap(i, j int) {
	fr[i], fr[j] = fr[j], fr[i]
	fr[i].index = i
	fr[j].index = j
}

func (fr *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*fr)
	*fr = append(*fr, item)
}

func (fr *frontier) Pop() any {
	old := *fr
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*fr = old[:n-1]
	return item
}
