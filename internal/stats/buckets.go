package stats

import "time"

// Buckets partitions commit timestamps into the four day periods.
type Buckets struct {
	Morning int // [06:00, 12:00)
	Daytime int // [12:00, 18:00)
	Evening int // [18:00, 24:00)
	Night   int // [00:00, 06:00)
}

func (b Buckets) Total() int {
	return b.Morning + b.Daytime + b.Evening + b.Night
}

// EarlyBird reports whether a strict majority of commits landed before
// 18:00. Ties count as night-owl.
func (b Buckets) EarlyBird() bool {
	return b.Morning+b.Daytime > b.Evening+b.Night
}

// Aggregate classifies each timestamp by its wall-clock hour in loc.
func Aggregate(times []time.Time, loc *time.Location) Buckets {
	var b Buckets
	for _, t := range times {
		switch hour := t.In(loc).Hour(); {
		case hour >= 6 && hour < 12:
			b.Morning++
		case hour >= 12 && hour < 18:
			b.Daytime++
		case hour >= 18:
			b.Evening++
		default:
			b.Night++
		}
	}
	return b
}
