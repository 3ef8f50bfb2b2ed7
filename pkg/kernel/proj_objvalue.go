package kernel

type JobTitle string

type CompanyName string

type Email string

type Phone string

type BucketURL string

// HiringType distinguishes how a gig is paid
type HiringType string

const (
	HiringTypeHourly HiringType = "HOURLY"
	HiringTypeFixed  HiringType = "FIXED"
)

func (h HiringType) IsValid() bool {
	return h == HiringTypeHourly || h == HiringTypeFixed
}

// Availability is the free-form schedule string a seeker submits when applying
type Availability string
