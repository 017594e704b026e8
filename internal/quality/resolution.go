package quality

import "fmt"

// Tier pairs Radarr's numeric vertical resolution with the display tag the
// tracker uses for the same quality level. Keeping the pairing explicit means
// a tag-format change on the tracker side is a one-line table edit rather
// than a silent mismatch.
type Tier struct {
	Resolution int
	DisplayTag string
}

var tiers = []Tier{
	{Resolution: 480, DisplayTag: "480p"},
	{Resolution: 720, DisplayTag: "720p"},
	{Resolution: 1080, DisplayTag: "1080p"},
	{Resolution: 2160, DisplayTag: "2160p"},
}

// TierFor returns the tier matching a numeric resolution.
func TierFor(resolution int) (Tier, error) {
	for _, tier := range tiers {
		if tier.Resolution == resolution {
			return tier, nil
		}
	}
	return Tier{}, fmt.Errorf("unknown resolution %d", resolution)
}

// MeetsTarget reports whether a file's resolution sits exactly at the target
// tier. Higher resolutions do not qualify; the comparison is equality, not
// "at least".
func MeetsTarget(resolution int, target Tier) bool {
	return resolution == target.Resolution
}

func (t Tier) String() string {
	return t.DisplayTag
}
