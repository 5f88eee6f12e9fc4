package diarymap

import "fmt"

// Version identifies the source revision and time of a build.
type Version struct {
	Hash      string `json:"hash"`
	Timestamp string `json:"timestamp"`
	Generated string `json:"generated"`
}

// String returns a short label such as "a1b2c3d (2026-10-18)".
func (v Version) String() string {
	date := v.Generated
	if len(date) > 10 {
		date = date[:10]
	}
	return fmt.Sprintf("%s (%s)", v.Hash, date)
}

// Artifact is a generated page.
type Artifact struct {
	HTML []byte

	// Fingerprint is a hash of the page content excluding the version
	// marker. Rebuilding from unchanged inputs yields the same value.
	Fingerprint string
}
