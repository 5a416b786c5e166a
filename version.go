package devblog

import "fmt"

// These constants follow semantic versioning.
const (
	major = 0
	minor = 1
	patch = 0
)

func StringVersion() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
