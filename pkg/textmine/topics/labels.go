package topics

import (
	"fmt"

	"github.com/Weemaan/Text-Mining-Belval/pkg/textmine/internalerr"
)

// Labels is the static lookup from numeric topic id (1-based) to its
// hand-assigned name. The mapping is curation, not model output.
type Labels map[int]string

// Validate checks totality: every id in 1..k must map to a non-empty label
// before anything reaches a chart.
func (l Labels) Validate(k int) error {
	for topic := 1; topic <= k; topic++ {
		if l[topic] == "" {
			return fmt.Errorf("%w: topic %d has no label", internalerr.ErrInvalidConfig, topic)
		}
	}
	return nil
}

// Name returns the label for a topic id.
func (l Labels) Name(topic int) string {
	return l[topic]
}
