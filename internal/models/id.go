package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID builds a record id from a kind prefix, the creation instant, and a
// random suffix. The timestamp keeps ids roughly sortable by creation order;
// the suffix keeps rapid creation collision-free.
func NewID(prefix string, now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), suffix)
}
