package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewNumber mints an order number like FAF-1700000000000-4A7F: prefix,
// millisecond timestamp, and a random suffix so rapid concurrent creation
// cannot collide.
func NewNumber(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:4]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
