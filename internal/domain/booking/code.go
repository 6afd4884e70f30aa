package booking

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewReservationCode builds the human-facing reservation code. The suffix is
// drawn from a random UUID rather than wall-clock time, so codes are unique
// without a retry loop.
func NewReservationCode(now time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("RES-%d-%s", now.Year(), hex.EncodeToString(id[:5]))
}
