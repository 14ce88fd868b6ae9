package export

import (
	"time"

	"github.com/google/uuid"

	"github.com/cleared-dev/ledgerview/internal/report"
)

// Envelope stamps a report with a build id and generation time. It lives
// outside the report model so the model itself stays reproducible.
type Envelope struct {
	BuildID     string        `json:"build_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Report      report.Result `json:"report"`
}

// Wrap stamps res with a fresh build id and the current UTC time.
func Wrap(res report.Result) Envelope {
	return Envelope{
		BuildID:     uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Report:      res,
	}
}
