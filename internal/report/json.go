package report

import (
	"encoding/json"
	"time"

	"github.com/megasthenis/textprogressbar/pkg/logger"
)

// jsonReport represents the complete JSON output.
type jsonReport struct {
	Run       Summary   `json:"run"`
	Generated time.Time `json:"generated"`
}

func (f *formatter) formatJSON(s Summary) (string, error) {
	f.log.Debug("Formatting JSON report")

	out := jsonReport{
		Run:       s,
		Generated: time.Now(),
	}

	bytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal JSON report")
		return "", err
	}

	return string(bytes), nil
}
