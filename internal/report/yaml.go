package report

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/megasthenis/textprogressbar/pkg/logger"
)

// yamlReport represents the complete YAML output.
type yamlReport struct {
	Run       Summary   `yaml:"run"`
	Generated time.Time `yaml:"generated"`
}

func (f *formatter) formatYAML(s Summary) (string, error) {
	f.log.Debug("Formatting YAML report")

	out := yamlReport{
		Run:       s,
		Generated: time.Now(),
	}

	bytes, err := yaml.Marshal(out)
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal YAML report")
		return "", err
	}

	return string(bytes), nil
}
