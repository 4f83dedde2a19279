package output

import (
	json "github.com/goccy/go-json"

	"github.com/kabecheck/kabecheck/internal/domain"
)

// JSONFormatter renders a result as JSON, matching the HTTP API shape.
type JSONFormatter struct {
	Pretty bool
}

// FormatParttime renders the part-time result as JSON.
func (jf *JSONFormatter) FormatParttime(r domain.ParttimeResult) (string, error) {
	return jf.marshal(r)
}

// FormatFreelance renders the freelance result as JSON.
func (jf *JSONFormatter) FormatFreelance(r domain.FreelanceResult) (string, error) {
	return jf.marshal(r)
}

func (jf *JSONFormatter) marshal(v interface{}) (string, error) {
	var (
		data []byte
		err  error
	)
	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
