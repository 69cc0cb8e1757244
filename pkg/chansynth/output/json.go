package output

import (
	"encoding/json"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
)

// ToJSON serializes a report.
func ToJSON(r *models.Report, pretty bool) ([]byte, error) {
	return marshal(r, pretty)
}

// MatrixToJSON serializes a matrix on its own.
func MatrixToJSON(m *models.Matrix, pretty bool) ([]byte, error) {
	return marshal(m, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
