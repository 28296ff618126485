package response

import (
	"encoding/json"
	"strconv"

	"sklad/internal/domain/entities"

	"github.com/pkg/errors"
)

// ImportResponse is what the universal import returns: a report for
// to_stock uploads, the created estimate for as_estimate ones.
type ImportResponse struct {
	Report   *entities.ImportReport
	Estimate *entities.Estimate
}

func DecodeImport(mode entities.ImportMode, body []byte) (ImportResponse, error) {
	switch mode {
	case entities.ImportAsEstimate:
		var e entities.Estimate
		if err := json.Unmarshal(body, &e); err != nil {
			return ImportResponse{}, errors.Wrap(err, "decode imported estimate")
		}
		return ImportResponse{Estimate: &e}, nil
	default:
		var r entities.ImportReport
		if err := json.Unmarshal(body, &r); err != nil {
			return ImportResponse{}, errors.Wrap(err, "decode import report")
		}
		return ImportResponse{Report: &r}, nil
	}
}

// Summary is a one-line outcome for notifications.
func (r ImportResponse) Summary() string {
	switch {
	case r.Estimate != nil:
		return "estimate " + r.Estimate.EstimateNumber + " created"
	case r.Report != nil:
		return pluralize(len(r.Report.Created), "created") + ", " +
			pluralize(len(r.Report.Updated), "updated") + ", " +
			pluralize(len(r.Report.Skipped), "skipped") + ", " +
			pluralize(len(r.Report.Errors), "failed")
	}
	return "nothing imported"
}

func pluralize(n int, verb string) string {
	return strconv.Itoa(n) + " " + verb
}
