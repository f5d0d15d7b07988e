package output

import (
	"encoding/json"

	"github.com/hearthlab/mortcalc/internal/domain"
)

// JSONFormatter formats results as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// FormatPayment generates JSON output for a payment result.
func (jf *JSONFormatter) FormatPayment(result *domain.PaymentResult) (string, error) {
	return jf.marshal(result)
}

// FormatScenario generates JSON output for a scenario result.
func (jf *JSONFormatter) FormatScenario(result *domain.ScenarioMathResult) (string, error) {
	return jf.marshal(result)
}

// FormatInputs generates JSON output for an extracted inputs record.
func (jf *JSONFormatter) FormatInputs(inputs domain.LoanInputs) (string, error) {
	return jf.marshal(inputs)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
