package export

import (
	"math"
	"strconv"
	"strings"
)

// Границы десятичного порядка, за которыми цена печатается в экспоненциальной записи.
const (
	minPlainExp = -4
	maxPlainExp = 16
)

// formatPrice печатает цену кратчайшей записью, как исходный формат выгрузки:
// «75000.0» для целых значений, «1e+16» и «1e-05» за границами порядка.
func formatPrice(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	if v != 0 {
		exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
		if err == nil && (exp < minPlainExp || exp >= maxPlainExp) {
			return sci
		}
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// price — цена в JSON-документе.
type price float64

func (p price) MarshalJSON() ([]byte, error) {
	return []byte(formatPrice(float64(p))), nil
}

func (p *price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*p = price(v)
	return nil
}
