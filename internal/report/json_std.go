//go:build !((linux || darwin || windows) && (amd64 || arm64))

package report

import "encoding/json"

func encode(r Report, compact bool) ([]byte, error) {
	if compact {
		return json.Marshal(r)
	}

	return json.MarshalIndent(r, "", "  ")
}

func ParseJSON(data []byte) (Report, error) {
	var r Report
	err := json.Unmarshal(data, &r)
	return r, err
}
