//go:build (linux || darwin || windows) && (amd64 || arm64)

package report

import "github.com/bytedance/sonic"

var api = sonic.ConfigStd

func encode(r Report, compact bool) ([]byte, error) {
	if compact {
		return api.Marshal(r)
	}

	return api.MarshalIndent(r, "", "  ")
}

// ParseJSON decodes a report written by [Report.WriteJSON].
func ParseJSON(data []byte) (Report, error) {
	var r Report
	err := api.Unmarshal(data, &r)
	return r, err
}
