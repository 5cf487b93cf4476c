package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectorAcceptsNumbersAndStrings(t *testing.T) {
	cases := map[string]Selector{
		`{"memberId":4}`:     "4",
		`{"memberId":"all"}`: "all",
		`{"memberId":null}`:  "",
		`{}`:                 "",
	}
	for body, want := range cases {
		var req ReportRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		require.Equal(t, want, req.MemberID, body)
	}

	var req ReportRequest
	require.Error(t, json.Unmarshal([]byte(`{"memberId":4.5}`), &req))
}
