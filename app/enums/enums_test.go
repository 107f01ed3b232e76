package enums

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobKind(t *testing.T) {
	tests := []struct {
		in      string
		want    JobKind
		wantErr bool
	}{
		{in: "classified", want: JobKindClassified},
		{in: "News", want: JobKindNews},
		{in: "FACEBOOK", want: JobKindFacebook},
		{in: "twitter", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseJobKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListName_Text(t *testing.T) {
	data, err := json.Marshal(map[string]ListName{"list": ListNameNews})
	require.NoError(t, err)
	assert.JSONEq(t, `{"list":"news"}`, string(data))

	var res struct {
		List ListName `json:"list"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"list":"property"}`), &res))
	assert.Equal(t, ListNameProperty, res.List)

	assert.Error(t, json.Unmarshal([]byte(`{"list":"blah"}`), &res))
}

func TestMust(t *testing.T) {
	assert.Equal(t, RefreshModePoll, MustRefreshMode("poll"))
	assert.Panics(t, func() { MustRefreshMode("never") })
	assert.Equal(t, []string{"idle", "triggering", "succeeded", "failed"}, TriggerStateNames)
	assert.Len(t, NoticeLevelValues, 3)
	assert.Equal(t, "properties", ListingProperties.String())
	assert.Equal(t, SuccessModeHTTP, MustSuccessMode("HTTP"))
	assert.Equal(t, []string{"indicator", "http"}, SuccessModeNames)
}
