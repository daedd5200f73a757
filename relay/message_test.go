package relay

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageWireFormat(t *testing.T) {
	data, err := json.Marshal(NavigateTo("http://localhost:3000"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"preview":{"url":"http://localhost:3000"}}`, string(data))

	data, err = json.Marshal(Message{Preview: &Payload{Back: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"preview":{"back":true}}`, string(data))

	data, err = json.Marshal(Message{Preview: &Payload{MediaScreen: map[string]string{"Phone": "375x667"}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"preview":{"mediaScreen":{"Phone":"375x667"}}}`, string(data))
}

func TestDecodeInbound(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    any
		wantErr bool
	}{
		{"state", `{"previewUrl":"http://a"}`, State{PreviewURL: "http://a"}, false},
		{"empty state", `{"previewUrl":""}`, State{}, false},
		{"info", `{"command":"alert","text":"boom"}`, Info{Command: "alert", Text: "boom"}, false},
		{"unknown", `{"other":1}`, nil, true},
		{"malformed", `{`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInbound([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFanout(t *testing.T) {
	var got []Message
	ok := PosterFunc(func(m Message) error {
		got = append(got, m)
		return nil
	})
	failing := PosterFunc(func(Message) error { return ErrClosed })

	err := Fanout{ok, nil, failing, ok}.Post(NavigateTo("http://a"))
	assert.True(t, errors.Is(err, ErrClosed))
	assert.Len(t, got, 2)
}

type stateFrame struct {
	PosterFunc
	url string
}

func (f stateFrame) State() State { return State{PreviewURL: f.url} }

func TestFanoutState(t *testing.T) {
	noop := PosterFunc(func(Message) error { return nil })

	assert.Equal(t, State{}, Fanout{noop, nil}.State())
	assert.Equal(t, State{PreviewURL: "http://b"},
		Fanout{noop, stateFrame{noop, ""}, stateFrame{noop, "http://b"}}.State())
}
