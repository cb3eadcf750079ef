package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadOf(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "bare payload passes through",
			body: `{"tisId": "pm-1", "personId": "trainee-1"}`,
			want: `{"tisId": "pm-1", "personId": "trainee-1"}`,
		},
		{
			name: "sync envelope unwraps to the record data",
			body: `{"record": {"operation": "load", "data": {"tisId": "pm-1"}}}`,
			want: `{"tisId": "pm-1"}`,
		},
		{
			name: "envelope without data passes through",
			body: `{"record": {"operation": "delete"}}`,
			want: `{"record": {"operation": "delete"}}`,
		},
		{
			name: "non-JSON passes through for the unmarshal to reject",
			body: "not json",
			want: "not json",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payloadOf(tt.body))
		})
	}
}
