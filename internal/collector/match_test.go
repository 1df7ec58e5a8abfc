package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchIdentitySubstring(t *testing.T) {
	keys := nodeKeys([]string{"pesubuntu", "asuna"}, []string{"192.168.8.106", ""})

	tests := []struct {
		label string
		want  string
	}{
		{"pesubuntu:9100", "pesubuntu"},
		{"192.168.8.106:9100", "pesubuntu"},
		{"asuna.lan:9100", "asuna"},
		{"stranger:9100", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, matchIdentity(tt.label, keys))
		})
	}
}

func TestMatchIdentityLongestFragmentWins(t *testing.T) {
	keys := serviceKeys([]string{"postgres-0", "postgres-replica-0"})

	// Both "postgres" and "postgres-replica" match; the longer fragment
	// decides.
	assert.Equal(t, "postgres-replica-0", matchIdentity("k8s_postgres-replica_pod", keys))
	assert.Equal(t, "postgres-0", matchIdentity("k8s_postgres_pod", keys))
}

func TestStripOrdinal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"n8n-0", "n8n"},
		{"postgres-12", "postgres"},
		{"grafana", "grafana"},
		{"my-service", "my-service"},
		{"-0", "-0"},
		{"svc-", "svc-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripOrdinal(tt.in), tt.in)
	}
}
