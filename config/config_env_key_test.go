package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"amqpUrl": "",
		},
		"loyalty": map[string]any{
			"pointsPerDollar": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_SSLMODE", want: "database.sslMode"},
		{envKey: "DATABASE_MASTER_USERNAME", want: "database.master.userName"},
		{envKey: "PUBSUB_AMQPURL", want: "pubsub.amqpUrl"},
		{envKey: "LOYALTY_POINTSPERDOLLAR", want: "loyalty.pointsPerDollar"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
