package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMongo, cfg.DatabaseDriver)
	assert.Equal(t, "blooddonor", cfg.MongoDatabase)
	assert.Equal(t, "https://avatar.iran.liara.run/public/boy", cfg.AvatarBaseURL)
	assert.True(t, cfg.GraphiQLEnabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing secret",
			cfg:     Config{DatabaseDriver: DriverMongo, MongoURI: "mongodb://db"},
			wantErr: "set JWT_SECRET",
		},
		{
			name:    "mongo without uri",
			cfg:     Config{DatabaseDriver: DriverMongo, JWTSecret: "s"},
			wantErr: "set MONGODB_URI",
		},
		{
			name:    "firestore without project",
			cfg:     Config{DatabaseDriver: DriverFirestore, JWTSecret: "s"},
			wantErr: "set FIREBASE_PROJECT_ID",
		},
		{
			name:    "unknown driver",
			cfg:     Config{DatabaseDriver: "postgres", JWTSecret: "s"},
			wantErr: `unsupported DATABASE_DRIVER "postgres"`,
		},
		{
			name: "firestore ok",
			cfg:  Config{DatabaseDriver: DriverFirestore, JWTSecret: "s", FirebaseProject: "p"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
