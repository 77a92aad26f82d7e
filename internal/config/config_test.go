package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ilovecybersecurity", cfg.AdminSecret)
	assert.Equal(t, 10, cfg.RestockLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("VEND_ADMIN_SECRET", "hunter2")
	t.Setenv("VEND_RESTOCK_LEVEL", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hunter2", cfg.AdminSecret)
	assert.Equal(t, 25, cfg.RestockLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("negative restock level", func(t *testing.T) {
		t.Setenv("VEND_RESTOCK_LEVEL", "-1")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-numeric restock level", func(t *testing.T) {
		t.Setenv("VEND_RESTOCK_LEVEL", "lots")
		_, err := Load()
		assert.Error(t, err)
	})
}
