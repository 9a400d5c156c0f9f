package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrops/recruiting-server/internal/config"
)

func TestNewService_RequiresInputs(t *testing.T) {
	t.Parallel()

	svc, err := NewService(nil, nil, nil)
	require.Error(t, err)
	assert.Nil(t, svc)

	svc, err = NewService(&config.Config{}, nil, nil)
	require.ErrorContains(t, err, "database pool is required")
	assert.Nil(t, svc)
}
