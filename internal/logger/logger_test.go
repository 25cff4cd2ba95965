package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithContextCarriesIdentity(t *testing.T) {
	ctx := WithIdentity(context.Background(), "a@acme.com", "tenant-uuid")

	log := WithContext(ctx)
	assert.Equal(t, "a@acme.com", log.Entry.Data["user"])
	assert.Equal(t, "tenant-uuid", log.Entry.Data["tenant"])
}

func TestWithContextWithoutIdentity(t *testing.T) {
	log := WithContext(context.Background())
	assert.NotContains(t, log.Entry.Data, "user")
	assert.NotContains(t, log.Entry.Data, "tenant")
}
