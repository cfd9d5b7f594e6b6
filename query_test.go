package portsift_test

import (
	"testing"

	"github.com/fwojciec/portsift"
	"github.com/stretchr/testify/assert"
)

func TestQuery_Slug(t *testing.T) {
	t.Parallel()

	t.Run("strips wildcards and slashes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "edu", portsift.Query("*.edu/*").Slug())
	})

	t.Run("dots become underscores", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "org_admin", portsift.Query("*.org/admin*").Slug())
	})

	t.Run("stable for plain hosts", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "example_com", portsift.Query("example.com").Slug())
	})
}

func TestQuery_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty pattern", func(t *testing.T) {
		t.Parallel()
		err := portsift.Query("  ").Validate()
		assert.Equal(t, portsift.EINVALID, portsift.ErrorCode(err))
	})

	t.Run("accepts non-empty pattern", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, portsift.Query("*.edu/*").Validate())
	})
}
