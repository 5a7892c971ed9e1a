package projection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksynicapp/storefront-server/internal/service"
)

func TestProfileProjection_LoadOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.Equal(t, StatusIdle, env.profileProj.Current().Status)

	state := env.profileProj.Load(ctx, false)
	require.Equal(t, StatusSuccess, state.Status)
	assert.Equal(t, "Dana", state.Data.FirstName)

	// Change the record behind the projection's back; an unforced load
	// keeps the held state, a forced one picks up the change.
	name := "Riley"
	_, err := env.profile.Update(ctx, service.ProfileUpdate{FirstName: &name})
	require.NoError(t, err)

	assert.Equal(t, "Dana", env.profileProj.Load(ctx, false).Data.FirstName)
	assert.Equal(t, "Riley", env.profileProj.Load(ctx, true).Data.FirstName)
}

func TestProfileProjection_UpdatePatchesState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.profileProj.Load(ctx, false)

	phone := "+1 555 000 1111"
	updated, err := env.profileProj.Update(ctx, service.ProfileUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)

	state := env.profileProj.Current()
	require.Equal(t, StatusSuccess, state.Status)
	assert.Equal(t, phone, state.Data.Phone)
	assert.Equal(t, "Dana", state.Data.FirstName, "untouched fields survive")
}
