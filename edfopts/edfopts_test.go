package edfopts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ltick/edf"
	"github.com/ltick/edf/edfopts"
)

func TestBuild_DefaultsToFast(t *testing.T) {
	opts := edfopts.Build()
	assert.Equal(t, edf.Fast(), opts)
}

func TestBuild_AppliesOptionsInOrder(t *testing.T) {
	opts := edfopts.Build(edfopts.WithComments(), edfopts.WithPositions())
	assert.True(t, opts.IncludeComments)
	assert.True(t, opts.TrackPositions)
}

func TestBuildFull_DefaultsToFull(t *testing.T) {
	opts := edfopts.BuildFull()
	assert.Equal(t, edf.Full(), opts)
}

func TestBuildFull_CanDisableIndividualToggles(t *testing.T) {
	opts := edfopts.BuildFull(edfopts.WithoutPositions())
	assert.True(t, opts.IncludeComments)
	assert.False(t, opts.TrackPositions)
}

func TestBuild_LaterOptionWins(t *testing.T) {
	opts := edfopts.Build(edfopts.WithComments(), edfopts.WithoutComments())
	assert.False(t, opts.IncludeComments)
}
