package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/notekeeper/internal/mocks"
	"github.com/dtroode/notekeeper/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	manager.On("GenerateAccessToken", "alice").Return("access", nil).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())

	access, err := svc.Issue(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "access", access)
}

func TestTokenService_Issue_ManagerError(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	manager.On("GenerateAccessToken", "alice").Return("", assert.AnError).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())

	_, err := svc.Issue(context.Background(), "alice")
	require.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_GetOwner(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	manager.On("ParseAccessToken", "access").Return("alice", nil).Once()
	manager.On("ParseAccessToken", "bad").Return("", assert.AnError).Once()

	svc := NewTokenService(manager, testutil.MakeNoopLogger())

	got, err := svc.GetOwner(context.Background(), "access")
	require.NoError(t, err)
	assert.Equal(t, "alice", got)

	_, err = svc.GetOwner(context.Background(), "bad")
	require.Error(t, err)
}
