package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iudanet/tasksync/internal/client/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_runSessionSet(t *testing.T) {
	tests := []struct {
		name      string
		userID    int64
		inputs    []string
		passwords []string
		loginErr  error
		wantUser  int64
		wantToken string
		wantErr   string
	}{
		{
			name:      "user id from flag",
			userID:    7,
			passwords: []string{"  secret-token \n"},
			wantUser:  7,
			wantToken: "secret-token",
		},
		{
			name:      "user id prompted",
			inputs:    []string{"42\n"},
			passwords: []string{"tok"},
			wantUser:  42,
			wantToken: "tok",
		},
		{
			name:    "invalid user id",
			inputs:  []string{"abc"},
			wantErr: "invalid user id",
		},
		{
			name:      "empty token",
			userID:    7,
			passwords: []string{"   "},
			wantErr:   "token cannot be empty",
		},
		{
			name:      "login fails",
			userID:    7,
			passwords: []string{"tok"},
			loginErr:  errors.New("disk full"),
			wantErr:   "failed to save session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &output{}
			session := &SessionManagerMock{
				LoginFunc: func(ctx context.Context, userID int64, token string, expiresAt int64) error {
					return tt.loginErr
				},
			}
			c := New(newIO(out, tt.inputs, tt.passwords), session, &SyncerMock{}, &EntitiesMock{}, discardLogger())

			err := c.runSessionSet(context.Background(), tt.userID, 1700000000)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			calls := session.LoginCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantUser, calls[0].UserID)
			assert.Equal(t, tt.wantToken, calls[0].Token)
			assert.Equal(t, int64(1700000000), calls[0].ExpiresAt)
			assert.Contains(t, out.String(), "Session saved")
		})
	}
}

func TestCli_runSessionStatus(t *testing.T) {
	tests := []struct {
		name   string
		status *auth.Status
		want   []string
	}{
		{
			name:   "not logged in",
			status: &auth.Status{},
			want:   []string{"Not logged in", "tasksync session set"},
		},
		{
			name: "logged in without expiry",
			status: &auth.Status{
				UserID:      7,
				LoggedIn:    true,
				Fingerprint: "ab12…",
			},
			want: []string{"Logged in", "User id: 7", "Token: ab12…", "expires: never"},
		},
		{
			name: "expired",
			status: &auth.Status{
				UserID:    7,
				ExpiresAt: time.Now().Add(-time.Hour),
			},
			want: []string{"Session unusable", "Token has expired"},
		},
		{
			name: "expires later",
			status: &auth.Status{
				UserID:    7,
				LoggedIn:  true,
				ExpiresAt: time.Now().Add(2 * time.Hour),
			},
			want: []string{"Logged in", "Time remaining"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &output{}
			session := &SessionManagerMock{
				StatusFunc: func(ctx context.Context) (*auth.Status, error) {
					return tt.status, nil
				},
			}
			c := New(newIO(out, nil, nil), session, &SyncerMock{}, &EntitiesMock{}, discardLogger())

			require.NoError(t, c.runSessionStatus(context.Background()))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestCli_runSessionClear(t *testing.T) {
	out := &output{}
	session := &SessionManagerMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}
	c := New(newIO(out, nil, nil), session, &SyncerMock{}, &EntitiesMock{}, discardLogger())

	require.NoError(t, c.runSessionClear(context.Background()))
	assert.Len(t, session.LogoutCalls(), 1)
	assert.Contains(t, out.String(), "Session cleared")

	session.LogoutFunc = func(ctx context.Context) error { return errors.New("locked") }
	err := c.runSessionClear(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}
