package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vidstream/account-system/internal/core/domain"
)

func dupKeyError(message string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: message},
		},
	}
}

func TestDuplicateKeyToConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "email index violation",
			err: dupKeyError(`E11000 duplicate key error collection: auth-db.users ` +
				`index: uniq_email dup key: { email: "taken@example.com" }`),
			want: domain.ErrEmailExists,
		},
		{
			name: "username index violation",
			err: dupKeyError(`E11000 duplicate key error collection: auth-db.users ` +
				`index: uniq_username dup key: { username: "taken" }`),
			want: domain.ErrUsernameExists,
		},
		{
			// The dup value itself contains the word "username"; only the
			// index name decides which conflict fired.
			name: "email value containing the word username",
			err: dupKeyError(`E11000 duplicate key error collection: auth-db.users ` +
				`index: uniq_email dup key: { email: "username@example.com" }`),
			want: domain.ErrEmailExists,
		},
		{
			name: "unwrapped error falls back to message scan",
			err: errors.New(`E11000 duplicate key error collection: auth-db.users ` +
				`index: uniq_username dup key: { username: "taken" }`),
			want: domain.ErrUsernameExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := duplicateKeyToConflict(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("duplicateKeyToConflict() = %v, want %v", got, tt.want)
			}
		})
	}
}
