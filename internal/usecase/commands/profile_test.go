//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"health-push/internal/domain/persona"
	"health-push/internal/domain/profile"
	"health-push/internal/infra"
	"health-push/internal/infra/repository"
	"health-push/internal/pkg/clock"
	"health-push/internal/pkg/errs"
	"health-push/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProfileRepo struct {
	stubProfileRepo
	created    *profile.HealthProfile
	createErr  error
	updateErr  error
	personaErr error
	gotStyle   string
	gotNow     time.Time
}

func (r *recordingProfileRepo) Create(_ context.Context, p *profile.HealthProfile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = p
	return nil
}

func (r *recordingProfileRepo) Update(_ context.Context, _ string, _ repository.UpdateProfileParams, now time.Time) error {
	r.gotNow = now
	return r.updateErr
}

func (r *recordingProfileRepo) SetPersona(_ context.Context, _ string, styleName string, _ time.Time) error {
	if r.personaErr != nil {
		return r.personaErr
	}
	r.gotStyle = styleName
	return nil
}

func newProfileUC(repo *recordingProfileRepo, at time.Time) commands.ProfileCommands {
	return commands.NewProfileUseCase(repo, persona.NewResolver(), clock.NewFixedClock(at))
}

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	t.Run("stamps both timestamps from the clock", func(t *testing.T) {
		repo := &recordingProfileRepo{}
		uc := newProfileUC(repo, at)

		err := uc.CreateProfile(ctx, "u1", commands.CreateProfileParams{
			BasicInfo: profile.BasicInfo{Nickname: "Alex", Age: 34},
		})
		require.NoError(t, err)
		require.NotNil(t, repo.created)
		assert.Equal(t, "u1", repo.created.UserID)
		assert.Equal(t, at, repo.created.CreatedAt)
		assert.Equal(t, at, repo.created.UpdatedAt)
	})

	t.Run("duplicate user maps to already-exists", func(t *testing.T) {
		repo := &recordingProfileRepo{
			createErr: infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey),
		}
		uc := newProfileUC(repo, at)

		err := uc.CreateProfile(ctx, "u1", commands.CreateProfileParams{})
		assert.ErrorIs(t, err, errs.ErrProfileAlreadyExists)
	})

	t.Run("storage failure maps to database error", func(t *testing.T) {
		repo := &recordingProfileRepo{
			createErr: infra.WrapRepoErr("insert failed", errs.New("boom")),
		}
		uc := newProfileUC(repo, at)

		err := uc.CreateProfile(ctx, "u1", commands.CreateProfileParams{})
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	t.Run("passes the clock's now", func(t *testing.T) {
		repo := &recordingProfileRepo{}
		clk := clock.NewFixedClock(at)
		uc := commands.NewProfileUseCase(repo, persona.NewResolver(), clk)

		err := uc.UpdateProfile(ctx, "u1", repository.UpdateProfileParams{})
		require.NoError(t, err)
		assert.Equal(t, at, repo.gotNow)

		// A later update carries the later instant
		clk.Advance(90 * time.Minute)
		err = uc.UpdateProfile(ctx, "u1", repository.UpdateProfileParams{})
		require.NoError(t, err)
		assert.Equal(t, at.Add(90*time.Minute), repo.gotNow)
	})

	t.Run("unknown user maps to not-found", func(t *testing.T) {
		repo := &recordingProfileRepo{
			updateErr: infra.WrapRepoErr("not found", nil, infra.KindNotFound),
		}
		uc := newProfileUC(repo, at)

		err := uc.UpdateProfile(ctx, "ghost", repository.UpdateProfileParams{})
		assert.ErrorIs(t, err, errs.ErrProfileNotFound)
	})
}

func TestSelectPersona(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	t.Run("accepts a catalog style", func(t *testing.T) {
		repo := &recordingProfileRepo{}
		uc := newProfileUC(repo, at)

		err := uc.SelectPersona(ctx, "u1", "Caring Family")
		require.NoError(t, err)
		assert.Equal(t, "Caring Family", repo.gotStyle)
	})

	t.Run("rejects a style outside the catalog", func(t *testing.T) {
		repo := &recordingProfileRepo{}
		uc := newProfileUC(repo, at)

		err := uc.SelectPersona(ctx, "u1", "Sassy Pirate")
		assert.ErrorIs(t, err, errs.ErrPersonaStyleUnknown)
		assert.Empty(t, repo.gotStyle)
	})

	t.Run("unknown user maps to not-found", func(t *testing.T) {
		repo := &recordingProfileRepo{
			personaErr: infra.WrapRepoErr("not found", nil, infra.KindNotFound),
		}
		uc := newProfileUC(repo, at)

		err := uc.SelectPersona(ctx, "ghost", "Caring Family")
		assert.ErrorIs(t, err, errs.ErrProfileNotFound)
	})
}
