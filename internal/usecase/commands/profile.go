package commands

import (
	"context"

	"health-push/internal/domain/profile"
	"health-push/internal/infra"
	"health-push/internal/infra/repository"
	"health-push/internal/pkg/clock"
	"health-push/internal/pkg/errs"
)

type CreateProfileParams struct {
	BasicInfo  profile.BasicInfo
	HealthInfo profile.HealthInfo
	OtherInfo  profile.OtherInfo
}

type ProfileCommands interface {
	CreateProfile(ctx context.Context, userID string, params CreateProfileParams) error
	UpdateProfile(ctx context.Context, userID string, params repository.UpdateProfileParams) error
	SetLocation(ctx context.Context, userID string, loc profile.Location) error
	SelectPersona(ctx context.Context, userID string, styleName string) error
	DeleteProfile(ctx context.Context, userID string) error
}

type profileUseCaseImpl struct {
	profileRepo ProfileRepo
	personas    PersonaResolver
	clock       clock.Clock
}

func NewProfileUseCase(profileRepo ProfileRepo, personas PersonaResolver, clock clock.Clock) ProfileCommands {
	return &profileUseCaseImpl{
		profileRepo: profileRepo,
		personas:    personas,
		clock:       clock,
	}
}

func (u *profileUseCaseImpl) CreateProfile(ctx context.Context, userID string, params CreateProfileParams) error {
	now := u.clock.Now()
	p := &profile.HealthProfile{
		UserID:     userID,
		BasicInfo:  params.BasicInfo,
		HealthInfo: params.HealthInfo,
		OtherInfo:  params.OtherInfo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.profileRepo.Create(ctx, p); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrProfileAlreadyExists)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *profileUseCaseImpl) UpdateProfile(ctx context.Context, userID string, params repository.UpdateProfileParams) error {
	if err := u.profileRepo.Update(ctx, userID, params, u.clock.Now()); err != nil {
		return mapProfileErr(err)
	}
	return nil
}

func (u *profileUseCaseImpl) SetLocation(ctx context.Context, userID string, loc profile.Location) error {
	if err := u.profileRepo.SetLocation(ctx, userID, loc, u.clock.Now()); err != nil {
		return mapProfileErr(err)
	}
	return nil
}

// SelectPersona is strict where content generation is permissive: choosing a
// style validates it against the catalog, while a stale style already on a
// profile merely falls back to the neutral voice at generation time.
func (u *profileUseCaseImpl) SelectPersona(ctx context.Context, userID string, styleName string) error {
	if _, ok := u.personas.Get(styleName); !ok {
		return errs.Mark(errs.New("persona style not in catalog: "+styleName), errs.ErrPersonaStyleUnknown)
	}
	if err := u.profileRepo.SetPersona(ctx, userID, styleName, u.clock.Now()); err != nil {
		return mapProfileErr(err)
	}
	return nil
}

func (u *profileUseCaseImpl) DeleteProfile(ctx context.Context, userID string) error {
	if err := u.profileRepo.Delete(ctx, userID); err != nil {
		return mapProfileErr(err)
	}
	return nil
}

func mapProfileErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrProfileNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
