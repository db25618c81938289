package settings_test

import (
	"context"
	"database/sql"
	"testing"

	"go-ponto/internal/schedule"
	"go-ponto/internal/settings"
	settingserrors "go-ponto/internal/settings/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSettingsRepository struct {
	getFn  func(ctx context.Context) (*settings.CompanySettings, error)
	saveFn func(ctx context.Context, s *settings.CompanySettings) error
}

func (f *fakeSettingsRepository) WithTx(tx *sql.Tx) settings.Repository { return f }
func (f *fakeSettingsRepository) Get(ctx context.Context) (*settings.CompanySettings, error) {
	if f.getFn != nil {
		return f.getFn(ctx)
	}
	return nil, nil
}
func (f *fakeSettingsRepository) Save(ctx context.Context, s *settings.CompanySettings) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, s)
	}
	return nil
}

func setupSettingsServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *fakeSettingsRepository, settings.Service) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeSettingsRepository{}
	svc := settings.NewService(db, repo)
	return db, sqlMock, repo, svc
}

func TestSettingsService_Get_NotFound(t *testing.T) {
	db, _, _, svc := setupSettingsServiceTest(t)
	defer db.Close()

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, settingserrors.ErrSettingsNotFound)
}

func TestSettingsService_Update_CreatesRowWhenMissing(t *testing.T) {
	db, sqlMock, repo, svc := setupSettingsServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	var saved *settings.CompanySettings
	repo.saveFn = func(ctx context.Context, s *settings.CompanySettings) error {
		saved = s
		return nil
	}

	resp, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		CompanyName: "Ponto Ltda",
		CNPJ:        "12.345.678/0001-99",
		WorkStart:   "08:00",
		LunchStart:  "12:00",
		LunchEnd:    "13:00",
		WorkEnd:     "17:00",
		SectorSchedules: map[string]schedule.WorkSchedule{
			settings.SectorOperacional: {WorkStart: "07:00", LunchStart: "11:00", LunchEnd: "12:00", WorkEnd: "16:00"},
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, "Ponto Ltda", saved.CompanyName)
	assert.Equal(t, "08:00", resp.WorkStart)
	assert.Contains(t, resp.SectorSchedules, settings.SectorOperacional)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSettingsService_Update_PreservesExistingID(t *testing.T) {
	db, sqlMock, repo, svc := setupSettingsServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	existingID := uuid.New()
	repo.getFn = func(ctx context.Context) (*settings.CompanySettings, error) {
		return &settings.CompanySettings{ID: existingID, CompanyName: "Antiga"}, nil
	}

	resp, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		CompanyName: "Nova Razão Social",
		WorkStart:   "08:00",
		WorkEnd:     "17:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, existingID.String(), resp.ID)
	assert.Equal(t, "Nova Razão Social", resp.CompanyName)
}

func TestSettingsService_Update_UnknownSector(t *testing.T) {
	db, _, _, svc := setupSettingsServiceTest(t)
	defer db.Close()

	_, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		CompanyName: "Ponto Ltda",
		SectorSchedules: map[string]schedule.WorkSchedule{
			"Logística": {WorkStart: "08:00"},
		},
	})

	assert.ErrorIs(t, err, settingserrors.ErrUnknownSector)
}
