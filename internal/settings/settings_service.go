package settings

import (
	"context"
	"database/sql"

	settingserrors "go-ponto/internal/settings/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (SettingsResponse, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Get(ctx context.Context) (SettingsResponse, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return SettingsResponse{}, err
	}
	if current == nil {
		return SettingsResponse{}, settingserrors.ErrSettingsNotFound
	}
	return mapSettingsToResponse(*current), nil
}

// Update upserts the single settings row. Sector keys outside the known
// sector list are rejected so stale frontend payloads cannot park hours
// under a misspelled sector.
func (s *service) Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error) {
	for sector := range req.SectorSchedules {
		if !IsValidSector(sector) {
			s.logger.Warn("settings update rejected sector", zap.String("sector", sector))
			return SettingsResponse{}, settingserrors.ErrUnknownSector
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update settings begin tx failed", zap.Error(err))
		return SettingsResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := qtx.Get(ctx)
	if err != nil {
		s.logger.Error("update settings lookup failed", zap.Error(err))
		return SettingsResponse{}, err
	}
	if current == nil {
		current = &CompanySettings{ID: uuid.New()}
	}

	current.CompanyName = req.CompanyName
	current.LegalName = req.LegalName
	current.CNPJ = req.CNPJ
	current.Address = req.Address
	current.LogoURL = req.LogoURL
	current.WorkStart = req.WorkStart
	current.LunchStart = req.LunchStart
	current.LunchEnd = req.LunchEnd
	current.WorkEnd = req.WorkEnd
	current.SectorSchedules = SectorSchedules(req.SectorSchedules)

	if err := qtx.Save(ctx, current); err != nil {
		s.logger.Error("update settings persist failed", zap.Error(err))
		return SettingsResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update settings commit failed", zap.Error(err))
		return SettingsResponse{}, err
	}

	s.logger.Info("settings updated", zap.String("company_name", req.CompanyName))
	return mapSettingsToResponse(*current), nil
}

func mapSettingsToResponse(s CompanySettings) SettingsResponse {
	return SettingsResponse{
		ID:              s.ID.String(),
		CompanyName:     s.CompanyName,
		LegalName:       s.LegalName,
		CNPJ:            s.CNPJ,
		Address:         s.Address,
		LogoURL:         s.LogoURL,
		WorkStart:       s.WorkStart,
		LunchStart:      s.LunchStart,
		LunchEnd:        s.LunchEnd,
		WorkEnd:         s.WorkEnd,
		SectorSchedules: s.SectorSchedules,
	}
}
