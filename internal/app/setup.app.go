package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sentimentfolio/internal/db/models/postgres/public/model"
	"sentimentfolio/internal/domain"
	"sentimentfolio/internal/logger"
	"sentimentfolio/internal/repository"
	"sentimentfolio/internal/scenarioconfig"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

// SetupHandler seeds the database from configuration: sectors and their
// universes, one funded account per scenario, and a v0 prompt version plus
// a zeroed performance record for every trackable unit. Safe to run
// repeatedly; existing rows and existing version lineages are left alone.
type SetupHandler struct {
	Db *sql.DB

	SectorRepository            repository.SectorRepository
	ScenarioAccountRepository   repository.ScenarioAccountRepository
	PromptVersionRepository     repository.PromptVersionRepository
	PerformanceRecordRepository repository.PerformanceRecordRepository

	Config scenarioconfig.Config
}

func (h SetupHandler) Seed(ctx context.Context) error {
	log := logger.FromContext(ctx)

	defs, err := h.Config.Definitions()
	if err != nil {
		return err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed tx: %w", err)
	}
	defer tx.Rollback()

	for _, sector := range h.Config.Sectors {
		err = h.SectorRepository.Add(tx, model.Sector{
			SectorID: sector.ID,
			Name:     sector.Name,
		})
		if err != nil {
			return fmt.Errorf("failed to seed sector %s: %w", sector.ID, err)
		}

		assets := make([]model.SectorAsset, 0, len(sector.Assets))
		for i, asset := range sector.Assets {
			assets = append(assets, model.SectorAsset{
				Symbol:     asset.Symbol,
				SectorID:   sector.ID,
				AssetClass: model.AssetClass(asset.Class),
				Ordinal:    int32(i),
			})
		}
		if err := h.SectorRepository.AddAssets(tx, assets); err != nil {
			return fmt.Errorf("failed to seed universe for %s: %w", sector.ID, err)
		}

		for _, role := range []domain.PromptRole{domain.RoleSentiment, domain.RoleSelection} {
			if err := h.ensureInitialVersion(tx, sector, role); err != nil {
				return err
			}
		}
	}

	for name, def := range defs {
		capital := decimal.NewFromFloat(def.StartCapital)
		err = h.ScenarioAccountRepository.Add(tx, model.ScenarioAccount{
			Scenario:     model.ScenarioName(name),
			Cash:         capital,
			StartCapital: capital,
		})
		if err != nil {
			return fmt.Errorf("failed to seed account %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	log.Infof("seeded %d sectors and %d scenario accounts", len(h.Config.Sectors), len(defs))

	return nil
}

func (h SetupHandler) ensureInitialVersion(tx *sql.Tx, sector scenarioconfig.SectorConfig, role domain.PromptRole) error {
	unitID := domain.UnitID(sector.ID, role)

	_, err := h.PromptVersionRepository.GetActive(unitID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, qrm.ErrNoRows) {
		return err
	}

	_, err = h.PromptVersionRepository.Add(tx, model.PromptVersion{
		UnitID:  unitID,
		Role:    model.PromptRole(role),
		Version: 0,
		Payload: initialPayload(sector, role),
		Reason:  "initial version",
	})
	if err != nil {
		return fmt.Errorf("failed to seed prompt version for %s: %w", unitID, err)
	}

	_, err = h.PerformanceRecordRepository.Add(tx, model.PerformanceRecord{
		UnitID:  unitID,
		Version: 0,
	})
	if err != nil {
		return fmt.Errorf("failed to seed performance record for %s: %w", unitID, err)
	}

	return nil
}

func initialPayload(sector scenarioconfig.SectorConfig, role domain.PromptRole) string {
	if role == domain.RoleSelection {
		return fmt.Sprintf(
			"You allocate a fixed budget across assets in the %s sector. "+
				"Favor liquid names and concentrate only when the sentiment signal is strong. "+
				"Weights must be non-negative and sum to 1.",
			sector.Name,
		)
	}
	return fmt.Sprintf(
		"You are a financial analyst covering the %s sector. "+
			"Given recent headlines, rate the sector's expected performance over the next several trading days "+
			"on a scale from -1 (strongly negative) to 1 (strongly positive). "+
			"Weigh concrete events over vague commentary.",
		sector.Name,
	)
}
