package repository

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/pkg/errors"

	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/model"
)

func (r *SQLRepository) CreateProfile(ctx context.Context, name string, teamLead string) (int64, error) {
	id := r.newProfileId()
	_, err := r.goquDb.Insert(profileTable).
		Rows(goqu.Record{
			"id":         id,
			"name":       name,
			"team_lead":  teamLead,
			"created_at": time.Now().UTC().Format(time.RFC3339),
			"is_active":  true,
		}).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "creating profile %q", name)
	}
	return id, nil
}

func (r *SQLRepository) CreateSection(ctx context.Context, profileID int64, sectionName string, initialHeight int) (int64, error) {
	id := r.newSectionId()
	_, err := r.goquDb.Insert(sectionTable).
		Rows(goqu.Record{
			"id":             id,
			"profile_id":     profileID,
			"section_name":   sectionName,
			"initial_height": initialHeight,
			"current_height": initialHeight,
			"created_at":     time.Now().UTC().Format(time.RFC3339),
		}).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "creating section %q for profile %d", sectionName, profileID)
	}
	return id, nil
}

func (r *SQLRepository) UpdateSectionHeight(ctx context.Context, sectionID int64, height int) error {
	result, err := r.goquDb.Update(sectionTable).
		Set(goqu.Record{"current_height": height}).
		Where(section_id.Eq(sectionID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return errors.Wrapf(err, "updating height of section %d", sectionID)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if affected == 0 {
		return errors.Errorf("section %d does not exist", sectionID)
	}
	return nil
}

func (r *SQLRepository) SaveDayBatch(ctx context.Context, records []*model.ProgressRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]interface{}, 0, len(records))
	for _, record := range records {
		rows = append(rows, goqu.Record{
			"wall_section_id":   record.SectionID,
			"date":              formatDate(record.Date),
			"feet_built":        record.FeetBuilt.String(),
			"ice_cubic_yards":   record.Ice.String(),
			"cost_gold_dragons": record.Cost.String(),
			"notes":             record.Notes,
		})
	}

	return r.goquDb.WithTx(func(tx *goqu.TxDatabase) error {
		_, err := tx.Insert(progressTable).Rows(rows...).Executor().ExecContext(ctx)
		return errors.Wrap(err, "saving day batch")
	})
}
