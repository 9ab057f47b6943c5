package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
)

// IntakeRepository 섭취 기록 데이터 접근 인터페이스
type IntakeRepository interface {
	Create(ctx context.Context, intake *model.Intake, optionIDs []int64) error
	// Update 본문 컬럼을 저장하고 옵션 연결을 전체 교체한다.
	Update(ctx context.Context, intake *model.Intake, optionIDs []int64) error
	GetByID(ctx context.Context, id int64) (*model.Intake, error)
	Delete(ctx context.Context, intake *model.Intake) error
	// ListByUserIDAndPeriod [from, to) 반개구간으로 조회한다.
	ListByUserIDAndPeriod(ctx context.Context, userID int64, from, to time.Time) ([]model.Intake, error)
}

type intakeRepo struct {
	db *gorm.DB
}

// NewIntakeRepo IntakeRepository 생성
func NewIntakeRepo(db *gorm.DB) IntakeRepository {
	return &intakeRepo{db: db}
}

func (r *intakeRepo) Create(ctx context.Context, intake *model.Intake, optionIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(intake).Error; err != nil {
			return err
		}
		if len(optionIDs) == 0 {
			return nil
		}
		var options []model.Option
		if err := tx.Where("id IN ?", optionIDs).Find(&options).Error; err != nil {
			return err
		}
		return tx.Model(intake).Association("Options").Append(options)
	})
}

func (r *intakeRepo) Update(ctx context.Context, intake *model.Intake, optionIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(intake).Association("Options").Clear(); err != nil {
			return err
		}
		if err := tx.Omit("Options", "MenuSize").Save(intake).Error; err != nil {
			return err
		}
		if len(optionIDs) == 0 {
			return nil
		}
		var options []model.Option
		if err := tx.Where("id IN ?", optionIDs).Find(&options).Error; err != nil {
			return err
		}
		return tx.Model(intake).Association("Options").Append(options)
	})
}

func (r *intakeRepo) GetByID(ctx context.Context, id int64) (*model.Intake, error) {
	var intake model.Intake
	err := r.db.WithContext(ctx).
		Preload("MenuSize").
		Preload("Options").
		Where("id = ?", id).
		First(&intake).Error
	if err != nil {
		return nil, err
	}
	return &intake, nil
}

func (r *intakeRepo) Delete(ctx context.Context, intake *model.Intake) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(intake).Association("Options").Clear(); err != nil {
			return err
		}
		return tx.Delete(intake).Error
	})
}

func (r *intakeRepo) ListByUserIDAndPeriod(ctx context.Context, userID int64, from, to time.Time) ([]model.Intake, error) {
	var intakes []model.Intake
	err := r.db.WithContext(ctx).
		Preload("MenuSize").
		Preload("Options").
		Where("user_id = ? AND intake_at >= ? AND intake_at < ?", userID, from, to).
		Order("intake_at ASC").
		Find(&intakes).Error
	if err != nil {
		return nil, err
	}
	return intakes, nil
}
