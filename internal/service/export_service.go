package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
)

// ExportService 섭취 기록 엑셀 내보내기 인터페이스
type ExportService interface {
	// ExportIntakes 기간 내 섭취 기록을 XLSX 바이너리로 만든다
	ExportIntakes(ctx context.Context, userID int64, from, to string) ([]byte, string, error)
}

type exportService struct {
	intake IntakeService
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService ExportService 인스턴스 생성
func NewExportService(intake IntakeService, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{intake: intake, repo: repo, logger: logger}
}

var exportHeaders = []string{"날짜", "브랜드", "메뉴", "사이즈", "수량", "카페인(mg)", "당류(g)", "칼로리(kcal)"}

func (s *exportService) ExportIntakes(ctx context.Context, userID int64, from, to string) ([]byte, string, error) {
	intakes, err := s.intake.ListByPeriod(ctx, userID, from, to)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "섭취 기록"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", err
		}
	}

	for row, intake := range intakes {
		values := []interface{}{
			intake.IntakeAt,
			intake.BrandName,
			intake.MenuName,
			intake.SizeName,
			intake.Quantity,
			intake.CaffeineMg,
			intake.SugarG,
			intake.CalorieKcal,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("엑셀 생성 실패", zap.Int64("user_id", userID), zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("intakes_%s_%s.xlsx", from, to)
	return buf.Bytes(), filename, nil
}
