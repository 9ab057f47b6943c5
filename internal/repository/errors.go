package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicateKey 유니크 제약 위반
// 발송 이력의 멱등성 판정과 즐겨찾기의 중복 등록 처리가 이 센티널에 분기한다.
var ErrDuplicateKey = errors.New("중복 키 위반")

// translateDuplicate gorm의 중복 키 에러를 저장소 계층 센티널로 변환
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}
