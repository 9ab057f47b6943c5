package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/config"
)

// Sender SMTP 메일 발송기
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender 설정으로 SMTP 발송기 생성
func NewSender(cfg *config.MailConfig) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendPasswordResetCode 비밀번호 재설정 인증 코드 메일 발송
func (s *Sender) SendPasswordResetCode(to, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "[lastcup] 비밀번호 재설정 인증 코드")
	m.SetBody("text/plain", fmt.Sprintf(
		"비밀번호 재설정 인증 코드입니다.\n\n%s\n\n10분 안에 입력해 주세요. 본인이 요청하지 않았다면 이 메일을 무시하셔도 됩니다.",
		code,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("메일 발송 실패: %w", err)
	}
	return nil
}
