package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/model"
	"github.com/GDGoC2026-TripleS-Project/2026-TRIPLES-TEAM-6-BE/internal/repository"
)

// ── Mock Repositories ──

type mockUserRepo struct {
	seq   int64
	users map[int64]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Nickname == user.Nickname {
			return repository.ErrDuplicateKey
		}
	}
	m.seq++
	user.ID = m.seq
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ExistsByNickname(_ context.Context, nickname string) (bool, error) {
	for _, u := range m.users {
		if u.Nickname == nickname {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email != nil && *u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.ID] = user
	return nil
}

type mockLocalAuthRepo struct {
	seq   int64
	auths map[string]*model.LocalAuth // key: login_id
}

func newMockLocalAuthRepo() *mockLocalAuthRepo {
	return &mockLocalAuthRepo{auths: make(map[string]*model.LocalAuth)}
}

func (m *mockLocalAuthRepo) Create(_ context.Context, auth *model.LocalAuth) error {
	if _, ok := m.auths[auth.LoginID]; ok {
		return repository.ErrDuplicateKey
	}
	m.seq++
	auth.ID = m.seq
	m.auths[auth.LoginID] = auth
	return nil
}

func (m *mockLocalAuthRepo) GetByLoginID(_ context.Context, loginID string) (*model.LocalAuth, error) {
	if a, ok := m.auths[loginID]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocalAuthRepo) GetByUserID(_ context.Context, userID int64) (*model.LocalAuth, error) {
	for _, a := range m.auths {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocalAuthRepo) UpdatePasswordHash(_ context.Context, userID int64, hash string) error {
	for _, a := range m.auths {
		if a.UserID == userID {
			a.PasswordHash = hash
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type mockSocialAuthRepo struct {
	seq   int64
	auths map[string]*model.SocialAuth // key: provider + ":" + provider_user_id
}

func newMockSocialAuthRepo() *mockSocialAuthRepo {
	return &mockSocialAuthRepo{auths: make(map[string]*model.SocialAuth)}
}

func (m *mockSocialAuthRepo) Create(_ context.Context, auth *model.SocialAuth) error {
	key := auth.Provider + ":" + auth.ProviderUserID
	if _, ok := m.auths[key]; ok {
		return repository.ErrDuplicateKey
	}
	m.seq++
	auth.ID = m.seq
	m.auths[key] = auth
	return nil
}

func (m *mockSocialAuthRepo) DeleteByUserID(_ context.Context, userID int64) error {
	for key, a := range m.auths {
		if a.UserID == userID {
			delete(m.auths, key)
		}
	}
	return nil
}

func (m *mockSocialAuthRepo) GetByProviderUserID(_ context.Context, provider, providerUserID string) (*model.SocialAuth, error) {
	if a, ok := m.auths[provider+":"+providerUserID]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type mockPasswordResetRepo struct {
	seq    int64
	tokens []*model.PasswordResetToken
}

func newMockPasswordResetRepo() *mockPasswordResetRepo {
	return &mockPasswordResetRepo{}
}

func (m *mockPasswordResetRepo) Create(_ context.Context, token *model.PasswordResetToken) error {
	m.seq++
	token.ID = m.seq
	token.CreatedAt = time.Now()
	m.tokens = append(m.tokens, token)
	return nil
}

func (m *mockPasswordResetRepo) GetLatestByUserID(_ context.Context, userID int64) (*model.PasswordResetToken, error) {
	for i := len(m.tokens) - 1; i >= 0; i-- {
		if m.tokens[i].UserID == userID {
			return m.tokens[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPasswordResetRepo) MarkUsed(_ context.Context, id int64, usedAt time.Time) error {
	for _, t := range m.tokens {
		if t.ID == id {
			t.UsedAt = &usedAt
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type mockDeviceRepo struct {
	seq     int64
	devices map[string]*model.UserDevice // key: fcm_token
}

func newMockDeviceRepo() *mockDeviceRepo {
	return &mockDeviceRepo{devices: make(map[string]*model.UserDevice)}
}

func (m *mockDeviceRepo) GetByToken(_ context.Context, token string) (*model.UserDevice, error) {
	if d, ok := m.devices[token]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeviceRepo) Create(_ context.Context, device *model.UserDevice) error {
	if _, ok := m.devices[device.FCMToken]; ok {
		return repository.ErrDuplicateKey
	}
	m.seq++
	device.ID = m.seq
	m.devices[device.FCMToken] = device
	return nil
}

func (m *mockDeviceRepo) Update(_ context.Context, device *model.UserDevice) error {
	m.devices[device.FCMToken] = device
	return nil
}

func (m *mockDeviceRepo) DeleteByToken(_ context.Context, userID int64, token string) error {
	if d, ok := m.devices[token]; ok && d.UserID == userID {
		delete(m.devices, token)
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockDeviceRepo) ListEnabledTokensByUserIDs(_ context.Context, userIDs []int64) ([]repository.DeviceToken, error) {
	want := make(map[int64]struct{}, len(userIDs))
	for _, id := range userIDs {
		want[id] = struct{}{}
	}
	var rows []repository.DeviceToken
	for _, d := range m.devices {
		if _, ok := want[d.UserID]; ok && d.IsEnabled {
			rows = append(rows, repository.DeviceToken{UserID: d.UserID, FCMToken: d.FCMToken})
		}
	}
	return rows, nil
}

// addRaw 유니크 제약을 우회해 (공백/중복 포함) 토큰 행을 심는다
func (m *mockDeviceRepo) addRaw(userID int64, token string) {
	m.seq++
	key := fmt.Sprintf("raw-%d", m.seq)
	m.devices[key] = &model.UserDevice{
		ID:        m.seq,
		UserID:    userID,
		FCMToken:  token,
		Platform:  model.PlatformAndroid,
		IsEnabled: true,
	}
}

type mockNotificationSettingRepo struct {
	settings map[int64]*model.UserNotificationSetting
}

func newMockNotificationSettingRepo() *mockNotificationSettingRepo {
	return &mockNotificationSettingRepo{settings: make(map[int64]*model.UserNotificationSetting)}
}

func (m *mockNotificationSettingRepo) GetByUserID(_ context.Context, userID int64) (*model.UserNotificationSetting, error) {
	if s, ok := m.settings[userID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationSettingRepo) Create(_ context.Context, setting *model.UserNotificationSetting) error {
	if _, ok := m.settings[setting.UserID]; ok {
		return repository.ErrDuplicateKey
	}
	m.settings[setting.UserID] = setting
	return nil
}

func (m *mockNotificationSettingRepo) Update(_ context.Context, setting *model.UserNotificationSetting) error {
	m.settings[setting.UserID] = setting
	return nil
}

func (m *mockNotificationSettingRepo) ListEnabledByRecordRemindAt(_ context.Context, at string) ([]int64, error) {
	var ids []int64
	for _, s := range m.settings {
		if s.IsEnabled && s.RecordRemindAt == at {
			ids = append(ids, s.UserID)
		}
	}
	return ids, nil
}

func (m *mockNotificationSettingRepo) ListEnabledByDailyCloseAt(_ context.Context, at string) ([]int64, error) {
	var ids []int64
	for _, s := range m.settings {
		if s.IsEnabled && s.DailyCloseAt == at {
			ids = append(ids, s.UserID)
		}
	}
	return ids, nil
}

type mockDispatchLogRepo struct {
	seq  int64
	logs map[string]*model.NotificationDispatchLog // key: kind|user|date

	// createErr가 설정되면 다음 Create가 이 에러를 돌려준다 (1회성 아님)
	createErr error
}

func newMockDispatchLogRepo() *mockDispatchLogRepo {
	return &mockDispatchLogRepo{logs: make(map[string]*model.NotificationDispatchLog)}
}

func dispatchKey(kind model.NotificationKind, userID int64, date string) string {
	return fmt.Sprintf("%s|%d|%s", kind, userID, date)
}

func (m *mockDispatchLogRepo) Create(_ context.Context, log *model.NotificationDispatchLog) error {
	if m.createErr != nil {
		return m.createErr
	}
	key := dispatchKey(log.Kind, log.UserID, log.SentDate)
	if _, ok := m.logs[key]; ok {
		return repository.ErrDuplicateKey
	}
	m.seq++
	log.ID = m.seq
	m.logs[key] = log
	return nil
}

func (m *mockDispatchLogRepo) ListSentUserIDs(_ context.Context, kind model.NotificationKind, sentDate string, userIDs []int64) ([]int64, error) {
	var sent []int64
	for _, id := range userIDs {
		if _, ok := m.logs[dispatchKey(kind, id, sentDate)]; ok {
			sent = append(sent, id)
		}
	}
	return sent, nil
}

func (m *mockDispatchLogRepo) has(kind model.NotificationKind, userID int64, date string) bool {
	_, ok := m.logs[dispatchKey(kind, userID, date)]
	return ok
}

type mockBrandRepo struct {
	brands map[int64]*model.Brand
}

func newMockBrandRepo() *mockBrandRepo {
	return &mockBrandRepo{brands: make(map[int64]*model.Brand)}
}

func (m *mockBrandRepo) GetByID(_ context.Context, id int64) (*model.Brand, error) {
	if b, ok := m.brands[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBrandRepo) List(_ context.Context, keyword string) ([]model.Brand, error) {
	var result []model.Brand
	// 실제 저장소와 같은 ID 오름차순
	for id := int64(1); id <= int64(len(m.brands))+10; id++ {
		b, ok := m.brands[id]
		if !ok {
			continue
		}
		if keyword != "" && !strings.Contains(b.Name, keyword) {
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

type mockBrandFavoriteRepo struct {
	seq       int64
	favorites map[string]*model.BrandFavorite // key: user|brand
}

func newMockBrandFavoriteRepo() *mockBrandFavoriteRepo {
	return &mockBrandFavoriteRepo{favorites: make(map[string]*model.BrandFavorite)}
}

func (m *mockBrandFavoriteRepo) Create(_ context.Context, f *model.BrandFavorite) error {
	key := fmt.Sprintf("%d|%d", f.UserID, f.BrandID)
	if _, ok := m.favorites[key]; ok {
		return repository.ErrDuplicateKey
	}
	m.seq++
	f.ID = m.seq
	m.favorites[key] = f
	return nil
}

func (m *mockBrandFavoriteRepo) Delete(_ context.Context, userID, brandID int64) error {
	key := fmt.Sprintf("%d|%d", userID, brandID)
	if _, ok := m.favorites[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.favorites, key)
	return nil
}

func (m *mockBrandFavoriteRepo) ListBrandIDsByUserID(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for _, f := range m.favorites {
		if f.UserID == userID {
			ids = append(ids, f.BrandID)
		}
	}
	return ids, nil
}

type mockMenuRepo struct {
	menus map[int64]*model.Menu
}

func newMockMenuRepo() *mockMenuRepo {
	return &mockMenuRepo{menus: make(map[int64]*model.Menu)}
}

func (m *mockMenuRepo) GetByID(_ context.Context, id int64) (*model.Menu, error) {
	if menu, ok := m.menus[id]; ok {
		return menu, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuRepo) ListByBrandID(_ context.Context, brandID int64, keyword string) ([]model.Menu, error) {
	var result []model.Menu
	for id := int64(1); id <= int64(len(m.menus))+10; id++ {
		menu, ok := m.menus[id]
		if !ok || menu.BrandID != brandID {
			continue
		}
		if keyword != "" && !strings.Contains(menu.Name, keyword) {
			continue
		}
		result = append(result, *menu)
	}
	return result, nil
}

func (m *mockMenuRepo) ListByIDs(_ context.Context, ids []int64) ([]model.Menu, error) {
	var result []model.Menu
	for _, id := range ids {
		if menu, ok := m.menus[id]; ok {
			result = append(result, *menu)
		}
	}
	return result, nil
}

type mockMenuSizeRepo struct {
	sizes map[int64]*model.MenuSize
}

func newMockMenuSizeRepo() *mockMenuSizeRepo {
	return &mockMenuSizeRepo{sizes: make(map[int64]*model.MenuSize)}
}

func (m *mockMenuSizeRepo) GetByID(_ context.Context, id int64) (*model.MenuSize, error) {
	if s, ok := m.sizes[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type mockMenuFavoriteRepo struct {
	seq       int64
	favorites map[string]*model.MenuFavorite
}

func newMockMenuFavoriteRepo() *mockMenuFavoriteRepo {
	return &mockMenuFavoriteRepo{favorites: make(map[string]*model.MenuFavorite)}
}

func (m *mockMenuFavoriteRepo) Create(_ context.Context, f *model.MenuFavorite) error {
	key := fmt.Sprintf("%d|%d", f.UserID, f.MenuID)
	if _, ok := m.favorites[key]; ok {
		return repository.ErrDuplicateKey
	}
	m.seq++
	f.ID = m.seq
	m.favorites[key] = f
	return nil
}

func (m *mockMenuFavoriteRepo) Delete(_ context.Context, userID, menuID int64) error {
	key := fmt.Sprintf("%d|%d", userID, menuID)
	if _, ok := m.favorites[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.favorites, key)
	return nil
}

func (m *mockMenuFavoriteRepo) ListMenuIDsByUserID(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for _, f := range m.favorites {
		if f.UserID == userID {
			ids = append(ids, f.MenuID)
		}
	}
	return ids, nil
}

type mockOptionRepo struct {
	options map[int64]*model.Option
}

func newMockOptionRepo() *mockOptionRepo {
	return &mockOptionRepo{options: make(map[int64]*model.Option)}
}

func (m *mockOptionRepo) ListByBrandID(_ context.Context, brandID int64) ([]model.Option, error) {
	var result []model.Option
	for id := int64(1); id <= int64(len(m.options))+10; id++ {
		o, ok := m.options[id]
		if ok && o.BrandID == brandID {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (m *mockOptionRepo) ListByIDs(_ context.Context, ids []int64) ([]model.Option, error) {
	var result []model.Option
	seen := make(map[int64]struct{})
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if o, ok := m.options[id]; ok {
			result = append(result, *o)
		}
	}
	return result, nil
}

type mockIntakeRepo struct {
	seq     int64
	intakes map[int64]*model.Intake
}

func newMockIntakeRepo() *mockIntakeRepo {
	return &mockIntakeRepo{intakes: make(map[int64]*model.Intake)}
}

func (m *mockIntakeRepo) Create(_ context.Context, intake *model.Intake, optionIDs []int64) error {
	m.seq++
	intake.ID = m.seq
	m.intakes[intake.ID] = intake
	return nil
}

func (m *mockIntakeRepo) Update(_ context.Context, intake *model.Intake, _ []int64) error {
	if _, ok := m.intakes[intake.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.intakes[intake.ID] = intake
	return nil
}

func (m *mockIntakeRepo) GetByID(_ context.Context, id int64) (*model.Intake, error) {
	if i, ok := m.intakes[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockIntakeRepo) Delete(_ context.Context, intake *model.Intake) error {
	delete(m.intakes, intake.ID)
	return nil
}

func (m *mockIntakeRepo) ListByUserIDAndPeriod(_ context.Context, userID int64, from, to time.Time) ([]model.Intake, error) {
	var result []model.Intake
	for id := int64(1); id <= m.seq; id++ {
		i, ok := m.intakes[id]
		if !ok || i.UserID != userID {
			continue
		}
		if i.IntakeAt.Before(from) || !i.IntakeAt.Before(to) {
			continue
		}
		result = append(result, *i)
	}
	return result, nil
}

// ── Mock 외부 연동 ──

// mockPush 발송 호출을 기록하는 PushSender. failTokens에 포함된 토큰이
// 섞여 있으면 해당 호출 전체를 실패시킨다.
type mockPush struct {
	calls      []pushCall
	failTokens map[string]bool
}

type pushCall struct {
	Tokens []string
	Title  string
	Body   string
}

func newMockPush() *mockPush {
	return &mockPush{failTokens: make(map[string]bool)}
}

func (m *mockPush) SendToTokens(_ context.Context, tokens []string, title, body string) error {
	for _, t := range tokens {
		if m.failTokens[t] {
			return errors.New("푸시 발송 실패")
		}
	}
	m.calls = append(m.calls, pushCall{Tokens: tokens, Title: title, Body: body})
	return nil
}

type mockMailer struct {
	sent []string // "email:code"
	err  error
}

func (m *mockMailer) SendPasswordResetCode(to, code string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to+":"+code)
	return nil
}

type mockUploader struct {
	uploaded int
}

func (m *mockUploader) Upload(_ context.Context, dir, filename, contentType string, data []byte) (string, error) {
	m.uploaded++
	return "https://cdn.example.com/" + dir + "/" + filename, nil
}

// ── 테스트 픽스처 ──

type testRepos struct {
	user     *mockUserRepo
	local    *mockLocalAuthRepo
	social   *mockSocialAuthRepo
	reset    *mockPasswordResetRepo
	device   *mockDeviceRepo
	setting  *mockNotificationSettingRepo
	dispatch *mockDispatchLogRepo
	brand    *mockBrandRepo
	brandFav *mockBrandFavoriteRepo
	menu     *mockMenuRepo
	menuSize *mockMenuSizeRepo
	menuFav  *mockMenuFavoriteRepo
	option   *mockOptionRepo
	intake   *mockIntakeRepo
}

func newTestRepos() (*testRepos, *repository.Repository) {
	mocks := &testRepos{
		user:     newMockUserRepo(),
		local:    newMockLocalAuthRepo(),
		social:   newMockSocialAuthRepo(),
		reset:    newMockPasswordResetRepo(),
		device:   newMockDeviceRepo(),
		setting:  newMockNotificationSettingRepo(),
		dispatch: newMockDispatchLogRepo(),
		brand:    newMockBrandRepo(),
		brandFav: newMockBrandFavoriteRepo(),
		menu:     newMockMenuRepo(),
		menuSize: newMockMenuSizeRepo(),
		menuFav:  newMockMenuFavoriteRepo(),
		option:   newMockOptionRepo(),
		intake:   newMockIntakeRepo(),
	}
	repo := &repository.Repository{
		User:                mocks.user,
		LocalAuth:           mocks.local,
		SocialAuth:          mocks.social,
		PasswordReset:       mocks.reset,
		Device:              mocks.device,
		NotificationSetting: mocks.setting,
		DispatchLog:         mocks.dispatch,
		Brand:               mocks.brand,
		BrandFavorite:       mocks.brandFav,
		Menu:                mocks.menu,
		MenuSize:            mocks.menuSize,
		MenuFavorite:        mocks.menuFav,
		Option:              mocks.option,
		Intake:              mocks.intake,
	}
	return mocks, repo
}
