package impl

import (
	"context"
	"encoding/base64"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/infra/persistence/memory"
	mockService "accounts/internal/mocks/service"
	"accounts/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	repo         repository.AccountRepository
	tokenService *mockService.MockTokenService
	tokenGuard   *mockService.MockSyncTokenGuard
	qrService    *mockService.MockQRCodeService
	syncService  *mockService.MockNotificationSyncService
}

type accountServiceOptions struct {
	syncEnabled bool
	wrapTx      func(repository.TransactionManager) repository.TransactionManager
	wrapRepo    func(repository.AccountRepository) repository.AccountRepository
}

func createTestAccountService(t *testing.T, opts accountServiceOptions) accountServiceFixtures {
	store := memory.NewStore()
	repo := memory.NewAccountRepository(store)
	txManager := memory.NewTransactionManager(store)
	if opts.wrapTx != nil {
		txManager = opts.wrapTx(txManager)
	}
	var serviceRepo repository.AccountRepository = repo
	if opts.wrapRepo != nil {
		serviceRepo = opts.wrapRepo(repo)
	}

	syncService := mockService.NewMockNotificationSyncService(t)
	syncService.EXPECT().Enabled().Return(opts.syncEnabled).Maybe()

	fx := accountServiceFixtures{
		repo:         repo,
		tokenService: mockService.NewMockTokenService(t),
		tokenGuard:   mockService.NewMockSyncTokenGuard(t),
		qrService:    mockService.NewMockQRCodeService(t),
		syncService:  syncService,
	}
	fx.service = NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  serviceRepo,
		TokenService: fx.tokenService,
		TokenGuard:   fx.tokenGuard,
		QRService:    fx.qrService,
		SyncService:  syncService,
		Logger:       newDiscardLogger(),
	})

	return fx
}

// faultyTxManager runs transactions whose account repository fails on Create.
type faultyTxManager struct {
	inner repository.TransactionManager
	err   error
}

type faultyFactory struct {
	inner repository.RepositoryFactory
	err   error
}

type failingCreateRepo struct {
	repository.AccountRepository
	err error
}

func (r failingCreateRepo) Create(context.Context, *entity.Account) error {
	return r.err
}

func (f faultyFactory) NewAccountRepository() repository.AccountRepository {
	return failingCreateRepo{AccountRepository: f.inner.NewAccountRepository(), err: f.err}
}

func (m faultyTxManager) Execute(ctx context.Context, fn func(context.Context, repository.RepositoryFactory) error) error {
	return m.inner.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		return fn(txCtx, faultyFactory{inner: repos, err: m.err})
	})
}

// interleavedTxManager runs before ahead of every transaction.
type interleavedTxManager struct {
	inner  repository.TransactionManager
	before func()
}

func (m interleavedTxManager) Execute(ctx context.Context, fn func(context.Context, repository.RepositoryFactory) error) error {
	m.before()

	return m.inner.Execute(ctx, fn)
}

// gatedRepo holds the first parties GetOrCreateByDeviceID reads until all of them have read.
type gatedRepo struct {
	repository.AccountRepository
	parties int32
	arrived atomic.Int32
	release chan struct{}
}

func newGatedRepo(inner repository.AccountRepository, parties int32) *gatedRepo {
	return &gatedRepo{AccountRepository: inner, parties: parties, release: make(chan struct{})}
}

func (r *gatedRepo) GetOrCreateByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error) {
	account, err := r.AccountRepository.GetOrCreateByDeviceID(ctx, deviceID)

	n := r.arrived.Add(1)
	if n == r.parties {
		close(r.release)
	}
	if n <= r.parties {
		<-r.release
	}

	return account, err
}

func TestAccountService_CreateAccount(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()

	account, err := fx.service.CreateAccount(ctx, &usecase.CreateAccountInput{
		Devices:   []entity.Device{{DeviceID: "d1", Type: "ios"}},
		Email:     "rider@example.com",
		FirstName: "Ada",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, entity.RoleUser, account.Role)
	assert.Equal(t, "Ada", account.FirstName)
}

func TestAccountService_CreateAccount_Validation(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CreateAccountInput
	}{
		{"no devices", &usecase.CreateAccountInput{}},
		{"empty device id", &usecase.CreateAccountInput{Devices: []entity.Device{{}}}},
		{"duplicate device ids", &usecase.CreateAccountInput{Devices: []entity.Device{{DeviceID: "d1"}, {DeviceID: "d1"}}}},
		{"bad email", &usecase.CreateAccountInput{Devices: []entity.Device{{DeviceID: "d1"}}, Email: "nope"}},
		{"bad gender", &usecase.CreateAccountInput{Devices: []entity.Device{{DeviceID: "d1"}}, Gender: "robot"}},
		{"bad birth date", &usecase.CreateAccountInput{Devices: []entity.Device{{DeviceID: "d1"}}, BirthDate: "01/02/2000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := fx.service.CreateAccount(ctx, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Nil(t, account)
		})
	}
}

func TestAccountService_CreateAccount_DeviceAlreadyBound(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	seedAccount(t, fx.repo, "d1")

	account, err := fx.service.CreateAccount(context.Background(), &usecase.CreateAccountInput{
		Devices: []entity.Device{{DeviceID: "d2"}, {DeviceID: "d1"}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrAccountConflict)
	assert.Nil(t, account)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})

	_, err := fx.service.GetAccount(context.Background(), "unknown")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_ListAccounts(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()
	seedAccount(t, fx.repo, "d1")
	admin := seedAccount(t, fx.repo, "d2")
	role := entity.RoleAdmin
	_, err := fx.repo.Update(ctx, "d2", &entity.AccountPatch{Role: &role})
	require.NoError(t, err)

	all, err := fx.service.ListAccounts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	admins, err := fx.service.ListAccounts(ctx, "admin")
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, admin.ID, admins[0].ID)

	_, err = fx.service.ListAccounts(ctx, "superuser")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_UpdateAccount_RoleRequiresOwner(t *testing.T) {
	ctx := context.Background()
	admin := entity.RoleAdmin
	name := "Grace"

	tests := []struct {
		name      string
		principal entity.Principal
		wantRole  entity.Role
	}{
		{"user on self", entity.Principal{DeviceID: "d1", Role: entity.RoleUser}, entity.RoleUser},
		{"admin on other", entity.Principal{DeviceID: "x", Role: entity.RoleAdmin}, entity.RoleUser},
		{"owner on other", entity.Principal{DeviceID: "x", Role: entity.RoleOwner}, entity.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t, accountServiceOptions{})
			seedAccount(t, fx.repo, "d1")

			account, err := fx.service.UpdateAccount(ctx, tt.principal, "d1", &entity.AccountPatch{Role: &admin, FirstName: &name})
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, account.Role)
			assert.Equal(t, "Grace", account.FirstName)
		})
	}
}

func TestAccountService_UpdateAccount_Forbidden(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	seedAccount(t, fx.repo, "d1")
	name := "Mallory"

	_, err := fx.service.UpdateAccount(context.Background(), entity.Principal{DeviceID: "d2", Role: entity.RoleUser}, "d1", &entity.AccountPatch{FirstName: &name})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAccountService_UpdateAccount_OnlyRoleFromNonOwnerIsNoop(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	seeded := seedAccount(t, fx.repo, "d1")
	owner := entity.RoleOwner

	account, err := fx.service.UpdateAccount(context.Background(), entity.Principal{DeviceID: "d1", Role: entity.RoleUser}, "d1", &entity.AccountPatch{Role: &owner})
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, account.ID)
	assert.Equal(t, entity.RoleUser, account.Role)
}

func TestAccountService_DeleteAccount_RemovesMirrors(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{syncEnabled: true})
	ctx := context.Background()
	account := seedAccount(t, fx.repo, "d1")
	n := newTestNotification("n1")
	_, err := fx.repo.PushNotification(ctx, "d1", &n)
	require.NoError(t, err)

	fx.syncService.EXPECT().DeleteNotification(mock.Anything, entity.SyncKey(account.ID, "n1")).Return(errors.New("remote down"))

	deleted, err := fx.service.DeleteAccount(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, account.ID, deleted.ID)

	_, err = fx.repo.FindByDeviceID(ctx, "d1")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountService_MergeDevices_Totality(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()

	a1 := seedAccount(t, fx.repo, "d1")
	a2 := seedAccount(t, fx.repo, "d2", "d3")
	_, err := fx.repo.AddFavorite(ctx, "d1", entity.FavoriteLines, "L1")
	require.NoError(t, err)
	_, err = fx.repo.AddFavorite(ctx, "d2", entity.FavoriteLines, "L1")
	require.NoError(t, err)
	_, err = fx.repo.AddFavorite(ctx, "d2", entity.FavoriteStops, "S9")
	require.NoError(t, err)

	merged, err := fx.service.MergeDevices(ctx, "d1", "d2")
	require.NoError(t, err)
	assert.NotEqual(t, a1.ID, merged.ID)
	assert.NotEqual(t, a2.ID, merged.ID)
	assert.Equal(t, []string{"d1", "d2", "d3"}, merged.DeviceIDs())
	assert.Equal(t, []string{"L1"}, merged.FavoriteLines)
	assert.Equal(t, []string{"S9"}, merged.FavoriteStops)

	for _, id := range []string{"d1", "d2", "d3"} {
		found, err := fx.repo.FindByDeviceID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, merged.ID, found.ID)
	}

	all, err := fx.repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAccountService_MergeDevices_OneSideMissing(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()
	seedAccount(t, fx.repo, "d1")

	merged, err := fx.service.MergeDevices(ctx, "d1", "new-device")
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "new-device"}, merged.DeviceIDs())

	merged, err = fx.service.MergeDevices(ctx, "other-new", "d1")
	require.NoError(t, err)
	assert.Equal(t, []string{"other-new", "d1", "new-device"}, merged.DeviceIDs())
}

func TestAccountService_MergeDevices_BothMissing(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})

	_, err := fx.service.MergeDevices(context.Background(), "x", "y")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_MergeDevices_EmptyMissingID(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()
	seedAccount(t, fx.repo, "d1")

	_, err := fx.service.MergeDevices(ctx, "d1", "")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceIDRequired)

	_, err = fx.repo.FindByDeviceID(ctx, "d1")
	assert.NoError(t, err)
}

func TestAccountService_MergeDevices_SelfMergeDeletesNothing(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()
	seeded := seedAccount(t, fx.repo, "d1", "d2")

	_, err := fx.service.MergeDevices(ctx, "d1", "d2")
	assert.ErrorIs(t, err, domainerrors.ErrSelfMerge)

	_, err = fx.service.MergeDevices(ctx, "d1", "d1")
	assert.ErrorIs(t, err, domainerrors.ErrSelfMerge)

	found, err := fx.repo.FindByDeviceID(ctx, "d2")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)
}

func TestAccountService_MergeDevices_AtomicOnFailure(t *testing.T) {
	boom := errors.New("insert failed")
	fx := createTestAccountService(t, accountServiceOptions{
		wrapTx: func(inner repository.TransactionManager) repository.TransactionManager {
			return faultyTxManager{inner: inner, err: boom}
		},
	})
	ctx := context.Background()
	a1 := seedAccount(t, fx.repo, "d1")
	a2 := seedAccount(t, fx.repo, "d2")

	merged, err := fx.service.MergeDevices(ctx, "d1", "d2")
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.Nil(t, merged)

	found1, err := fx.repo.FindByDeviceID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, a1.ID, found1.ID)

	found2, err := fx.repo.FindByDeviceID(ctx, "d2")
	require.NoError(t, err)
	assert.Equal(t, a2.ID, found2.ID)
}

func TestAccountService_MergeDevices_DeviceMovedBeforeTransaction(t *testing.T) {
	var repo repository.AccountRepository
	var once sync.Once
	fx := createTestAccountService(t, accountServiceOptions{
		wrapTx: func(inner repository.TransactionManager) repository.TransactionManager {
			return interleavedTxManager{inner: inner, before: func() {
				// Another merge moves d1 next to d9 after the lookups.
				once.Do(func() {
					_, err := repo.DeleteByDeviceID(context.Background(), "d1")
					require.NoError(t, err)
					seedAccount(t, repo, "d9", "d1")
				})
			}}
		},
	})
	repo = fx.repo
	ctx := context.Background()
	seedAccount(t, fx.repo, "d1")
	seedAccount(t, fx.repo, "d2")

	merged, err := fx.service.MergeDevices(ctx, "d1", "d2")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"d1", "d2", "d9"}, merged.DeviceIDs())

	found, err := fx.repo.FindByDeviceID(ctx, "d9")
	require.NoError(t, err)
	assert.Equal(t, merged.ID, found.ID)

	all, err := fx.repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAccountService_MergeDevices_RekeysMirrors(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{syncEnabled: true})
	ctx := context.Background()
	a1 := seedAccount(t, fx.repo, "d1")
	a2 := seedAccount(t, fx.repo, "d2")
	n1, n2 := newTestNotification("n1"), newTestNotification("n2")
	_, err := fx.repo.PushNotification(ctx, "d1", &n1)
	require.NoError(t, err)
	_, err = fx.repo.PushNotification(ctx, "d2", &n2)
	require.NoError(t, err)

	fx.syncService.EXPECT().DeleteNotification(mock.Anything, entity.SyncKey(a1.ID, "n1")).Return(nil)
	fx.syncService.EXPECT().DeleteNotification(mock.Anything, entity.SyncKey(a2.ID, "n2")).Return(errors.New("remote down"))
	fx.syncService.EXPECT().
		UpsertNotification(mock.Anything, mock.MatchedBy(func(s *service.NotificationSubscription) bool {
			return s.UserID != a1.ID && s.UserID != a2.ID
		})).
		Return(nil).
		Times(2)

	merged, err := fx.service.MergeDevices(ctx, "d1", "d2")
	require.NoError(t, err)
	assert.Len(t, merged.Notifications, 2)
}

func TestAccountService_AddDeviceWithToken(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()
	seedAccount(t, fx.repo, "d1")

	claims := &service.SyncClaims{
		DeviceID:  "d1",
		DeviceID2: "d2",
		Type:      service.TokenTypeSync,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(5 * time.Minute)),
		},
	}
	fx.tokenService.EXPECT().ValidateSyncToken("token").Return(claims, nil).Twice()
	fx.tokenGuard.EXPECT().Consume(ctx, "jti-1", mock.AnythingOfType("time.Duration")).Return(true, nil).Once()

	merged, err := fx.service.AddDeviceWithToken(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2"}, merged.DeviceIDs())

	fx.tokenGuard.EXPECT().Consume(ctx, "jti-1", mock.AnythingOfType("time.Duration")).Return(false, nil).Once()

	_, err = fx.service.AddDeviceWithToken(ctx, "token")
	assert.ErrorIs(t, err, domainerrors.ErrSyncTokenUsed)
}

func TestAccountService_AddDeviceWithToken_ScannedPayload(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()
	seedAccount(t, fx.repo, "d1")
	payload := `{"token":"token","type":"device-sync"}`

	fx.qrService.EXPECT().ParseSyncQR(payload).Return("token", nil).Once()
	fx.tokenService.EXPECT().ValidateSyncToken("token").Return(&service.SyncClaims{
		DeviceID:         "d1",
		DeviceID2:        "d2",
		Type:             service.TokenTypeSync,
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-2"},
	}, nil).Once()
	fx.tokenService.EXPECT().GetSyncTokenDuration().Return(5 * time.Minute).Once()
	fx.tokenGuard.EXPECT().Consume(ctx, "jti-2", 5*time.Minute).Return(true, nil).Once()

	merged, err := fx.service.AddDeviceWithToken(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2"}, merged.DeviceIDs())
}

func TestAccountService_AddDeviceWithToken_MalformedPayload(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	payload := `{"token":"token","type":"login"}`

	fx.qrService.EXPECT().ParseSyncQR(payload).Return("", errors.New("invalid QR code type: login")).Once()

	_, err := fx.service.AddDeviceWithToken(context.Background(), payload)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSyncToken)
}

func TestAccountService_AddDeviceWithToken_Invalid(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateSyncToken("bad").Return(nil, errors.New("token is expired"))

	_, err := fx.service.AddDeviceWithToken(ctx, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSyncToken)
}

func TestAccountService_IssueSyncToken(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()
	expiresAt := time.Now().Add(10 * time.Minute).Truncate(time.Second)
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.tokenService.EXPECT().GenerateSyncToken("d1", "d2").Return("token", &service.SyncClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1", ExpiresAt: jwt.NewNumericDate(expiresAt)},
	}, nil)
	fx.qrService.EXPECT().GenerateSyncQR("token").Return(png, nil)

	issued, err := fx.service.IssueSyncToken(ctx, "d1", "d2")
	require.NoError(t, err)
	assert.Equal(t, "token", issued.Token)
	assert.True(t, expiresAt.Equal(issued.ExpiresAt))
	assert.Equal(t, base64.StdEncoding.EncodeToString(png), issued.QRCode)

	_, err = fx.service.IssueSyncToken(ctx, "d1", "d1")
	assert.ErrorIs(t, err, domainerrors.ErrSelfMerge)

	_, err = fx.service.IssueSyncToken(ctx, "d1", "")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceIDRequired)
}

func TestAccountService_RemoveDevice(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()
	seeded := seedAccount(t, fx.repo, "d1", "d2")
	seedAccount(t, fx.repo, "d3")

	_, err := fx.service.RemoveDevice(ctx, "d1", "d3")
	assert.ErrorIs(t, err, domainerrors.ErrDevicePairNotFound)

	account, err := fx.service.RemoveDevice(ctx, "d1", "d2")
	require.NoError(t, err)
	assert.Equal(t, []string{"d1"}, account.DeviceIDs())

	// Removing the last device deletes the account.
	deleted, err := fx.service.RemoveDevice(ctx, "d1", "d1")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, deleted.ID)

	_, err = fx.repo.FindByDeviceID(ctx, "d1")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = fx.service.RemoveDevice(ctx, "d1", "d1")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_ToggleFavorite_TwoCycle(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()

	// The first toggle creates the account.
	account, err := fx.service.ToggleFavorite(ctx, "d1", entity.FavoriteLines, "L1")
	require.NoError(t, err)
	assert.Equal(t, []string{"L1"}, account.FavoriteLines)

	account, err = fx.service.ToggleFavorite(ctx, "d1", entity.FavoriteLines, "L1")
	require.NoError(t, err)
	assert.Empty(t, account.FavoriteLines)

	account, err = fx.service.ToggleFavorite(ctx, "d1", entity.FavoriteStops, "S1")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1"}, account.FavoriteStops)
	assert.Empty(t, account.FavoriteLines)
}

func TestAccountService_ToggleFavorite_ConcurrentSameItem(t *testing.T) {
	var gated *gatedRepo
	fx := createTestAccountService(t, accountServiceOptions{
		wrapRepo: func(inner repository.AccountRepository) repository.AccountRepository {
			gated = newGatedRepo(inner, 2)
			return gated
		},
	})
	ctx := context.Background()
	seedAccount(t, fx.repo, "d1")

	// Both toggles read the account before either writes, so both add.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = fx.service.ToggleFavorite(ctx, "d1", entity.FavoriteLines, "L1")
		}(i)
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	account, err := fx.repo.FindByDeviceID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, []string{"L1", "L1"}, account.FavoriteLines)

	// The next toggle sees the item and removes every copy.
	account, err = fx.service.ToggleFavorite(ctx, "d1", entity.FavoriteLines, "L1")
	require.NoError(t, err)
	assert.Empty(t, account.FavoriteLines)
	assert.Equal(t, int32(3), gated.arrived.Load())
}

func TestAccountService_ToggleFavorite_Invalid(t *testing.T) {
	fx := createTestAccountService(t, accountServiceOptions{})
	ctx := context.Background()

	_, err := fx.service.ToggleFavorite(ctx, "d1", entity.FavoriteKind("routes"), "R1")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.ToggleFavorite(ctx, "d1", entity.FavoriteLines, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
