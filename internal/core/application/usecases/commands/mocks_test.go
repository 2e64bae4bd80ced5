package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"perfumery/internal/core/application/usecases/commands"
	"perfumery/internal/core/domain/model/journal"
	"perfumery/internal/core/domain/model/kernel"
	"perfumery/internal/core/domain/model/perfume"
	"perfumery/internal/core/domain/model/plant"
	"perfumery/internal/core/domain/model/replant"
	"perfumery/internal/core/domain/model/saleorder"
	"perfumery/internal/core/domain/model/storagepackage"
	"perfumery/internal/core/domain/services"
	"perfumery/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Repositories.

type MockPlantRepository struct{ mock.Mock }

func (m *MockPlantRepository) Add(ctx context.Context, p *plant.Plant) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPlantRepository) Update(ctx context.Context, p *plant.Plant) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPlantRepository) Get(ctx context.Context, id int64) (*plant.Plant, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*plant.Plant)
	return p, args.Error(1)
}
func (m *MockPlantRepository) GetByIDs(ctx context.Context, ids []int64) ([]*plant.Plant, error) {
	args := m.Called(ctx, ids)
	plants, _ := args.Get(0).([]*plant.Plant)
	return plants, args.Error(1)
}
func (m *MockPlantRepository) ClaimPlanted(ctx context.Context, name string, limit int) ([]*plant.Plant, error) {
	args := m.Called(ctx, name, limit)
	plants, _ := args.Get(0).([]*plant.Plant)
	return plants, args.Error(1)
}

type MockPerfumeRepository struct{ mock.Mock }

func (m *MockPerfumeRepository) Add(ctx context.Context, p *perfume.Perfume) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPerfumeRepository) Update(ctx context.Context, p *perfume.Perfume) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPerfumeRepository) Get(ctx context.Context, id int64) (*perfume.Perfume, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*perfume.Perfume)
	return p, args.Error(1)
}
func (m *MockPerfumeRepository) ClaimAvailable(ctx context.Context, name string, limit int) ([]*perfume.Perfume, error) {
	args := m.Called(ctx, name, limit)
	bottles, _ := args.Get(0).([]*perfume.Perfume)
	return bottles, args.Error(1)
}

type MockStoragePackageRepository struct{ mock.Mock }

func (m *MockStoragePackageRepository) Add(ctx context.Context, p *storagepackage.StoragePackage) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockStoragePackageRepository) Update(ctx context.Context, p *storagepackage.StoragePackage) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockStoragePackageRepository) Get(ctx context.Context, id int64) (*storagepackage.StoragePackage, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*storagepackage.StoragePackage)
	return p, args.Error(1)
}
func (m *MockStoragePackageRepository) ClaimPacked(ctx context.Context, limit int) ([]*storagepackage.StoragePackage, error) {
	args := m.Called(ctx, limit)
	packages, _ := args.Get(0).([]*storagepackage.StoragePackage)
	return packages, args.Error(1)
}

type MockSaleOrderRepository struct{ mock.Mock }

func (m *MockSaleOrderRepository) Add(ctx context.Context, o *saleorder.SaleOrder) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockSaleOrderRepository) Get(ctx context.Context, id int64) (*saleorder.SaleOrder, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*saleorder.SaleOrder)
	return o, args.Error(1)
}

type MockReplantTaskRepository struct{ mock.Mock }

func (m *MockReplantTaskRepository) Add(ctx context.Context, t *replant.Task) error {
	return m.Called(ctx, t).Error(0)
}
func (m *MockReplantTaskRepository) Update(ctx context.Context, t *replant.Task) error {
	return m.Called(ctx, t).Error(0)
}
func (m *MockReplantTaskRepository) ClaimPending(ctx context.Context, limit int) ([]*replant.Task, error) {
	args := m.Called(ctx, limit)
	tasks, _ := args.Get(0).([]*replant.Task)
	return tasks, args.Error(1)
}

// Unit of work. MockUoW satisfies every narrowed UoW interface.

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) PlantRepository() ports.PlantRepository {
	return m.Called().Get(0).(ports.PlantRepository)
}
func (m *MockUoW) PerfumeRepository() ports.PerfumeRepository {
	return m.Called().Get(0).(ports.PerfumeRepository)
}
func (m *MockUoW) StoragePackageRepository() ports.StoragePackageRepository {
	return m.Called().Get(0).(ports.StoragePackageRepository)
}
func (m *MockUoW) SaleOrderRepository() ports.SaleOrderRepository {
	return m.Called().Get(0).(ports.SaleOrderRepository)
}
func (m *MockUoW) ReplantTaskRepository() ports.ReplantTaskRepository {
	return m.Called().Get(0).(ports.ReplantTaskRepository)
}

// uowFactory hands out the queued units of work in order.
type uowFactory struct {
	uows []*MockUoW
}

func newUoWFactory(uows ...*MockUoW) *uowFactory {
	return &uowFactory{uows: uows}
}

func (f *uowFactory) next() *MockUoW {
	uow := f.uows[0]
	f.uows = f.uows[1:]
	return uow
}

type plantFactory struct{ *uowFactory }

func (f plantFactory) Create() commands.PlantUoW { return f.next() }

type processingFactory struct{ *uowFactory }

func (f processingFactory) Create() commands.ProcessingUoW { return f.next() }

type packageFactory struct{ *uowFactory }

func (f packageFactory) Create() commands.StoragePackageUoW { return f.next() }

type saleOrderFactory struct{ *uowFactory }

func (f saleOrderFactory) Create() commands.SaleOrderUoW { return f.next() }

type replantFactory struct{ *uowFactory }

func (f replantFactory) Create() commands.ReplantTaskUoW { return f.next() }

// Collaborators.

type MockPlantSupplier struct{ mock.Mock }

func (m *MockPlantSupplier) AvailablePlants(ctx context.Context, count int) ([]services.SourcePlant, error) {
	args := m.Called(ctx, count)
	plants, _ := args.Get(0).([]services.SourcePlant)
	return plants, args.Error(1)
}
func (m *MockPlantSupplier) MarkUsed(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}
func (m *MockPlantSupplier) PlantAndScale(ctx context.Context, s kernel.Strength) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

type MockPerfumeReserver struct{ mock.Mock }

func (m *MockPerfumeReserver) Reserve(ctx context.Context, name string, count int) ([]int64, error) {
	args := m.Called(ctx, name, count)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

type MockPackageSender struct{ mock.Mock }

func (m *MockPackageSender) SendPackages(ctx context.Context, count int, role kernel.Role) ([]int64, error) {
	args := m.Called(ctx, count, role)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

// recordingPacer records requested delays without sleeping.
type recordingPacer struct {
	delays []time.Duration
	err    error
	failAt int
}

func (p *recordingPacer) Pause(ctx context.Context, d time.Duration) error {
	if p.err != nil && len(p.delays) == p.failAt {
		return p.err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.delays = append(p.delays, d)
	return nil
}

type MockProductionLog struct{ mock.Mock }

func (m *MockProductionLog) Append(ctx context.Context, entry journal.Entry) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *MockProductionLog) Recent(ctx context.Context, limit int) ([]journal.Entry, error) {
	args := m.Called(ctx, limit)
	entries, _ := args.Get(0).([]journal.Entry)
	return entries, args.Error(1)
}

// memoryAudit collects published events.
type memoryAudit struct {
	events []ports.AuditEvent
}

func (a *memoryAudit) Publish(_ context.Context, event ports.AuditEvent) {
	a.events = append(a.events, event)
}

// memoryLog is a ProductionLog keeping entries in memory.
type memoryLog struct {
	entries []journal.Entry
}

func (l *memoryLog) Append(_ context.Context, entry journal.Entry) error {
	l.entries = append(l.entries, entry)
	return nil
}

func (l *memoryLog) Recent(_ context.Context, _ int) ([]journal.Entry, error) {
	return l.entries, nil
}

func (l *memoryLog) messages() []string {
	out := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, string(e.Level())+" "+e.Message())
	}
	return out
}

func mustStrength(t interface {
	Helper()
	Fatalf(string, ...any)
}, v string) kernel.Strength {
	t.Helper()
	s, err := kernel.NewStrength(decimal.RequireFromString(v))
	if err != nil {
		t.Fatalf("strength %s: %v", v, err)
	}
	return s
}
