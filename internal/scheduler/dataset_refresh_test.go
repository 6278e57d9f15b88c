package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-venus-api/internal/config"
)

// fakeRefresher simula o snapshot de dados atualizado pelo agendador
type fakeRefresher struct {
	refreshCalls int
	failNext     bool
	version      string
	loadedAt     time.Time
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.refreshCalls++
	if f.failNext {
		return errors.New("origem indisponível")
	}
	f.version = "v" + time.Now().Format("150405.000000000")
	f.loadedAt = time.Now()
	return nil
}

func (f *fakeRefresher) Version() string { return f.version }

func (f *fakeRefresher) LoadedAt() time.Time { return f.loadedAt }

func newTestService(store Refresher, enabled bool) *DatasetRefreshService {
	return NewDatasetRefreshService(store, &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule: "0 5 * * *",
			Enabled:      enabled,
		},
	})
}

func TestDatasetRefreshService_RunNow(t *testing.T) {
	store := &fakeRefresher{}
	service := newTestService(store, false)

	assert.NoError(t, service.RunNow(context.Background()))
	assert.Equal(t, 1, store.refreshCalls)

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotNil(t, status.LastStartedAt)
	assert.NotNil(t, status.LastCompletedAt)
	assert.Empty(t, status.LastError)
	assert.Equal(t, store.version, status.SnapshotVersion)
}

func TestDatasetRefreshService_RunNow_Failure(t *testing.T) {
	store := &fakeRefresher{failNext: true}
	service := newTestService(store, false)

	err := service.RunNow(context.Background())
	assert.Error(t, err)

	status := service.Status()
	assert.Contains(t, status.LastError, "origem indisponível")
	assert.NotNil(t, status.LastCompletedAt)
}

func TestDatasetRefreshService_Status_Defaults(t *testing.T) {
	service := newTestService(&fakeRefresher{}, true)

	status := service.Status()
	assert.True(t, status.Enabled)
	assert.Equal(t, "0 5 * * *", status.CronSchedule)
	assert.False(t, status.Running)
	assert.Nil(t, status.LastStartedAt)
	assert.Nil(t, status.LastCompletedAt)
	assert.Empty(t, status.SnapshotVersion)
}

func TestDatasetRefreshService_Start_Disabled(t *testing.T) {
	service := newTestService(&fakeRefresher{}, false)

	// Desabilitado não agenda nada e não falha
	assert.NoError(t, service.Start(context.Background()))
}
