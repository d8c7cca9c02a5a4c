package di

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	broadcastRepo "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/repository"
	broadcastService "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/service"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/shared/config"
	httpServer "github.com/reshetovitsme/telegram-ad-broadcaster/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_StorageSide(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "42")
	t.Setenv("STORAGE_PATH", filepath.Join(dir, "state"))

	injector, err := Setup("")
	require.NoError(t, err)

	cfg := do.MustInvoke[*config.Config](injector)
	assert.Equal(t, int64(42), cfg.AdminID)

	svc := do.MustInvoke[*broadcastService.Service](injector)
	require.NoError(t, svc.AddChannel(context.Background(), "@a"))

	repo := do.MustInvoke[broadcastRepo.Repository](injector)
	assert.Equal(t, []string{"@a"}, repo.LoadChannels(context.Background()))

	_, err = os.Stat(filepath.Join(dir, "state", "channels.json"))
	assert.NoError(t, err)

	// Without a webhook the HTTP server does not need the bot
	server := do.MustInvoke[*httpServer.Server](injector)
	assert.NotNil(t, server.Handler())

	assert.NoError(t, Shutdown(injector))
}

func TestSetup_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("ADMIN_ID", "42")

	injector, err := Setup("")
	require.NoError(t, err)

	_, err = do.Invoke[*config.Config](injector)
	assert.Error(t, err)
}

func TestShutdown_LeavesUnbuiltServicesAlone(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "42")
	t.Setenv("STORAGE_PATH", filepath.Join(dir, "state"))

	injector, err := Setup("")
	require.NoError(t, err)
	_ = do.MustInvoke[*config.Config](injector)

	require.NoError(t, Shutdown(injector))

	// The file store creates its directory when opened
	_, err = os.Stat(filepath.Join(dir, "state"))
	assert.True(t, os.IsNotExist(err))
}

func TestShutdown_ClosesBuiltStore(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "42")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("STORAGE_PATH", filepath.Join(dir, "state"))

	injector, err := Setup("")
	require.NoError(t, err)

	docs := do.MustInvoke[broadcastRepo.DocumentStore](injector)
	require.NoError(t, docs.Put(context.Background(), broadcastRepo.DocumentAd, []byte(`{}`)))

	require.NoError(t, Shutdown(injector))

	_, err = docs.Get(context.Background(), broadcastRepo.DocumentAd)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, broadcastRepo.ErrDocumentNotFound)
}
